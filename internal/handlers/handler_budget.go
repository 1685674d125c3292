package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/obracontrol/budget_control_app/internal/apperrors"
	"github.com/obracontrol/budget_control_app/internal/core/domain"
	portssvc "github.com/obracontrol/budget_control_app/internal/core/ports/services"
	"github.com/obracontrol/budget_control_app/internal/dto"
	"github.com/obracontrol/budget_control_app/internal/middleware"
)

// budgetHandler handles HTTP requests for budget availability, advisory
// validation, alerts and the budget-vs-actual report.
type budgetHandler struct {
	availabilityService portssvc.AvailabilitySvcFacade
	validationService   portssvc.ValidationSvcFacade
	alertService        portssvc.AlertSvcFacade
	reportService       portssvc.BudgetReportSvcFacade
}

func newBudgetHandler(
	avs portssvc.AvailabilitySvcFacade,
	vs portssvc.ValidationSvcFacade,
	als portssvc.AlertSvcFacade,
	rs portssvc.BudgetReportSvcFacade,
) *budgetHandler {
	return &budgetHandler{
		availabilityService: avs,
		validationService:   vs,
		alertService:        als,
		reportService:       rs,
	}
}

// RegisterBudgetRoutes registers routes related to budget control.
func RegisterBudgetRoutes(
	rg *gin.RouterGroup,
	avs portssvc.AvailabilitySvcFacade,
	vs portssvc.ValidationSvcFacade,
	als portssvc.AlertSvcFacade,
	rs portssvc.BudgetReportSvcFacade,
) {
	h := newBudgetHandler(avs, vs, als, rs)

	budget := rg.Group("/budget")
	{
		budget.GET("/availability", h.getAvailability)
		budget.POST("/validate", h.validateVoucher)
		budget.GET("/alerts", h.getAlerts)
		budget.GET("/report", h.getBudgetVsActualReport)
	}
}

// getAvailability godoc
// @Summary Get budget availability for a partida
// @Description Computes allocated, executed, available, percent executed and tier for one partida of a project. Unknown partidas yield a zero-valued view, never an error.
// @Tags budget
// @Produce json
// @Param companyID query string true "Company ID"
// @Param projectID query string true "Project ID"
// @Param partidaCode query string true "Partida code"
// @Param direction query string false "Budget direction (INCOME or EXPENSE); resolved by probing when omitted"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} ErrorResponse "Missing query parameters"
// @Failure 500 {object} ErrorResponse "Failed to compute availability"
// @Security BearerAuth
// @Router /budget/availability [get]
func (h *budgetHandler) getAvailability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID := c.Query("companyID")
	projectID := c.Query("projectID")
	partidaCode := c.Query("partidaCode")
	if companyID == "" || projectID == "" || partidaCode == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "companyID, projectID and partidaCode are required"})
		return
	}

	logger = logger.With(slog.String("project_id", projectID), slog.String("partida_code", partidaCode))

	var (
		view *domain.AvailabilityView
		err  error
	)
	if directionParam := c.Query("direction"); directionParam != "" {
		direction := domain.Direction(directionParam)
		if direction != domain.Income && direction != domain.Expense {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "direction must be INCOME or EXPENSE"})
			return
		}
		view, err = h.availabilityService.GetAvailabilityForDirection(c.Request.Context(), companyID, projectID, direction, partidaCode)
	} else {
		view, err = h.availabilityService.GetAvailability(c.Request.Context(), companyID, projectID, partidaCode)
	}
	if err != nil {
		logger.Error("Failed to compute availability", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute availability"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(view))
}

// validateVoucher godoc
// @Summary Validate candidate voucher lines against the budget
// @Description Runs the advisory budget check over candidate lines. The result is always valid; overruns surface through errorMessage and alerts.
// @Tags budget
// @Accept json
// @Produce json
// @Param request body dto.ValidateVoucherRequest true "Candidate lines"
// @Success 200 {object} dto.ValidationResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to validate"
// @Security BearerAuth
// @Router /budget/validate [post]
func (h *budgetHandler) validateVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ValidateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ValidateVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.validationService.ValidateVoucher(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error checking voucher lines", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to validate voucher lines", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to validate voucher lines"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// getAlerts godoc
// @Summary Get the budget alerts of a project
// @Description Returns the deduplicated, non-green alert set of a project, sorted by severity then percent executed.
// @Tags budget
// @Produce json
// @Param companyID query string true "Company ID"
// @Param projectID query string true "Project ID"
// @Success 200 {array} dto.AlertResponse
// @Failure 400 {object} ErrorResponse "Missing query parameters"
// @Failure 500 {object} ErrorResponse "Failed to build alerts"
// @Security BearerAuth
// @Router /budget/alerts [get]
func (h *budgetHandler) getAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID := c.Query("companyID")
	projectID := c.Query("projectID")
	if companyID == "" || projectID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "companyID and projectID are required"})
		return
	}

	alerts, err := h.alertService.GetProjectAlerts(c.Request.Context(), companyID, projectID)
	if err != nil {
		logger.Error("Failed to build project alerts", slog.String("project_id", projectID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build project alerts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAlertResponses(alerts))
}

// getBudgetVsActualReport godoc
// @Summary Get the budget-vs-actual report of a project
// @Description Builds the annual budgeted-vs-actual comparison with monthly projection rows for one project year.
// @Tags budget
// @Produce json
// @Param companyID query string true "Company ID"
// @Param projectID query string true "Project ID"
// @Param year query int false "Calendar year (defaults to the current year)"
// @Success 200 {object} dto.BudgetVsActualResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid query parameters"
// @Failure 500 {object} ErrorResponse "Failed to build report"
// @Security BearerAuth
// @Router /budget/report [get]
func (h *budgetHandler) getBudgetVsActualReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID := c.Query("companyID")
	projectID := c.Query("projectID")
	if companyID == "" || projectID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "companyID and projectID are required"})
		return
	}

	year := 0
	if yearParam := c.Query("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "year must be a non-negative integer"})
			return
		}
		year = parsed
	}

	report, err := h.reportService.GetBudgetVsActualReport(c.Request.Context(), companyID, projectID, year)
	if err != nil {
		logger.Error("Failed to build budget-vs-actual report", slog.String("project_id", projectID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build budget-vs-actual report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetVsActualResponse(report))
}
