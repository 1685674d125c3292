package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/obracontrol/budget_control_app/internal/core/ports/services"
	"github.com/obracontrol/budget_control_app/internal/dto"
	"github.com/obracontrol/budget_control_app/internal/middleware"
)

// cashflowHandler handles HTTP requests for the consolidated cash-flow
// ledger.
type cashflowHandler struct {
	cashflowService portssvc.CashflowSvcFacade
}

func newCashflowHandler(cs portssvc.CashflowSvcFacade) *cashflowHandler {
	return &cashflowHandler{cashflowService: cs}
}

// registerCashflowRoutes registers routes related to cash-flow consolidation.
func registerCashflowRoutes(rg *gin.RouterGroup, cashflowService portssvc.CashflowSvcFacade) {
	h := newCashflowHandler(cashflowService)

	rg.GET("/cashflow", h.getCashflow)
}

// getCashflow godoc
// @Summary Get the consolidated cash flow of a company
// @Description Consolidates income and expense vouchers into a chronological movement ledger with running balance, monthly summary and projections. All-time when from/to are omitted.
// @Tags cashflow
// @Produce json
// @Param companyID query string true "Company ID"
// @Param from query string false "Range start (RFC 3339)"
// @Param to query string false "Range end (RFC 3339)"
// @Success 200 {object} dto.CashflowResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid query parameters"
// @Failure 500 {object} ErrorResponse "Failed to consolidate cash flow"
// @Security BearerAuth
// @Router /cashflow [get]
func (h *cashflowHandler) getCashflow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID := c.Query("companyID")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "companyID is required"})
		return
	}

	from, ok := parseTimeParam(c, "from")
	if !ok {
		return
	}
	to, ok := parseTimeParam(c, "to")
	if !ok {
		return
	}

	report, err := h.cashflowService.GetCashflow(c.Request.Context(), companyID, from, to)
	if err != nil {
		logger.Error("Failed to consolidate cash flow", slog.String("company_id", companyID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to consolidate cash flow"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCashflowResponse(report))
}

// parseTimeParam reads an optional RFC 3339 query parameter. It writes the
// 400 response itself and reports failure through the second return value.
func parseTimeParam(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: name + " must be an RFC 3339 timestamp"})
		return nil, false
	}
	return &t, true
}
