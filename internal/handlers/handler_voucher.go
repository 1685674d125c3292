package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/obracontrol/budget_control_app/internal/apperrors"
	portssvc "github.com/obracontrol/budget_control_app/internal/core/ports/services"
	"github.com/obracontrol/budget_control_app/internal/dto"
	"github.com/obracontrol/budget_control_app/internal/middleware"
)

// voucherHandler handles HTTP requests for the voucher lifecycle.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

func newVoucherHandler(vs portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{voucherService: vs}
}

// registerVoucherRoutes registers routes related to vouchers.
func registerVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := newVoucherHandler(voucherService)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("/:voucherID", h.getVoucher)
		vouchers.POST("/:voucherID/abonos", h.registerAbono)
		vouchers.POST("/:voucherID/void", h.voidVoucher)
	}
}

// createVoucher godoc
// @Summary Create a voucher
// @Description Persists an expense or income voucher after structural validation. Budget overrun never blocks creation; it is reported through budgetWarning and alerts.
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucher body dto.CreateVoucherRequest true "Voucher details"
// @Success 201 {object} dto.CreateVoucherResponse
// @Failure 400 {object} ErrorResponse "Structural validation failed"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Unknown partida"
// @Failure 500 {object} ErrorResponse "Failed to create voucher"
// @Security BearerAuth
// @Router /vouchers [post]
func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID), slog.String("project_id", req.ProjectID))
	logger.Info("Received request to create voucher", slog.String("direction", string(req.Direction)))

	created, err := h.voucherService.CreateVoucher(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Voucher rejected by structural validation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Voucher references an unknown partida", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create voucher in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create voucher"})
		}
		return
	}

	logger.Info("Voucher created successfully", slog.String("voucher_id", created.Voucher.VoucherID))
	c.JSON(http.StatusCreated, created)
}

// getVoucher godoc
// @Summary Get a voucher by ID
// @Description Retrieves a voucher with its lines.
// @Tags vouchers
// @Produce json
// @Param voucherID path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} ErrorResponse "Voucher not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve voucher"
// @Security BearerAuth
// @Router /vouchers/{voucherID} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Voucher not found", slog.String("voucher_id", voucherID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Voucher not found"})
			return
		}
		logger.Error("Failed to get voucher from service", slog.String("voucher_id", voucherID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve voucher"})
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// registerAbono godoc
// @Summary Register a payment against a voucher
// @Description Records an abono and advances the voucher payment state. The cumulative paid amount can never exceed the voucher total.
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucherID path string true "Voucher ID"
// @Param abono body dto.RegisterAbonoRequest true "Payment details"
// @Success 200 {object} dto.VoucherResponse
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 404 {object} ErrorResponse "Voucher not found"
// @Failure 409 {object} ErrorResponse "Voucher voided or already fully paid"
// @Failure 500 {object} ErrorResponse "Failed to register payment"
// @Security BearerAuth
// @Router /vouchers/{voucherID}/abonos [post]
func (h *voucherHandler) registerAbono(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	var req dto.RegisterAbonoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterAbono", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("voucher_id", voucherID), slog.String("user_id", userID))

	voucher, err := h.voucherService.RegisterAbono(c.Request.Context(), voucherID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Voucher not found")
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Voucher not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Abono rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrConflict):
			logger.Warn("Abono conflicts with voucher state", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to register abono", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register payment"})
		}
		return
	}

	logger.Info("Abono registered", slog.String("state", string(voucher.State)))
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// voidVoucher godoc
// @Summary Void a voucher
// @Description Voids a voucher, removing it from execution totals. Voiding a voucher with recorded payments requires confirm.
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucherID path string true "Voucher ID"
// @Param void body dto.VoidVoucherRequest false "Void options"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} ErrorResponse "Voucher not found"
// @Failure 409 {object} ErrorResponse "Already voided or confirmation required"
// @Failure 500 {object} ErrorResponse "Failed to void voucher"
// @Security BearerAuth
// @Router /vouchers/{voucherID}/void [post]
func (h *voucherHandler) voidVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherID := c.Param("voucherID")

	// The body is optional, voiding an unpaid voucher needs no confirmation.
	var req dto.VoidVoucherRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for VoidVoucher", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
			return
		}
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("voucher_id", voucherID), slog.String("user_id", userID))

	voucher, err := h.voucherService.VoidVoucher(c.Request.Context(), voucherID, req.Confirm, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Voucher not found")
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Voucher not found"})
		case errors.Is(err, apperrors.ErrConflict):
			logger.Warn("Void rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to void voucher", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to void voucher"})
		}
		return
	}

	logger.Info("Voucher voided")
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}
