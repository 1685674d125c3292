package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/obracontrol/budget_control_app/internal/apperrors"
	"github.com/obracontrol/budget_control_app/internal/core/domain"
	portsrepo "github.com/obracontrol/budget_control_app/internal/core/ports/repositories"
	portssvc "github.com/obracontrol/budget_control_app/internal/core/ports/services"
	"github.com/obracontrol/budget_control_app/internal/dto"
	"github.com/shopspring/decimal"
)

var (
	ErrVoucherDateMissing  = fmt.Errorf("%w: voucher date is required", apperrors.ErrValidation)
	ErrVoucherDateInFuture = fmt.Errorf("%w: voucher date may not be in the future", apperrors.ErrValidation)
	ErrDuplicatePartida    = fmt.Errorf("%w: a partida may not appear twice within one voucher", apperrors.ErrValidation)
	ErrLineSumMismatch     = fmt.Errorf("%w: sum of line totals does not equal header total", apperrors.ErrValidation)
	ErrNonPositiveAmount   = fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	ErrVoucherVoided       = fmt.Errorf("%w: voucher is voided", apperrors.ErrConflict)
	ErrVoucherFullyPaid    = fmt.Errorf("%w: voucher is already fully paid", apperrors.ErrConflict)
	ErrVoidNeedsConfirm    = fmt.Errorf("%w: voiding a voucher with recorded payments requires explicit confirmation", apperrors.ErrConflict)
)

// voucherService owns the voucher lifecycle: structural validation, advisory
// budget validation, persistence, abono registration and voiding.
type voucherService struct {
	BaseService
	voucherRepo   portsrepo.VoucherRepository
	partidaRepo   portsrepo.PartidaReader
	validationSvc portssvc.ValidationSvcFacade
	alertSvc      portssvc.AlertSvcFacade
}

// NewVoucherService creates a new voucher lifecycle service.
func NewVoucherService(voucherRepo portsrepo.VoucherRepository, partidaRepo portsrepo.PartidaReader, validationSvc portssvc.ValidationSvcFacade, alertSvc portssvc.AlertSvcFacade) portssvc.VoucherSvcFacade {
	return &voucherService{
		voucherRepo:   voucherRepo,
		partidaRepo:   partidaRepo,
		validationSvc: validationSvc,
		alertSvc:      alertSvc,
	}
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// validateStructure checks the structural invariants of a candidate voucher:
// required non-future date, positive amounts, unique partidas and line totals
// summing to the header total. Structural problems abort the operation;
// budget overrun never does.
func (s *voucherService) validateStructure(req dto.CreateVoucherRequest, now time.Time) error {
	if req.VoucherDate == nil {
		return ErrVoucherDateMissing
	}
	if req.VoucherDate.After(now) {
		return ErrVoucherDateInFuture
	}
	if req.Total.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: header total %s", ErrNonPositiveAmount, req.Total.String())
	}

	seen := make(map[string]struct{}, len(req.Lines))
	lineSum := decimal.Zero
	for _, line := range req.Lines {
		if line.Total.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: line total %s for partida %s", ErrNonPositiveAmount, line.Total.String(), line.PartidaCode)
		}
		if line.Tax.IsNegative() {
			return fmt.Errorf("%w: line tax %s for partida %s", ErrNonPositiveAmount, line.Tax.String(), line.PartidaCode)
		}
		if _, ok := seen[line.PartidaCode]; ok {
			return fmt.Errorf("%w: partida %s", ErrDuplicatePartida, line.PartidaCode)
		}
		seen[line.PartidaCode] = struct{}{}
		lineSum = lineSum.Add(line.Total)
	}

	if !lineSum.Equal(req.Total) {
		return fmt.Errorf("%w: lines sum to %s, header total is %s", ErrLineSumMismatch, lineSum.String(), req.Total.String())
	}
	return nil
}

// checkPartidas verifies that every referenced partida exists and is active
// in the voucher's direction. Any hierarchy level is acceptable.
func (s *voucherService) checkPartidas(ctx context.Context, req dto.CreateVoucherRequest) error {
	for _, line := range req.Lines {
		partida, err := s.partidaRepo.FindPartida(ctx, req.CompanyID, req.Direction, line.PartidaCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: partida %s-%s", apperrors.ErrNotFound, req.Direction, line.PartidaCode)
			}
			return fmt.Errorf("failed to look up partida %s: %w", line.PartidaCode, err)
		}
		if !partida.IsActive {
			return fmt.Errorf("%w: partida %s is inactive", apperrors.ErrValidation, line.PartidaCode)
		}
	}
	return nil
}

// CreateVoucher implements portssvc.VoucherSvcFacade.
func (s *voucherService) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, creatorUserID string) (*dto.CreateVoucherResponse, error) {
	now := time.Now().UTC()

	if err := s.validateStructure(req, now); err != nil {
		return nil, err
	}
	if err := s.checkPartidas(ctx, req); err != nil {
		return nil, err
	}

	// Advisory budget check: read-only, never blocks the save.
	candidates := make([]dto.CandidateLine, len(req.Lines))
	for i, line := range req.Lines {
		candidates[i] = dto.CandidateLine{PartidaCode: line.PartidaCode, Amount: line.Total}
	}
	validation, err := s.validationSvc.ValidateVoucher(ctx, dto.ValidateVoucherRequest{
		CompanyID: req.CompanyID,
		ProjectID: req.ProjectID,
		Lines:     candidates,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to run advisory budget validation", slog.String("project_id", req.ProjectID))
		return nil, fmt.Errorf("failed to run budget validation: %w", err)
	}

	voucherID := uuid.NewString()
	voucher := domain.Voucher{
		VoucherID:      voucherID,
		CompanyID:      req.CompanyID,
		CounterpartyID: req.CounterpartyID,
		ProjectID:      req.ProjectID,
		Direction:      req.Direction,
		VoucherDate:    *req.VoucherDate,
		Reference:      req.Reference,
		Net:            req.Net,
		Tax:            req.Tax,
		Total:          req.Total,
		PaidAmount:     decimal.Zero,
		State:          domain.VoucherRegistered,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	voucher.Lines = make([]domain.VoucherLine, len(req.Lines))
	for i, line := range req.Lines {
		voucher.Lines[i] = domain.VoucherLine{
			VoucherID:   voucherID,
			Sequence:    i + 1,
			PartidaCode: line.PartidaCode,
			Direction:   req.Direction,
			Net:         line.Net,
			Tax:         line.Tax,
			Total:       line.Total,
		}
	}

	if err := s.voucherRepo.SaveVoucher(ctx, voucher); err != nil {
		s.LogError(ctx, err, "Failed to save voucher", slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("failed to save voucher: %w", err)
	}

	// Refresh the project-wide alert set after the save so the caller sees
	// the post-insertion picture.
	alerts, err := s.alertSvc.GetProjectAlerts(ctx, req.CompanyID, req.ProjectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to refresh project alerts after voucher save", slog.String("project_id", req.ProjectID))
		return nil, fmt.Errorf("failed to refresh project alerts: %w", err)
	}

	s.LogInfo(ctx, "Voucher created",
		slog.String("voucher_id", voucherID),
		slog.String("project_id", req.ProjectID),
		slog.Bool("budget_warning", validation.ErrorMessage != ""))

	return &dto.CreateVoucherResponse{
		Voucher:       dto.ToVoucherResponse(&voucher),
		BudgetWarning: validation.ErrorMessage,
		Alerts:        dto.ToAlertResponses(alerts),
	}, nil
}

// GetVoucherByID implements portssvc.VoucherSvcFacade.
func (s *voucherService) GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find voucher", slog.String("voucher_id", voucherID))
		}
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}
	return voucher, nil
}

// RegisterAbono implements portssvc.VoucherSvcFacade. The paid amount and the
// state transition are committed as one atomic header update, and the state
// machine is monotonic: a voucher never regresses from fully paid.
func (s *voucherService) RegisterAbono(ctx context.Context, voucherID string, req dto.RegisterAbonoRequest, userID string) (*domain.Voucher, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: abono amount %s", ErrNonPositiveAmount, req.Amount.String())
	}

	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}

	switch voucher.State {
	case domain.VoucherVoided:
		return nil, ErrVoucherVoided
	case domain.VoucherFullyPaid:
		return nil, ErrVoucherFullyPaid
	}

	newPaid := voucher.PaidAmount.Add(req.Amount)
	if newPaid.GreaterThan(voucher.Total) {
		return nil, fmt.Errorf("%w: abono %s exceeds outstanding balance %s", apperrors.ErrValidation, req.Amount.String(), voucher.Outstanding().String())
	}

	newState := domain.VoucherPartiallyPaid
	if newPaid.Equal(voucher.Total) {
		newState = domain.VoucherFullyPaid
	}

	now := time.Now().UTC()
	abonoDate := now
	if req.AbonoDate != nil {
		abonoDate = *req.AbonoDate
	}
	abono := domain.Abono{
		VoucherID:   voucherID,
		Amount:      req.Amount,
		Description: req.Description,
		AbonoDate:   abonoDate,
	}

	if err := s.voucherRepo.UpdatePayment(ctx, voucherID, newPaid, newState, abono, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to register abono", slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("failed to register abono: %w", err)
	}

	voucher.PaidAmount = newPaid
	voucher.State = newState
	voucher.LastUpdatedAt = now
	voucher.LastUpdatedBy = userID

	s.LogInfo(ctx, "Abono registered",
		slog.String("voucher_id", voucherID),
		slog.String("state", string(newState)),
		slog.String("paid_amount", newPaid.String()))
	return voucher, nil
}

// VoidVoucher implements portssvc.VoucherSvcFacade. Voiding is allowed from
// Registered; voiding a paid voucher requires explicit confirmation, and a
// voided voucher cannot be voided again.
func (s *voucherService) VoidVoucher(ctx context.Context, voucherID string, confirm bool, userID string) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}

	if voucher.State == domain.VoucherVoided {
		return nil, fmt.Errorf("%w: voucher %s is already voided", apperrors.ErrConflict, voucherID)
	}
	if voucher.State != domain.VoucherRegistered && !confirm {
		return nil, ErrVoidNeedsConfirm
	}

	now := time.Now().UTC()
	if err := s.voucherRepo.MarkVoided(ctx, voucherID, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to void voucher", slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("failed to void voucher: %w", err)
	}

	voucher.State = domain.VoucherVoided
	voucher.LastUpdatedAt = now
	voucher.LastUpdatedBy = userID

	s.LogInfo(ctx, "Voucher voided", slog.String("voucher_id", voucherID))
	return voucher, nil
}
