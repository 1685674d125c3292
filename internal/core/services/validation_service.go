package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
	portssvc "github.com/obracontrol/budget_control_app/internal/core/ports/services"
	"github.com/obracontrol/budget_control_app/internal/dto"
)

// EnforcementPolicy decides whether a validated voucher may proceed. The
// production policy is advisory: overruns are reported but never block. A
// hard-blocking policy can be swapped in without touching the calculator or
// the classifier.
type EnforcementPolicy interface {
	Allow(lines []dto.LineValidation) bool
}

// AdvisoryPolicy reports budget overruns without blocking the voucher.
type AdvisoryPolicy struct{}

// Allow always returns true: budget control is informational.
func (AdvisoryPolicy) Allow([]dto.LineValidation) bool {
	return true
}

// validationService orchestrates the per-line budget check of a candidate
// voucher. It performs no writes and is safe to call speculatively before the
// voucher is persisted.
type validationService struct {
	BaseService
	availabilitySvc portssvc.AvailabilitySvcFacade
	policy          EnforcementPolicy
	ids             IDGenerator
}

// NewValidationService creates a new validation orchestrator.
func NewValidationService(availabilitySvc portssvc.AvailabilitySvcFacade, policy EnforcementPolicy, ids IDGenerator) portssvc.ValidationSvcFacade {
	return &validationService{
		availabilitySvc: availabilitySvc,
		policy:          policy,
		ids:             ids,
	}
}

var _ portssvc.ValidationSvcFacade = (*validationService)(nil)

// ValidateVoucher implements portssvc.ValidationSvcFacade.
func (s *validationService) ValidateVoucher(ctx context.Context, req dto.ValidateVoucherRequest) (*dto.ValidationResponse, error) {
	now := time.Now().UTC()
	lines := make([]dto.LineValidation, 0, len(req.Lines))
	alerts := make([]dto.AlertResponse, 0)
	exceededMessages := make([]string, 0)

	for _, candidate := range req.Lines {
		view, err := s.availabilitySvc.GetAvailability(ctx, req.CompanyID, req.ProjectID, candidate.PartidaCode)
		if err != nil {
			s.LogError(ctx, err, "Failed to compute availability for candidate line", slog.String("partida_code", candidate.PartidaCode))
			return nil, fmt.Errorf("failed to validate line for partida %s: %w", candidate.PartidaCode, err)
		}

		projectedExecuted := view.Executed.Add(candidate.Amount)
		projectedAvailable := view.Allocated.Sub(projectedExecuted)
		projectedPercent := percentExecuted(view.Allocated, projectedExecuted)
		tier := domain.TierForPercent(projectedPercent)
		exceeded := projectedAvailable.IsNegative()

		lines = append(lines, dto.LineValidation{
			PartidaCode:      candidate.PartidaCode,
			Name:             view.Name,
			Allocated:        view.Allocated,
			Executed:         view.Executed,
			Available:        view.Available,
			RequestedAmount:  candidate.Amount,
			ProjectedPercent: projectedPercent,
			Tier:             string(tier),
			Exceeded:         exceeded,
		})

		if exceeded {
			exceededMessages = append(exceededMessages, fmt.Sprintf(
				"partida %s would exceed its budget by %s (allocated %s, projected execution %s)",
				view.Name, projectedAvailable.Neg().StringFixed(2), view.Allocated.StringFixed(2), projectedExecuted.StringFixed(2)))
		}

		if tier != domain.TierGreen {
			projectedView := domain.AvailabilityView{
				PartidaCode:     candidate.PartidaCode,
				Name:            view.Name,
				Direction:       view.Direction,
				Allocated:       view.Allocated,
				Executed:        projectedExecuted,
				Available:       projectedAvailable,
				PercentExecuted: projectedPercent,
				Tier:            tier,
			}
			alerts = append(alerts, dto.ToAlertResponse(domain.Alert{
				AlertID:         s.ids.NewID(),
				Severity:        SeverityForTier(tier),
				Tier:            tier,
				Message:         BuildAlertMessage(projectedView),
				PartidaCode:     candidate.PartidaCode,
				PercentExecuted: projectedPercent,
				Allocated:       view.Allocated,
				Executed:        projectedExecuted,
				Available:       projectedAvailable,
				GeneratedAt:     now,
			}))
		}
	}

	resp := &dto.ValidationResponse{
		Valid:  s.policy.Allow(lines),
		Lines:  lines,
		Alerts: alerts,
	}
	if len(exceededMessages) > 0 {
		resp.ErrorMessage = strings.Join(exceededMessages, "; ")
	}

	s.LogInfo(ctx, "Voucher budget validation completed",
		slog.String("project_id", req.ProjectID),
		slog.Int("line_count", len(lines)),
		slog.Int("exceeded_count", len(exceededMessages)))
	return resp, nil
}
