package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/obracontrol/budget_control_app/internal/apperrors"
	"github.com/obracontrol/budget_control_app/internal/core/domain"
	portsrepo "github.com/obracontrol/budget_control_app/internal/core/ports/repositories"
	portssvc "github.com/obracontrol/budget_control_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// availabilityService computes the budget position of a partida: allocated,
// executed, available and percent-executed. It is read-only and recomputes
// from source records on every call.
type availabilityService struct {
	BaseService
	partidaRepo    portsrepo.PartidaReader
	allocationRepo portsrepo.AllocationReader
	executionRepo  portsrepo.ExecutionReader
}

// NewAvailabilityService creates a new availability calculator.
func NewAvailabilityService(partidaRepo portsrepo.PartidaReader, allocationRepo portsrepo.AllocationReader, executionRepo portsrepo.ExecutionReader) portssvc.AvailabilitySvcFacade {
	return &availabilityService{
		partidaRepo:    partidaRepo,
		allocationRepo: allocationRepo,
		executionRepo:  executionRepo,
	}
}

var _ portssvc.AvailabilitySvcFacade = (*availabilityService)(nil)

// resolvePartida determines the direction of a code by probing the catalog
// for an Expense entry first, falling back to Income. A code present in both
// directions resolves to Expense. An unknown code degrades to an Expense
// placeholder with a synthesized name rather than failing.
func (s *availabilityService) resolvePartida(ctx context.Context, companyID, code string) (domain.Direction, *domain.Partida, error) {
	partida, err := s.partidaRepo.FindPartida(ctx, companyID, domain.Expense, code)
	if err == nil {
		return domain.Expense, partida, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return domain.Expense, nil, fmt.Errorf("failed to probe expense partida %s: %w", code, err)
	}

	partida, err = s.partidaRepo.FindPartida(ctx, companyID, domain.Income, code)
	if err == nil {
		return domain.Income, partida, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return domain.Income, nil, fmt.Errorf("failed to probe income partida %s: %w", code, err)
	}

	return domain.Expense, nil, nil
}

// GetAvailability implements portssvc.AvailabilitySvcFacade.
func (s *availabilityService) GetAvailability(ctx context.Context, companyID, projectID, partidaCode string) (*domain.AvailabilityView, error) {
	direction, partida, err := s.resolvePartida(ctx, companyID, partidaCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve partida direction", slog.String("partida_code", partidaCode))
		return nil, err
	}
	return s.computeView(ctx, companyID, projectID, direction, partida, partidaCode)
}

// GetAvailabilityForDirection implements portssvc.AvailabilitySvcFacade.
func (s *availabilityService) GetAvailabilityForDirection(ctx context.Context, companyID, projectID string, direction domain.Direction, partidaCode string) (*domain.AvailabilityView, error) {
	partida, err := s.partidaRepo.FindPartida(ctx, companyID, direction, partidaCode)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to find partida", slog.String("partida_code", partidaCode))
		return nil, fmt.Errorf("failed to find partida %s: %w", partidaCode, err)
	}
	return s.computeView(ctx, companyID, projectID, direction, partida, partidaCode)
}

func (s *availabilityService) computeView(ctx context.Context, companyID, projectID string, direction domain.Direction, partida *domain.Partida, partidaCode string) (*domain.AvailabilityView, error) {
	name := fmt.Sprintf("Partida %s-%s", direction, partidaCode)
	if partida != nil {
		name = partida.Name
	}

	allocationAmounts, err := s.allocationRepo.ListAllocationAmounts(ctx, companyID, projectID, direction, partidaCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to list allocations", slog.String("partida_code", partidaCode), slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to list allocations for partida %s: %w", partidaCode, err)
	}
	allocated := decimal.Zero
	for _, a := range allocationAmounts {
		allocated = allocated.Add(a)
	}

	executionAmounts, err := s.executionRepo.ListExecutionAmounts(ctx, companyID, direction, partidaCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to list execution records", slog.String("partida_code", partidaCode))
		return nil, fmt.Errorf("failed to list execution records for partida %s: %w", partidaCode, err)
	}
	executed := decimal.Zero
	for _, e := range executionAmounts {
		executed = executed.Add(e)
	}

	view := &domain.AvailabilityView{
		PartidaCode:     partidaCode,
		Name:            name,
		Direction:       direction,
		Allocated:       allocated,
		Executed:        executed,
		Available:       allocated.Sub(executed),
		PercentExecuted: percentExecuted(allocated, executed),
	}
	view.Tier = domain.TierForPercent(view.PercentExecuted)

	s.LogDebug(ctx, "Availability computed",
		slog.String("partida_code", partidaCode),
		slog.String("tier", string(view.Tier)),
		slog.String("available", view.Available.String()))
	return view, nil
}

// percentExecuted returns executed/allocated*100 rounded to two decimals
// half-up, or zero when nothing is allocated.
func percentExecuted(allocated, executed decimal.Decimal) decimal.Decimal {
	if allocated.IsZero() {
		return decimal.Zero
	}
	return executed.Div(allocated).Mul(oneHundred).Round(2)
}
