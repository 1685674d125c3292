package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
	portsrepo "github.com/obracontrol/budget_control_app/internal/core/ports/repositories"
	portssvc "github.com/obracontrol/budget_control_app/internal/core/ports/services"
)

// alertService enumerates a project's budgeted partidas, computes their
// availability and returns the non-green alerts sorted by severity.
type alertService struct {
	BaseService
	allocationRepo  portsrepo.AllocationReader
	availabilitySvc portssvc.AvailabilitySvcFacade
	ids             IDGenerator
}

// NewAlertService creates a new project alert aggregator.
func NewAlertService(allocationRepo portsrepo.AllocationReader, availabilitySvc portssvc.AvailabilitySvcFacade, ids IDGenerator) portssvc.AlertSvcFacade {
	return &alertService{
		allocationRepo:  allocationRepo,
		availabilitySvc: availabilitySvc,
		ids:             ids,
	}
}

var _ portssvc.AlertSvcFacade = (*alertService)(nil)

// GetProjectAlerts implements portssvc.AlertSvcFacade.
//
// Ordering contract: tier priority descending (Red, Orange, Yellow), then
// percent-executed descending, then partida code ascending so identical
// inputs always produce the same order.
func (s *alertService) GetProjectAlerts(ctx context.Context, companyID, projectID string) ([]domain.Alert, error) {
	allocations, err := s.allocationRepo.ListProjectAllocations(ctx, companyID, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to enumerate project allocations", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to enumerate allocations for project %s: %w", projectID, err)
	}

	// Deduplicate (direction, partida) pairs across budget versions.
	type pair struct {
		direction domain.Direction
		code      string
	}
	seen := make(map[pair]struct{}, len(allocations))
	now := time.Now().UTC()
	alerts := make([]domain.Alert, 0)

	for _, alloc := range allocations {
		p := pair{direction: alloc.Direction, code: alloc.PartidaCode}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}

		view, err := s.availabilitySvc.GetAvailabilityForDirection(ctx, companyID, projectID, alloc.Direction, alloc.PartidaCode)
		if err != nil {
			s.LogError(ctx, err, "Failed to compute availability for project alert", slog.String("partida_code", alloc.PartidaCode))
			return nil, fmt.Errorf("failed to compute availability for partida %s: %w", alloc.PartidaCode, err)
		}
		if view.Tier == domain.TierGreen {
			continue
		}

		alerts = append(alerts, domain.Alert{
			AlertID:         s.ids.NewID(),
			Severity:        SeverityForTier(view.Tier),
			Tier:            view.Tier,
			Message:         BuildAlertMessage(*view),
			PartidaCode:     view.PartidaCode,
			PercentExecuted: view.PercentExecuted,
			Allocated:       view.Allocated,
			Executed:        view.Executed,
			Available:       view.Available,
			GeneratedAt:     now,
		})
	}

	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].Tier.Priority() != alerts[j].Tier.Priority() {
			return alerts[i].Tier.Priority() > alerts[j].Tier.Priority()
		}
		if !alerts[i].PercentExecuted.Equal(alerts[j].PercentExecuted) {
			return alerts[i].PercentExecuted.GreaterThan(alerts[j].PercentExecuted)
		}
		return alerts[i].PartidaCode < alerts[j].PartidaCode
	})

	s.LogInfo(ctx, "Project alerts aggregated",
		slog.String("project_id", projectID),
		slog.Int("alert_count", len(alerts)))
	return alerts, nil
}
