package services

import (
	"context"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
	"github.com/obracontrol/budget_control_app/internal/dto"
)

// AvailabilitySvcFacade computes the derived budget position of a partida.
// Computation never fails for missing data: unknown partidas degrade to a
// zero-valued view.
type AvailabilitySvcFacade interface {
	// GetAvailability resolves the partida direction by probing the catalog
	// for an Expense entry first, falling back to Income.
	GetAvailability(ctx context.Context, companyID, projectID, partidaCode string) (*domain.AvailabilityView, error)

	// GetAvailabilityForDirection computes the view for a known direction,
	// avoiding the Expense-first probe when the caller already knows which
	// side of the budget it is on.
	GetAvailabilityForDirection(ctx context.Context, companyID, projectID string, direction domain.Direction, partidaCode string) (*domain.AvailabilityView, error)
}

// ValidationSvcFacade runs the advisory budget check over candidate voucher
// lines. The call is read-only and safe to issue speculatively before a
// voucher is persisted.
type ValidationSvcFacade interface {
	ValidateVoucher(ctx context.Context, req dto.ValidateVoucherRequest) (*dto.ValidationResponse, error)
}

// AlertSvcFacade produces the sorted, deduplicated, non-green alert set of a
// project.
type AlertSvcFacade interface {
	GetProjectAlerts(ctx context.Context, companyID, projectID string) ([]domain.Alert, error)
}
