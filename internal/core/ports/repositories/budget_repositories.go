package repositories

import (
	"context"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PartidaReader provides read-only access to the budget-line catalog.
type PartidaReader interface {
	// FindPartida returns the partida for (company, direction, code) or
	// apperrors.ErrNotFound when absent.
	FindPartida(ctx context.Context, companyID string, direction domain.Direction, code string) (*domain.Partida, error)
}

// AllocationReader provides read-only access to persisted budget allocations.
type AllocationReader interface {
	// ListAllocationAmounts returns every allocation row amount for the given
	// (company, project, direction, partida), across all budget versions.
	ListAllocationAmounts(ctx context.Context, companyID, projectID string, direction domain.Direction, partidaCode string) ([]decimal.Decimal, error)

	// ListProjectAllocations enumerates the aggregated allocation per distinct
	// (direction, partida) pair referenced by the project's budget.
	ListProjectAllocations(ctx context.Context, companyID, projectID string) ([]domain.ProjectAllocation, error)
}

// ExecutionReader provides read-only access to posted voucher lines. Lines of
// voided vouchers are excluded.
type ExecutionReader interface {
	ListExecutionAmounts(ctx context.Context, companyID string, direction domain.Direction, partidaCode string) ([]decimal.Decimal, error)
}

// MonthlyPlanReader provides read-only access to the calendar-based
// budgeted-vs-actual plan.
type MonthlyPlanReader interface {
	GetMonthlyPlanCells(ctx context.Context, companyID, projectID string, year int, direction domain.Direction) ([]domain.MonthlyPlanCell, error)
}
