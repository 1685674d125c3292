package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/obracontrol/budget_control_app/internal/core/domain"
	portsrepo "github.com/obracontrol/budget_control_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type allocationRepository struct {
	BaseRepository
}

// NewAllocationRepository creates a new repository for budget allocations.
func NewAllocationRepository(pool *pgxpool.Pool) portsrepo.AllocationReader {
	return &allocationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AllocationReader = (*allocationRepository)(nil)

// ListAllocationAmounts returns every allocation row amount for the partida,
// across all budget versions and revision rows.
func (r *allocationRepository) ListAllocationAmounts(ctx context.Context, companyID, projectID string, direction domain.Direction, partidaCode string) ([]decimal.Decimal, error) {
	query := `
		SELECT amount
		FROM allocations
		WHERE company_id = $1 AND project_id = $2 AND direction = $3 AND partida_code = $4;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, projectID, direction, partidaCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query allocations for partida %s: %w", partidaCode, err)
	}
	defer rows.Close()

	amounts := make([]decimal.Decimal, 0)
	for rows.Next() {
		var amount decimal.Decimal
		if err := rows.Scan(&amount); err != nil {
			return nil, fmt.Errorf("failed to scan allocation amount: %w", err)
		}
		amounts = append(amounts, amount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate allocations: %w", err)
	}
	return amounts, nil
}

// ListProjectAllocations enumerates the aggregated allocation per distinct
// (direction, partida) pair of the project.
func (r *allocationRepository) ListProjectAllocations(ctx context.Context, companyID, projectID string) ([]domain.ProjectAllocation, error) {
	query := `
		SELECT direction, partida_code, SUM(amount) AS amount
		FROM allocations
		WHERE company_id = $1 AND project_id = $2
		GROUP BY direction, partida_code
		ORDER BY direction, partida_code;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query project allocations: %w", err)
	}
	defer rows.Close()

	allocations := make([]domain.ProjectAllocation, 0)
	for rows.Next() {
		var a domain.ProjectAllocation
		if err := rows.Scan(&a.Direction, &a.PartidaCode, &a.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan project allocation: %w", err)
		}
		allocations = append(allocations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate project allocations: %w", err)
	}
	return allocations, nil
}
