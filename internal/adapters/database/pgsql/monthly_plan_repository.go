package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/obracontrol/budget_control_app/internal/core/domain"
	portsrepo "github.com/obracontrol/budget_control_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type monthlyPlanRepository struct {
	BaseRepository
}

// NewMonthlyPlanRepository creates a new repository for the calendar-based
// budgeted-vs-actual plan.
func NewMonthlyPlanRepository(pool *pgxpool.Pool) portsrepo.MonthlyPlanReader {
	return &monthlyPlanRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MonthlyPlanReader = (*monthlyPlanRepository)(nil)

// GetMonthlyPlanCells reads every plan cell of one project/year/direction.
// The twelve monthly amounts are stored as array columns, keeping the
// per-month values and their totals impossible to desync.
func (r *monthlyPlanRepository) GetMonthlyPlanCells(ctx context.Context, companyID, projectID string, year int, direction domain.Direction) ([]domain.MonthlyPlanCell, error) {
	query := `
		SELECT year, company_id, project_id, direction, partida_code, budgeted::text[], actual::text[], opening
		FROM monthly_plan_cells
		WHERE company_id = $1 AND project_id = $2 AND year = $3 AND direction = $4
		ORDER BY partida_code;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, projectID, year, direction)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly plan cells: %w", err)
	}
	defer rows.Close()

	cells := make([]domain.MonthlyPlanCell, 0)
	for rows.Next() {
		var cell domain.MonthlyPlanCell
		var budgeted, actual []string
		if err := rows.Scan(&cell.Year, &cell.CompanyID, &cell.ProjectID, &cell.Direction, &cell.PartidaCode, &budgeted, &actual, &cell.Opening); err != nil {
			return nil, fmt.Errorf("failed to scan monthly plan cell: %w", err)
		}
		if len(budgeted) != domain.MonthsPerYear || len(actual) != domain.MonthsPerYear {
			return nil, fmt.Errorf("monthly plan cell for partida %s does not hold twelve months", cell.PartidaCode)
		}
		for i := 0; i < domain.MonthsPerYear; i++ {
			if cell.Budgeted[i], err = decimal.NewFromString(budgeted[i]); err != nil {
				return nil, fmt.Errorf("failed to parse budgeted amount %q: %w", budgeted[i], err)
			}
			if cell.Actual[i], err = decimal.NewFromString(actual[i]); err != nil {
				return nil, fmt.Errorf("failed to parse actual amount %q: %w", actual[i], err)
			}
		}
		cells = append(cells, cell)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly plan cells: %w", err)
	}
	return cells, nil
}
