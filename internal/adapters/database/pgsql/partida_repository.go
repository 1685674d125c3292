package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/obracontrol/budget_control_app/internal/apperrors"
	"github.com/obracontrol/budget_control_app/internal/core/domain"
	portsrepo "github.com/obracontrol/budget_control_app/internal/core/ports/repositories"
)

type partidaRepository struct {
	BaseRepository
}

// NewPartidaRepository creates a new repository for the budget-line catalog.
func NewPartidaRepository(pool *pgxpool.Pool) portsrepo.PartidaReader {
	return &partidaRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartidaReader = (*partidaRepository)(nil)

// FindPartida retrieves one catalog entry by its natural key.
func (r *partidaRepository) FindPartida(ctx context.Context, companyID string, direction domain.Direction, code string) (*domain.Partida, error) {
	query := `
		SELECT company_id, direction, code, name, level, parent_code, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM partidas
		WHERE company_id = $1 AND direction = $2 AND code = $3;
	`
	var p domain.Partida
	err := r.Pool.QueryRow(ctx, query, companyID, direction, code).Scan(
		&p.CompanyID,
		&p.Direction,
		&p.Code,
		&p.Name,
		&p.Level,
		&p.ParentCode,
		&p.IsActive,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find partida %s-%s: %w", direction, code, err)
	}
	return &p, nil
}
