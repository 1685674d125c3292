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

type userRepository struct {
	BaseRepository
}

// NewUserRepository creates a new read-only repository for API users.
func NewUserRepository(pool *pgxpool.Pool) portsrepo.UserReader {
	return &userRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserReader = (*userRepository)(nil)

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT user_id, username, name, password_hash, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM users
		WHERE username = $1 AND is_active = TRUE;
	`
	var u domain.User
	err := r.Pool.QueryRow(ctx, query, username).Scan(
		&u.UserID,
		&u.Username,
		&u.Name,
		&u.PasswordHash,
		&u.IsActive,
		&u.CreatedAt,
		&u.CreatedBy,
		&u.LastUpdatedAt,
		&u.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return &u, nil
}
