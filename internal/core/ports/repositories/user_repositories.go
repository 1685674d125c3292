package repositories

import (
	"context"

	"github.com/obracontrol/budget_control_app/internal/core/domain"
)

// UserReader provides read-only access to API users for authentication.
type UserReader interface {
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
