package services

import (
	"context"

	"github.com/obracontrol/budget_control_app/internal/dto"
)

// AuthSvcFacade authenticates users and issues access tokens.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
