package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/obracontrol/budget_control_app/internal/apperrors"
	portsrepo "github.com/obracontrol/budget_control_app/internal/core/ports/repositories"
	portssvc "github.com/obracontrol/budget_control_app/internal/core/ports/services"
	"github.com/obracontrol/budget_control_app/internal/dto"
	"github.com/obracontrol/budget_control_app/internal/utils"
)

// ErrInvalidCredentials is returned for unknown users, inactive users and
// wrong passwords alike, to avoid leaking which part failed.
var ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)

// authService authenticates users and issues signed access tokens.
type authService struct {
	BaseService
	userRepo  portsrepo.UserReader
	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo portsrepo.UserReader, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		jwtIssuer: jwtIssuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login implements portssvc.AuthSvcFacade.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.IsActive || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.UserID, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.jwtExpiry.Seconds()),
		UserID:    user.UserID,
		Name:      user.Name,
	}, nil
}
