package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/config"
	"github.com/amoura-app/amoura-backend/internal/domain"
)

//go:generate moq -out user_repo_mock_test.go -pkg auth . userRepo
//go:generate moq -out jwt_manager_mock_test.go -pkg auth . jwtManager

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// Service implements auth operations: registration, login, and bearer
// token validation for the middleware.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
	}
}

// ValidateToken verifies a bearer token and returns the user ID and role.
// Used by the auth middleware; invalid tokens surface as ErrUnauthorized.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, domain.Role, error) {
	userID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return userID, domain.Role(role), nil
}
