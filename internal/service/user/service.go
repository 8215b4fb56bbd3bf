package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

//go:generate moq -out user_repo_mock_test.go -pkg user . userRepo
//go:generate moq -out tx_manager_mock_test.go -pkg user . txManager

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetCredits(ctx context.Context, userID uuid.UUID, credits int) error
	AddQuota(ctx context.Context, userID uuid.UUID, delta int) error
	AddTotalUsage(ctx context.Context, userID uuid.UUID, delta int) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements profile reads and balance restore operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	tx    txManager
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tx txManager,
) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		tx:    tx,
	}
}
