package letter

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

//go:generate moq -out letter_repo_mock_test.go -pkg letter . letterRepo

const (
	// DefaultLimit is the page size when the caller does not provide one.
	DefaultLimit = 20
	// MaxLimit bounds a single listing page.
	MaxLimit = 100
)

// letterRepo defines the letter repository interface needed by letter service.
type letterRepo interface {
	Create(ctx context.Context, l *domain.Letter) (*domain.Letter, error)
	GetByID(ctx context.Context, userID, letterID uuid.UUID) (*domain.Letter, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Letter, int, error)
}

// Service provides letter persistence operations.
type Service struct {
	log     *slog.Logger
	letters letterRepo
}

// NewService creates a new letter service instance.
func NewService(
	logger *slog.Logger,
	letters letterRepo,
) *Service {
	return &Service{
		log:     logger.With("service", "letter"),
		letters: letters,
	}
}
