package billing

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

//go:generate moq -out transaction_repo_mock_test.go -pkg billing . transactionRepo

// listCacheTTL bounds staleness of the cached transaction list.
// Transactions are written append-only by the payment webhook, so a short
// read-through cache never hides a mutation made through this service.
const listCacheTTL = 30 * time.Second

// transactionRepo defines the repository interface needed by billing service.
type transactionRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Transaction, error)
}

// listCache defines the optional read-through cache for transaction lists.
type listCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
}

// Service provides read access to a user's payment history.
type Service struct {
	log          *slog.Logger
	transactions transactionRepo
	cache        listCache
}

// NewService creates a new billing service instance.
// cache may be nil; listing then always goes to the database.
func NewService(
	logger *slog.Logger,
	transactions transactionRepo,
	cache listCache,
) *Service {
	return &Service{
		log:          logger.With("service", "billing"),
		transactions: transactions,
		cache:        cache,
	}
}
