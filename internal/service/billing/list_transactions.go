package billing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
	"github.com/amoura-app/amoura-backend/pkg/ctxutil"
)

// ListTransactions returns all transactions belonging to the
// authenticated user, most recent first. An empty history is a valid,
// successful outcome.
//
// Results are served from the read-through cache when fresh; cache
// failures are logged and fall back to the database.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) ListTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	cacheKey := listCacheKey(userID)

	if s.cache != nil {
		var cached []*domain.Transaction
		hit, err := s.cache.GetJSON(ctx, cacheKey, &cached)
		if err != nil {
			s.log.DebugContext(ctx, "transaction cache read failed",
				slog.String("error", err.Error()))
		} else if hit {
			return cached, nil
		}
	}

	txs, err := s.transactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKey, txs, listCacheTTL); err != nil {
			s.log.DebugContext(ctx, "transaction cache write failed",
				slog.String("error", err.Error()))
		}
	}

	return txs, nil
}

func listCacheKey(userID uuid.UUID) string {
	return "billing:transactions:" + userID.String()
}
