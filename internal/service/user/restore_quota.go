package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amoura-app/amoura-backend/internal/domain"
	"github.com/amoura-app/amoura-backend/pkg/ctxutil"
)

// RestoreQuota compensates a single consumed generation: quota gains one
// unit and the usage counter loses one, applied in one database
// transaction so no reader ever observes a half-applied pair.
//
// Unlike RestoreCredits this is deliberately NOT idempotent: each call
// shifts both balances by one unit, so callers must invoke it exactly
// once per compensated usage event.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) RestoreQuota(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.users.AddQuota(ctx, userID, 1); err != nil {
			return fmt.Errorf("add quota: %w", err)
		}
		if err := s.users.AddTotalUsage(ctx, userID, -1); err != nil {
			return fmt.Errorf("decrement usage: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("user.RestoreQuota: %w", err)
	}

	s.log.InfoContext(ctx, "quota restored",
		slog.String("user_id", userID.String()),
	)

	return nil
}
