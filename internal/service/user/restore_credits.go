package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amoura-app/amoura-backend/internal/domain"
	"github.com/amoura-app/amoura-backend/pkg/ctxutil"
)

// restoredCredits is the fixed balance a credit restore resets to.
const restoredCredits = 2

// RestoreCredits resets the authenticated user's credit balance to the
// fixed restore value. The operation is a full reset, not an increment,
// so repeated calls are idempotent.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) RestoreCredits(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.users.SetCredits(ctx, userID, restoredCredits); err != nil {
		return fmt.Errorf("user.RestoreCredits: %w", err)
	}

	s.log.InfoContext(ctx, "credits restored",
		slog.String("user_id", userID.String()),
		slog.Int("credits", restoredCredits),
	)

	return nil
}
