package user

import (
	"context"
	"fmt"

	"github.com/amoura-app/amoura-backend/internal/domain"
	"github.com/amoura-app/amoura-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile with balances.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}
