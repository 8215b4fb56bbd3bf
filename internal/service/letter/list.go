package letter

import (
	"context"
	"fmt"

	"github.com/amoura-app/amoura-backend/internal/domain"
	"github.com/amoura-app/amoura-backend/pkg/ctxutil"
)

// List returns a page of the authenticated user's letters, newest first.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Letter, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	letters, totalCount, err := s.letters.ListByUser(ctx, userID, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list letters: %w", err)
	}

	return letters, totalCount, nil
}

// Get returns a single letter owned by the authenticated user.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Get(ctx context.Context, input GetInput) (*domain.Letter, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	letter, err := s.letters.GetByID(ctx, userID, input.LetterID)
	if err != nil {
		return nil, fmt.Errorf("get letter: %w", err)
	}

	return letter, nil
}
