package letter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
	"github.com/amoura-app/amoura-backend/pkg/ctxutil"
)

// Save persists a generated letter for the authenticated user and
// returns the stored record in full.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.Letter, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	letter, err := s.letters.Create(ctx, &domain.Letter{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   strings.TrimSpace(input.Content),
		ImageURL:  strings.TrimSpace(input.ImageURL),
		Prompt:    strings.TrimSpace(input.Prompt),
		Language:  trimOrNil(input.Language),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("save letter: %w", err)
	}

	s.log.InfoContext(ctx, "letter saved",
		slog.String("user_id", userID.String()),
		slog.String("letter_id", letter.ID.String()),
	)

	return letter, nil
}
