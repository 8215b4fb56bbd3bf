// Package letter implements the Letter repository using PostgreSQL.
package letter

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/amoura-app/amoura-backend/internal/adapter/postgres"
	"github.com/amoura-app/amoura-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const letterColumns = "id, user_id, content, image_url, prompt, language, created_at"

// Repo provides letter persistence backed by PostgreSQL.
type Repo struct {
	db *postgres.DB
}

// New creates a new letter repository.
func New(db *postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a new letter and returns the persisted domain.Letter.
func (r *Repo) Create(ctx context.Context, l *domain.Letter) (*domain.Letter, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert("letters").
		Columns("id", "user_id", "content", "image_url", "prompt", "language", "created_at").
		Values(l.ID, l.UserID, l.Content, l.ImageURL, l.Prompt, l.Language, l.CreatedAt).
		Suffix("RETURNING " + letterColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build letter insert: %w", err)
	}

	created, err := scanLetter(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "letter", l.ID)
	}

	return created, nil
}

// GetByID returns a letter by primary key.
// Returns domain.ErrNotFound if the letter does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, letterID uuid.UUID) (*domain.Letter, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(letterColumns).
		From("letters").
		Where(squirrel.Eq{"id": letterID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build letter select: %w", err)
	}

	l, err := scanLetter(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "letter", letterID)
	}

	return l, nil
}

// ListByUser returns letters ordered by created_at DESC with pagination.
// Returns letters, total count, and error. An empty result is a valid
// outcome: empty slice, totalCount 0, nil error.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Letter, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := qb.Select("count(*)").
		From("letters").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build letters count: %w", err)
	}

	var totalCount int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("count letters: %w", err)
	}

	sql, args, err := qb.Select(letterColumns).
		From("letters").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build letters select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list letters: %w", err)
	}
	defer rows.Close()

	letters := make([]*domain.Letter, 0, limit)
	for rows.Next() {
		l, err := scanLetter(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan letter: %w", err)
		}
		letters = append(letters, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate letters: %w", err)
	}

	return letters, totalCount, nil
}

func scanLetter(row pgx.Row) (*domain.Letter, error) {
	var l domain.Letter
	err := row.Scan(&l.ID, &l.UserID, &l.Content, &l.ImageURL, &l.Prompt, &l.Language, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
