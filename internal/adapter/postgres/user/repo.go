// Package user implements the User repository using PostgreSQL.
// It owns the users table, including the credit and quota balances.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/amoura-app/amoura-backend/internal/adapter/postgres"
	"github.com/amoura-app/amoura-backend/internal/domain"
)

// qb builds queries with PostgreSQL placeholders ($1, $2, ...).
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var userColumns = []string{
	"id", "email", "name", "password_hash", "role",
	"credits", "quota", "total_usage", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db *postgres.DB
}

// New creates a new user repository.
func New(db *postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user select: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user select: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Insert("users").
		Columns(userColumns...).
		Values(u.ID, u.Email, u.Name, u.PasswordHash, u.Role.String(),
			u.Credits, u.Quota, u.TotalUsage, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user insert: %w", err)
	}

	created, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return created, nil
}

// SetCredits sets the credit balance to an absolute value.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) SetCredits(ctx context.Context, userID uuid.UUID, credits int) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Update("users").
		Set("credits", credits).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build credits update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}

	return nil
}

// AddQuota shifts the remaining quota by delta (may be negative).
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) AddQuota(ctx context.Context, userID uuid.UUID, delta int) error {
	return r.addBalance(ctx, userID, "quota", delta)
}

// AddTotalUsage shifts the usage counter by delta (may be negative).
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) AddTotalUsage(ctx context.Context, userID uuid.UUID, delta int) error {
	return r.addBalance(ctx, userID, "total_usage", delta)
}

func (r *Repo) addBalance(ctx context.Context, userID uuid.UUID, column string, delta int) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Update("users").
		Set(column, squirrel.Expr(column+" + ?", delta)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s update: %w", column, err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

func columnList() string {
	s := userColumns[0]
	for _, c := range userColumns[1:] {
		s += ", " + c
	}
	return s
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &role,
		&u.Credits, &u.Quota, &u.TotalUsage, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	return &u, nil
}
