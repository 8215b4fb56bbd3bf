// Package billing implements read access to payment transactions.
// Transaction rows are written by the payment webhook outside this
// service; the repository only lists them for the owning user.
package billing

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/amoura-app/amoura-backend/internal/adapter/postgres"
	"github.com/amoura-app/amoura-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides transaction reads backed by PostgreSQL.
type Repo struct {
	db *postgres.DB
}

// New creates a new billing repository.
func New(db *postgres.DB) *Repo {
	return &Repo{db: db}
}

// ListByUser returns all transactions belonging to the user, most recent
// first. An empty result is a valid outcome: empty slice, nil error.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Transaction, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := qb.Select(
		"id", "user_id", "amount", "currency", "status",
		"type", "external_order_id", "points_added", "created_at",
	).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build transactions select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]*domain.Transaction, 0)
	for rows.Next() {
		var (
			tx     domain.Transaction
			status string
		)
		err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Amount, &tx.Currency, &status,
			&tx.Type, &tx.ExternalOrderID, &tx.PointsAdded, &tx.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Status = domain.TransactionStatus(status)
		txs = append(txs, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return txs, nil
}
