package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amoura-app/amoura-backend/internal/config"
)

// DB owns the process-wide connection pool and supports replacing it at
// runtime. Repositories and the TxManager must fetch the current pool via
// Pool() on every call instead of holding onto a *pgxpool.Pool, so that a
// forced reconnect takes effect for subsequent requests.
type DB struct {
	cfg config.DatabaseConfig

	mu   sync.RWMutex
	pool *pgxpool.Pool
}

// NewDB establishes the initial connection pool.
func NewDB(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &DB{cfg: cfg, pool: pool}, nil
}

// Pool returns the current connection pool. The pool may have been closed
// by a concurrent Reconnect; queries against a closed pool fail fast with
// an error rather than hang.
func (db *DB) Pool() *pgxpool.Pool {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.pool
}

// Ping issues a round-trip to the database using the current pool.
func (db *DB) Ping(ctx context.Context) error {
	return db.Pool().Ping(ctx)
}

// Close releases the current pool. Safe to call once at shutdown.
func (db *DB) Close() {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.pool != nil {
		db.pool.Close()
	}
}

// Reconnect tears down the current pool and dials a fresh one:
// close, wait the configured settle interval, rebuild the pool (which
// pings), then run a trivial verification query.
//
// On failure at any step the error is returned and the old (already
// closed) pool stays in place, so in-flight and subsequent requests fail
// fast and the next health check reports the database as down. The
// operator retries.
func (db *DB) Reconnect(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.pool != nil {
		db.pool.Close()
	}

	if db.cfg.ReconnectWait > 0 {
		select {
		case <-time.After(db.cfg.ReconnectWait):
		case <-ctx.Done():
			return fmt.Errorf("reconnect interrupted: %w", ctx.Err())
		}
	}

	pool, err := NewPool(ctx, db.cfg)
	if err != nil {
		return fmt.Errorf("reconnect: %w", err)
	}

	var one int
	if err := pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		pool.Close()
		return fmt.Errorf("reconnect verification query: %w", err)
	}

	db.pool = pool
	return nil
}
