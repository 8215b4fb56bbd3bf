// Package redis wraps the shared Redis client used for response caching
// and the health probe.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/amoura-app/amoura-backend/internal/config"
)

// Cache is a thin wrapper over the shared Redis client.
//
// Construction never fails: Redis being down must not prevent the service
// from starting, it only degrades the health snapshot and disables
// read-through caching until the connection recovers. The client redials
// on demand.
type Cache struct {
	client *goredis.Client
}

// New creates the Redis client from config.
func New(cfg config.RedisConfig) *Cache {
	client := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})
	return &Cache{client: client}
}

// Ping issues a round-trip to Redis.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// GetJSON loads the value stored at key into dest.
// Returns (false, nil) on a cache miss.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores v at key with the given TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close releases the client's connections.
func (c *Cache) Close() error {
	return c.client.Close()
}
