package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"salon-booking/internal/pkg/errs"
)

// Backend is the key-value contract shared by the Redis and in-process
// stores. Values are raw bytes; callers decide the serialization. Get
// reports a miss with found=false, never an error.
type Backend interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Cache is a read-through layer over a Backend. A backend failure is never
// surfaced to readers: GetOrCompute falls back to the fetch function and
// Invalidate logs and swallows, since a lost invalidation only risks serving
// stale data for the remaining TTL.
type Cache struct {
	backend Backend
	logger  *slog.Logger
}

func New(backend Backend, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{backend: backend, logger: logger}
}

// GetOrCompute returns the live cached value for key, or invokes fetch,
// stores the result under key with the given TTL, and returns it.
//
// Concurrent misses for the same key are not coalesced: each caller invokes
// fetch independently and the last write wins. Known limitation carried over
// from the original system.
func GetOrCompute[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	raw, found, err := c.backend.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache get failed, falling back to fetch", "key", key, "error", err)
	} else if found {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		c.logger.Warn("cache entry undecodable, refetching", "key", key)
	}

	value, err := fetch(ctx)
	if err != nil {
		return zero, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return zero, errs.Wrap(err, "failed to encode cache value")
	}
	if err := c.backend.Set(ctx, key, encoded, ttl); err != nil {
		c.logger.Warn("cache set failed", "key", key, "error", err)
	}

	return value, nil
}

// Invalidate removes the entry for key. Invalidating a missing key is a
// no-op.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if err := c.backend.Delete(ctx, key); err != nil {
		c.logger.Warn("cache invalidation failed", "key", key, "error", err)
	}
}

// InvalidateMany removes a set of keys, used after writes that affect
// multiple cached reads.
func (c *Cache) InvalidateMany(ctx context.Context, keys ...string) {
	for _, key := range keys {
		c.Invalidate(ctx, key)
	}
}
