// Package redisdedup implements the processed set on Redis, letting multiple
// consumer instances share one view of which correlation identifiers were
// already handled. Entries carry a TTL: after it expires the duplicate check
// falls back to the order status in the store.
package redisdedup

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long processed correlation ids are remembered when no
// TTL is given.
const DefaultTTL = 24 * time.Hour

const keyPrefix = "ordertrack:processed:"

// Set is a Redis implementation of ports.ProcessedSet.
type Set struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSet creates a processed set on the given Redis client.
// A non-positive ttl falls back to DefaultTTL.
func NewSet(rdb *redis.Client, ttl time.Duration) *Set {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Set{rdb: rdb, ttl: ttl}
}

// Contains reports whether the correlation id was already processed.
func (s *Set) Contains(ctx context.Context, correlationID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, keyPrefix+correlationID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Add marks the correlation id as processed for the configured TTL.
func (s *Set) Add(ctx context.Context, correlationID string) error {
	return s.rdb.Set(ctx, keyPrefix+correlationID, "1", s.ttl).Err()
}
