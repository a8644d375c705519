// Package cache provides a small key/value store used to memoize generated
// offer letters.
package cache

import (
	"context"
	"time"
)

// Store is the cache contract. Implementations must be safe for concurrent
// use.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
