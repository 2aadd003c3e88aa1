package repository

import (
	"context"
	"time"
)

// CacheRepository is a byte-blob cache with TTL semantics.
type CacheRepository interface {
	// Get returns the cached value or (nil, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes the key.
	Delete(ctx context.Context, key string) error
}
