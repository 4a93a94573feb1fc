package cache

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks teamhub/internal/cache Cache

// Cache stores JSON-encoded values under string keys with a TTL.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get decodes the value at key into dest. The bool is false on a miss.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}

var _ Cache = (*Redis)(nil)
