package common

import "time"

// CacheInterface is what the dashboard and upload handlers cache through;
// satisfied by the in-memory service and the Redis-backed one.
type CacheInterface interface {
	// Set stores a value under key for the given duration
	Set(key string, value interface{}, duration time.Duration)

	// Get returns the value and true when the key is present
	Get(key string) (interface{}, bool)

	// Delete drops the key; used to invalidate after an upload
	Delete(key string)

	// GetOrSet returns the cached value, or runs loader and caches its result
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases any underlying connection (Redis)
	Close() error
}
