package common

import (
	"time"

	"github.com/redis/go-redis/v9"

	"skyops/crewboard/internal/config"
	"skyops/crewboard/internal/logging"
)

// NewRedisClient builds the shared Redis client. Connection health is the
// caller's concern; the pool reconnects on its own.
func NewRedisClient(cfg *config.Config) *redis.Client {
	logging.Info("Initializing Redis client", "addr", cfg.RedisAddr)

	return redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})
}
