package config

import (
	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a pooled client for cfg. Connections are dialed
// lazily, so an unreachable server surfaces on the first command rather than
// here. Retries are disabled: each command is exactly one round trip.
// Context deadlines and cancellation bound every command, so the lookup
// timeout wins over the longer socket timeouts.
func NewRedisClient(cfg RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		MaxRetries:   -1,

		ContextTimeoutEnabled: true,
	})
}
