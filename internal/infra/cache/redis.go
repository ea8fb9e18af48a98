package cache

import (
	"context"
	"log/slog"
	"time"

	"gym-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when Redis is not configured or unreachable;
// callers degrade by skipping rate limiting.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis unreachable, rate limiting disabled", "addr", cfg.Addr, "error", err.Error())
		_ = client.Close()
		return nil
	}
	return client
}
