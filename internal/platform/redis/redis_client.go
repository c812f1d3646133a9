package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"chusu_backend/internal/config"
)

// NewRedisClient connects to Redis using the configured address.
// The server treats the cache as optional: callers fall back to an
// uncached path when this returns an error.
func NewRedisClient(cfg config.Redis) (*redis.Client, error) {
	addr := cfg.Addr()

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	// 接続確認
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
