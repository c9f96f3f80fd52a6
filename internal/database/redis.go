package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adamanr/hrdesk/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisConn connects the token store and fails when it does not answer a ping.
func NewRedisConn(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.RedisAddr,
		Password: cfg.Redis.RedisPassword,
		DB:       cfg.Redis.RedisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", slog.String("addr", cfg.Redis.RedisAddr), slog.String("error", err.Error()))
		_ = rdb.Close()
		return nil, fmt.Errorf("redis %s: %w", cfg.Redis.RedisAddr, err)
	}

	logger.Info("Successfully connected to Redis", slog.String("addr", cfg.Redis.RedisAddr), slog.Int("db", cfg.Redis.RedisDB))

	return rdb, nil
}

// Ready reports the server as ready only while both Postgres and the Redis
// token store answer.
type Ready struct {
	Postgres interface {
		Ping(ctx context.Context) error
	}
	Redis redis.Cmdable
}

func (r Ready) Ping(ctx context.Context) error {
	if err := r.Postgres.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}

	if err := r.Redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}

	return nil
}
