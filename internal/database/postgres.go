package database

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/adamanr/hrdesk/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnString builds the pgx URL; user and password are percent-encoded.
func ConnString(cfg *config.Config) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.Database.User, cfg.Database.Password),
		Host:   cfg.Database.Host,
		Path:   "/" + cfg.Database.Database,
	}

	return u.String()
}

func NewPool(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(ConnString(cfg))
	if err != nil {
		logger.Error("Error parsing DB config", slog.String("error", err.Error()))
		return nil, err
	}

	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConns = cfg.Database.MaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Error connecting to DB", slog.String("error", err.Error()))
		return nil, err
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Error("Error pinging DB", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Connected to DB successfully", slog.String("host", cfg.Database.Host))
	return pool, nil
}
