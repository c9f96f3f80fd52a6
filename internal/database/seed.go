package database

import (
	"context"
	"errors"
	"log/slog"

	"github.com/adamanr/hrdesk/internal/config"
	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// SeedHR makes sure the configured HR account exists so a fresh install can log in.
// Existing accounts are left alone.
func SeedHR(ctx context.Context, db Executor, cfg *config.Config, logger *slog.Logger) error {
	email := cfg.Database.SeedHREmail
	if email == "" || cfg.Database.SeedHRPassword == "" {
		return nil
	}

	var id uint64
	err := db.QueryRow(ctx, "SELECT employee_id FROM employees WHERE email = $1", email).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Database.SeedHRPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err = db.Exec(ctx,
		`INSERT INTO employees (first_name, last_name, email, job_name, role, active, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		"HR", "Administrator", email, "HR manager", entity.RoleHR, entity.ActiveYes, string(hash),
	); err != nil {
		return err
	}

	logger.Info("HR account seeded", slog.String("email", email))
	return nil
}
