package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/complaint-portal/internal/auth"
	"github.com/spec-kit/complaint-portal/internal/config"
	"github.com/spec-kit/complaint-portal/internal/domain"
)

const schema = `
CREATE TABLE users (
    id            BIGSERIAL PRIMARY KEY,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'citizen',
    region        TEXT NOT NULL DEFAULT ''
);

CREATE TABLE complaints (
    id           BIGSERIAL PRIMARY KEY,
    owner_id     BIGINT NOT NULL REFERENCES users(id),
    department   TEXT NOT NULL,
    region       TEXT NOT NULL,
    description  TEXT NOT NULL,
    status       TEXT NOT NULL DEFAULT 'Pending',
    submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX complaints_owner_idx ON complaints (owner_id, submitted_at DESC);
CREATE INDEX complaints_department_idx ON complaints (department);
CREATE INDEX complaints_region_idx ON complaints (region);
`

// Bootstrap initializes the store exactly once: it creates the schema and
// seeds the default admin account. An already-initialized store is left
// untouched. The schema DDL and the admin insert run in one transaction so a
// partial bootstrap never survives.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool, cfg config.Config, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping bootstrap")
		return nil
	}

	var usersTable *string
	if err := pool.QueryRow(ctx, `SELECT to_regclass('public.users')::text`).Scan(&usersTable); err != nil {
		return fmt.Errorf("check store initialization: %w", err)
	}
	if usersTable != nil {
		logger.Info("store already initialized; skipping bootstrap")
		return nil
	}

	adminHash, err := auth.HashPassword(cfg.Seed.AdminPassword, cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash seed admin password: %w", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin bootstrap: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	const seedAdmin = `
        INSERT INTO users (name, email, password_hash, role, region)
        VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.Exec(ctx, seedAdmin,
		cfg.Seed.AdminName,
		cfg.Seed.AdminEmail,
		adminHash,
		domain.RoleAdmin,
		cfg.Seed.AdminRegion,
	); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit bootstrap: %w", err)
	}

	logger.Info("store initialized", zap.String("admin_email", cfg.Seed.AdminEmail))
	return nil
}
