package db

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"peoplehub/internal/domain/auth"
	"peoplehub/internal/platform/config"
)

var defaultRoles = []string{"Admin", "HR", "Employee"}

var defaultDesignations = []string{
	"Software Engineer",
	"Senior Software Engineer",
	"HR Executive",
	"Project Manager",
}

// Seed makes sure the lookup tables and the bootstrap admin account exist.
// It is safe to run on every boot.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	roleIDs, err := ensureRoles(ctx, pool)
	if err != nil {
		return err
	}

	if err := ensureDesignations(ctx, pool); err != nil {
		return err
	}

	if cfg.SeedAdminEmail != "" && cfg.SeedAdminPassword != "" {
		if err := ensureAdminUser(ctx, pool, roleIDs["Admin"], cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
			return err
		}
	} else {
		slog.Warn("seed admin skipped", "reason", "SEED_ADMIN_EMAIL or SEED_ADMIN_PASSWORD unset")
	}

	return nil
}

func ensureRoles(ctx context.Context, pool *pgxpool.Pool) (map[string]string, error) {
	roleIDs := map[string]string{}
	for _, name := range defaultRoles {
		var id string
		err := pool.QueryRow(ctx, "SELECT id FROM roles WHERE name = $1", name).Scan(&id)
		if err == nil {
			roleIDs[name] = id
			continue
		}

		err = pool.QueryRow(ctx, "INSERT INTO roles (name, description) VALUES ($1, $2) RETURNING id", name, name+" role").Scan(&id)
		if err != nil {
			return nil, err
		}
		roleIDs[name] = id
	}
	return roleIDs, nil
}

func ensureDesignations(ctx context.Context, pool *pgxpool.Pool) error {
	for _, name := range defaultDesignations {
		_, err := pool.Exec(ctx, "INSERT INTO designations (name, description) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING", name, name)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, roleID, email, password string) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE email = $1", email).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	var userID string
	if err := pool.QueryRow(ctx, `
    INSERT INTO users (first_name, last_name, email, password_hash, is_active)
    VALUES ('System', 'Admin', $1, $2, true)
    RETURNING id
  `, email, hash).Scan(&userID); err != nil {
		return err
	}

	_, err = pool.Exec(ctx, "INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)", userID, roleID)
	return err
}
