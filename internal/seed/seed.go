// Package seed creates the default data the application expects on first
// start.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumniconnect/backend/internal/pkg/auth"
	"github.com/alumniconnect/backend/internal/pkg/logger"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@alumniconnect.app"
	defaultAdminPassword = "ChangeMe123!"
)

// CreateDefaultData inserts the default admin account if no admin exists.
func CreateDefaultData(ctx context.Context, pool *pgxpool.Pool) error {
	var id int64
	err := pool.QueryRow(ctx, `SELECT id FROM users WHERE role = 'admin' LIMIT 1`).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("error checking for admin account: %w", err)
	}

	hashedPassword, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("error hashing default admin password: %w", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO users (username, email, password, first_name, last_name, role, is_active)
		VALUES ($1, $2, $3, 'Site', 'Admin', 'admin', TRUE)
		ON CONFLICT DO NOTHING`,
		defaultAdminUsername, defaultAdminEmail, hashedPassword)

	if err != nil {
		return fmt.Errorf("error creating default admin: %w", err)
	}

	logger.Warn().
		Str("username", defaultAdminUsername).
		Msg("Default admin account created, change its password")

	return nil
}
