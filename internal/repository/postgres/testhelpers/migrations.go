package testhelpers

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/restauratings/internal/repository/postgres"
	"go.uber.org/zap"
)

// ApplyMigrations brings the test schema up to date with golang-migrate
func ApplyMigrations(db *sqlx.DB, migrationsPath string, logger *zap.Logger) error {
	migrator, err := postgres.NewMigrator(db.DB, migrationsPath, logger)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := migrator.Up(); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
