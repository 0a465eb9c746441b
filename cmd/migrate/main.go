package main

import (
	"fmt"
	"os"
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/restauratings/internal/config"
	"github.com/restauratings/internal/pkg/logger"
	"github.com/restauratings/internal/repository/postgres"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrationsPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long:  `Applies, rolls back and reports SQL migrations of the restaurants database.`,
	}

	rootCmd.PersistentFlags().StringVar(&migrationsPath, "path", "", "migrations directory (default: MIGRATIONS_PATH)")

	rootCmd.AddCommand(upCmd())
	rootCmd.AddCommand(downCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *postgres.Migrator) error {
				return m.Up()
			})
		},
	}
}

func downCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back the last migrations (1 by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("steps must be a positive integer, got %q", args[0])
				}
				steps = n
			}

			return withMigrator(func(m *postgres.Migrator) error {
				return m.Down(steps)
			})
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *postgres.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Printf("version: %d, dirty: %t\n", version, dirty)
				return nil
			})
		},
	}
}

func withMigrator(fn func(m *postgres.Migrator) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	path := migrationsPath
	if path == "" {
		path = cfg.Migrations.Path
	}

	db, err := sqlx.Connect("pgx", cfg.GetDatabaseDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	m, err := postgres.NewMigrator(db.DB, path, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("Failed to close migrator", zap.Error(err))
		}
	}()

	return fn(m)
}
