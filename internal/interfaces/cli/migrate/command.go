// Package migrate implements the `supportsync migrate` command.
package migrate

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/supportsync-io/supportsync/internal/infrastructure/config"
	"github.com/supportsync-io/supportsync/internal/infrastructure/database"
	"github.com/supportsync-io/supportsync/internal/infrastructure/persistence/migrations"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Apply, roll back, or inspect the SupportSync schema migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newUpCommand())
	cmd.AddCommand(newDownCommand())
	cmd.AddCommand(newStatusCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(db *sql.DB) error {
				if err := migrations.Up(db); err != nil {
					return fmt.Errorf("failed to apply migrations: %w", err)
				}
				logger.Info("migrations applied")
				return nil
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(db *sql.DB) error {
				if err := migrations.Down(db); err != nil {
					return fmt.Errorf("failed to roll back migration: %w", err)
				}
				logger.Info("migration rolled back")
				return nil
			})
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(migrations.Status)
		},
	}
}

func withDB(fn func(db *sql.DB) error) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		_ = database.Close()
	}()

	sqlDB, err := database.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to access database handle: %w", err)
	}

	return fn(sqlDB)
}
