package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phrazzld/user-api/internal/config"
	"github.com/phrazzld/user-api/internal/platform/postgres"
)

// handleMigrations runs a single migration command and returns.
// It's called from run() when the -migrate flag is set. The command is
// checked before any connection is made.
func handleMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrateCmd string) error {
	if !postgres.IsMigrationCommand(migrateCmd) {
		return fmt.Errorf("unknown migration command %q (expected one of %v)",
			migrateCmd, postgres.MigrationCommands())
	}

	pool, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	logger.Info("executing migrations", "command", migrateCmd)
	return postgres.Migrate(ctx, pool, migrateCmd, logger)
}

// applyMigrations brings the schema up to date before serving.
func applyMigrations(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	if err := postgres.Migrate(ctx, pool, postgres.MigrateUp, logger); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
