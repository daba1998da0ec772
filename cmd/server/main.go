// Package main implements the entry point for the user API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a database migration command (up|down|reset|status|version) and exit")
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run wires the application together and blocks until the server stops.
// When migrateCmd is set it runs that migration command instead of serving.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		return handleMigrations(ctx, cfg, logger, migrateCmd)
	}

	pool, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := applyMigrations(ctx, pool, logger); err != nil {
			pool.Close()
			return err
		}
	}

	app, err := newApplication(cfg, logger, pool)
	if err != nil {
		pool.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
