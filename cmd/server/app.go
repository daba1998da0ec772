package main

import (
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phrazzld/user-api/internal/api"
	"github.com/phrazzld/user-api/internal/config"
	"github.com/phrazzld/user-api/internal/platform/postgres"
	"github.com/phrazzld/user-api/internal/service"
	"github.com/phrazzld/user-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	pool   *pgxpool.Pool

	// Stores (using interfaces for proper abstraction)
	userStore     store.UserStore
	healthChecker api.HealthChecker

	// Service interfaces
	userService service.UserService
}

// newApplication creates a new application instance backed by pool.
// The application takes ownership of pool and closes it in cleanup.
func newApplication(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (*application, error) {
	app := &application{
		config:        cfg,
		logger:        logger,
		pool:          pool,
		userStore:     postgres.NewPostgresUserStore(pool, logger),
		healthChecker: postgres.NewHealthChecker(pool),
	}

	if err := app.initServices(); err != nil {
		return nil, err
	}
	return app, nil
}

// initServices builds the services on top of the configured stores.
func (app *application) initServices() error {
	var err error
	app.userService, err = service.NewUserService(app.userStore, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create user service: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.pool != nil {
		app.pool.Close()
	}

	app.logger.Info("application shutdown completed")
}
