package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/user-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
// Returns the loaded config and any loading error.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfig logs the non-secret parts of the configuration.
func logConfig(cfg *config.Config, logger *slog.Logger) {
	logger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"request_timeout", cfg.Server.RequestTimeout.String(),
		"shutdown_timeout", cfg.Server.ShutdownTimeout.String())

	logger.Debug("database configuration",
		"url_present", cfg.Database.URL != "",
		"max_conns", cfg.Database.MaxConns,
		"auto_migrate", cfg.Database.AutoMigrate)
}
