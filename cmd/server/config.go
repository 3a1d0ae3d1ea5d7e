package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/kitchen-api/internal/config"
	"github.com/phrazzld/kitchen-api/internal/platform/logger"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// setupAppLogger configures the process logger from the server settings.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("environment", cfg.Server.Environment))
	l.Debug("database configuration", slog.Bool("url_present", cfg.Database.URL != ""))
	return l, nil
}
