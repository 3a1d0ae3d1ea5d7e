package main

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/kitchen-api/internal/config"
	"github.com/phrazzld/kitchen-api/internal/platform/postgres"
	"github.com/phrazzld/kitchen-api/internal/redact"
)

// setupAppDatabase establishes a connection to the database and configures connection pools.
func setupAppDatabase(ctx context.Context, cfg *config.Config, log *slog.Logger) (*sql.DB, error) {
	db, err := postgres.Open(ctx, cfg.Database.URL)
	if err != nil {
		log.Error("database connection failed", slog.String("error", redact.Error(err)))
		return nil, err
	}

	log.Info("database connection established",
		slog.Int("max_open_conns", postgres.MaxOpenConns),
		slog.Int("max_idle_conns", postgres.MaxIdleConns))
	return db, nil
}
