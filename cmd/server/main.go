// Package main runs the kitchen API server. With -migrate it applies or
// inspects the embedded schema migrations instead and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up|down|status|reset|version) and exit")
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		slog.Error("kitchen-api exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	log, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", slog.String("error", err.Error()))
		}
	}()

	if migrateCmd != "" {
		return runMigrations(ctx, db, migrateCmd, log)
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	router, err := app.setupRouter()
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	if err := app.start(); err != nil {
		return err
	}
	return app.startHTTPServer(ctx, router)
}
