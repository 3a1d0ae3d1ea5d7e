// Package main loads the demo vendors, categories and menu items into an
// empty database.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/phrazzld/kitchen-api/internal/config"
	"github.com/phrazzld/kitchen-api/internal/platform/logger"
	"github.com/phrazzld/kitchen-api/internal/platform/postgres"
	"github.com/phrazzld/kitchen-api/internal/redact"
	"github.com/phrazzld/kitchen-api/internal/seed"
	"github.com/phrazzld/kitchen-api/internal/service"
	"github.com/phrazzld/kitchen-api/internal/service/auth"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("seed failed", slog.String("error", redact.Error(err)))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return err
	}

	db, err := postgres.Open(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()

	vendors := postgres.NewPostgresVendorStore(db, log)
	menuItems := postgres.NewPostgresMenuItemStore(db, log)
	vendorService, err := service.NewVendorService(vendors, menuItems, log)
	if err != nil {
		return err
	}

	seeder := seed.NewSeeder(
		vendorService,
		vendors,
		postgres.NewPostgresCategoryStore(db, log),
		menuItems,
		auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		db,
		log,
	)
	_, err = seeder.Seed(ctx, cfg.Seed.VendorPasswords)
	return err
}
