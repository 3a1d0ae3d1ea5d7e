package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/kitchen-api/internal/api/middleware"
	"github.com/phrazzld/kitchen-api/internal/config"
	"github.com/phrazzld/kitchen-api/internal/platform/postgres"
	"github.com/phrazzld/kitchen-api/internal/service"
	"github.com/phrazzld/kitchen-api/internal/service/auth"
	"github.com/phrazzld/kitchen-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	customerStore store.CustomerStore
	vendorStore   store.VendorStore
	categoryStore store.CategoryStore
	menuItemStore store.MenuItemStore

	jwtService      auth.JWTService
	authService     service.AuthService
	vendorService   service.VendorService
	categoryService service.CategoryService
	menuItemService service.MenuItemService

	rateLimiter *middleware.RateLimiter
	metrics     *middleware.Metrics
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	app.customerStore = postgres.NewPostgresCustomerStore(db, logger)
	app.vendorStore = postgres.NewPostgresVendorStore(db, logger)
	app.categoryStore = postgres.NewPostgresCategoryStore(db, logger)
	app.menuItemStore = postgres.NewPostgresMenuItemStore(db, logger)

	app.authService, err = service.NewAuthService(
		app.customerStore,
		app.vendorStore,
		auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		auth.NewBcryptVerifier(),
		app.jwtService,
		db,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	app.vendorService, err = service.NewVendorService(app.vendorStore, app.menuItemStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create vendor service: %w", err)
	}

	app.categoryService, err = service.NewCategoryService(app.categoryStore, app.vendorStore, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}

	app.menuItemService, err = service.NewMenuItemService(
		app.menuItemStore,
		app.vendorStore,
		app.categoryStore,
		db,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item service: %w", err)
	}

	app.rateLimiter = middleware.NewRateLimiter(cfg.RateLimit, logger)
	if cfg.Metrics.Enabled {
		app.metrics = middleware.NewMetrics()
	}

	return app, nil
}

// start launches background work owned by the application.
func (app *application) start() error {
	if err := app.rateLimiter.Start(); err != nil {
		return fmt.Errorf("failed to start rate limiter: %w", err)
	}
	return nil
}

// cleanup stops background work. The database is closed by the caller
// that opened it.
func (app *application) cleanup() {
	<-app.rateLimiter.Stop().Done()
	app.logger.Info("application resources released")
}
