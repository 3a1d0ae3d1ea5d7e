package main

import (
	"net/http"

	"github.com/phrazzld/kitchen-api/internal/api"
)

// setupRouter creates the application router from the application's services.
func (app *application) setupRouter() (http.Handler, error) {
	return api.NewRouter(api.RouterDeps{
		Auth:           app.authService,
		Vendors:        app.vendorService,
		Categories:     app.categoryService,
		MenuItems:      app.menuItemService,
		JWT:            app.jwtService,
		Logger:         app.logger,
		Production:     app.config.Server.IsProduction(),
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		RateLimiter:    app.rateLimiter,
		Metrics:        app.metrics,
	})
}
