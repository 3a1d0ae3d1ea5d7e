package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/kitchen-api/internal/api/middleware"
	"github.com/phrazzld/kitchen-api/internal/api/shared"
	"github.com/phrazzld/kitchen-api/internal/service"
	"github.com/phrazzld/kitchen-api/internal/service/auth"
)

// RouterDeps holds everything NewRouter needs. RateLimiter and Metrics are
// optional; their lifecycles belong to the caller.
type RouterDeps struct {
	Auth       service.AuthService
	Vendors    service.VendorService
	Categories service.CategoryService
	MenuItems  service.MenuItemService
	JWT        auth.JWTService

	Logger         *slog.Logger
	Production     bool
	AllowedOrigins []string
	RateLimiter    *middleware.RateLimiter
	Metrics        *middleware.Metrics
}

func (d RouterDeps) check() error {
	switch {
	case d.Auth == nil:
		return errors.New("auth service cannot be nil")
	case d.Vendors == nil:
		return errors.New("vendor service cannot be nil")
	case d.Categories == nil:
		return errors.New("category service cannot be nil")
	case d.MenuItems == nil:
		return errors.New("menu item service cannot be nil")
	case d.JWT == nil:
		return errors.New("jwt service cannot be nil")
	}
	return nil
}

// NewRouter builds the HTTP handler serving the whole API.
func NewRouter(d RouterDeps) (http.Handler, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	normalize := shared.NewNormalizer(d.Production)
	authHandler := NewAuthHandler(d.Auth, normalize)
	vendorHandler := NewVendorHandler(d.Vendors, d.Categories, normalize)
	menuHandler := NewMenuItemHandler(d.MenuItems, normalize)

	authn := middleware.NewAuthMiddleware(d.JWT, d.Auth, d.Logger)
	ownership := middleware.NewOwnershipGuard(authn, d.MenuItems)
	v := middleware.NewValidator(d.Logger)
	v.RegisterStructRule(updateMenuItemRule, UpdateMenuItemRequest{})

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.TraceMiddleware(d.Logger))
	r.Use(chimw.Logger)
	r.Use(middleware.Recoverer(d.Production))
	r.Use(middleware.SecurityHeaders(d.Production))
	r.Use(middleware.CORS(d.AllowedOrigins))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	r.Get("/health", Health)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		if d.RateLimiter != nil {
			r.Use(d.RateLimiter.Middleware)
		}

		r.Get("/health", Health)

		// Public
		r.With(middleware.ValidateBody[RegisterRequest](v)).Post("/auth/register", authHandler.Register)
		r.With(middleware.ValidateBody[LoginRequest](v)).Post("/auth/login/customer", authHandler.LoginCustomer)
		r.With(middleware.ValidateBody[LoginRequest](v)).Post("/auth/login/vendor", authHandler.LoginVendor)

		r.Group(func(r chi.Router) {
			r.Use(authn.Authenticate)

			r.With(middleware.ValidateQuery[VendorQuery](v)).Get("/vendors", vendorHandler.ListVendors)
			r.Get("/vendors/categories", vendorHandler.GetVendorCategories)
			r.With(authn.RequireVendor, middleware.ValidateBody[CreateCategoryRequest](v)).
				Post("/vendors/categories", vendorHandler.CreateCategory)
			r.With(middleware.ValidateParams[VendorIDParam](v)).Get("/vendors/{id}", vendorHandler.GetVendor)
			r.With(middleware.ValidateParams[VendorIDParam](v)).
				Get("/vendors/{id}/menu-items", vendorHandler.GetVendorMenuItems)

			// Vendor menu management
			r.With(authn.RequireVendor, middleware.ValidateBody[CreateMenuItemRequest](v)).
				Post("/vendors/menu-items", menuHandler.CreateMenuItem)
			r.Route("/vendors/menu-items/{id}", func(r chi.Router) {
				r.Use(ownership.RequireVendorOwnership("id"))
				r.With(middleware.ValidateParams[IDParam](v), middleware.ValidateBody[UpdateMenuItemRequest](v)).
					Put("/", menuHandler.UpdateMenuItem)
				r.With(middleware.ValidateParams[IDParam](v)).Delete("/", menuHandler.DeleteMenuItem)
				r.With(middleware.ValidateParams[IDParam](v)).
					Put("/toggle-availability", menuHandler.ToggleAvailability)
			})

			r.With(middleware.ValidateQuery[MenuItemQuery](v)).Get("/menu-items", menuHandler.ListMenuItems)
			r.With(middleware.ValidateParams[IDParam](v)).Get("/menu-items/{id}", menuHandler.GetMenuItem)
		})
	})

	return r, nil
}
