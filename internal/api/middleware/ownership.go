package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/api/shared"
	"github.com/phrazzld/kitchen-api/internal/domain"
	"github.com/phrazzld/kitchen-api/internal/redact"
)

// MenuItemGetter looks up the menu item a vendor route acts on.
type MenuItemGetter interface {
	GetMenuItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error)
}

// OwnershipGuard restricts menu item routes to the owning vendor.
type OwnershipGuard struct {
	auth  *AuthMiddleware
	items MenuItemGetter
}

// NewOwnershipGuard creates an OwnershipGuard.
func NewOwnershipGuard(auth *AuthMiddleware, items MenuItemGetter) *OwnershipGuard {
	return &OwnershipGuard{auth: auth, items: items}
}

// RequireVendorOwnership runs the vendor guard, then checks that the menu
// item named by the route parameter param belongs to the caller.
func (g *OwnershipGuard) RequireVendorOwnership(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return g.auth.RequireVendor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, _ := shared.PrincipalFrom(r.Context())

			id, err := uuid.Parse(chi.URLParam(r, param))
			if err != nil {
				shared.RespondWithError(w, r, http.StatusNotFound, "Resource not found", nil)
				return
			}

			item, err := g.items.GetMenuItem(r.Context(), id)
			switch {
			case err == nil:
			case domain.KindOf(err) == domain.KindNotFound:
				shared.RespondWithError(w, r, http.StatusNotFound, "Resource not found", nil)
				return
			default:
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
					"Server error: "+redact.Error(err), err)
				return
			}

			if item.VendorID != principal.ID {
				shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, "Unauthorized", nil,
					shared.WithElevatedLogLevel())
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
