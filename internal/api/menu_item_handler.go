package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/api/shared"
	"github.com/phrazzld/kitchen-api/internal/service"
)

var (
	outcomeListMenuItems = shared.Outcome{
		Message:     "Menu items retrieved successfully",
		ErrorPrefix: "Failed to retrieve menu items",
	}
	outcomeGetMenuItem = shared.Outcome{
		Message:     "Menu item retrieved successfully",
		ErrorPrefix: "Failed to retrieve menu item",
	}
	outcomeCreateMenuItem = shared.Outcome{
		Status:      http.StatusCreated,
		Message:     "Menu item created successfully",
		ErrorPrefix: "Failed to create menu item",
	}
	outcomeUpdateMenuItem = shared.Outcome{
		Message:     "Menu item updated successfully",
		ErrorPrefix: "Failed to update menu item",
	}
	outcomeDeleteMenuItem = shared.Outcome{
		Message:     "Menu item deleted successfully",
		ErrorPrefix: "Failed to delete menu item",
	}
	outcomeToggleMenuItem = shared.Outcome{
		Message:     "Menu item availability toggled successfully",
		ErrorPrefix: "Failed to toggle menu item availability",
	}
)

// MenuItemHandler serves menu item browsing and vendor menu management.
type MenuItemHandler struct {
	items     service.MenuItemService
	normalize *shared.Normalizer
}

// NewMenuItemHandler creates a new MenuItemHandler.
func NewMenuItemHandler(items service.MenuItemService, normalize *shared.Normalizer) *MenuItemHandler {
	return &MenuItemHandler{items: items, normalize: normalize}
}

// ListMenuItems handles GET /menu-items.
func (h *MenuItemHandler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	q, ok := validated[MenuItemQuery](w, r)
	if !ok {
		return
	}
	h.normalize.Run(w, r, outcomeListMenuItems, func() (any, error) {
		return h.items.ListMenuItems(r.Context(), q.query())
	})
}

// GetMenuItem handles GET /menu-items/{id}.
func (h *MenuItemHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	p, ok := validated[IDParam](w, r)
	if !ok {
		return
	}
	h.normalize.Run(w, r, outcomeGetMenuItem, func() (any, error) {
		return h.items.GetMenuItem(r.Context(), uuid.MustParse(p.ID))
	})
}

// CreateMenuItem handles POST /vendors/menu-items for the calling vendor.
func (h *MenuItemHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r)
	if !ok {
		return
	}
	req, ok := validated[CreateMenuItemRequest](w, r)
	if !ok {
		return
	}
	h.normalize.Run(w, r, outcomeCreateMenuItem, func() (any, error) {
		return h.items.CreateMenuItem(r.Context(), caller.ID, req.input())
	})
}

// UpdateMenuItem handles PUT /vendors/menu-items/{id}.
func (h *MenuItemHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	p, ok := validated[IDParam](w, r)
	if !ok {
		return
	}
	req, ok := validated[UpdateMenuItemRequest](w, r)
	if !ok {
		return
	}
	h.normalize.Run(w, r, outcomeUpdateMenuItem, func() (any, error) {
		return h.items.UpdateMenuItem(r.Context(), uuid.MustParse(p.ID), req.input())
	})
}

// DeleteMenuItem handles DELETE /vendors/menu-items/{id}.
func (h *MenuItemHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	p, ok := validated[IDParam](w, r)
	if !ok {
		return
	}
	h.normalize.Run(w, r, outcomeDeleteMenuItem, func() (any, error) {
		return h.items.DeleteMenuItem(r.Context(), uuid.MustParse(p.ID))
	})
}

// ToggleAvailability handles PUT /vendors/menu-items/{id}/toggle-availability.
func (h *MenuItemHandler) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	p, ok := validated[IDParam](w, r)
	if !ok {
		return
	}
	h.normalize.Run(w, r, outcomeToggleMenuItem, func() (any, error) {
		return h.items.ToggleAvailability(r.Context(), uuid.MustParse(p.ID))
	})
}
