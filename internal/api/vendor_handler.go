package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/api/shared"
	"github.com/phrazzld/kitchen-api/internal/service"
)

var (
	outcomeListVendors = shared.Outcome{
		Message:     "Vendors retrieved successfully",
		ErrorPrefix: "Failed to retrieve vendors",
	}
	outcomeGetVendor = shared.Outcome{
		Message:     "Vendor retrieved successfully",
		ErrorPrefix: "Failed to retrieve vendor",
	}
	outcomeVendorMenuItems = shared.Outcome{
		Message:     "Vendor menu items retrieved successfully",
		ErrorPrefix: "Failed to retrieve vendor menu items",
	}
	outcomeVendorCategories = shared.Outcome{
		Message:     "Vendor categories retrieved successfully",
		ErrorPrefix: "Failed to retrieve vendor categories",
	}
	outcomeCreateCategory = shared.Outcome{
		Status:      http.StatusCreated,
		Message:     "Category created successfully",
		ErrorPrefix: "Failed to create category",
	}
)

// VendorHandler serves vendor browsing and vendor categories.
type VendorHandler struct {
	vendors    service.VendorService
	categories service.CategoryService
	normalize  *shared.Normalizer
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(
	vendors service.VendorService,
	categories service.CategoryService,
	normalize *shared.Normalizer,
) *VendorHandler {
	return &VendorHandler{vendors: vendors, categories: categories, normalize: normalize}
}

// ListVendors handles GET /vendors.
func (h *VendorHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	q, ok := validated[VendorQuery](w, r)
	if !ok {
		return
	}
	h.normalize.Run(w, r, outcomeListVendors, func() (any, error) {
		return h.vendors.ListVendors(r.Context(), q.query())
	})
}

// GetVendor handles GET /vendors/{id}.
func (h *VendorHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	p, ok := validated[VendorIDParam](w, r)
	if !ok {
		return
	}
	h.normalize.Run(w, r, outcomeGetVendor, func() (any, error) {
		return h.vendors.GetVendor(r.Context(), uuid.MustParse(p.ID))
	})
}

// GetVendorMenuItems handles GET /vendors/{id}/menu-items.
func (h *VendorHandler) GetVendorMenuItems(w http.ResponseWriter, r *http.Request) {
	p, ok := validated[VendorIDParam](w, r)
	if !ok {
		return
	}
	h.normalize.Run(w, r, outcomeVendorMenuItems, func() (any, error) {
		return h.vendors.GetVendorMenuItems(r.Context(), uuid.MustParse(p.ID))
	})
}

// GetVendorCategories handles GET /vendors/categories. The vendor comes from
// the vendorId query parameter, falling back to the caller's own id.
func (h *VendorHandler) GetVendorCategories(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := h.categoriesVendor(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Vendor ID is required", map[string]any{})
		return
	}
	h.normalize.Run(w, r, outcomeVendorCategories, func() (any, error) {
		return h.categories.GetVendorCategories(r.Context(), vendorID)
	})
}

func (h *VendorHandler) categoriesVendor(r *http.Request) (uuid.UUID, bool) {
	if raw := r.URL.Query().Get("vendorId"); raw != "" {
		id, err := uuid.Parse(raw)
		return id, err == nil
	}
	if p, ok := shared.PrincipalFrom(r.Context()); ok && p.ID != uuid.Nil {
		return p.ID, true
	}
	return uuid.Nil, false
}

// CreateCategory handles POST /vendors/categories.
func (h *VendorHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r)
	if !ok {
		return
	}
	req, ok := validated[CreateCategoryRequest](w, r)
	if !ok {
		return
	}
	h.normalize.Run(w, r, outcomeCreateCategory, func() (any, error) {
		return h.categories.CreateCategory(r.Context(), caller.ID, req.Name)
	})
}
