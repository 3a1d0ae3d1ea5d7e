package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/domain"
	"github.com/phrazzld/kitchen-api/internal/paging"
	"github.com/phrazzld/kitchen-api/internal/platform/logger"
	"github.com/phrazzld/kitchen-api/internal/store"
)

// VendorService exposes vendor listings and vendor detail reads.
type VendorService interface {
	// ListVendors returns one page of vendors, each with its menu items.
	ListVendors(ctx context.Context, q VendorQuery) (paging.Page[domain.Vendor], error)

	// GetVendor returns a vendor with its menu items and their categories.
	GetVendor(ctx context.Context, id uuid.UUID) (*domain.Vendor, error)

	// GetVendorMenuItems returns every menu item of an existing vendor.
	GetVendorMenuItems(ctx context.Context, vendorID uuid.UUID) ([]domain.MenuItem, error)

	// VendorsExist reports whether any vendor is stored.
	VendorsExist(ctx context.Context) (bool, error)
}

type vendorService struct {
	vendors   store.VendorStore
	menuItems store.MenuItemStore
	logger    *slog.Logger
}

var _ VendorService = (*vendorService)(nil)

// NewVendorService creates a VendorService.
func NewVendorService(
	vendors store.VendorStore,
	menuItems store.MenuItemStore,
	logger *slog.Logger,
) (VendorService, error) {
	if vendors == nil {
		return nil, errors.New("vendor store cannot be nil")
	}
	if menuItems == nil {
		return nil, errors.New("menu item store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &vendorService{
		vendors:   vendors,
		menuItems: menuItems,
		logger:    logger.With(slog.String("component", "vendor_service")),
	}, nil
}

// ListVendors implements VendorService.
func (s *vendorService) ListVendors(ctx context.Context, q VendorQuery) (paging.Page[domain.Vendor], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	filter, req := q.normalize()

	total, err := s.vendors.Count(ctx, filter)
	if err != nil {
		return paging.Page[domain.Vendor]{}, translate(err, "list_vendors", "")
	}

	vendors, err := s.vendors.List(ctx, filter, req)
	if err != nil {
		return paging.Page[domain.Vendor]{}, translate(err, "list_vendors", "")
	}

	ids := make([]uuid.UUID, len(vendors))
	for i := range vendors {
		ids[i] = vendors[i].ID
	}
	grouped, err := s.menuItems.ListByVendors(ctx, ids)
	if err != nil {
		return paging.Page[domain.Vendor]{}, translate(err, "list_vendors", "")
	}
	for i := range vendors {
		vendors[i].MenuItems = itemsOrEmpty(grouped[vendors[i].ID])
	}

	log.Debug("vendors retrieved",
		slog.Int("count", len(vendors)),
		slog.Int("total", total),
		slog.Int("page", req.Page))
	return paging.NewPage(vendors, req, total), nil
}

// GetVendor implements VendorService.
func (s *vendorService) GetVendor(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	vendor, err := s.vendors.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get_vendor", msgVendorNotFound)
	}

	grouped, err := s.menuItems.ListByVendors(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, translate(err, "get_vendor", "")
	}
	vendor.MenuItems = itemsOrEmpty(grouped[id])
	return vendor, nil
}

// GetVendorMenuItems implements VendorService.
func (s *vendorService) GetVendorMenuItems(ctx context.Context, vendorID uuid.UUID) ([]domain.MenuItem, error) {
	if _, err := s.vendors.GetByID(ctx, vendorID); err != nil {
		return nil, translate(err, "get_vendor_menu_items", msgVendorNotFound)
	}

	grouped, err := s.menuItems.ListByVendors(ctx, []uuid.UUID{vendorID})
	if err != nil {
		return nil, translate(err, "get_vendor_menu_items", "")
	}
	return itemsOrEmpty(grouped[vendorID]), nil
}

// VendorsExist implements VendorService.
func (s *vendorService) VendorsExist(ctx context.Context) (bool, error) {
	exists, err := s.vendors.AnyExist(ctx)
	if err != nil {
		return false, NewServiceError("vendors_exist", "error checking vendors", err)
	}
	return exists, nil
}

func itemsOrEmpty(items []domain.MenuItem) []domain.MenuItem {
	if items == nil {
		return []domain.MenuItem{}
	}
	return items
}
