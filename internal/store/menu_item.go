package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/domain"
	"github.com/phrazzld/kitchen-api/internal/paging"
)

// MenuItemFilter narrows menu item listings. Available is always applied;
// nil pointers and an empty Name are ignored.
type MenuItemFilter struct {
	Name       string
	VendorID   *uuid.UUID
	CategoryID *uuid.UUID
	MinPrice   *float64
	MaxPrice   *float64
	Available  bool
}

// MenuItemStore defines the interface for menu item data persistence.
// Read methods populate the Vendor and Category summaries.
type MenuItemStore interface {
	// Create saves a new menu item.
	// Returns ErrInvalidEntity if the vendor or category reference is dangling.
	Create(ctx context.Context, item *domain.MenuItem) error

	// GetByID retrieves a menu item with its vendor and category.
	// Returns ErrMenuItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error)

	// Update writes every mutable column of item. vendor_id is never written.
	// Returns ErrMenuItemNotFound if the item does not exist.
	Update(ctx context.Context, item *domain.MenuItem) error

	// Delete removes a menu item permanently.
	// Returns ErrMenuItemNotFound if the item does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one page of menu items matching filter, ordered per req.
	List(ctx context.Context, filter MenuItemFilter, req paging.Request) ([]domain.MenuItem, error)

	// Count returns how many menu items match filter, ignoring pagination.
	Count(ctx context.Context, filter MenuItemFilter) (int, error)

	// ListByVendors returns every menu item of the given vendors grouped by vendor ID.
	ListByVendors(ctx context.Context, vendorIDs []uuid.UUID) (map[uuid.UUID][]domain.MenuItem, error)

	// WithTx returns a MenuItemStore bound to tx.
	WithTx(tx *sql.Tx) MenuItemStore
}
