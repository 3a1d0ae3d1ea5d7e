package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/domain"
	"github.com/phrazzld/kitchen-api/internal/paging"
)

// VendorFilter narrows vendor listings. IsActive is always applied.
type VendorFilter struct {
	Name     string
	IsActive bool
}

// VendorStore defines the interface for vendor data persistence.
type VendorStore interface {
	// Create saves a new vendor. The password must already be hashed.
	// Returns ErrEmailExists if the vendors table already holds the email.
	Create(ctx context.Context, vendor *domain.Vendor) error

	// GetByID retrieves a vendor by ID without its menu items.
	// Returns ErrVendorNotFound if the vendor does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error)

	// GetByEmail retrieves a vendor by exact email match.
	// Returns ErrVendorNotFound if the vendor does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.Vendor, error)

	// EmailExists reports whether a vendor is registered under email.
	EmailExists(ctx context.Context, email string) (bool, error)

	// List returns one page of vendors matching filter, ordered per req.
	List(ctx context.Context, filter VendorFilter, req paging.Request) ([]domain.Vendor, error)

	// Count returns how many vendors match filter, ignoring pagination.
	Count(ctx context.Context, filter VendorFilter) (int, error)

	// AnyExist reports whether at least one vendor is stored.
	AnyExist(ctx context.Context) (bool, error)

	// WithTx returns a VendorStore bound to tx.
	WithTx(tx *sql.Tx) VendorStore
}
