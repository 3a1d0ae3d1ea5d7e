package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
type CategoryStore interface {
	// Create saves a new category.
	// Returns ErrCategoryExists if the name collides case-insensitively.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// NameExists reports whether any category uses name, ignoring case.
	NameExists(ctx context.Context, name string) (bool, error)

	// ListByVendor returns the categories created by vendorID, ordered by name.
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]domain.Category, error)

	// WithTx returns a CategoryStore bound to tx.
	WithTx(tx *sql.Tx) CategoryStore
}
