package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/domain"
)

// CustomerStore defines the interface for customer data persistence.
type CustomerStore interface {
	// Create saves a new customer. The password must already be hashed.
	// Returns ErrEmailExists if the customers table already holds the email.
	Create(ctx context.Context, customer *domain.Customer) error

	// GetByID retrieves a customer by ID.
	// Returns ErrCustomerNotFound if the customer does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)

	// GetByEmail retrieves a customer by exact email match.
	// Returns ErrCustomerNotFound if the customer does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)

	// EmailExists reports whether a customer is registered under email.
	EmailExists(ctx context.Context, email string) (bool, error)

	// WithTx returns a CustomerStore bound to tx.
	WithTx(tx *sql.Tx) CustomerStore
}
