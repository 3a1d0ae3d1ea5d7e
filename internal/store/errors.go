package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity violates a storage
	// constraint, such as a foreign key to a missing row.
	ErrInvalidEntity = errors.New("invalid entity")

	ErrVendorNotFound   = fmt.Errorf("%w: vendor", ErrNotFound)
	ErrCustomerNotFound = fmt.Errorf("%w: customer", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)
	ErrMenuItemNotFound = fmt.Errorf("%w: menu item", ErrNotFound)

	// ErrEmailExists is returned when an email is already registered by
	// either a customer or a vendor.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrCategoryExists is returned when a category name is already taken,
	// compared case-insensitively.
	ErrCategoryExists = fmt.Errorf("%w: category name", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "vendor", "menu item")
	Operation string // The operation that failed (e.g., "create", "list")
	Message   string
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
