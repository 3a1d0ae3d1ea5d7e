package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/kitchen-api/internal/domain"
	"github.com/phrazzld/kitchen-api/internal/store"
)

// Client-facing messages shared by several services.
const (
	msgVendorNotFound   = "Vendor not found"
	msgCategoryNotFound = "Category not found"
	msgMenuItemNotFound = "Menu item not found"
	msgEmailInUse       = "Validation failed: Email already in use"
	msgInvalidCreds     = "Invalid credentials"
	msgAccountInactive  = "Account is inactive. Please contact support."
	msgCategoryExists   = "Category with this name already exists"
	msgInvalidRequest   = "Invalid request"
)

// ServiceError wraps unexpected failures from a service with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "list_vendors", "create_menu_item")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) error {
	return &ServiceError{Operation: operation, Message: message, Err: err}
}

// translate turns store failures into classified domain errors.
// notFound is the client message used when err is a not-found sentinel.
func translate(err error, operation, notFound string) error {
	var de *domain.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &de):
		return err
	case store.IsNotFoundError(err) && notFound != "":
		return domain.NewError(domain.KindNotFound, notFound, err)
	case errors.Is(err, domain.ErrValidation):
		return domain.NewError(domain.KindValidation, err.Error(), err)
	default:
		return NewServiceError(operation, "failed to "+strings.ReplaceAll(operation, "_", " "), err)
	}
}
