package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category-specific validation errors
var (
	ErrCategoryIDEmpty   = fmt.Errorf("%w: category ID cannot be empty", ErrValidation)
	ErrCategoryNameEmpty = fmt.Errorf("%w: category name cannot be empty", ErrValidation)
)

// Category groups menu items. VendorID records the vendor that created it
// and is nil for shared categories.
type Category struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	VendorID  *uuid.UUID `json:"vendorId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NewCategory creates a Category owned by vendorID.
func NewCategory(name string, vendorID *uuid.UUID) (*Category, error) {
	now := time.Now().UTC()
	c := &Category{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		VendorID:  vendorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCategoryIDEmpty
	}
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}
	return nil
}

// CategorySummary is the slice of a category embedded in menu item responses.
type CategorySummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
