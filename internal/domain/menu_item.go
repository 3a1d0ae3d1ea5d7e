package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MenuItem-specific validation errors
var (
	ErrMenuItemIDEmpty       = fmt.Errorf("%w: menu item ID cannot be empty", ErrValidation)
	ErrMenuItemVendorIDEmpty = fmt.Errorf("%w: menu item vendor ID cannot be empty", ErrValidation)
	ErrMenuItemNameEmpty     = fmt.Errorf("%w: menu item name cannot be empty", ErrValidation)
	ErrMenuItemPriceInvalid  = fmt.Errorf("%w: menu item price must be a positive amount with at most 2 decimal places", ErrValidation)
)

// MenuItem is a dish a vendor offers. VendorID is fixed at creation.
// Vendor and Category are populated only by read paths that join them.
type MenuItem struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       float64          `json:"price"`
	Image       *string          `json:"image"`
	Available   bool             `json:"available"`
	VendorID    uuid.UUID        `json:"vendorId"`
	CategoryID  *uuid.UUID       `json:"categoryId"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Vendor      *VendorSummary   `json:"vendor,omitempty"`
	Category    *CategorySummary `json:"category,omitempty"`
}

// NewMenuItem creates an available MenuItem for vendorID.
func NewMenuItem(
	vendorID uuid.UUID,
	name string,
	description *string,
	price float64,
	image *string,
	categoryID *uuid.UUID,
) (*MenuItem, error) {
	now := time.Now().UTC()
	item := &MenuItem{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(name),
		Description: description,
		Price:       price,
		Image:       image,
		Available:   true,
		VendorID:    vendorID,
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate checks if the MenuItem has valid data.
func (m *MenuItem) Validate() error {
	switch {
	case m.ID == uuid.Nil:
		return ErrMenuItemIDEmpty
	case m.VendorID == uuid.Nil:
		return ErrMenuItemVendorIDEmpty
	case m.Name == "":
		return ErrMenuItemNameEmpty
	case !ValidPrice(m.Price):
		return ErrMenuItemPriceInvalid
	}
	return nil
}

// ToggleAvailability flips Available and bumps UpdatedAt.
func (m *MenuItem) ToggleAvailability() {
	m.Available = !m.Available
	m.UpdatedAt = time.Now().UTC()
}

// ValidPrice reports whether p is positive with at most two decimal places.
func ValidPrice(p float64) bool {
	if p <= 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		return false
	}
	cents := p * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}

// OptionalUUID distinguishes an absent field from an explicit null.
type OptionalUUID struct {
	Set   bool
	Value *uuid.UUID
}

// MenuItemPatch holds the fields of a partial menu item update.
// Nil pointers leave the current value untouched.
type MenuItemPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Available   *bool
	CategoryID  OptionalUUID
}

// Apply writes the patch onto m and re-validates it.
func (p MenuItemPatch) Apply(m *MenuItem) error {
	if p.Name != nil {
		m.Name = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		m.Description = p.Description
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.Image != nil {
		m.Image = p.Image
	}
	if p.Available != nil {
		m.Available = *p.Available
	}
	if p.CategoryID.Set {
		m.CategoryID = p.CategoryID.Value
		if m.CategoryID == nil {
			m.Category = nil
		}
	}
	m.UpdatedAt = time.Now().UTC()
	return m.Validate()
}
