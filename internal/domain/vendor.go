package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Vendor-specific validation errors
var (
	ErrVendorIDEmpty       = fmt.Errorf("%w: vendor ID cannot be empty", ErrValidation)
	ErrVendorNameEmpty     = fmt.Errorf("%w: vendor name cannot be empty", ErrValidation)
	ErrVendorEmailEmpty    = fmt.Errorf("%w: vendor email cannot be empty", ErrValidation)
	ErrVendorPasswordEmpty = fmt.Errorf("%w: vendor password hash cannot be empty", ErrValidation)
)

// Vendor is a business that publishes menu items. Vendors authenticate with
// their own credentials and may be deactivated, which blocks login and all
// mutations.
type Vendor struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Address      string     `json:"address"`
	Phone        string     `json:"phone"`
	PasswordHash string     `json:"-"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	MenuItems    []MenuItem `json:"menuItems"`
}

// NewVendor creates an active Vendor with a fresh ID and timestamps.
// passwordHash must already be hashed.
func NewVendor(name, email, address, phone, passwordHash string) (*Vendor, error) {
	now := time.Now().UTC()
	v := &Vendor{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(name),
		Email:        strings.TrimSpace(email),
		Address:      address,
		Phone:        phone,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// Validate checks if the Vendor has valid data.
func (v *Vendor) Validate() error {
	switch {
	case v.ID == uuid.Nil:
		return ErrVendorIDEmpty
	case v.Name == "":
		return ErrVendorNameEmpty
	case v.Email == "":
		return ErrVendorEmailEmpty
	case v.PasswordHash == "":
		return ErrVendorPasswordEmpty
	}
	return nil
}

// VendorSummary is the slice of a vendor embedded in menu item responses.
type VendorSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	IsActive bool      `json:"isActive"`
}
