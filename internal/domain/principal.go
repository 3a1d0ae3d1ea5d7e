package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserType names the kind of authenticated principal.
type UserType string

const (
	UserTypeCustomer UserType = "CUSTOMER"
	UserTypeVendor   UserType = "VENDOR"
)

// Valid reports whether t is a known principal kind.
func (t UserType) Valid() bool {
	return t == UserTypeCustomer || t == UserTypeVendor
}

// Principal is the password-free identity attached to an authenticated
// request. Address, Phone and IsActive are set only for vendors.
type Principal struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   *string   `json:"address,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	IsActive  *bool     `json:"isActive,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserType  UserType  `json:"userType"`
}

// CustomerPrincipal projects a customer into a Principal.
func CustomerPrincipal(c *Customer) *Principal {
	return &Principal{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		UserType:  UserTypeCustomer,
	}
}

// VendorPrincipal projects a vendor into a Principal.
func VendorPrincipal(v *Vendor) *Principal {
	address, phone, active := v.Address, v.Phone, v.IsActive
	return &Principal{
		ID:        v.ID,
		Name:      v.Name,
		Email:     v.Email,
		Address:   &address,
		Phone:     &phone,
		IsActive:  &active,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
		UserType:  UserTypeVendor,
	}
}

// IsVendor reports whether the principal is a vendor.
func (p *Principal) IsVendor() bool {
	return p != nil && p.UserType == UserTypeVendor
}

// IsCustomer reports whether the principal is a customer.
func (p *Principal) IsCustomer() bool {
	return p != nil && p.UserType == UserTypeCustomer
}

// Active reports whether a vendor principal is active. Customers are always active.
func (p *Principal) Active() bool {
	if p == nil {
		return false
	}
	if p.IsActive == nil {
		return true
	}
	return *p.IsActive
}
