package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer-specific validation errors
var (
	ErrCustomerIDEmpty       = fmt.Errorf("%w: customer ID cannot be empty", ErrValidation)
	ErrCustomerNameEmpty     = fmt.Errorf("%w: customer name cannot be empty", ErrValidation)
	ErrCustomerEmailEmpty    = fmt.Errorf("%w: customer email cannot be empty", ErrValidation)
	ErrCustomerPasswordEmpty = fmt.Errorf("%w: customer password hash cannot be empty", ErrValidation)
)

// Customer is a registered buyer. Customers own no other entities.
type Customer struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewCustomer creates a Customer with a fresh ID and timestamps.
// passwordHash must already be hashed.
func NewCustomer(name, email, passwordHash string) (*Customer, error) {
	now := time.Now().UTC()
	c := &Customer{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(name),
		Email:        strings.TrimSpace(email),
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks if the Customer has valid data.
func (c *Customer) Validate() error {
	switch {
	case c.ID == uuid.Nil:
		return ErrCustomerIDEmpty
	case c.Name == "":
		return ErrCustomerNameEmpty
	case c.Email == "":
		return ErrCustomerEmailEmpty
	case c.PasswordHash == "":
		return ErrCustomerPasswordEmpty
	}
	return nil
}
