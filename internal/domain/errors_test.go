package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"typed not found", NotFound("Vendor not found"), KindNotFound},
		{"typed conflict wins over text", Conflict("Validation failed: Email already in use"), KindConflict},
		{"wrapped typed", fmt.Errorf("create: %w", Forbidden("Account is inactive")), KindForbidden},
		{"text not found", errors.New("menu item not found"), KindNotFound},
		{"text validation", errors.New("validation failed: name"), KindValidation},
		{"text unauthorized", errors.New("unauthorized access"), KindUnauthenticated},
		{"text invalid credentials", errors.New("invalid credentials supplied"), KindUnauthenticated},
		{"text forbidden", errors.New("forbidden"), KindForbidden},
		{"text is case sensitive", errors.New("Invalid credentials"), KindUnknown},
		{"not found beats validation", errors.New("validation: row not found"), KindNotFound},
		{"plain", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("pq: duplicate key")
	err := NewError(KindConflict, "Category with this name already exists", cause)

	assert.Equal(t, "Category with this name already exists", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "conflict", err.Kind.String())
}

func TestPrincipalProjections(t *testing.T) {
	t.Parallel()

	v, err := NewVendor("Pizza Place", "pizza@gmail.com", "42 Sijuawade Street", "0819", "hash")
	assert.NoError(t, err)
	vp := VendorPrincipal(v)
	assert.True(t, vp.IsVendor())
	assert.True(t, vp.Active())
	assert.Equal(t, "42 Sijuawade Street", *vp.Address)

	v.IsActive = false
	assert.False(t, VendorPrincipal(v).Active())

	c, err := NewCustomer("A", "a@x.com", "hash")
	assert.NoError(t, err)
	cp := CustomerPrincipal(c)
	assert.True(t, cp.IsCustomer())
	assert.True(t, cp.Active())
	assert.Nil(t, cp.Address)
	assert.Nil(t, cp.IsActive)
}
