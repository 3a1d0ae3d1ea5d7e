package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewMenuItem(t *testing.T) {
	t.Parallel()

	vendorID := uuid.New()
	item, err := NewMenuItem(vendorID, "  Jollof Rice ", nil, 1500, nil, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if item.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if item.Name != "Jollof Rice" {
		t.Errorf("Expected trimmed name, got %q", item.Name)
	}
	if !item.Available {
		t.Error("Expected new menu item to be available")
	}
	if item.CategoryID != nil {
		t.Error("Expected nil category")
	}

	if _, err := NewMenuItem(uuid.Nil, "Rice", nil, 10, nil, nil); err != ErrMenuItemVendorIDEmpty {
		t.Errorf("Expected %v, got %v", ErrMenuItemVendorIDEmpty, err)
	}
	if _, err := NewMenuItem(vendorID, " ", nil, 10, nil, nil); err != ErrMenuItemNameEmpty {
		t.Errorf("Expected %v, got %v", ErrMenuItemNameEmpty, err)
	}
	_, err = NewMenuItem(vendorID, "Rice", nil, -1, nil, nil)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error for negative price, got %v", err)
	}
}

func TestValidPrice(t *testing.T) {
	t.Parallel()

	cases := map[float64]bool{
		9.99:    true,
		1500:    true,
		0.1:     true,
		0.01:    true,
		0:       false,
		-1:      false,
		9.999:   false,
		12.3456: false,
	}
	for price, want := range cases {
		if got := ValidPrice(price); got != want {
			t.Errorf("ValidPrice(%v) = %v, want %v", price, got, want)
		}
	}
}

func TestToggleAvailabilityTwiceRestoresValue(t *testing.T) {
	t.Parallel()

	item, err := NewMenuItem(uuid.New(), "Cheesecake", nil, 2800, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	original := item.Available
	item.ToggleAvailability()
	if item.Available == original {
		t.Fatal("Expected availability to flip")
	}
	item.ToggleAvailability()
	if item.Available != original {
		t.Error("Expected second toggle to restore original availability")
	}
}

func TestMenuItemPatchApply(t *testing.T) {
	t.Parallel()

	categoryID := uuid.New()
	item, err := NewMenuItem(uuid.New(), "Classic Burger", nil, 2000, nil, &categoryID)
	if err != nil {
		t.Fatal(err)
	}
	item.Category = &CategorySummary{ID: categoryID, Name: "Fast Food"}

	name := "Double Burger"
	price := 25.5
	patch := MenuItemPatch{
		Name:       &name,
		Price:      &price,
		CategoryID: OptionalUUID{Set: true},
	}
	if err := patch.Apply(item); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if item.Name != name || item.Price != price {
		t.Errorf("Expected patched fields, got %q %v", item.Name, item.Price)
	}
	if item.CategoryID != nil || item.Category != nil {
		t.Error("Expected explicit null to detach the category")
	}

	bad := -3.0
	if err := (MenuItemPatch{Price: &bad}).Apply(item); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestMenuItemPatchLeavesAbsentCategory(t *testing.T) {
	t.Parallel()

	categoryID := uuid.New()
	item, err := NewMenuItem(uuid.New(), "Fried Rice", nil, 1700, nil, &categoryID)
	if err != nil {
		t.Fatal(err)
	}
	available := false
	if err := (MenuItemPatch{Available: &available}).Apply(item); err != nil {
		t.Fatal(err)
	}
	if item.CategoryID == nil || *item.CategoryID != categoryID {
		t.Error("Expected category to be untouched when not supplied")
	}
	if item.Available {
		t.Error("Expected available to be false")
	}
}
