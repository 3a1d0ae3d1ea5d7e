package service

import (
	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/paging"
	"github.com/phrazzld/kitchen-api/internal/store"
)

// VendorQuery is the raw listing request for vendors. Zero values mean
// "not supplied"; IsActive defaults to true.
type VendorQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Name      string
	IsActive  *bool
}

func (q VendorQuery) normalize() (store.VendorFilter, paging.Request) {
	return store.VendorFilter{
		Name:     q.Name,
		IsActive: boolOr(q.IsActive, true),
	}, paging.Normalize(q.Page, q.Limit, q.SortBy, q.SortOrder)
}

// MenuItemQuery is the raw listing request for menu items. Available
// defaults to true.
type MenuItemQuery struct {
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
	Name       string
	VendorID   *uuid.UUID
	CategoryID *uuid.UUID
	MinPrice   *float64
	MaxPrice   *float64
	Available  *bool
}

func (q MenuItemQuery) normalize() (store.MenuItemFilter, paging.Request) {
	return store.MenuItemFilter{
		Name:       q.Name,
		VendorID:   q.VendorID,
		CategoryID: q.CategoryID,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		Available:  boolOr(q.Available, true),
	}, paging.Normalize(q.Page, q.Limit, q.SortBy, q.SortOrder)
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
