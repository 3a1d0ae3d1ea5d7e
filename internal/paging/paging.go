// Package paging normalizes page/limit/sort parameters for list endpoints
// and computes the pagination metadata returned alongside each page.
package paging

import (
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 20
)

// SortOrder is the direction of a single-field sort.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// ParseSortOrder returns Asc only for a case-insensitive "asc"; anything else sorts descending.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(Asc)) {
		return Asc
	}
	return Desc
}

// Request is a normalized page request.
type Request struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder SortOrder
}

// Normalize clamps page to >= 1 and limit to [1, MaxLimit]. Zero values take
// the defaults. sortBy defaults to createdAt.
func Normalize(page, limit int, sortBy, sortOrder string) Request {
	if page < 1 {
		page = DefaultPage
	}
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < 1:
		limit = 1
	case limit > MaxLimit:
		limit = MaxLimit
	}
	sortBy = strings.TrimSpace(sortBy)
	if sortBy == "" {
		sortBy = "createdAt"
	}
	return Request{
		Page:      page,
		Limit:     limit,
		SortBy:    sortBy,
		SortOrder: ParseSortOrder(sortOrder),
	}
}

// Offset is the number of rows skipped before this page.
func (r Request) Offset() int {
	return (r.Page - 1) * r.Limit
}

// Meta describes where a page sits in the full result set.
type Meta struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalCount  int  `json:"totalCount"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// NewMeta computes pagination metadata for total matching rows.
func NewMeta(r Request, total int) Meta {
	totalPages := 0
	if r.Limit > 0 {
		totalPages = (total + r.Limit - 1) / r.Limit
	}
	return Meta{
		Page:        r.Page,
		Limit:       r.Limit,
		TotalCount:  total,
		TotalPages:  totalPages,
		HasNext:     r.Page < totalPages,
		HasPrevious: r.Page > 1,
	}
}

// Page is one page of results plus its metadata.
type Page[T any] struct {
	Data []T
	Meta Meta
}

// NewPage builds a Page, never returning a nil Data slice.
func NewPage[T any](data []T, r Request, total int) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{Data: data, Meta: NewMeta(r, total)}
}

// Items returns the page rows as an untyped value for response envelopes.
func (p Page[T]) Items() any { return p.Data }

// Metadata returns the pagination metadata.
func (p Page[T]) Metadata() Meta { return p.Meta }

// Paginated is implemented by every Page instantiation.
type Paginated interface {
	Items() any
	Metadata() Meta
}
