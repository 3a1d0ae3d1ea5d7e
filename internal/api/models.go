package api

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/domain"
	"github.com/phrazzld/kitchen-api/internal/service"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the body of both login endpoints.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateCategoryRequest is the body of POST /vendors/categories.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// CreateMenuItemRequest is the body of POST /vendors/menu-items.
// Available is accepted but new items always start available.
type CreateMenuItemRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"required,gt=0,price"`
	Image       *string  `json:"image" validate:"omitempty,url"`
	Available   *bool    `json:"available"`
	CategoryID  *string  `json:"categoryId" validate:"omitempty,uuid"`
}

var menuItemMessages = map[string]string{
	"name.required":   "Name is required",
	"name.min":        "Name must be at least 2 characters long",
	"name.max":        "Name cannot exceed 100 characters",
	"description.max": "Description cannot exceed 500 characters",
	"price.required":  "Price is required",
	"price.type":      "Price must be a number",
	"price.gt":        "Price must be positive",
	"price.price":     "Price cannot have more than 2 decimal places",
	"image.url":       "Image must be a valid URL",
	"available.type":  "Available must be a boolean",
	"categoryId.type": "Category ID must be a string or null",
}

func (CreateMenuItemRequest) ValidationMessages() map[string]string { return menuItemMessages }

func (req CreateMenuItemRequest) input() service.CreateMenuItemInput {
	return service.CreateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Image:       req.Image,
		CategoryID:  parseOptionalUUID(req.CategoryID),
	}
}

// NullableString tells an absent JSON field apart from an explicit null.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NullableString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// UpdateMenuItemRequest is the body of PUT /vendors/menu-items/{id}. At
// least one field must be present. CategoryID may be null to detach the
// category; VendorID, if sent, must name the current owner.
type UpdateMenuItemRequest struct {
	Name        *string        `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string        `json:"description" validate:"omitempty,max=500"`
	Price       *float64       `json:"price" validate:"omitempty,gt=0,price"`
	Image       *string        `json:"image" validate:"omitempty,url"`
	Available   *bool          `json:"available"`
	CategoryID  NullableString `json:"categoryId" validate:"-"`
	VendorID    *string        `json:"vendorId" validate:"omitempty,uuid"`
}

func (UpdateMenuItemRequest) ValidationMessages() map[string]string { return menuItemMessages }

func (req UpdateMenuItemRequest) empty() bool {
	return req.Name == nil && req.Description == nil && req.Price == nil && req.Image == nil &&
		req.Available == nil && !req.CategoryID.Set && req.VendorID == nil
}

func (req UpdateMenuItemRequest) input() service.UpdateMenuItemInput {
	patch := domain.MenuItemPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Available:   req.Available,
	}
	if req.CategoryID.Set {
		patch.CategoryID = domain.OptionalUUID{Set: true, Value: parseOptionalUUID(req.CategoryID.Value)}
	}
	return service.UpdateMenuItemInput{VendorID: parseOptionalUUID(req.VendorID), Patch: patch}
}

// updateMenuItemRule enforces the rules the tag syntax cannot express.
func updateMenuItemRule(sl validator.StructLevel) {
	req := sl.Current().Interface().(UpdateMenuItemRequest)
	if req.empty() {
		sl.ReportError(nil, "", "", "atleastone", "")
	}
	if v := req.CategoryID.Value; v != nil {
		if _, err := uuid.Parse(*v); err != nil {
			sl.ReportError(*v, "categoryId", "CategoryID", "uuid", "")
		}
	}
}

var listQueryMessages = map[string]string{
	"page.type":     "Page must be a number",
	"page.min":      "Page must be at least 1",
	"limit.type":    "Limit must be a number",
	"limit.min":     "Limit must be at least 1",
	"limit.max":     "Limit cannot exceed 100",
	"minPrice.type": "Minimum price must be a number",
	"minPrice.min":  "Minimum price cannot be negative",
	"maxPrice.type": "Maximum price must be a number",
	"maxPrice.min":  "Maximum price cannot be negative",
}

// MenuItemQuery is the query string of menu item listings.
type MenuItemQuery struct {
	Page       *int     `form:"page" validate:"omitempty,min=1"`
	Limit      *int     `form:"limit" validate:"omitempty,min=1,max=100"`
	SortOrder  string   `form:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Name       string   `form:"name"`
	SortBy     string   `form:"sortBy" validate:"omitempty,oneof=name price createdAt updatedAt"`
	MinPrice   *float64 `form:"minPrice" validate:"omitempty,min=0"`
	MaxPrice   *float64 `form:"maxPrice" validate:"omitempty,min=0"`
	Available  *bool    `form:"available"`
	VendorID   *string  `form:"vendorId" validate:"omitempty,uuid"`
	CategoryID *string  `form:"categoryId" validate:"omitempty,uuid"`
}

func (MenuItemQuery) ValidationMessages() map[string]string { return listQueryMessages }

func (q MenuItemQuery) query() service.MenuItemQuery {
	return service.MenuItemQuery{
		Page:       intOrZero(q.Page),
		Limit:      intOrZero(q.Limit),
		SortBy:     q.SortBy,
		SortOrder:  q.SortOrder,
		Name:       q.Name,
		VendorID:   parseOptionalUUID(q.VendorID),
		CategoryID: parseOptionalUUID(q.CategoryID),
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		Available:  q.Available,
	}
}

// VendorQuery is the query string of GET /vendors.
type VendorQuery struct {
	Page      *int   `form:"page" validate:"omitempty,min=1"`
	Limit     *int   `form:"limit" validate:"omitempty,min=1,max=100"`
	SortBy    string `form:"sortBy" validate:"omitempty,oneof=name createdAt updatedAt"`
	SortOrder string `form:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Name      string `form:"name"`
	IsActive  *bool  `form:"isActive"`
}

func (VendorQuery) ValidationMessages() map[string]string { return listQueryMessages }

func (q VendorQuery) query() service.VendorQuery {
	return service.VendorQuery{
		Page:      intOrZero(q.Page),
		Limit:     intOrZero(q.Limit),
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Name:      q.Name,
		IsActive:  q.IsActive,
	}
}

// IDParam is the {id} route parameter of menu item routes.
type IDParam struct {
	ID string `form:"id" validate:"required,uuid"`
}

// VendorIDParam is the {id} route parameter of vendor routes.
type VendorIDParam struct {
	ID string `form:"id" validate:"required,uuid"`
}

func (VendorIDParam) ValidationMessages() map[string]string {
	return map[string]string{"id.required": "Vendor ID is required"}
}

// HealthResponse is the body of the health endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// parseOptionalUUID parses a value that already passed uuid validation.
func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
