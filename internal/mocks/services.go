package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/domain"
	"github.com/phrazzld/kitchen-api/internal/paging"
	"github.com/phrazzld/kitchen-api/internal/service"
)

// MockAuthService implements service.AuthService for testing.
// LoadPrincipal falls back to Principals keyed by id.
type MockAuthService struct {
	RegisterCustomerFn func(ctx context.Context, name, email, password string) (*domain.Customer, error)
	LoginCustomerFn    func(ctx context.Context, email, password string) (*service.LoginResult, error)
	LoginVendorFn      func(ctx context.Context, email, password string) (*service.LoginResult, error)
	LoadPrincipalFn    func(ctx context.Context, id uuid.UUID, userType domain.UserType) (*domain.Principal, error)

	Principals map[uuid.UUID]*domain.Principal
}

var _ service.AuthService = (*MockAuthService)(nil)

func (m *MockAuthService) RegisterCustomer(ctx context.Context, name, email, password string) (*domain.Customer, error) {
	if m.RegisterCustomerFn != nil {
		return m.RegisterCustomerFn(ctx, name, email, password)
	}
	return domain.NewCustomer(name, email, "hashed")
}

func (m *MockAuthService) LoginCustomer(ctx context.Context, email, password string) (*service.LoginResult, error) {
	if m.LoginCustomerFn != nil {
		return m.LoginCustomerFn(ctx, email, password)
	}
	return nil, domain.Unauthenticated("Invalid credentials")
}

func (m *MockAuthService) LoginVendor(ctx context.Context, email, password string) (*service.LoginResult, error) {
	if m.LoginVendorFn != nil {
		return m.LoginVendorFn(ctx, email, password)
	}
	return nil, domain.Unauthenticated("Invalid credentials")
}

func (m *MockAuthService) LoadPrincipal(
	ctx context.Context,
	id uuid.UUID,
	userType domain.UserType,
) (*domain.Principal, error) {
	if m.LoadPrincipalFn != nil {
		return m.LoadPrincipalFn(ctx, id, userType)
	}
	if p, ok := m.Principals[id]; ok && p.UserType == userType {
		return p, nil
	}
	return nil, domain.NotFound("Principal not found")
}

// MockVendorService implements service.VendorService for testing.
type MockVendorService struct {
	ListVendorsFn        func(ctx context.Context, q service.VendorQuery) (paging.Page[domain.Vendor], error)
	GetVendorFn          func(ctx context.Context, id uuid.UUID) (*domain.Vendor, error)
	GetVendorMenuItemsFn func(ctx context.Context, vendorID uuid.UUID) ([]domain.MenuItem, error)
	VendorsExistFn       func(ctx context.Context) (bool, error)
}

var _ service.VendorService = (*MockVendorService)(nil)

func (m *MockVendorService) ListVendors(ctx context.Context, q service.VendorQuery) (paging.Page[domain.Vendor], error) {
	if m.ListVendorsFn != nil {
		return m.ListVendorsFn(ctx, q)
	}
	return paging.NewPage[domain.Vendor](nil, paging.Normalize(q.Page, q.Limit, q.SortBy, q.SortOrder), 0), nil
}

func (m *MockVendorService) GetVendor(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	if m.GetVendorFn != nil {
		return m.GetVendorFn(ctx, id)
	}
	return nil, domain.NotFound("Vendor not found")
}

func (m *MockVendorService) GetVendorMenuItems(ctx context.Context, vendorID uuid.UUID) ([]domain.MenuItem, error) {
	if m.GetVendorMenuItemsFn != nil {
		return m.GetVendorMenuItemsFn(ctx, vendorID)
	}
	return nil, domain.NotFound("Vendor not found")
}

func (m *MockVendorService) VendorsExist(ctx context.Context) (bool, error) {
	if m.VendorsExistFn != nil {
		return m.VendorsExistFn(ctx)
	}
	return false, nil
}

// MockCategoryService implements service.CategoryService for testing.
type MockCategoryService struct {
	GetVendorCategoriesFn func(ctx context.Context, vendorID uuid.UUID) ([]domain.Category, error)
	CreateCategoryFn      func(ctx context.Context, vendorID uuid.UUID, name string) (*domain.Category, error)
}

var _ service.CategoryService = (*MockCategoryService)(nil)

func (m *MockCategoryService) GetVendorCategories(ctx context.Context, vendorID uuid.UUID) ([]domain.Category, error) {
	if m.GetVendorCategoriesFn != nil {
		return m.GetVendorCategoriesFn(ctx, vendorID)
	}
	return []domain.Category{}, nil
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, vendorID uuid.UUID, name string) (*domain.Category, error) {
	if m.CreateCategoryFn != nil {
		return m.CreateCategoryFn(ctx, vendorID, name)
	}
	return domain.NewCategory(name, &vendorID)
}

// MockMenuItemService implements service.MenuItemService for testing.
type MockMenuItemService struct {
	ListMenuItemsFn      func(ctx context.Context, q service.MenuItemQuery) (paging.Page[domain.MenuItem], error)
	GetMenuItemFn        func(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error)
	CreateMenuItemFn     func(ctx context.Context, vendorID uuid.UUID, in service.CreateMenuItemInput) (*domain.MenuItem, error)
	UpdateMenuItemFn     func(ctx context.Context, id uuid.UUID, in service.UpdateMenuItemInput) (*domain.MenuItem, error)
	DeleteMenuItemFn     func(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error)
	ToggleAvailabilityFn func(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error)

	// Items backs GetMenuItem when GetMenuItemFn is nil.
	Items map[uuid.UUID]*domain.MenuItem
}

var _ service.MenuItemService = (*MockMenuItemService)(nil)

func (m *MockMenuItemService) ListMenuItems(
	ctx context.Context,
	q service.MenuItemQuery,
) (paging.Page[domain.MenuItem], error) {
	if m.ListMenuItemsFn != nil {
		return m.ListMenuItemsFn(ctx, q)
	}
	return paging.NewPage[domain.MenuItem](nil, paging.Normalize(q.Page, q.Limit, q.SortBy, q.SortOrder), 0), nil
}

func (m *MockMenuItemService) GetMenuItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	if m.GetMenuItemFn != nil {
		return m.GetMenuItemFn(ctx, id)
	}
	if item, ok := m.Items[id]; ok {
		return item, nil
	}
	return nil, domain.NotFound("Menu item not found")
}

func (m *MockMenuItemService) CreateMenuItem(
	ctx context.Context,
	vendorID uuid.UUID,
	in service.CreateMenuItemInput,
) (*domain.MenuItem, error) {
	if m.CreateMenuItemFn != nil {
		return m.CreateMenuItemFn(ctx, vendorID, in)
	}
	return domain.NewMenuItem(vendorID, in.Name, in.Description, in.Price, in.Image, in.CategoryID)
}

func (m *MockMenuItemService) UpdateMenuItem(
	ctx context.Context,
	id uuid.UUID,
	in service.UpdateMenuItemInput,
) (*domain.MenuItem, error) {
	if m.UpdateMenuItemFn != nil {
		return m.UpdateMenuItemFn(ctx, id, in)
	}
	item, err := m.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.Patch.Apply(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (m *MockMenuItemService) DeleteMenuItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	if m.DeleteMenuItemFn != nil {
		return m.DeleteMenuItemFn(ctx, id)
	}
	item, err := m.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	delete(m.Items, id)
	return item, nil
}

func (m *MockMenuItemService) ToggleAvailability(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	if m.ToggleAvailabilityFn != nil {
		return m.ToggleAvailabilityFn(ctx, id)
	}
	item, err := m.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	item.ToggleAvailability()
	return item, nil
}
