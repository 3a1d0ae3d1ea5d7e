package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/domain"
	"github.com/phrazzld/kitchen-api/internal/paging"
	"github.com/phrazzld/kitchen-api/internal/service/auth"
	"github.com/phrazzld/kitchen-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, sqlMock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, sqlMock
}

// MockCustomerStore mocks store.CustomerStore. WithTx returns the receiver.
type MockCustomerStore struct {
	mock.Mock
}

func (m *MockCustomerStore) Create(ctx context.Context, c *domain.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerStore) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerStore) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerStore) WithTx(*sql.Tx) store.CustomerStore { return m }

// MockVendorStore mocks store.VendorStore. WithTx returns the receiver.
type MockVendorStore struct {
	mock.Mock
}

func (m *MockVendorStore) Create(ctx context.Context, v *domain.Vendor) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVendorStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorStore) GetByEmail(ctx context.Context, email string) (*domain.Vendor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorStore) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockVendorStore) List(
	ctx context.Context,
	f store.VendorFilter,
	req paging.Request,
) ([]domain.Vendor, error) {
	args := m.Called(ctx, f, req)
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

func (m *MockVendorStore) Count(ctx context.Context, f store.VendorFilter) (int, error) {
	args := m.Called(ctx, f)
	return args.Int(0), args.Error(1)
}

func (m *MockVendorStore) AnyExist(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockVendorStore) WithTx(*sql.Tx) store.VendorStore { return m }

// MockCategoryStore mocks store.CategoryStore. WithTx returns the receiver.
type MockCategoryStore struct {
	mock.Mock
}

func (m *MockCategoryStore) Create(ctx context.Context, c *domain.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryStore) NameExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryStore) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]domain.Category, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryStore) WithTx(*sql.Tx) store.CategoryStore { return m }

// MockMenuItemStore mocks store.MenuItemStore. WithTx returns the receiver.
type MockMenuItemStore struct {
	mock.Mock
}

func (m *MockMenuItemStore) Create(ctx context.Context, item *domain.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	args := m.Called(ctx, id)
	if fn, ok := args.Get(0).(func(context.Context, uuid.UUID) *domain.MenuItem); ok {
		return fn(ctx, id), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuItemStore) Update(ctx context.Context, item *domain.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuItemStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMenuItemStore) List(
	ctx context.Context,
	f store.MenuItemFilter,
	req paging.Request,
) ([]domain.MenuItem, error) {
	args := m.Called(ctx, f, req)
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockMenuItemStore) Count(ctx context.Context, f store.MenuItemFilter) (int, error) {
	args := m.Called(ctx, f)
	return args.Int(0), args.Error(1)
}

func (m *MockMenuItemStore) ListByVendors(
	ctx context.Context,
	ids []uuid.UUID,
) (map[uuid.UUID][]domain.MenuItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID][]domain.MenuItem), args.Error(1)
}

func (m *MockMenuItemStore) WithTx(*sql.Tx) store.MenuItemStore { return m }

// MockHasher mocks auth.PasswordHasher.
type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// MockVerifier mocks auth.PasswordVerifier.
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

// MockJWTService mocks auth.JWTService.
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateToken(
	ctx context.Context,
	id uuid.UUID,
	email string,
	userType domain.UserType,
) (string, error) {
	args := m.Called(ctx, id, email, userType)
	return args.String(0), args.Error(1)
}

func (m *MockJWTService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}
