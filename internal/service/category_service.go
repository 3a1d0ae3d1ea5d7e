package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/domain"
	"github.com/phrazzld/kitchen-api/internal/platform/logger"
	"github.com/phrazzld/kitchen-api/internal/store"
)

// CategoryService lists and creates menu categories.
type CategoryService interface {
	// GetVendorCategories lists the categories created by an existing vendor.
	GetVendorCategories(ctx context.Context, vendorID uuid.UUID) ([]domain.Category, error)

	// CreateCategory creates a category on behalf of vendorID. Names are
	// unique across all vendors, ignoring case.
	CreateCategory(ctx context.Context, vendorID uuid.UUID, name string) (*domain.Category, error)
}

type categoryService struct {
	categories store.CategoryStore
	vendors    store.VendorStore
	db         *sql.DB
	logger     *slog.Logger
}

var _ CategoryService = (*categoryService)(nil)

// NewCategoryService creates a CategoryService.
func NewCategoryService(
	categories store.CategoryStore,
	vendors store.VendorStore,
	db *sql.DB,
	logger *slog.Logger,
) (CategoryService, error) {
	switch {
	case categories == nil:
		return nil, errors.New("category store cannot be nil")
	case vendors == nil:
		return nil, errors.New("vendor store cannot be nil")
	case db == nil:
		return nil, errors.New("database cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &categoryService{
		categories: categories,
		vendors:    vendors,
		db:         db,
		logger:     logger.With(slog.String("component", "category_service")),
	}, nil
}

// GetVendorCategories implements CategoryService.
func (s *categoryService) GetVendorCategories(ctx context.Context, vendorID uuid.UUID) ([]domain.Category, error) {
	if _, err := s.vendors.GetByID(ctx, vendorID); err != nil {
		return nil, translate(err, "get_vendor_categories", msgVendorNotFound)
	}

	categories, err := s.categories.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, translate(err, "get_vendor_categories", "")
	}
	return categories, nil
}

// CreateCategory implements CategoryService.
func (s *categoryService) CreateCategory(
	ctx context.Context,
	vendorID uuid.UUID,
	name string,
) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	category, err := domain.NewCategory(name, &vendorID)
	if err != nil {
		return nil, translate(err, "create_category", "")
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		categories := s.categories.WithTx(tx)

		taken, err := categories.NameExists(ctx, category.Name)
		if err != nil {
			return err
		}
		if taken {
			return domain.Conflict(msgCategoryExists)
		}
		return categories.Create(ctx, category)
	})
	if err != nil {
		if errors.Is(err, store.ErrCategoryExists) {
			err = domain.NewError(domain.KindConflict, msgCategoryExists, err)
		}
		if domain.KindOf(err) != domain.KindConflict {
			log.Error("failed to create category", slog.String("error", err.Error()))
		}
		return nil, translate(err, "create_category", "")
	}

	log.Info("category created",
		slog.String("category_id", category.ID.String()),
		slog.String("vendor_id", vendorID.String()))
	return category, nil
}
