package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/domain"
	"github.com/phrazzld/kitchen-api/internal/paging"
	"github.com/phrazzld/kitchen-api/internal/platform/logger"
	"github.com/phrazzld/kitchen-api/internal/store"
)

// CreateMenuItemInput carries the caller-supplied fields of a new menu item.
type CreateMenuItemInput struct {
	Name        string
	Description *string
	Price       float64
	Image       *string
	CategoryID  *uuid.UUID
}

// UpdateMenuItemInput is a partial update. VendorID, when set, must match
// the current owner; menu items never move between vendors.
type UpdateMenuItemInput struct {
	VendorID *uuid.UUID
	Patch    domain.MenuItemPatch
}

// MenuItemService manages menu items.
type MenuItemService interface {
	ListMenuItems(ctx context.Context, q MenuItemQuery) (paging.Page[domain.MenuItem], error)
	GetMenuItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error)

	// CreateMenuItem creates an available menu item owned by vendorID.
	CreateMenuItem(ctx context.Context, vendorID uuid.UUID, in CreateMenuItemInput) (*domain.MenuItem, error)

	// UpdateMenuItem applies a partial update and returns the stored result.
	UpdateMenuItem(ctx context.Context, id uuid.UUID, in UpdateMenuItemInput) (*domain.MenuItem, error)

	// DeleteMenuItem removes a menu item and returns its last state.
	DeleteMenuItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error)

	// ToggleAvailability flips the available flag.
	ToggleAvailability(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error)
}

type menuItemService struct {
	menuItems  store.MenuItemStore
	vendors    store.VendorStore
	categories store.CategoryStore
	db         *sql.DB
	logger     *slog.Logger
}

var _ MenuItemService = (*menuItemService)(nil)

// NewMenuItemService creates a MenuItemService.
func NewMenuItemService(
	menuItems store.MenuItemStore,
	vendors store.VendorStore,
	categories store.CategoryStore,
	db *sql.DB,
	logger *slog.Logger,
) (MenuItemService, error) {
	switch {
	case menuItems == nil:
		return nil, errors.New("menu item store cannot be nil")
	case vendors == nil:
		return nil, errors.New("vendor store cannot be nil")
	case categories == nil:
		return nil, errors.New("category store cannot be nil")
	case db == nil:
		return nil, errors.New("database cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &menuItemService{
		menuItems:  menuItems,
		vendors:    vendors,
		categories: categories,
		db:         db,
		logger:     logger.With(slog.String("component", "menu_item_service")),
	}, nil
}

// ListMenuItems implements MenuItemService.
func (s *menuItemService) ListMenuItems(
	ctx context.Context,
	q MenuItemQuery,
) (paging.Page[domain.MenuItem], error) {
	filter, req := q.normalize()

	total, err := s.menuItems.Count(ctx, filter)
	if err != nil {
		return paging.Page[domain.MenuItem]{}, translate(err, "list_menu_items", "")
	}
	items, err := s.menuItems.List(ctx, filter, req)
	if err != nil {
		return paging.Page[domain.MenuItem]{}, translate(err, "list_menu_items", "")
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("menu items retrieved",
		slog.Int("count", len(items)),
		slog.Int("total", total),
		slog.Int("page", req.Page))
	return paging.NewPage(items, req, total), nil
}

// GetMenuItem implements MenuItemService.
func (s *menuItemService) GetMenuItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	item, err := s.menuItems.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get_menu_item", msgMenuItemNotFound)
	}
	return item, nil
}

// CreateMenuItem implements MenuItemService.
func (s *menuItemService) CreateMenuItem(
	ctx context.Context,
	vendorID uuid.UUID,
	in CreateMenuItemInput,
) (*domain.MenuItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	item, err := domain.NewMenuItem(vendorID, in.Name, in.Description, in.Price, in.Image, in.CategoryID)
	if err != nil {
		return nil, translate(err, "create_menu_item", "")
	}

	var created *domain.MenuItem
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		vendors := s.vendors.WithTx(tx)
		categories := s.categories.WithTx(tx)
		menuItems := s.menuItems.WithTx(tx)

		if _, err := vendors.GetByID(ctx, vendorID); err != nil {
			return translate(err, "create_menu_item", msgVendorNotFound)
		}
		if item.CategoryID != nil {
			if _, err := categories.GetByID(ctx, *item.CategoryID); err != nil {
				return translate(err, "create_menu_item", msgCategoryNotFound)
			}
		}
		if err := menuItems.Create(ctx, item); err != nil {
			return err
		}

		var err error
		created, err = menuItems.GetByID(ctx, item.ID)
		return err
	})
	if err != nil {
		if domain.KindOf(err) == domain.KindUnknown {
			log.Error("failed to create menu item",
				slog.String("error", err.Error()),
				slog.String("vendor_id", vendorID.String()))
		}
		return nil, translate(err, "create_menu_item", "")
	}

	log.Info("menu item created",
		slog.String("menu_item_id", created.ID.String()),
		slog.String("vendor_id", vendorID.String()))
	return created, nil
}

// UpdateMenuItem implements MenuItemService.
func (s *menuItemService) UpdateMenuItem(
	ctx context.Context,
	id uuid.UUID,
	in UpdateMenuItemInput,
) (*domain.MenuItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.MenuItem
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		categories := s.categories.WithTx(tx)
		menuItems := s.menuItems.WithTx(tx)

		item, err := menuItems.GetByID(ctx, id)
		if err != nil {
			return translate(err, "update_menu_item", msgMenuItemNotFound)
		}

		if in.VendorID != nil && *in.VendorID != item.VendorID {
			log.Warn("refused to move menu item to another vendor",
				slog.String("menu_item_id", id.String()),
				slog.String("owner_id", item.VendorID.String()),
				slog.String("requested_vendor_id", in.VendorID.String()))
			return domain.Invalid(msgInvalidRequest)
		}

		if in.Patch.CategoryID.Set && in.Patch.CategoryID.Value != nil {
			if _, err := categories.GetByID(ctx, *in.Patch.CategoryID.Value); err != nil {
				return translate(err, "update_menu_item", msgCategoryNotFound)
			}
		}

		if err := in.Patch.Apply(item); err != nil {
			return err
		}
		if err := menuItems.Update(ctx, item); err != nil {
			return translate(err, "update_menu_item", msgMenuItemNotFound)
		}

		updated, err = menuItems.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, translate(err, "update_menu_item", msgMenuItemNotFound)
	}

	log.Debug("menu item updated", slog.String("menu_item_id", id.String()))
	return updated, nil
}

// DeleteMenuItem implements MenuItemService.
func (s *menuItemService) DeleteMenuItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	var deleted *domain.MenuItem
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		menuItems := s.menuItems.WithTx(tx)

		item, err := menuItems.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := menuItems.Delete(ctx, id); err != nil {
			return err
		}
		deleted = item
		return nil
	})
	if err != nil {
		return nil, translate(err, "delete_menu_item", msgMenuItemNotFound)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("menu item deleted",
		slog.String("menu_item_id", id.String()),
		slog.String("vendor_id", deleted.VendorID.String()))
	return deleted, nil
}

// ToggleAvailability implements MenuItemService.
func (s *menuItemService) ToggleAvailability(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	var toggled *domain.MenuItem
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		menuItems := s.menuItems.WithTx(tx)

		item, err := menuItems.GetByID(ctx, id)
		if err != nil {
			return err
		}
		item.ToggleAvailability()
		if err := menuItems.Update(ctx, item); err != nil {
			return err
		}
		toggled = item
		return nil
	})
	if err != nil {
		return nil, translate(err, "toggle_menu_item_availability", msgMenuItemNotFound)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("menu item availability toggled",
		slog.String("menu_item_id", id.String()),
		slog.Bool("available", toggled.Available))
	return toggled, nil
}
