package postgres

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

const menuItemSelect = `
	SELECT mi.id, mi.name, mi.description, mi.price, mi.image, mi.available,
	       mi.vendor_id, mi.category_id, mi.created_at, mi.updated_at,
	       v.name, v.is_active, c.name
	FROM menu_items mi
	JOIN vendors v ON v.id = mi.vendor_id
	LEFT JOIN categories c ON c.id = mi.category_id`

var menuItemSortColumns = map[string]string{
	"name":      "mi.name",
	"price":     "mi.price",
	"createdAt": "mi.created_at",
	"updatedAt": "mi.updated_at",
}

// PostgresMenuItemStore implements store.MenuItemStore.
type PostgresMenuItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMenuItemStore creates a menu item store over db.
// If logger is nil, a default logger will be used.
func NewPostgresMenuItemStore(db store.DBTX, logger *slog.Logger) *PostgresMenuItemStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresMenuItemStore{
		db:     db,
		logger: logger.With(slog.String("component", "menu_item_store")),
	}
}

var _ store.MenuItemStore = (*PostgresMenuItemStore)(nil)

// WithTx implements store.MenuItemStore.WithTx
func (s *PostgresMenuItemStore) WithTx(tx *sql.Tx) store.MenuItemStore {
	return &PostgresMenuItemStore{db: tx, logger: s.logger}
}

func scanMenuItem(row rowScanner) (*domain.MenuItem, error) {
	var (
		m            domain.MenuItem
		description  sql.NullString
		image        sql.NullString
		categoryID   uuid.NullUUID
		vendorName   string
		vendorActive bool
		categoryName sql.NullString
	)
	if err := row.Scan(
		&m.ID, &m.Name, &description, &m.Price, &image, &m.Available,
		&m.VendorID, &categoryID, &m.CreatedAt, &m.UpdatedAt,
		&vendorName, &vendorActive, &categoryName,
	); err != nil {
		return nil, err
	}
	if description.Valid {
		m.Description = &description.String
	}
	if image.Valid {
		m.Image = &image.String
	}
	m.Vendor = &domain.VendorSummary{ID: m.VendorID, Name: vendorName, IsActive: vendorActive}
	if categoryID.Valid {
		m.CategoryID = &categoryID.UUID
		m.Category = &domain.CategorySummary{ID: categoryID.UUID, Name: categoryName.String}
	}
	return &m, nil
}

func scanMenuItems(rows *sql.Rows) ([]domain.MenuItem, error) {
	items := []domain.MenuItem{}
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// Create implements store.MenuItemStore.Create
func (s *PostgresMenuItemStore) Create(ctx context.Context, m *domain.MenuItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := m.Validate(); err != nil {
		log.Warn("menu item validation failed during create", slog.String("error", err.Error()))
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO menu_items
			(id, name, description, price, image, available, vendor_id, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.Name, m.Description, m.Price, m.Image, m.Available,
		m.VendorID, m.CategoryID, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		log.Error("failed to create menu item",
			slog.String("error", err.Error()),
			slog.String("menu_item_id", m.ID.String()),
			slog.String("vendor_id", m.VendorID.String()))
		return MapError(err)
	}

	log.Info("menu item created",
		slog.String("menu_item_id", m.ID.String()),
		slog.String("vendor_id", m.VendorID.String()))
	return nil
}

// GetByID implements store.MenuItemStore.GetByID
func (s *PostgresMenuItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	m, err := scanMenuItem(s.db.QueryRowContext(ctx, menuItemSelect+` WHERE mi.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrMenuItemNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get menu item",
			slog.String("error", err.Error()),
			slog.String("menu_item_id", id.String()))
		return nil, MapError(err)
	}
	return m, nil
}

// Update implements store.MenuItemStore.Update
func (s *PostgresMenuItemStore) Update(ctx context.Context, m *domain.MenuItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := m.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, image = $4,
		    available = $5, category_id = $6, updated_at = $7
		WHERE id = $8`,
		m.Name, m.Description, m.Price, m.Image, m.Available, m.CategoryID, m.UpdatedAt, m.ID)
	if err != nil {
		log.Error("failed to update menu item",
			slog.String("error", err.Error()),
			slog.String("menu_item_id", m.ID.String()))
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrMenuItemNotFound); err != nil {
		return err
	}

	log.Debug("menu item updated", slog.String("menu_item_id", m.ID.String()))
	return nil
}

// Delete implements store.MenuItemStore.Delete
func (s *PostgresMenuItemStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete menu item",
			slog.String("error", err.Error()),
			slog.String("menu_item_id", id.String()))
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrMenuItemNotFound); err != nil {
		return err
	}

	log.Info("menu item deleted", slog.String("menu_item_id", id.String()))
	return nil
}

func menuItemPredicate(f store.MenuItemFilter) *predicate {
	p := &predicate{}
	p.add("mi.available = $%d", f.Available)
	if f.Name != "" {
		p.add("mi.name ILIKE $%d", containsPattern(f.Name))
	}
	if f.VendorID != nil {
		p.add("mi.vendor_id = $%d", *f.VendorID)
	}
	if f.CategoryID != nil {
		p.add("mi.category_id = $%d", *f.CategoryID)
	}
	if f.MinPrice != nil {
		p.add("mi.price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		p.add("mi.price <= $%d", *f.MaxPrice)
	}
	return p
}

// List implements store.MenuItemStore.List
func (s *PostgresMenuItemStore) List(
	ctx context.Context,
	filter store.MenuItemFilter,
	req paging.Request,
) ([]domain.MenuItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	p := menuItemPredicate(filter)
	limit, args := p.page(req)
	query := menuItemSelect + p.where() + orderBy(req, menuItemSortColumns, "mi.created_at") + limit

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list menu items", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	items, err := scanMenuItems(rows)
	if err != nil {
		log.Error("failed to scan menu item rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("menu items listed", slog.Int("count", len(items)), slog.Int("page", req.Page))
	return items, nil
}

// Count implements store.MenuItemStore.Count
func (s *PostgresMenuItemStore) Count(ctx context.Context, filter store.MenuItemFilter) (int, error) {
	p := menuItemPredicate(filter)
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items mi`+p.where(), p.args...).Scan(&n)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to count menu items",
			slog.String("error", err.Error()))
		return 0, MapError(err)
	}
	return n, nil
}

// ListByVendors implements store.MenuItemStore.ListByVendors
func (s *PostgresMenuItemStore) ListByVendors(
	ctx context.Context,
	vendorIDs []uuid.UUID,
) (map[uuid.UUID][]domain.MenuItem, error) {
	grouped := make(map[uuid.UUID][]domain.MenuItem, len(vendorIDs))
	if len(vendorIDs) == 0 {
		return grouped, nil
	}

	holders, args := inList(vendorIDs, 0)
	rows, err := s.db.QueryContext(ctx,
		menuItemSelect+` WHERE mi.vendor_id IN (`+holders+`) ORDER BY mi.created_at DESC`, args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list vendor menu items",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	items, err := scanMenuItems(rows)
	if err != nil {
		return nil, err
	}
	for _, m := range items {
		grouped[m.VendorID] = append(grouped[m.VendorID], m)
	}
	return grouped, nil
}
