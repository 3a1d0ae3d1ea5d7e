package postgres

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

// PostgresCategoryStore implements store.CategoryStore.
type PostgresCategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCategoryStore creates a category store over db.
// If logger is nil, a default logger will be used.
func NewPostgresCategoryStore(db store.DBTX, logger *slog.Logger) *PostgresCategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

// WithTx implements store.CategoryStore.WithTx
func (s *PostgresCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	return &PostgresCategoryStore{db: tx, logger: s.logger}
}

// Create implements store.CategoryStore.Create
func (s *PostgresCategoryStore) Create(ctx context.Context, c *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := c.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, vendor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.VendorID, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrCategoryExists
		}
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("category_id", c.ID.String()))
		return MapError(err)
	}

	log.Info("category created",
		slog.String("category_id", c.ID.String()),
		slog.String("name", c.Name))
	return nil
}

// GetByID implements store.CategoryStore.GetByID
func (s *PostgresCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var (
		c        domain.Category
		vendorID uuid.NullUUID
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, vendor_id, created_at, updated_at
		FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &vendorID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCategoryNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get category",
			slog.String("error", err.Error()),
			slog.String("category_id", id.String()))
		return nil, MapError(err)
	}
	if vendorID.Valid {
		c.VendorID = &vendorID.UUID
	}
	return &c, nil
}

// NameExists implements store.CategoryStore.NameExists
func (s *PostgresCategoryStore) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE LOWER(name) = LOWER($1))`, name).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// ListByVendor implements store.CategoryStore.ListByVendor
func (s *PostgresCategoryStore) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, vendor_id, created_at, updated_at
		FROM categories WHERE vendor_id = $1
		ORDER BY name ASC`, vendorID)
	if err != nil {
		log.Error("failed to list categories", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	categories := []domain.Category{}
	for rows.Next() {
		var (
			c   domain.Category
			vid uuid.NullUUID
		)
		if err := rows.Scan(&c.ID, &c.Name, &vid, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		if vid.Valid {
			c.VendorID = &vid.UUID
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
