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

const vendorColumns = `id, name, email, address, phone, password_hash, is_active, created_at, updated_at`

var vendorSortColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// PostgresVendorStore implements store.VendorStore.
type PostgresVendorStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVendorStore creates a vendor store over db.
// If logger is nil, a default logger will be used.
func NewPostgresVendorStore(db store.DBTX, logger *slog.Logger) *PostgresVendorStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresVendorStore{
		db:     db,
		logger: logger.With(slog.String("component", "vendor_store")),
	}
}

var _ store.VendorStore = (*PostgresVendorStore)(nil)

// WithTx implements store.VendorStore.WithTx
func (s *PostgresVendorStore) WithTx(tx *sql.Tx) store.VendorStore {
	return &PostgresVendorStore{db: tx, logger: s.logger}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVendor(row rowScanner) (*domain.Vendor, error) {
	var v domain.Vendor
	var address, phone sql.NullString
	if err := row.Scan(
		&v.ID, &v.Name, &v.Email, &address, &phone,
		&v.PasswordHash, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	v.Address = address.String
	v.Phone = phone.String
	return &v, nil
}

// Create implements store.VendorStore.Create
func (s *PostgresVendorStore) Create(ctx context.Context, v *domain.Vendor) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := v.Validate(); err != nil {
		log.Warn("vendor validation failed during create", slog.String("error", err.Error()))
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vendors (id, name, email, address, phone, password_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		v.ID, v.Name, v.Email, v.Address, v.Phone, v.PasswordHash, v.IsActive, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrEmailExists
		}
		log.Error("failed to create vendor",
			slog.String("error", err.Error()),
			slog.String("vendor_id", v.ID.String()))
		return MapError(err)
	}

	log.Info("vendor created", slog.String("vendor_id", v.ID.String()))
	return nil
}

// GetByID implements store.VendorStore.GetByID
func (s *PostgresVendorStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	return s.getOne(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id)
}

// GetByEmail implements store.VendorStore.GetByEmail
func (s *PostgresVendorStore) GetByEmail(ctx context.Context, email string) (*domain.Vendor, error) {
	return s.getOne(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE email = $1`, email)
}

func (s *PostgresVendorStore) getOne(ctx context.Context, query string, arg any) (*domain.Vendor, error) {
	v, err := scanVendor(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrVendorNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get vendor",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return v, nil
}

// EmailExists implements store.VendorStore.EmailExists
func (s *PostgresVendorStore) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM vendors WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

func vendorPredicate(f store.VendorFilter) *predicate {
	p := &predicate{}
	p.add("is_active = $%d", f.IsActive)
	if f.Name != "" {
		p.add("name ILIKE $%d", containsPattern(f.Name))
	}
	return p
}

// List implements store.VendorStore.List
func (s *PostgresVendorStore) List(
	ctx context.Context,
	filter store.VendorFilter,
	req paging.Request,
) ([]domain.Vendor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	p := vendorPredicate(filter)
	limit, args := p.page(req)
	query := `SELECT ` + vendorColumns + ` FROM vendors` + p.where() +
		orderBy(req, vendorSortColumns, "created_at") + limit

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list vendors", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	vendors := []domain.Vendor{}
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			log.Error("failed to scan vendor row", slog.String("error", err.Error()))
			return nil, err
		}
		vendors = append(vendors, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("vendors listed", slog.Int("count", len(vendors)), slog.Int("page", req.Page))
	return vendors, nil
}

// Count implements store.VendorStore.Count
func (s *PostgresVendorStore) Count(ctx context.Context, filter store.VendorFilter) (int, error) {
	p := vendorPredicate(filter)
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vendors`+p.where(), p.args...).Scan(&n); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to count vendors",
			slog.String("error", err.Error()))
		return 0, MapError(err)
	}
	return n, nil
}

// AnyExist implements store.VendorStore.AnyExist
func (s *PostgresVendorStore) AnyExist(ctx context.Context) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM vendors)`).Scan(&exists); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}
