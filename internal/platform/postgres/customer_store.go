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

const customerColumns = `id, name, email, password_hash, created_at, updated_at`

// PostgresCustomerStore implements store.CustomerStore.
type PostgresCustomerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCustomerStore creates a customer store over db.
// If logger is nil, a default logger will be used.
func NewPostgresCustomerStore(db store.DBTX, logger *slog.Logger) *PostgresCustomerStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCustomerStore{
		db:     db,
		logger: logger.With(slog.String("component", "customer_store")),
	}
}

var _ store.CustomerStore = (*PostgresCustomerStore)(nil)

// WithTx implements store.CustomerStore.WithTx
func (s *PostgresCustomerStore) WithTx(tx *sql.Tx) store.CustomerStore {
	return &PostgresCustomerStore{db: tx, logger: s.logger}
}

// Create implements store.CustomerStore.Create
func (s *PostgresCustomerStore) Create(ctx context.Context, c *domain.Customer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := c.Validate(); err != nil {
		log.Warn("customer validation failed during create", slog.String("error", err.Error()))
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO customers (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Email, c.PasswordHash, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("customer email already registered", slog.String("customer_id", c.ID.String()))
			return store.ErrEmailExists
		}
		log.Error("failed to create customer",
			slog.String("error", err.Error()),
			slog.String("customer_id", c.ID.String()))
		return MapError(err)
	}

	log.Info("customer created", slog.String("customer_id", c.ID.String()))
	return nil
}

// GetByID implements store.CustomerStore.GetByID
func (s *PostgresCustomerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return s.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

// GetByEmail implements store.CustomerStore.GetByEmail
func (s *PostgresCustomerStore) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return s.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)
}

func (s *PostgresCustomerStore) getOne(ctx context.Context, query string, arg any) (*domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var c domain.Customer
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCustomerNotFound
		}
		log.Error("failed to get customer", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return &c, nil
}

// EmailExists implements store.CustomerStore.EmailExists
func (s *PostgresCustomerStore) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM customers WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check customer email",
			slog.String("error", err.Error()))
		return false, MapError(err)
	}
	return exists, nil
}
