package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/domain"
	"github.com/phrazzld/kitchen-api/internal/platform/logger"
	"github.com/phrazzld/kitchen-api/internal/service/auth"
	"github.com/phrazzld/kitchen-api/internal/store"
)

// LoginUser is the password-free account summary returned on login.
// Address, Phone and IsActive are set only for vendors.
type LoginUser struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	UserType domain.UserType `json:"userType"`
	Address  *string         `json:"address,omitempty"`
	Phone    *string         `json:"phone,omitempty"`
	IsActive *bool           `json:"isActive,omitempty"`
}

// LoginResult is the payload of a successful login.
type LoginResult struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// AuthService registers customers and authenticates customers and vendors.
type AuthService interface {
	// RegisterCustomer creates a customer account. The email must be unused
	// by both customers and vendors.
	RegisterCustomer(ctx context.Context, name, email, password string) (*domain.Customer, error)

	// LoginCustomer verifies customer credentials and issues a token.
	LoginCustomer(ctx context.Context, email, password string) (*LoginResult, error)

	// LoginVendor verifies vendor credentials and issues a token.
	// Inactive vendors are refused before the password is checked.
	LoginVendor(ctx context.Context, email, password string) (*LoginResult, error)

	// LoadPrincipal resolves the account behind a verified token.
	LoadPrincipal(ctx context.Context, id uuid.UUID, userType domain.UserType) (*domain.Principal, error)
}

type authService struct {
	customers  store.CustomerStore
	vendors    store.VendorStore
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
	jwtService auth.JWTService
	db         *sql.DB
	logger     *slog.Logger
}

var _ AuthService = (*authService)(nil)

// NewAuthService creates an AuthService. It returns an error if any
// dependency is nil.
func NewAuthService(
	customers store.CustomerStore,
	vendors store.VendorStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	jwtService auth.JWTService,
	db *sql.DB,
	logger *slog.Logger,
) (AuthService, error) {
	switch {
	case customers == nil:
		return nil, errors.New("customer store cannot be nil")
	case vendors == nil:
		return nil, errors.New("vendor store cannot be nil")
	case hasher == nil:
		return nil, errors.New("password hasher cannot be nil")
	case verifier == nil:
		return nil, errors.New("password verifier cannot be nil")
	case jwtService == nil:
		return nil, errors.New("jwt service cannot be nil")
	case db == nil:
		return nil, errors.New("database cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		customers:  customers,
		vendors:    vendors,
		hasher:     hasher,
		verifier:   verifier,
		jwtService: jwtService,
		db:         db,
		logger:     logger.With(slog.String("component", "auth_service")),
	}, nil
}

// RegisterCustomer implements AuthService.
func (s *authService) RegisterCustomer(
	ctx context.Context,
	name, email, password string,
) (*domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	email = strings.TrimSpace(email)

	// The email is checked before hashing so rejected attempts skip bcrypt.
	var customer *domain.Customer
	var hashErr error
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		customers := s.customers.WithTx(tx)
		vendors := s.vendors.WithTx(tx)

		taken, err := customers.EmailExists(ctx, email)
		if err != nil {
			return err
		}
		if !taken {
			if taken, err = vendors.EmailExists(ctx, email); err != nil {
				return err
			}
		}
		if taken {
			return domain.Conflict(msgEmailInUse)
		}

		hash, err := s.hasher.Hash(password)
		if err != nil {
			hashErr = err
			return err
		}
		if customer, err = domain.NewCustomer(name, email, hash); err != nil {
			return err
		}
		return customers.Create(ctx, customer)
	})
	if hashErr != nil {
		log.Error("failed to hash password", slog.String("error", hashErr.Error()))
		return nil, NewServiceError("register_customer", "failed to hash password", hashErr)
	}
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			err = domain.NewError(domain.KindConflict, msgEmailInUse, err)
		}
		if domain.KindOf(err) == domain.KindConflict {
			log.Debug("registration rejected: email already in use")
		} else {
			log.Error("failed to register customer", slog.String("error", err.Error()))
		}
		return nil, translate(err, "register_customer", "")
	}

	log.Info("customer registered", slog.String("customer_id", customer.ID.String()))
	return customer, nil
}

// LoginCustomer implements AuthService.
func (s *authService) LoginCustomer(ctx context.Context, email, password string) (*LoginResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	customer, err := s.customers.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("customer login failed: unknown email")
			return nil, domain.Unauthenticated(msgInvalidCreds)
		}
		return nil, translate(err, "login_customer", "")
	}

	if err := s.verifier.Compare(customer.PasswordHash, password); err != nil {
		log.Debug("customer login failed: password mismatch",
			slog.String("customer_id", customer.ID.String()))
		return nil, domain.Unauthenticated(msgInvalidCreds)
	}

	token, err := s.jwtService.GenerateToken(ctx, customer.ID, customer.Email, domain.UserTypeCustomer)
	if err != nil {
		log.Error("failed to generate token", slog.String("error", err.Error()))
		return nil, NewServiceError("login_customer", "failed to generate token", err)
	}

	return &LoginResult{
		Token: token,
		User: LoginUser{
			ID:       customer.ID,
			Name:     customer.Name,
			Email:    customer.Email,
			UserType: domain.UserTypeCustomer,
		},
	}, nil
}

// LoginVendor implements AuthService.
func (s *authService) LoginVendor(ctx context.Context, email, password string) (*LoginResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	vendor, err := s.vendors.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("vendor login failed: unknown email")
			return nil, domain.Unauthenticated(msgInvalidCreds)
		}
		return nil, translate(err, "login_vendor", "")
	}

	if !vendor.IsActive {
		log.Info("vendor login refused: account inactive",
			slog.String("vendor_id", vendor.ID.String()))
		return nil, domain.Forbidden(msgAccountInactive)
	}

	if err := s.verifier.Compare(vendor.PasswordHash, password); err != nil {
		log.Debug("vendor login failed: password mismatch",
			slog.String("vendor_id", vendor.ID.String()))
		return nil, domain.Unauthenticated(msgInvalidCreds)
	}

	token, err := s.jwtService.GenerateToken(ctx, vendor.ID, vendor.Email, domain.UserTypeVendor)
	if err != nil {
		log.Error("failed to generate token", slog.String("error", err.Error()))
		return nil, NewServiceError("login_vendor", "failed to generate token", err)
	}

	address, phone, active := vendor.Address, vendor.Phone, vendor.IsActive
	return &LoginResult{
		Token: token,
		User: LoginUser{
			ID:       vendor.ID,
			Name:     vendor.Name,
			Email:    vendor.Email,
			UserType: domain.UserTypeVendor,
			Address:  &address,
			Phone:    &phone,
			IsActive: &active,
		},
	}, nil
}

// LoadPrincipal implements AuthService.
func (s *authService) LoadPrincipal(
	ctx context.Context,
	id uuid.UUID,
	userType domain.UserType,
) (*domain.Principal, error) {
	switch userType {
	case domain.UserTypeCustomer:
		c, err := s.customers.GetByID(ctx, id)
		if err != nil {
			return nil, translate(err, "load_principal", "Customer not found")
		}
		return domain.CustomerPrincipal(c), nil
	case domain.UserTypeVendor:
		v, err := s.vendors.GetByID(ctx, id)
		if err != nil {
			return nil, translate(err, "load_principal", msgVendorNotFound)
		}
		return domain.VendorPrincipal(v), nil
	default:
		return nil, domain.Unauthenticated("unauthorized: unknown user type")
	}
}
