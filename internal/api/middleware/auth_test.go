package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/api/shared"
	"github.com/phrazzld/kitchen-api/internal/domain"
	"github.com/phrazzld/kitchen-api/internal/mocks"
	"github.com/phrazzld/kitchen-api/internal/platform/logger"
	"github.com/phrazzld/kitchen-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func vendorPrincipal(active bool) *domain.Principal {
	return &domain.Principal{ID: uuid.New(), Name: "Pizza Place", UserType: domain.UserTypeVendor, IsActive: &active}
}

func customerPrincipal() *domain.Principal {
	return &domain.Principal{ID: uuid.New(), Name: "Ada", UserType: domain.UserTypeCustomer}
}

// okHandler records the principal it saw and answers 200.
func okHandler(seen **domain.Principal) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen, _ = shared.PrincipalFrom(r.Context())
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	customer := customerPrincipal()
	claimsFor := func(p *domain.Principal) *auth.Claims {
		return &auth.Claims{UserID: p.ID, UserType: p.UserType}
	}

	tests := []struct {
		name          string
		authHeader    string
		claims        *auth.Claims
		validateErr   error
		loadErr       error
		wantStatus    int
		wantMessage   string
		wantPrincipal bool
	}{
		{
			name:          "valid token",
			authHeader:    "Bearer good",
			claims:        claimsFor(customer),
			wantStatus:    http.StatusOK,
			wantPrincipal: true,
		},
		{
			name:        "missing header",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authentication required",
		},
		{
			name:        "not a bearer header",
			authHeader:  "Basic dXNlcjpwYXNz",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authentication required",
		},
		{
			name:        "empty bearer token",
			authHeader:  "Bearer ",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authentication required",
		},
		{
			name:        "expired token",
			authHeader:  "Bearer old",
			validateErr: auth.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authentication failed: authentication token has expired",
		},
		{
			name:        "bad signature",
			authHeader:  "Bearer forged",
			validateErr: fmt.Errorf("signature mismatch: %w", auth.ErrInvalidToken),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authentication failed: invalid authentication token",
		},
		{
			name:        "principal deleted",
			authHeader:  "Bearer good",
			claims:      &auth.Claims{UserID: uuid.New(), UserType: domain.UserTypeCustomer},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid authentication token",
		},
		{
			name:        "principal lookup failure",
			authHeader:  "Bearer good",
			claims:      claimsFor(customer),
			loadErr:     errors.New("connection refused"),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authentication failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := &mocks.MockJWTService{Claims: tt.claims, ValidateErr: tt.validateErr}
			principals := &mocks.MockAuthService{Principals: map[uuid.UUID]*domain.Principal{customer.ID: customer}}
			if tt.loadErr != nil {
				principals.LoadPrincipalFn = func(context.Context, uuid.UUID, domain.UserType) (*domain.Principal, error) {
					return nil, tt.loadErr
				}
			}
			m := NewAuthMiddleware(jwtService, principals, nil)

			var seen *domain.Principal
			req := httptest.NewRequest(http.MethodGet, "/api/menu-items", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			m.Authenticate(okHandler(&seen)).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantPrincipal {
				require.NotNil(t, seen)
				assert.Equal(t, customer.ID, seen.ID)
				return
			}
			assert.Nil(t, seen)
			assert.Equal(t, tt.wantMessage, gjson.Get(w.Body.String(), "message").String())
			assert.False(t, gjson.Get(w.Body.String(), "success").Bool())
		})
	}
}

func TestAuthenticateRedactsLogs(t *testing.T) {
	buf, log := logger.NewTestLogger(t)
	jwtService := &mocks.MockJWTService{
		ValidateErr: fmt.Errorf("verify with postgres://auth:p4ssw0rd@db:5432/auth: %w", auth.ErrInvalidToken),
	}
	m := NewAuthMiddleware(jwtService, &mocks.MockAuthService{}, log)

	req := httptest.NewRequest(http.MethodGet, "/api/vendors", nil)
	req.Header.Set("Authorization", "Bearer x")
	req = req.WithContext(logger.WithLogger(req.Context(), log))
	w := httptest.NewRecorder()
	m.Authenticate(okHandler(nil)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, buf.String(), "p4ssw0rd")
	assert.NotContains(t, w.Body.String(), "p4ssw0rd")
}

func TestRequireKind(t *testing.T) {
	m := NewAuthMiddleware(&mocks.MockJWTService{}, &mocks.MockAuthService{}, nil)

	tests := []struct {
		name        string
		guard       func(http.Handler) http.Handler
		principal   *domain.Principal
		wantStatus  int
		wantMessage string
	}{
		{name: "vendor allowed", guard: m.RequireVendor, principal: vendorPrincipal(true), wantStatus: http.StatusOK},
		{name: "customer refused by vendor guard", guard: m.RequireVendor, principal: customerPrincipal(),
			wantStatus: http.StatusForbidden, wantMessage: "Unauthorized"},
		{name: "inactive vendor", guard: m.RequireVendor, principal: vendorPrincipal(false),
			wantStatus: http.StatusForbidden, wantMessage: "Access denied: Vendor account is inactive"},
		{name: "customer allowed", guard: m.RequireCustomer, principal: customerPrincipal(), wantStatus: http.StatusOK},
		{name: "vendor refused by customer guard", guard: m.RequireCustomer, principal: vendorPrincipal(true),
			wantStatus: http.StatusForbidden, wantMessage: "Unauthorized"},
		{name: "unauthenticated", guard: m.RequireVendor,
			wantStatus: http.StatusUnauthorized, wantMessage: "Authentication required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/vendors/menu-items", nil)
			if tt.principal != nil {
				req = req.WithContext(shared.WithPrincipal(req.Context(), tt.principal))
			}
			w := httptest.NewRecorder()
			tt.guard(okHandler(nil)).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, gjson.Get(w.Body.String(), "message").String())
			}
		})
	}
}
