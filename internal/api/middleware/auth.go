package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/api/shared"
	"github.com/phrazzld/kitchen-api/internal/domain"
	"github.com/phrazzld/kitchen-api/internal/platform/logger"
	"github.com/phrazzld/kitchen-api/internal/redact"
	"github.com/phrazzld/kitchen-api/internal/service/auth"
)

// PrincipalLoader resolves the live account behind a token.
type PrincipalLoader interface {
	LoadPrincipal(ctx context.Context, id uuid.UUID, userType domain.UserType) (*domain.Principal, error)
}

// AuthMiddleware authenticates requests and enforces the account kind.
type AuthMiddleware struct {
	jwtService auth.JWTService
	principals PrincipalLoader
	logger     *slog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, principals PrincipalLoader, log *slog.Logger) *AuthMiddleware {
	if log == nil {
		log = slog.Default()
	}
	return &AuthMiddleware{
		jwtService: jwtService,
		principals: principals,
		logger:     log.With(slog.String("component", "auth_middleware")),
	}
}

// Authenticate validates the bearer token, loads the principal it names and
// attaches it to the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required", nil)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
				"Authentication failed: "+tokenFailureReason(err), err)
			return
		}

		principal, err := m.principals.LoadPrincipal(r.Context(), claims.UserID, claims.UserType)
		switch {
		case err == nil:
		case domain.KindOf(err) == domain.KindNotFound:
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Invalid authentication token", err,
				shared.WithElevatedLogLevel())
			return
		default:
			logger.FromContextOrDefault(r.Context(), m.logger).Error("failed to load principal",
				slog.String("user_id", claims.UserID.String()),
				slog.String("error", redact.Error(err)))
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
				"Authentication failed: "+redact.Error(err), err)
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithPrincipal(r.Context(), principal)))
	})
}

// RequireCustomer allows only customer principals. It must run after Authenticate.
func (m *AuthMiddleware) RequireCustomer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := shared.PrincipalFrom(r.Context())
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required", nil)
			return
		}
		if !p.IsCustomer() {
			shared.RespondWithError(w, r, http.StatusForbidden, "Unauthorized", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireVendor allows only active vendor principals. It must run after Authenticate.
func (m *AuthMiddleware) RequireVendor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := shared.PrincipalFrom(r.Context())
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required", nil)
			return
		}
		if !p.IsVendor() {
			shared.RespondWithError(w, r, http.StatusForbidden, "Unauthorized", nil)
			return
		}
		if !p.Active() {
			shared.RespondWithErrorAndLog(w, r, http.StatusForbidden,
				"Access denied: Vendor account is inactive", nil, shared.WithElevatedLogLevel())
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	return token, found && token != ""
}

// tokenFailureReason keeps client messages to the fixed sentinel texts.
func tokenFailureReason(err error) string {
	for _, sentinel := range []error{
		auth.ErrExpiredToken,
		auth.ErrTokenNotYetValid,
		auth.ErrUnknownUserType,
		auth.ErrInvalidToken,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return redact.Error(err)
}
