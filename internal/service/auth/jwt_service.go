package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed access token for a customer or vendor.
	GenerateToken(ctx context.Context, userID uuid.UUID, email string, userType domain.UserType) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid, ErrUnknownUserType or
	// ErrInvalidToken when validation fails.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified content of an access token.
type Claims struct {
	UserID    uuid.UUID
	Email     string
	UserType  domain.UserType
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
