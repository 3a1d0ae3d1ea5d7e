package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/phrazzld/kitchen-api/internal/domain"
)

// ContextKey is the type of request-scoped values set by the API layer.
type ContextKey string

const (
	// PrincipalContextKey holds the authenticated *domain.Principal.
	PrincipalContextKey ContextKey = "principal"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of bytes used to generate the trace ID
	TraceIDLength = 16 // 32 hex characters
)

// validatedKey scopes a validated request value by its type.
type validatedKey[T any] struct{}

// SetTraceID adds a trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithPrincipal attaches the authenticated principal to ctx.
func WithPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, PrincipalContextKey, p)
}

// PrincipalFrom returns the authenticated principal, if any.
func PrincipalFrom(ctx context.Context) (*domain.Principal, bool) {
	p, ok := ctx.Value(PrincipalContextKey).(*domain.Principal)
	return p, ok && p != nil
}

// WithValidated stores a request value that passed validation.
func WithValidated[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, validatedKey[T]{}, v)
}

// ValidatedFrom returns the validated value of type T stored by the
// validation middleware.
func ValidatedFrom[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(validatedKey[T]{}).(T)
	return v, ok
}

// generateTraceID creates a random 32-character hex trace ID.
// If crypto/rand fails it falls back to a time-based ID, never a static value.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	n, err := rand.Read(b)

	if err != nil || n != TraceIDLength {
		slog.Error("failed to generate secure random trace ID",
			"error", err,
			"bytes_read", n,
			"bytes_requested", TraceIDLength,
			"fallback", "time-based generation")
		return generateFallbackTraceID()
	}

	return hex.EncodeToString(b)
}

func generateFallbackTraceID() string {
	fallbackID := make([]byte, TraceIDLength)

	now := time.Now()
	binary.BigEndian.PutUint64(fallbackID[:8], uint64(now.UnixNano()))
	binary.BigEndian.PutUint32(fallbackID[8:12], uint32(now.Nanosecond()))
	binary.BigEndian.PutUint32(fallbackID[12:16], uint32(now.Unix()))

	return hex.EncodeToString(fallbackID)
}
