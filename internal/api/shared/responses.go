package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/kitchen-api/internal/paging"
	"github.com/phrazzld/kitchen-api/internal/platform/logger"
	"github.com/phrazzld/kitchen-api/internal/redact"
)

// Envelope is the body of every API response.
//
// Data and Error are interface-typed so that only a nil value is omitted;
// an empty list still renders as "data": [].
type Envelope struct {
	Status  int          `json:"status"`
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Meta    *paging.Meta `json:"meta,omitempty"`
	Error   any          `json:"error,omitempty"`
}

// FieldError is one violated rule reported by the validation gate.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

type responseOptions struct {
	elevateLogLevel bool
	detail          any
}

// WithElevatedLogLevel returns a ResponseOption that raises 4xx errors to WARN level
// instead of the default DEBUG level.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// WithDetail attaches a value to the envelope's error field.
func WithDetail(detail any) ResponseOption {
	return func(opts *responseOptions) {
		opts.detail = detail
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// RespondSuccess writes a success envelope. meta is omitted when nil.
func RespondSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any, meta *paging.Meta) {
	RespondWithJSON(w, r, status, Envelope{
		Status:  status,
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// RespondWithError writes a failure envelope with an optional error detail.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string, detail any) {
	logger.FromContext(r.Context()).Debug("sending error response",
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, Envelope{
		Status:  status,
		Message: message,
		Error:   detail,
	})
}

// RespondWithErrorAndLog writes a failure envelope and logs the redacted cause.
//
// Log level strategy:
// - 5xx errors: Always logged at ERROR level
// - 429 Too Many Requests: Logged at WARN level
// - Other 4xx: DEBUG, or WARN with WithElevatedLogLevel()
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", redact.String(userMessage)),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	responseOpts := responseOptions{}
	for _, opt := range opts {
		opt(&responseOpts)
	}

	logLevel := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		logLevel = slog.LevelError
	case status == http.StatusTooManyRequests:
		logLevel = slog.LevelWarn
	case responseOpts.elevateLogLevel && status >= http.StatusBadRequest:
		logLevel = slog.LevelWarn
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, Envelope{
		Status:  status,
		Message: userMessage,
		Error:   responseOpts.detail,
	})
}
