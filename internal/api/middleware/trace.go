package middleware

import (
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/kitchen-api/internal/api/shared"
	"github.com/phrazzld/kitchen-api/internal/platform/logger"
)

// TraceHeader echoes the request's trace ID to the client.
const TraceHeader = "X-Trace-ID"

// TraceMiddleware adds a trace ID to the request context and stores a
// request-scoped logger carrying it. It should run early in the chain.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			if reqID := chimw.GetReqID(ctx); reqID != "" {
				log = log.With(slog.String("request_id", reqID))
			}
			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(TraceHeader, traceID)
			next.ServeHTTP(w, r.WithContext(logger.WithLogger(ctx, log)))
		})
	}
}
