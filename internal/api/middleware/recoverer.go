package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/kitchen-api/internal/api/shared"
	"github.com/phrazzld/kitchen-api/internal/platform/logger"
)

// Recoverer turns panics into a 500 envelope. The panic value reaches the
// client only outside production.
func Recoverer(production bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.FromContext(r.Context()).Error("panic recovered",
					"panic", fmt.Sprint(rec),
					"stack", string(debug.Stack()),
					"trace_id", shared.GetTraceID(r.Context()))

				var opts []shared.ResponseOption
				if !production {
					opts = append(opts, shared.WithDetail(fmt.Sprint(rec)))
				}
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
					"Internal Server Error", fmt.Errorf("panic: %v", rec), opts...)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
