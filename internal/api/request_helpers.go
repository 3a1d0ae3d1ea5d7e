package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/kitchen-api/internal/api/shared"
	"github.com/phrazzld/kitchen-api/internal/domain"
)

var errNotValidated = errors.New("handler reached without validated input")

// validated returns the value stored by the validation gate. A missing value
// means the route was wired without its gate; that is answered with a 500.
func validated[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	v, ok := shared.ValidatedFrom[T](r.Context())
	if !ok {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Internal Server Error", errNotValidated)
	}
	return v, ok
}

// principal returns the authenticated caller, answering 401 when absent.
func principal(w http.ResponseWriter, r *http.Request) (*domain.Principal, bool) {
	p, ok := shared.PrincipalFrom(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required", nil)
	}
	return p, ok
}
