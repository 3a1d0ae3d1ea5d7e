package shared

import (
	"net/http"

	"github.com/phrazzld/kitchen-api/internal/domain"
	"github.com/phrazzld/kitchen-api/internal/paging"
	"github.com/phrazzld/kitchen-api/internal/redact"
)

// Outcome names what a handler reports for one operation.
type Outcome struct {
	// Status is the success status code; zero means 200.
	Status int
	// Message is the success message.
	Message string
	// ErrorPrefix leads the message of unclassified failures.
	ErrorPrefix string
}

// Normalizer turns service results into response envelopes.
type Normalizer struct {
	production bool
}

// NewNormalizer creates a Normalizer. In production, unclassified failures
// carry no error detail.
func NewNormalizer(production bool) *Normalizer {
	return &Normalizer{production: production}
}

// Run invokes fn and writes its result.
func (n *Normalizer) Run(w http.ResponseWriter, r *http.Request, o Outcome, fn func() (any, error)) {
	result, err := fn()
	n.Respond(w, r, o, result, err)
}

// Respond writes result on success and a classified failure otherwise.
// Paginated results are split into data and meta.
func (n *Normalizer) Respond(w http.ResponseWriter, r *http.Request, o Outcome, result any, err error) {
	if err != nil {
		n.fail(w, r, o, err)
		return
	}

	status := o.Status
	if status == 0 {
		status = http.StatusOK
	}
	if p, ok := result.(paging.Paginated); ok {
		meta := p.Metadata()
		RespondSuccess(w, r, status, o.Message, p.Items(), &meta)
		return
	}
	RespondSuccess(w, r, status, o.Message, result, nil)
}

func (n *Normalizer) fail(w http.ResponseWriter, r *http.Request, o Outcome, err error) {
	msg := err.Error()

	switch kind := domain.KindOf(err); kind {
	case domain.KindNotFound:
		RespondWithErrorAndLog(w, r, http.StatusNotFound, msg, err)
	case domain.KindValidation:
		RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity, msg, err,
			WithDetail(map[string]string{"validation": msg}))
	case domain.KindUnauthenticated:
		RespondWithErrorAndLog(w, r, http.StatusUnauthorized, msg, err)
	case domain.KindForbidden:
		RespondWithErrorAndLog(w, r, http.StatusForbidden, msg, err)
	default:
		var opts []ResponseOption
		if !n.production {
			opts = append(opts, WithDetail(map[string]string{"message": redact.Error(err)}))
		}
		if kind == domain.KindUnknown {
			opts = append(opts, WithElevatedLogLevel())
		}
		RespondWithErrorAndLog(w, r, http.StatusBadRequest, o.ErrorPrefix+": "+msg, err, opts...)
	}
}
