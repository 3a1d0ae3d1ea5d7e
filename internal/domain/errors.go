package domain

import (
	"errors"
	"strings"
)

// ErrValidation is returned when a domain entity fails validation.
// Entity-specific validation errors wrap it.
var ErrValidation = errors.New("validation failed")

// Kind classifies a failure by the outcome a caller should see.
type Kind int

const (
	// KindUnknown marks errors that carry no classification.
	KindUnknown Kind = iota
	KindNotFound
	KindValidation
	KindUnauthenticated
	KindForbidden
	// KindConflict covers uniqueness failures such as a duplicate email.
	KindConflict
	// KindInvalid covers requests that are well formed but not allowed,
	// such as moving a menu item to another vendor.
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Error is a classified business failure. Message is what clients read;
// Err keeps the underlying cause for logs and errors.Is checks.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns only the client-facing message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a classified error around an optional cause.
func NewError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func NotFound(message string) *Error        { return NewError(KindNotFound, message, nil) }
func Validation(message string) *Error      { return NewError(KindValidation, message, nil) }
func Unauthenticated(message string) *Error { return NewError(KindUnauthenticated, message, nil) }
func Forbidden(message string) *Error       { return NewError(KindForbidden, message, nil) }
func Conflict(message string) *Error        { return NewError(KindConflict, message, nil) }
func Invalid(message string) *Error         { return NewError(KindInvalid, message, nil) }

// KindOf reports the classification of err. Classified errors anywhere in
// the chain win; otherwise the message text is inspected with the same
// case-sensitive substrings, in the same priority order, that API clients
// have always relied on.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var de *Error
	if errors.As(err, &de) && de.Kind != KindUnknown {
		return de.Kind
	}
	return kindFromMessage(err.Error())
}

func kindFromMessage(msg string) Kind {
	switch {
	case strings.Contains(msg, "not found"):
		return KindNotFound
	case strings.Contains(msg, "validation"):
		return KindValidation
	case strings.Contains(msg, "unauthorized"), strings.Contains(msg, "invalid credentials"):
		return KindUnauthenticated
	case strings.Contains(msg, "forbidden"):
		return KindForbidden
	default:
		return KindUnknown
	}
}
