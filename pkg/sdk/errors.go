package tripdex

import (
	"fmt"

	"github.com/kailas-cloud/tripdex/internal/domain"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check; an *APIError matches the sentinel of its code.
var (
	ErrNotFound          = domain.ErrNotFound
	ErrInvalidIdentifier = domain.ErrInvalidIdentifier
	ErrAlreadyExists     = domain.ErrAlreadyExists
	ErrInvalidInput      = domain.ErrInvalidInput
	ErrUnauthorized      = domain.ErrUnauthorized
	ErrForbidden         = domain.ErrForbidden
	ErrPasswordMismatch  = domain.ErrPasswordMismatch
	ErrRateLimited       = domain.ErrRateLimited
	ErrSearchUnavailable = domain.ErrSearchUnavailable
)

var codeSentinels = map[string]error{
	"bad_request":        domain.ErrInvalidInput,
	"validation_failed":  domain.ErrInvalidInput,
	"invalid_id":         domain.ErrInvalidIdentifier,
	"not_found":          domain.ErrNotFound,
	"already_exists":     domain.ErrAlreadyExists,
	"password_mismatch":  domain.ErrPasswordMismatch,
	"unauthorized":       domain.ErrUnauthorized,
	"forbidden":          domain.ErrForbidden,
	"rate_limited":       domain.ErrRateLimited,
	"search_unavailable": domain.ErrSearchUnavailable,
}

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("tripdex: http %d", e.Status)
	}
	return fmt.Sprintf("tripdex: %s (%d): %s", e.Code, e.Status, e.Message)
}

// Unwrap maps the error code to its domain sentinel, if any.
func (e *APIError) Unwrap() error {
	return codeSentinels[e.Code]
}
