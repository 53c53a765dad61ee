// internal/app/gateway/errors.go
package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind buckets a failed API call by what the caller can do about it.
type Kind int

const (
	// KindNetwork means no usable HTTP response arrived (dial failure,
	// timeout, cancelled context).
	KindNetwork Kind = iota
	// KindUnauthorized is a 401; the session has already been evicted by
	// the time the caller sees this error.
	KindUnauthorized
	// KindForbidden is a 403. At login the API uses it for inactive accounts.
	KindForbidden
	// KindNotFound is a 404.
	KindNotFound
	// KindValidation covers the remaining 4xx statuses (bad input,
	// duplicate mobile phone, and so on).
	KindValidation
	// KindServerError is any 5xx.
	KindServerError
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not found"
	case KindValidation:
		return "validation"
	case KindServerError:
		return "server error"
	}
	return "unknown"
}

// Error is the classified failure of one API call.
type Error struct {
	Kind   Kind
	Status int    // HTTP status, 0 for KindNetwork
	Op     string // "METHOD /path"
	Body   string // trimmed response body, may be empty
	Err    error  // transport error for KindNetwork
}

func (e *Error) Error() string {
	if e.Kind == KindNetwork {
		return fmt.Sprintf("gateway: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("gateway: %s: %s (%d)", e.Op, e.Kind, e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// classify maps an HTTP status to an error kind.
func classify(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 500:
		return KindServerError
	default:
		return KindValidation
	}
}

// KindOf returns the kind of err, or (0, false) if err did not come from
// the gateway.
func KindOf(err error) (Kind, bool) {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind, true
	}
	return 0, false
}

func isKind(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

func IsNetwork(err error) bool      { return isKind(err, KindNetwork) }
func IsUnauthorized(err error) bool { return isKind(err, KindUnauthorized) }
func IsForbidden(err error) bool    { return isKind(err, KindForbidden) }
func IsNotFound(err error) bool     { return isKind(err, KindNotFound) }
func IsValidation(err error) bool   { return isKind(err, KindValidation) }
func IsServerError(err error) bool  { return isKind(err, KindServerError) }
