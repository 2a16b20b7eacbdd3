package api

import (
	"errors"
	"fmt"
)

// StatusError is a transport-level failure: the backend answered with a
// non-2xx status. Detail carries the FastAPI-style `detail` field when
// the body had one, otherwise the raw body text.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend returned status %d", e.Code)
}

// APIError is an application-level failure: a 2xx response whose body
// reported success=false.
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return e.Message }

// ErrUnreachable wraps network-level failures (connection refused, DNS,
// timeout) so callers can distinguish "cannot connect" from a backend
// that answered with an error.
var ErrUnreachable = errors.New("cannot connect to backend")

// IsUnreachable reports whether err is a network-level failure.
func IsUnreachable(err error) bool { return errors.Is(err, ErrUnreachable) }
