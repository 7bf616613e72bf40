package upstream

import (
	"errors"
	"fmt"
)

// The console sorts every upstream failure into one of four buckets so that
// screens never inspect raw status codes themselves.

// ErrAuthExpired is the 401 signal: the stored token was rejected by the
// backend. The caller must clear the session and send the user to login.
var ErrAuthExpired = errors.New("upstream rejected the bearer token")

// ErrNotFound covers 404s on resource lookups.
var ErrNotFound = errors.New("upstream resource not found")

// ErrUnavailable covers transport failures and timeouts: the request never
// produced an HTTP response. Safe for the user to retry manually.
var ErrUnavailable = errors.New("upstream unavailable")

// StatusError is any other non-2xx response (400, 409, 500, ...), surfaced
// with whatever code/message the backend included.
type StatusError struct {
	Status  int
	Code    string
	Message string
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("upstream status %d (%s): %s", e.Status, e.Code, e.Message)
	}

	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Message)
}

// Classify buckets an upstream error for metrics labels.
func Classify(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrAuthExpired):
		return "auth_expired"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	}

	var statusErr *StatusError

	if errors.As(err, &statusErr) {
		return fmt.Sprintf("status_%d", statusErr.Status)
	}

	return "unknown"
}
