package pmclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrClientNotReady is returned when a Client is used before Build completed.
	ErrClientNotReady = errors.New("client not ready")
	// ErrUnauthorized is returned when the backend answers 401. The persisted
	// credential has already been cleared by the time callers see this.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the backend answers 403 for the session's role.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when the backend answers 404.
	ErrNotFound = errors.New("not found")
)

// APIError carries a non-2xx backend response for caller inspection. Detail is
// the backend's {"detail": ...} message when present; Body holds the raw
// response bytes either way.
type APIError struct {
	StatusCode int
	Detail     string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

// Is maps well-known status codes onto the package sentinels so callers can
// use errors.Is without digging the status code out.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	default:
		return false
	}
}
