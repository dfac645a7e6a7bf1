package completion

import (
	"errors"
	"net/http"
)

var (
	// ErrServiceUnavailable is permanent for the lifetime of the client: no
	// API key was configured when it was constructed.
	ErrServiceUnavailable = errors.New("completion service unavailable: API key not configured")
	// ErrCompletionFailed wraps transport, quota, and vendor errors along with
	// empty responses. The vendor message is preserved in the wrapped error.
	ErrCompletionFailed = errors.New("completion failed")
)

// MapHTTPStatus maps completion errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrServiceUnavailable) {
		return http.StatusServiceUnavailable
	}
	if errors.Is(err, ErrCompletionFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
