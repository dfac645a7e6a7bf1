package state

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/pagegen/internal/landing"
)

// ErrInvalidStep indicates a negative form step.
var ErrInvalidStep = errors.New("invalid form step")

// MapHTTPStatus maps state errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidStep) {
		return http.StatusBadRequest
	}
	return landing.MapHTTPStatus(err)
}
