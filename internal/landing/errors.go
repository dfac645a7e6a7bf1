package landing

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidContent     = errors.New("invalid generated content")
	ErrInvalidSection     = errors.New("invalid page section")
	ErrInvalidTheme       = errors.New("theme mode must be light or dark")
	ErrInvalidPreviewMode = errors.New("preview mode must be desktop, tablet, or mobile")
)

// MapHTTPStatus maps landing model errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidContent),
		errors.Is(err, ErrInvalidSection),
		errors.Is(err, ErrInvalidTheme),
		errors.Is(err, ErrInvalidPreviewMode):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
