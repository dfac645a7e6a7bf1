// Package export renders the current page to a standalone HTML document and
// encodes it into a shareable payload.
package export

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/pagegen/internal/landing"
)

var (
	// ErrInvalidPayload indicates a share payload could not be decoded.
	ErrInvalidPayload = errors.New("invalid share payload")
	// ErrRender indicates the document template failed to execute.
	ErrRender = errors.New("render failed")
)

// MapHTTPStatus maps export errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidPayload) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Input is everything an exporter needs to render a page.
type Input struct {
	Sections       []landing.PageSection
	Theme          landing.ThemeConfig
	Form           landing.FormAttributes
	IncludeStyles  bool
	IncludeScripts bool
}

// Exporter renders a page to static markup.
type Exporter interface {
	Export(in Input) (string, error)
}

// Sharer encodes a page into an opaque shareable string.
type Sharer interface {
	Share(sections []landing.PageSection, theme landing.ThemeConfig, form landing.FormAttributes) (string, error)
}
