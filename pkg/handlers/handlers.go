// Package handlers provides response and request helpers shared by the HTTP
// handlers of every domain.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

var (
	// ErrInvalidBody indicates a request body that is not valid JSON for the target.
	ErrInvalidBody = errors.New("invalid request body")
	// ErrBodyTooLarge indicates a request body exceeding the configured limit.
	ErrBodyTooLarge = errors.New("request body too large")
)

// MapHTTPStatus maps request decoding errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrInvalidBody) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// RespondJSON writes data as a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondHTML writes a complete HTML document with the given status.
func RespondHTML(w http.ResponseWriter, status int, doc string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, doc)
}

// RespondError logs err and writes it as {"error": "..."}. Server errors
// log at error level, client errors at warn.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request rejected", "status", status, "error", err)
	}
	RespondJSON(w, status, map[string]string{"error": err.Error()})
}

// DecodeJSON decodes the request body into v. Unknown fields are rejected.
// A body cut short by http.MaxBytesReader yields ErrBodyTooLarge.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ErrBodyTooLarge
		}
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}
