// Package persist saves and restores the durable subset of the application
// state: form, theme, sections, and content. Each part is stored as its own
// JSON document under a namespace so backends can read and write them
// independently.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/JaimeStill/pagegen/internal/landing"
)

// Namespace is the fixed key the application state is persisted under.
const Namespace = "landing-page-generator"

// Part keys, in save order.
const (
	KeyForm     = "form"
	KeyTheme    = "theme"
	KeySections = "sections"
	KeyContent  = "content"
)

var keys = []string{KeyForm, KeyTheme, KeySections, KeyContent}

var (
	// ErrNotFound indicates no part has been saved under the namespace.
	ErrNotFound = errors.New("persisted state not found")
	// ErrUnknownBackend indicates an unsupported persistence backend name.
	ErrUnknownBackend = errors.New("unknown persistence backend")
)

// MapHTTPStatus maps persistence errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Snapshot is the persisted subset of the application state.
// A nil Content means nothing has been generated yet.
type Snapshot struct {
	Form     landing.FormAttributes    `json:"form"`
	Theme    landing.ThemeConfig       `json:"theme"`
	Sections []landing.PageSection     `json:"sections"`
	Content  *landing.GeneratedContent `json:"content,omitempty"`
}

// Store is implemented by every persistence backend.
type Store interface {
	// Load returns ErrNotFound when no part exists under namespace.
	Load(ctx context.Context, namespace string) (*Snapshot, error)
	Save(ctx context.Context, namespace string, snap *Snapshot) error
	Delete(ctx context.Context, namespace string) error
}

type part struct {
	key   string
	value []byte
}

// encode splits a snapshot into its part documents. The content part is
// omitted while no content exists.
func encode(snap *Snapshot) ([]part, error) {
	values := map[string]any{
		KeyForm:     snap.Form,
		KeyTheme:    snap.Theme,
		KeySections: snap.Sections,
	}
	if snap.Content != nil {
		values[KeyContent] = snap.Content
	}

	parts := make([]part, 0, len(keys))
	for _, key := range keys {
		v, ok := values[key]
		if !ok {
			continue
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		parts = append(parts, part{key: key, value: data})
	}
	return parts, nil
}

// decode assembles a snapshot from whichever parts were found. Absent parts
// keep their zero values, except the theme which starts from the default.
func decode(parts map[string][]byte) (*Snapshot, error) {
	if len(parts) == 0 {
		return nil, ErrNotFound
	}

	snap := &Snapshot{Theme: landing.DefaultTheme()}
	targets := map[string]any{
		KeyForm:     &snap.Form,
		KeyTheme:    &snap.Theme,
		KeySections: &snap.Sections,
	}

	for key, data := range parts {
		if key == KeyContent {
			var content landing.GeneratedContent
			if err := json.Unmarshal(data, &content); err != nil {
				return nil, fmt.Errorf("decode %s: %w", key, err)
			}
			snap.Content = &content
			continue
		}
		target, ok := targets[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(data, target); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
	}

	return snap, nil
}
