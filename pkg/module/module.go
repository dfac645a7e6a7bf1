// Package module composes the HTTP surface from prefix-scoped modules. A
// module owns an inner handler and middleware stack and sees request paths
// with its prefix removed.
package module

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/JaimeStill/pagegen/pkg/middleware"
)

// ErrInvalidPrefix is the panic value cause for a malformed module prefix.
var ErrInvalidPrefix = errors.New("invalid module prefix")

// Module serves every request under a single-level path prefix such as "/api".
type Module struct {
	prefix string
	inner  http.Handler
	stack  *middleware.Stack

	once    sync.Once
	handler http.Handler
}

// New creates a Module for prefix. It panics when the prefix is empty, lacks
// a leading slash, or has more than one path segment.
func New(prefix string, inner http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix: prefix,
		inner:  inner,
		stack:  middleware.New(),
	}
}

// Prefix returns the module's path prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use adds middleware to the module's stack. The stack is frozen the first
// time the module serves a request.
func (m *Module) Use(fn middleware.Func) {
	m.stack.Use(fn)
}

// Handler returns the inner handler wrapped with the module middleware.
func (m *Module) Handler() http.Handler {
	m.once.Do(func() {
		m.handler = m.stack.Apply(m.inner)
	})
	return m.handler
}

// Serve strips the module prefix from the request path and dispatches to the
// wrapped inner handler.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	m.Handler().ServeHTTP(w, stripPrefix(req, m.prefix))
}

func stripPrefix(req *http.Request, prefix string) *http.Request {
	path := strings.TrimPrefix(req.URL.Path, prefix)
	if path == "" {
		path = "/"
	}

	r := new(http.Request)
	*r = *req
	u := *req.URL
	u.Path = path
	u.RawPath = ""
	r.URL = &u
	return r
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("%w: empty", ErrInvalidPrefix)
	case !strings.HasPrefix(prefix, "/"):
		return fmt.Errorf("%w: %s must start with /", ErrInvalidPrefix, prefix)
	case strings.Count(prefix, "/") != 1:
		return fmt.Errorf("%w: %s must be a single path segment", ErrInvalidPrefix, prefix)
	}
	return nil
}
