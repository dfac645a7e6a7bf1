// Package routes declares HTTP endpoints as data so domain handlers can
// describe their surface and have it registered on a ServeMux in one pass.
package routes

import "net/http"

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

func (r Route) pattern(prefix string) string {
	return r.Method + " " + prefix + r.Pattern
}
