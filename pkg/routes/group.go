package routes

import "net/http"

// Group collects routes under a shared path prefix. Children inherit the
// accumulated prefix of their parents.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		group.walk("", func(pattern string, handler http.HandlerFunc) {
			mux.HandleFunc(pattern, handler)
		})
	}
}

// Patterns lists the fully qualified mux patterns the groups would register,
// in declaration order.
func Patterns(groups ...Group) []string {
	var patterns []string
	for _, group := range groups {
		group.walk("", func(pattern string, _ http.HandlerFunc) {
			patterns = append(patterns, pattern)
		})
	}
	return patterns
}

func (g Group) walk(parent string, visit func(string, http.HandlerFunc)) {
	prefix := parent + g.Prefix
	for _, route := range g.Routes {
		visit(route.pattern(prefix), route.Handler)
	}
	for _, child := range g.Children {
		child.walk(prefix, visit)
	}
}
