// Package middleware holds the HTTP middleware pagegen modules compose:
// panic recovery, CORS, request logging, and request body limits.
package middleware

import "net/http"

// Func wraps a handler with additional behavior.
type Func func(http.Handler) http.Handler

// Stack is an ordered middleware chain. The first Func added is the
// outermost wrapper.
type Stack struct {
	funcs []Func
}

// New creates an empty Stack.
func New() *Stack {
	return &Stack{}
}

// Use appends middleware to the chain.
func (s *Stack) Use(fns ...Func) {
	s.funcs = append(s.funcs, fns...)
}

// Len reports how many middleware are in the chain.
func (s *Stack) Len() int {
	return len(s.funcs)
}

// Apply wraps handler with every middleware in the chain.
func (s *Stack) Apply(handler http.Handler) http.Handler {
	for i := len(s.funcs) - 1; i >= 0; i-- {
		handler = s.funcs[i](handler)
	}
	return handler
}
