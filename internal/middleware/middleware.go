// Package middleware provides HTTP middleware composition and the standard
// middleware stack: request logging, CORS, and panic recovery.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// System composes an ordered middleware stack.
type System interface {
	Use(m Middleware)
	Apply(handler http.Handler) http.Handler
}

type system struct {
	stack []Middleware
}

// New creates an empty middleware system.
func New() System {
	return &system{stack: []Middleware{}}
}

// Use appends a middleware to the stack. Middleware registered first wraps
// outermost.
func (s *system) Use(m Middleware) {
	s.stack = append(s.stack, m)
}

// Apply wraps the handler with the registered middleware stack.
func (s *system) Apply(handler http.Handler) http.Handler {
	wrapped := handler
	for i := len(s.stack) - 1; i >= 0; i-- {
		wrapped = s.stack[i](wrapped)
	}
	return wrapped
}
