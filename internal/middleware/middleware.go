// Package middleware provides the HTTP middleware stack for the service.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// System manages an ordered middleware stack.
type System interface {
	Use(mw Middleware)
	Apply(handler http.Handler) http.Handler
}

type stack struct {
	middlewares []Middleware
}

// New creates an empty middleware system.
func New() System {
	return &stack{
		middlewares: []Middleware{},
	}
}

// Use appends a middleware to the stack. Middlewares run in registration order.
func (s *stack) Use(mw Middleware) {
	s.middlewares = append(s.middlewares, mw)
}

// Apply wraps the handler with the registered middleware stack.
func (s *stack) Apply(handler http.Handler) http.Handler {
	wrapped := handler
	for i := len(s.middlewares) - 1; i >= 0; i-- {
		wrapped = s.middlewares[i](wrapped)
	}
	return wrapped
}
