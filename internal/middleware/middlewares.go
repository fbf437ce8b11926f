package middleware

import (
	"github.com/oakhollow/squirreld/internal/server"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server. Build once, reuse everywhere.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// request logging, recovery, secure headers, and the global error
	// handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped
	// logger (request_id, method, path, ip).
	ContextEnhancer *ContextEnhancer

	// RateLimit throttles per-client request rates when enabled.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components using the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
