package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/oakhollow/squirreld/internal/server"
)

// RateLimitMiddleware throttles per-client request rates using Echo's
// in-memory rate limiter store.
type RateLimitMiddleware struct {
	server *server.Server
}

// NewRateLimitMiddleware constructs the rate limit middleware.
func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{server: s}
}

// Enabled reports whether a rate limit is configured.
func (r *RateLimitMiddleware) Enabled() bool {
	return r.server.Config.Server.RateLimit > 0
}

// Limit returns the rate limiter middleware. Clients are identified by
// real IP; limit breaches surface as 429 through the global error
// handler.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	return echomw.RateLimiter(
		echomw.NewRateLimiterMemoryStore(rate.Limit(r.server.Config.Server.RateLimit)),
	)
}
