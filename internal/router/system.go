package router

import (
	"github.com/labstack/echo/v4"

	"github.com/oakhollow/squirreld/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the
// resource API. They are matched ahead of the catch-all dispatcher, so
// the resource routing table is unaffected for every other path.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by monitors/load balancers).
	r.GET("/status", h.Health.CheckHealth)
}
