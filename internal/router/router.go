// Package router initializes the HTTP router (using Echo).
//
// It registers the middleware stack and the route groups: system
// routes (health) and the resource dispatcher that implements the
// method/path table for the squirrels collection.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/oakhollow/squirreld/internal/handler"
	"github.com/oakhollow/squirreld/internal/middleware"
	"github.com/oakhollow/squirreld/internal/server"
)

// New builds the configured echo instance: error handler, middleware
// chain, then routes. The returned value is handed to the server
// container as its http.Handler.
func New(s *server.Server, mws *middleware.Middlewares, handlers *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	e.Use(mws.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(mws.ContextEnhancer.EnhanceContext())
	e.Use(mws.Global.RequestLogger())
	e.Use(mws.Global.Secure())

	if mws.RateLimit.Enabled() {
		e.Use(mws.RateLimit.Limit())
	}

	registerSystemRoutes(e, handlers)
	registerResourceRoutes(e, handlers)

	return e
}
