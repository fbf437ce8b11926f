// Package handler is the first entry point for business logic after
// the router.
//
// It parses request input, hands it to the service layer, and writes
// the response. Validation and error classification live below it; a
// handler either writes a success response or returns a *errs.HTTPError
// for the global error handler to render.
package handler

import (
	"github.com/oakhollow/squirreld/internal/server"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it to access the container.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}
