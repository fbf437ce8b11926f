package handler

import (
	"github.com/oakhollow/squirreld/internal/server"
	"github.com/oakhollow/squirreld/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Health    *HealthHandler   // liveness + dependency checks
	Squirrels *SquirrelHandler // the resource CRUD actions
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		Squirrels: NewSquirrelHandler(s, services),
	}
}
