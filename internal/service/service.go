// Package service contains the business logic.
//
// It sits between the handler and repository layers: it validates
// input, performs the operation against the repository, and maps
// every store failure to a client error so the transport layer never
// sees an unclassified error.
package service

import (
	"github.com/oakhollow/squirreld/internal/repository"
	"github.com/oakhollow/squirreld/internal/server"
)

// Services is a container for all service instances.
type Services struct {
	Squirrels *SquirrelService
}

// NewServices constructs the service container.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Squirrels: NewSquirrelService(s, repos.Squirrels),
	}
}
