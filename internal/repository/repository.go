// Package repository handles all interactions with the database.
//
// It contains the raw SQL and methods to fetch, persist, update, and
// delete records, abstracting SQL away from the service layer.
package repository

import (
	"github.com/oakhollow/squirreld/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Squirrels *SquirrelRepository
}

// NewRepositories constructs the repository container from the shared
// application resources.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Squirrels: NewSquirrelRepository(s.DB.DB),
	}
}
