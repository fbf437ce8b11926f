package repository

import "context"

// Squirrel is a stored record. The id is assigned by the store,
// strictly increasing, and never reused after deletion.
type Squirrel struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Size string `json:"size"`
}

// RecordStore is the persistence capability the handlers depend on.
// Ids arrive as opaque strings taken straight from the request path;
// implementations decide whether they resolve to a record.
type RecordStore interface {
	// List returns all records ordered by ascending id. An empty store
	// yields an empty (non-nil) slice.
	List(ctx context.Context) ([]Squirrel, error)

	// Get retrieves a record by id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Squirrel, error)

	// Insert stores a new record and returns it with its assigned id.
	Insert(ctx context.Context, name, size string) (*Squirrel, error)

	// Update overwrites name and size of an existing record in place.
	// The id and the row count are unchanged. Returns ErrNotFound when
	// no record matches.
	Update(ctx context.Context, id, name, size string) error

	// Delete removes a record by id, or returns ErrNotFound. The id is
	// never issued again.
	Delete(ctx context.Context, id string) error
}
