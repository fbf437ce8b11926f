package repository

import "errors"

// ErrNotFound is returned when no record matches the requested id.
// A malformed (non-numeric) id is indistinguishable from an unknown
// one; both report ErrNotFound.
var ErrNotFound = errors.New("repository: record not found")
