package service

import (
	"context"
	"errors"

	"github.com/oakhollow/squirreld/internal/errs"
	"github.com/oakhollow/squirreld/internal/repository"
	"github.com/oakhollow/squirreld/internal/server"
	"github.com/oakhollow/squirreld/internal/validation"
)

// Client-facing 400 messages for the write endpoints.
const (
	msgMissingFields  = "Missing or empty 'name' or 'size'"
	msgCreateFailed   = "Could not create squirrel with provided data"
	msgUpdateFailed   = "Could not update squirrel with provided data"
	msgDeleteFailed   = "Could not delete squirrel"
	msgListFailed     = "Could not list squirrels"
	msgRetrieveFailed = "Could not retrieve squirrel"
)

// SquirrelParams is the write payload for create and update. Both
// fields must be present and non-empty.
type SquirrelParams struct {
	Name string `validate:"required"`
	Size string `validate:"required"`
}

// Validate implements validation.Validatable.
func (p SquirrelParams) Validate() error {
	return validation.Struct(p)
}

// ParamsFromForm builds a write payload from a parsed form-field map.
// Absent keys simply leave fields empty, which fails validation.
func ParamsFromForm(fields map[string]string) SquirrelParams {
	return SquirrelParams{
		Name: fields["name"],
		Size: fields["size"],
	}
}

// SquirrelService implements the five actions over the record store.
//
// Every error it returns is a *errs.HTTPError: unknown ids become 404,
// everything else (bad fields, store rejections) becomes 400. There is
// no 5xx path.
type SquirrelService struct {
	server *server.Server
	store  repository.RecordStore
}

// NewSquirrelService constructs the service over a record store.
func NewSquirrelService(s *server.Server, store repository.RecordStore) *SquirrelService {
	return &SquirrelService{
		server: s,
		store:  store,
	}
}

// Index returns all records ordered by ascending id.
func (s *SquirrelService) Index(ctx context.Context) ([]repository.Squirrel, error) {
	squirrels, err := s.store.List(ctx)
	if err != nil {
		s.server.Logger.Error().Err(err).Msg("listing squirrels failed")
		return nil, errs.NewBadRequestError(msgListFailed)
	}
	return squirrels, nil
}

// Retrieve looks up a single record by id.
func (s *SquirrelService) Retrieve(ctx context.Context, id string) (*repository.Squirrel, error) {
	squirrel, err := s.store.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errs.NewNotFoundError()
	}
	if err != nil {
		s.server.Logger.Error().Err(err).Str("id", id).Msg("retrieving squirrel failed")
		return nil, errs.NewBadRequestError(msgRetrieveFailed)
	}
	return squirrel, nil
}

// Create validates the payload and inserts a new record.
func (s *SquirrelService) Create(ctx context.Context, params SquirrelParams) error {
	if err := validation.Check(params); err != nil {
		return errs.NewBadRequestError(msgMissingFields)
	}

	if _, err := s.store.Insert(ctx, params.Name, params.Size); err != nil {
		s.server.Logger.Error().Err(err).Msg("inserting squirrel failed")
		return errs.NewBadRequestError(msgCreateFailed)
	}

	return nil
}

// Update overwrites an existing record. Existence is checked before
// the payload is validated, so an unknown id reports 404 even when the
// body is bad.
func (s *SquirrelService) Update(ctx context.Context, id string, params SquirrelParams) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errs.NewNotFoundError()
		}
		s.server.Logger.Error().Err(err).Str("id", id).Msg("looking up squirrel failed")
		return errs.NewBadRequestError(msgUpdateFailed)
	}

	if err := validation.Check(params); err != nil {
		return errs.NewBadRequestError(msgMissingFields)
	}

	err := s.store.Update(ctx, id, params.Name, params.Size)
	if errors.Is(err, repository.ErrNotFound) {
		return errs.NewNotFoundError()
	}
	if err != nil {
		s.server.Logger.Error().Err(err).Str("id", id).Msg("updating squirrel failed")
		return errs.NewBadRequestError(msgUpdateFailed)
	}

	return nil
}

// Delete removes a record by id. The id is never reissued.
func (s *SquirrelService) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errs.NewNotFoundError()
		}
		s.server.Logger.Error().Err(err).Str("id", id).Msg("looking up squirrel failed")
		return errs.NewBadRequestError(msgDeleteFailed)
	}

	err := s.store.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return errs.NewNotFoundError()
	}
	if err != nil {
		s.server.Logger.Error().Err(err).Str("id", id).Msg("deleting squirrel failed")
		return errs.NewBadRequestError(msgDeleteFailed)
	}

	return nil
}
