package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oakhollow/squirreld/internal/server"
	"github.com/oakhollow/squirreld/internal/service"
	"github.com/oakhollow/squirreld/internal/validation"
)

// SquirrelHandler implements the five resource actions. The router
// decides which action runs; ids arrive as raw path segments.
type SquirrelHandler struct {
	Handler
	services *service.Services
}

// NewSquirrelHandler constructs the resource handler.
func NewSquirrelHandler(s *server.Server, services *service.Services) *SquirrelHandler {
	return &SquirrelHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// Index returns every record ordered by ascending id. Always 200, with
// [] for an empty store.
func (h *SquirrelHandler) Index(c echo.Context) error {
	squirrels, err := h.services.Squirrels.Index(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, squirrels)
}

// Retrieve returns a single record, or 404.
func (h *SquirrelHandler) Retrieve(c echo.Context, id string) error {
	squirrel, err := h.services.Squirrels.Retrieve(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, squirrel)
}

// Create inserts a record from the form body. Success is 201 with an
// empty body and no Content-Type header.
func (h *SquirrelHandler) Create(c echo.Context) error {
	fields := validation.ReadForm(c.Request())
	params := service.ParamsFromForm(fields)

	if err := h.services.Squirrels.Create(c.Request().Context(), params); err != nil {
		return err
	}

	return c.NoContent(http.StatusCreated)
}

// Update overwrites name and size of an existing record. The id check
// runs before body validation, so an unknown id is 404 even with a bad
// body.
func (h *SquirrelHandler) Update(c echo.Context, id string) error {
	fields := validation.ReadForm(c.Request())
	params := service.ParamsFromForm(fields)

	if err := h.services.Squirrels.Update(c.Request().Context(), id, params); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete removes a record, or 404.
func (h *SquirrelHandler) Delete(c echo.Context, id string) error {
	if err := h.services.Squirrels.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
