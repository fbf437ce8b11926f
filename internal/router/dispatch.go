package router

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/oakhollow/squirreld/internal/errs"
	"github.com/oakhollow/squirreld/internal/handler"
)

// resourceName is the only collection this API serves. Any other
// resource segment is not-found.
const resourceName = "squirrels"

// Dispatcher routes (method, path) pairs to one of the five resource
// actions, or to the 404/405 outcomes. It runs on a catch-all route so
// the decision table below is the single routing authority; Echo's own
// per-method matching is deliberately not used for the resource,
// because the table distinguishes outcomes by id presence (e.g. POST
// with an id is 404, not 405).
type Dispatcher struct {
	squirrels *handler.SquirrelHandler
}

// registerResourceRoutes installs the dispatcher on the root and
// wildcard routes for all standard methods.
func registerResourceRoutes(r *echo.Echo, h *handler.Handlers) {
	d := &Dispatcher{squirrels: h.Squirrels}

	r.Any("/", d.Dispatch)
	r.Any("/*", d.Dispatch)
}

// ParsePath splits a request path into resource name and optional id:
//
//	/squirrels     -> ("squirrels", "")
//	/squirrels/    -> ("squirrels", "")
//	/squirrels/123 -> ("squirrels", "123")
//	/              -> ("", "")
//
// The id is an opaque string; whether it resolves to a record is the
// store's decision. Segments past the second are ignored.
func ParsePath(path string) (resource, id string) {
	if !strings.HasPrefix(path, "/") {
		return "", ""
	}

	parts := strings.Split(path[1:], "/")
	resource = parts[0]
	if len(parts) > 1 && parts[1] != "" {
		id = parts[1]
	}
	return resource, id
}

// Dispatch implements the routing table:
//
//	| Method | no id    | with id      |
//	| GET    | index    | retrieve(id) |
//	| POST   | create   | 404          |
//	| PUT    | 404      | update(id)   |
//	| DELETE | 404      | delete(id)   |
//	| PATCH  | 405 always, any path    |
//	| other  | 404      | 404          |
//
// PATCH is rejected before the resource check, so it is 405 even on
// unknown paths.
func (d *Dispatcher) Dispatch(c echo.Context) error {
	method := c.Request().Method

	if method == http.MethodPatch {
		return errs.NewMethodNotAllowedError()
	}

	resource, id := ParsePath(c.Request().URL.Path)
	if resource != resourceName {
		return errs.NewNotFoundError()
	}

	switch method {
	case http.MethodGet:
		if id == "" {
			return d.squirrels.Index(c)
		}
		return d.squirrels.Retrieve(c, id)

	case http.MethodPost:
		if id != "" {
			return errs.NewNotFoundError()
		}
		return d.squirrels.Create(c)

	case http.MethodPut:
		if id == "" {
			return errs.NewNotFoundError()
		}
		return d.squirrels.Update(c, id)

	case http.MethodDelete:
		if id == "" {
			return errs.NewNotFoundError()
		}
		return d.squirrels.Delete(c, id)

	default:
		return errs.NewNotFoundError()
	}
}
