package errs

import (
	"fmt"
	"net/http"
)

// NewBadRequestError creates a 400 Bad Request HTTPError with the given
// plain-text message.
func NewBadRequestError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError. The body is the
// fixed status line "404 Not Found" regardless of what was missing.
func NewNotFoundError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
		Message: statusLine(http.StatusNotFound),
		Status:  http.StatusNotFound,
	}
}

// NewMethodNotAllowedError creates a 405 Method Not Allowed HTTPError
// with the fixed status line "405 Method Not Allowed".
func NewMethodNotAllowedError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusMethodNotAllowed)),
		Message: statusLine(http.StatusMethodNotAllowed),
		Status:  http.StatusMethodNotAllowed,
	}
}

// statusLine renders "<code> <text>", e.g. "404 Not Found".
func statusLine(status int) string {
	return fmt.Sprintf("%d %s", status, http.StatusText(status))
}
