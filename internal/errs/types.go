package errs

import "strings"

// HTTPError is the error type rendered to API clients.
//
// Fields:
//   - Code: machine-friendly error code for logs (e.g. "NOT_FOUND").
//   - Message: the plain-text body sent to the client.
//   - Status: HTTP status code.
type HTTPError struct {
	Code    string
	Message string
	Status  int
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also a *HTTPError. It only matches on
// type, not on Code/Status, so errors.Is(err, &HTTPError{}) works as a
// broad "is this a client error" check.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
	}
}

// MakeUpperCaseWithUnderscores converts a status text into an
// UPPER_CASE_WITH_UNDERSCORES code, e.g. "Bad Request" -> "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
