// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules defined in struct
// tags, and provides the lenient form-body parser the write endpoints
// are built on.
package validation

import (
	"github.com/go-playground/validator/v10"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
type Validatable interface {
	Validate() error
}

// validate is the shared validator instance. It is safe for
// concurrent use and caches struct metadata.
var validate = validator.New()

// Struct runs tag-based validation on a payload struct.
func Struct(v any) error {
	return validate.Struct(v)
}

// Check validates a payload through its own Validate method.
func Check(v Validatable) error {
	return v.Validate()
}
