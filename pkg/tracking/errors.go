package tracking

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/gatrack/pkg/validator"
)

var (
	// ErrInvalidCookie is matched by every *FormatError.
	ErrInvalidCookie = errors.New("tracking.invalid_cookie")

	// ErrValidation is matched by every *ValidationError and by the
	// validator.ValidationErrors returned from the Validate methods.
	ErrValidation = validator.ErrValidationFailed
)

// FormatError reports a malformed utm cookie value: either the number of
// dot-separated fields is wrong or a numeric field does not parse.
type FormatError struct {
	Cookie string // cookie name, e.g. __utma
	Fields int    // fields found
	Want   int    // fields expected
	Field  string // field that failed to parse, empty for arity errors
	Err    error
}

func (e *FormatError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: invalid %s: %v", e.Cookie, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: expected %d fields, got %d", e.Cookie, e.Want, e.Fields)
}

func (e *FormatError) Is(target error) bool { return target == ErrInvalidCookie }

func (e *FormatError) Unwrap() error { return e.Err }

// ValidationError reports an out-of-range or missing field value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
