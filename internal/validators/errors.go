package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRequired   = errors.New("is required")
	ErrNotNumber  = errors.New("must be a number")
	ErrOutOfRange = errors.New("is out of range")
	ErrNotAllowed = errors.New("is not an allowed value")
	ErrTooShort   = errors.New("is too short")
	ErrTooLong    = errors.New("is too long")
)

// FieldError reports a single failed rule for a named field.
type FieldError struct {
	Field string
	Rule  string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
