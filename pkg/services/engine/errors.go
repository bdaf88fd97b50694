package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks out-of-range or inconsistent numeric arguments.
// Callers match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError names the offending field so surfaces can report it.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

func invalidInput(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}
