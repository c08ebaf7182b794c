package scenario

import (
	"errors"
	"fmt"
)

// ErrEmptyName reports a scenario whose name is present but blank.
var ErrEmptyName = errors.New("scenario name must not be empty")

// ParseError reports a descriptor file that could not be turned into a
// Descriptor.
type ParseError struct {
	File  string
	Field string
	Err   error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid scenario %s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("invalid scenario %s: field %s: %v", e.File, e.Field, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}
