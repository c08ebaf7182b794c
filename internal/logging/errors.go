package logging

import (
	"errors"
	"fmt"
)

// ErrMissingEntryPoint reports a module symbol lacking getLogger or
// setLogLevel.
var ErrMissingEntryPoint = errors.New("missing entry point")

// ResolutionError reports a logging module that could not be bound.
type ResolutionError struct {
	Location  string
	ClassName string
	Err       error
}

// Error implements the error interface for ResolutionError.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve logging module %s from %s: %v", e.ClassName, e.Location, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ResolutionError) Unwrap() error {
	return e.Err
}
