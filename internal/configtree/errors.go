package configtree

import (
	"errors"
	"fmt"
)

var (
	// ErrMissing reports a path that is absent or explicitly null.
	ErrMissing = errors.New("path not found")
	// ErrWrongType reports a path whose value cannot be read as the
	// requested leaf type.
	ErrWrongType = errors.New("wrong value type")
)

// PathError describes a failed read of a single path in a tree.
type PathError struct {
	Origin string
	Path   string
	Err    error
}

// Error implements the error interface for PathError.
func (e *PathError) Error() string {
	if e.Origin == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Origin, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *PathError) Unwrap() error {
	return e.Err
}
