package catalog

import "fmt"

// DirectoryError reports a scenario directory that could not be resolved
// or listed. It is logged, never returned: the catalog is empty instead.
type DirectoryError struct {
	Path string
	Err  error
}

// Error implements the error interface for DirectoryError.
func (e *DirectoryError) Error() string {
	return fmt.Sprintf("scenario directory %s unavailable: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DirectoryError) Unwrap() error {
	return e.Err
}
