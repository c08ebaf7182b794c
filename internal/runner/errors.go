package runner

import "fmt"

// ExecutionError reports a scenario whose launch failed or panicked.
type ExecutionError struct {
	Scenario string
	Priority int
	Err      error
}

// Error implements the error interface for ExecutionError.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("scenario %s (priority %d) failed: %v", e.Scenario, e.Priority, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}
