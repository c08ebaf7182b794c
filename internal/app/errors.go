package app

import "fmt"

// ConfigError reports an application configuration that exists but cannot
// be used, such as a syntax error or an unknown policy name.
type ConfigError struct {
	Path string
	Err  error
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid application configuration %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
