package app

import (
	"fmt"
	"strings"
)

// DefaultConfigPath is used when no app.config argument is given. It is
// looked up on the real filesystem first, then among the bundled resources.
const DefaultConfigPath = "app/config/app-default.conf"

// Config holds what the entrypoint decided before the application starts.
type Config struct {
	ConfigPath string // app.config=<path>; empty selects DefaultConfigPath
	DryRun     bool

	LogFormat string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = DefaultConfigPath
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
		// valid
	default:
		return nil, fmt.Errorf("invalid log-format '%s': must be 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}
