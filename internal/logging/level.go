package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// Levels between and around the slog defaults, so that configuration can
// use the finer-grained names CONFIG, FINER, FINEST and OFF.
const (
	LevelFinest  = slog.LevelDebug - 4
	LevelFiner   = slog.LevelDebug - 2
	LevelFine    = slog.LevelDebug
	LevelConfig  = slog.LevelInfo - 2
	LevelInfo    = slog.LevelInfo
	LevelWarning = slog.LevelWarn
	LevelSevere  = slog.LevelError
	LevelOff     = slog.Level(1 << 16)
)

// DefaultLevel applies when application.logger.level is absent.
const DefaultLevel = LevelConfig

var levelsByName = map[string]slog.Level{
	"ALL":     LevelFinest,
	"FINEST":  LevelFinest,
	"FINER":   LevelFiner,
	"FINE":    LevelFine,
	"DEBUG":   LevelFine,
	"CONFIG":  LevelConfig,
	"INFO":    LevelInfo,
	"WARNING": LevelWarning,
	"WARN":    LevelWarning,
	"SEVERE":  LevelSevere,
	"ERROR":   LevelSevere,
	"OFF":     LevelOff,
}

// ParseLevel converts a level name, case-insensitively, into a slog level.
func ParseLevel(name string) (slog.Level, error) {
	level, ok := levelsByName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return DefaultLevel, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// LevelName renders a level with the configuration vocabulary.
func LevelName(level slog.Level) string {
	switch {
	case level >= LevelOff:
		return "OFF"
	case level >= LevelSevere:
		return "SEVERE"
	case level >= LevelWarning:
		return "WARNING"
	case level >= LevelInfo:
		return "INFO"
	case level >= LevelConfig:
		return "CONFIG"
	case level >= LevelFine:
		return "FINE"
	case level >= LevelFiner:
		return "FINER"
	default:
		return "FINEST"
	}
}
