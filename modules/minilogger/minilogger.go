// Package minilogger is the default logging module. It is compiled into the
// binary under the default class path and can also be built as a plugin
// from plugins/minilogger.
package minilogger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sagit117/BuilderBricks/internal/logging"
	"github.com/sagit117/BuilderBricks/internal/registry"
)

// Logger hands out slog loggers that share one adjustable level.
type Logger struct {
	handler slog.Handler
	level   *slog.LevelVar
}

// New creates a Logger writing text records to w. A format of "json"
// selects JSON records instead.
func New(w io.Writer, format string) *Logger {
	level := &slog.LevelVar{}
	level.Set(logging.DefaultLevel)

	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: replaceLevel}
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{handler: handler, level: level}
}

// GetLogger returns a logger tagged with the caller's context.
func (l *Logger) GetLogger(contextID string) *slog.Logger {
	return slog.New(l.handler).With("context", contextID)
}

// SetLogLevel changes the level of every logger handed out so far.
func (l *Logger) SetLogLevel(level slog.Level) {
	l.level.Set(level)
}

// Level returns the current level.
func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

func replaceLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		if level, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(logging.LevelName(level))
		}
	}
	return a
}

// Module registers the bundled MiniLogger unit.
type Module struct {
	// Output defaults to os.Stderr.
	Output io.Writer
	Format string
}

// Register implements registry.Module.
func (m *Module) Register(r *registry.Registry) {
	out := m.Output
	if out == nil {
		out = os.Stderr
	}
	format := m.Format
	r.RegisterUnit(logging.DefaultClassPath, func() logging.Unit {
		return logging.SymbolTable{
			logging.TypeName(logging.DefaultClassName): New(out, format),
		}
	})
}
