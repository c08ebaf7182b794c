package app

import (
	"io"
	"log/slog"

	"github.com/sagit117/BuilderBricks/internal/logging"
)

// newLogger creates the bootstrap logger used until the logging module is
// bound. It does not set the global logger, allowing for isolated logger
// instances.
func newLogger(formatStr string, outW io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		Level: logging.DefaultLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.LevelKey {
				if level, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(logging.LevelName(level))
				}
			}
			return a
		},
	}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler).With("context", "bootstrap")
}
