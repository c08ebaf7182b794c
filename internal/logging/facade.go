package logging

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures Facade.Bind.
type Options struct {
	Location  string
	ClassName string
	Level     slog.Level
	// Fallback, when set, is installed in place of a module that failed to
	// resolve. Without it a failed facade hands out discarding loggers.
	Fallback Provider
}

// Facade is the process-wide access point to the resolved logging module.
// It is bound once during startup and only read afterwards; Logger must not
// be called concurrently with Bind.
type Facade struct {
	once     sync.Once
	module   *ResolvedModule
	provider Provider
	level    slog.Level
	err      error
}

// Bind resolves the logging module and applies the configured level before
// first use. Only the first call does any work; later calls return its
// outcome. The returned error is the resolution failure even when a fallback
// provider was installed.
func (f *Facade) Bind(ctx context.Context, r *Resolver, opts Options) error {
	f.once.Do(func() {
		f.level = opts.Level

		module, err := r.Resolve(ctx, opts.Location, opts.ClassName)
		if err != nil {
			f.err = err
			if opts.Fallback == nil {
				return
			}
			f.provider = opts.Fallback
			f.provider.SetLogLevel(f.level)
			f.provider.GetLogger("core").Log(ctx, LevelSevere, "Logging module unavailable, using fallback logger.", "error", err)
			return
		}

		f.module = module
		f.provider = module
		f.provider.SetLogLevel(f.level)
		f.provider.GetLogger("core").Log(ctx, LevelConfig, "Logger module loaded!",
			"class", module.ClassName, "location", module.Location.String())
	})
	return f.err
}

// Logger returns a logger for contextID at the configured level.
func (f *Facade) Logger(contextID string) *slog.Logger {
	return f.LoggerAt(contextID, f.level)
}

// LoggerAt sets the module level to level and returns a logger for
// contextID. The level applies to the whole module, not just the returned
// logger.
func (f *Facade) LoggerAt(contextID string, level slog.Level) *slog.Logger {
	if f.provider == nil {
		return discardLogger
	}
	f.provider.SetLogLevel(level)
	if logger := f.provider.GetLogger(contextID); logger != nil {
		return logger
	}
	return discardLogger
}

// Module returns the bound module, or nil when resolution failed.
func (f *Facade) Module() *ResolvedModule {
	return f.module
}

// Level returns the configured level.
func (f *Facade) Level() slog.Level {
	return f.level
}

// Degraded reports whether the facade runs on a fallback provider or on
// nothing at all.
func (f *Facade) Degraded() bool {
	return f.module == nil
}
