package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/sagit117/BuilderBricks/internal/configtree"
	"github.com/sagit117/BuilderBricks/internal/ctxlog"
	"github.com/sagit117/BuilderBricks/internal/logging"
	"github.com/sagit117/BuilderBricks/internal/registry"
	"github.com/sagit117/BuilderBricks/internal/resource/bundled"
	"github.com/sagit117/BuilderBricks/modules/minilogger"
	"github.com/sagit117/BuilderBricks/modules/print"
)

// Bootstrap is everything startup produces. It is built once by New and
// only read afterwards.
type Bootstrap struct {
	Tree     configtree.Tree
	Settings Settings
	Logging  *logging.Facade
	Registry *registry.Registry
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	stdout  io.Writer
	stderr  io.Writer
	config  *Config
	bundled fs.FS
	boot    *Bootstrap
}

type options struct {
	stdout  io.Writer
	stderr  io.Writer
	bundled fs.FS
	opener  logging.Opener
	modules []registry.Module
}

// Option customises New.
type Option func(*options)

// WithOutput redirects the plan and launcher output to stdout and all
// diagnostics to stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(o *options) {
		o.stdout, o.stderr = stdout, stderr
	}
}

// WithBundle replaces the bundled resources.
func WithBundle(fsys fs.FS) Option {
	return func(o *options) {
		o.bundled = fsys
	}
}

// WithOpener replaces the loader for logging modules found on disk.
func WithOpener(opener logging.Opener) Option {
	return func(o *options) {
		o.opener = opener
	}
}

// WithModules replaces the compiled-in modules.
func WithModules(modules ...registry.Module) Option {
	return func(o *options) {
		o.modules = modules
	}
}

// coreModules is the list of modules compiled into the bricks binary.
func coreModules(stdout, stderr io.Writer, format string) []registry.Module {
	return []registry.Module{
		&minilogger.Module{Output: stderr, Format: format},
		&print.Module{Scenarios: []string{"greeting"}, Output: stdout},
	}
}

// New runs the bootstrap sequence: load the configuration tree, register
// the modules, and bind the logging module before anything asks for a
// logger. It fails with a ConfigError for unusable configuration and with
// the resolution error when the logging module is unavailable under the
// halt fallback.
func New(ctx context.Context, cfg *Config, opts ...Option) (*App, error) {
	o := &options{stdout: os.Stdout, stderr: os.Stderr, bundled: bundled.FS}
	for _, opt := range opts {
		opt(o)
	}

	bootLogger := newLogger(cfg.LogFormat, o.stderr)
	ctx = ctxlog.WithLogger(ctx, bootLogger)
	bootLogger.Debug("Bootstrap logger configured.")

	tree, err := loadTree(ctx, cfg.ConfigPath, o.bundled)
	if err != nil {
		return nil, err
	}
	settings, err := readSettings(ctx, tree)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	modules := o.modules
	if len(modules) == 0 {
		modules = coreModules(o.stdout, o.stderr, cfg.LogFormat)
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	bootLogger.Debug("All Go modules registered.", "count", len(modules))

	bindOpts := logging.Options{
		Location:  settings.ClassPath,
		ClassName: settings.ClassName,
		Level:     settings.Level,
	}
	if settings.Fallback == FallbackConsole {
		bindOpts.Fallback = minilogger.New(o.stderr, cfg.LogFormat)
	}

	facade := &logging.Facade{}
	if err := facade.Bind(ctx, logging.NewResolver(o.opener, reg), bindOpts); err != nil {
		fmt.Fprintf(o.stderr, "Logging module resolution failed: %v\n", err)
		if settings.Fallback == FallbackHalt {
			return nil, err
		}
	}

	return &App{
		stdout:  o.stdout,
		stderr:  o.stderr,
		config:  cfg,
		bundled: o.bundled,
		boot: &Bootstrap{
			Tree:     tree,
			Settings: settings,
			Logging:  facade,
			Registry: reg,
		},
	}, nil
}

// Bootstrap returns what startup produced. This is primarily for testing.
func (a *App) Bootstrap() *Bootstrap {
	return a.boot
}

// Logger returns the bound module's logger for contextID.
func (a *App) Logger(contextID string) *slog.Logger {
	return a.boot.Logging.Logger(contextID)
}
