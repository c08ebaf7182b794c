package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sagit117/BuilderBricks/internal/app"
	"github.com/sagit117/BuilderBricks/internal/cli"
	"github.com/sagit117/BuilderBricks/internal/registry"
	"github.com/sagit117/BuilderBricks/internal/runner"
	"github.com/sagit117/BuilderBricks/internal/scenario"
	"github.com/sagit117/BuilderBricks/modules/minilogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moduleFunc func(r *registry.Registry)

func (f moduleFunc) Register(r *registry.Registry) { f(r) }

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// Registering the same launcher twice is a programmer error that panics.
	duplicate := moduleFunc(func(r *registry.Registry) {
		noop := runner.NoopLauncher()
		r.RegisterLauncher("twice", noop)
		r.RegisterLauncher("twice", noop)
	})
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(context.Background(), stdout, stderr, []string{"--dry-run"}, app.WithModules(duplicate))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "application startup panicked")
	assert.Contains(t, err.Error(), "already registered")
	assert.Contains(t, stderr.String(), "A critical startup error occurred")
	assert.Equal(t, 1, exitCode(err))
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(context.Background(), stdout, stderr, []string{"-h"})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestRun_DryRunWithBundledDefaults(t *testing.T) {
	t.Parallel()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(context.Background(), stdout, stderr, []string{"--dry-run"})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "bootstrap")
	assert.Contains(t, stdout.String(), "greeting")
}

func TestRun_MalformedConfigExitsWithTwo(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "application {\n")
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"app.config=" + path})
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}

func TestRun_HaltedLoggerExitsWithOne(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "application {\n  logger {\n    className = \"bricks.logger.Missing\"\n    fallback  = \"halt\"\n  }\n}\n")
	stderr := &bytes.Buffer{}
	err := run(context.Background(), &bytes.Buffer{}, stderr, []string{"app.config=" + path})
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, stderr.String(), "Logging module resolution failed")
}

func TestRun_LaunchFailureExitsWithOne(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "s.conf"),
		[]byte("scenario {\n  name     = \"broken\"\n  version  = \"1\"\n  priority = 1\n}\n"), 0o600))
	path := writeConfig(t, fmt.Sprintf("application {\n  scenario {\n    path = %q\n  }\n}\n", dir))

	stderr := &bytes.Buffer{}
	failing := moduleFunc(func(r *registry.Registry) {
		r.RegisterLauncher("broken", scenario.LauncherFunc(func(context.Context, *scenario.Descriptor) error {
			return errors.New("cannot launch")
		}))
	})
	err := run(context.Background(), &bytes.Buffer{}, stderr, []string{"app.config=" + path},
		app.WithModules(&minilogger.Module{Output: stderr}, failing))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot launch")
	assert.Equal(t, 1, exitCode(err))
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 2, exitCode(&cli.ExitError{Code: 2, Message: "usage"}))
	assert.Equal(t, 2, exitCode(fmt.Errorf("wrapped: %w", &app.ConfigError{Path: "x", Err: errors.New("bad")})))
	assert.Equal(t, 1, exitCode(errors.New("anything else")))
}
