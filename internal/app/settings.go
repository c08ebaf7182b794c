package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sagit117/BuilderBricks/internal/configtree"
	"github.com/sagit117/BuilderBricks/internal/ctxlog"
	"github.com/sagit117/BuilderBricks/internal/logging"
	"github.com/sagit117/BuilderBricks/internal/runner"
)

// Configuration keys read from the application tree.
const (
	KeyClassPath     = "application.logger.classPath"
	KeyClassName     = "application.logger.className"
	KeyLevel         = "application.logger.level"
	KeyFallback      = "application.logger.fallback"
	KeyScenarioPath  = "application.scenario.path"
	KeyFailurePolicy = "application.scenario.failurePolicy"
)

// DefaultScenarioPath is scanned when application.scenario.path is absent.
const DefaultScenarioPath = "/scenario"

// Fallback decides what happens when the logging module cannot be bound.
type Fallback string

const (
	// FallbackConsole binds the bundled MiniLogger on stderr and continues.
	FallbackConsole Fallback = "console"
	// FallbackHalt stops the bootstrap.
	FallbackHalt Fallback = "halt"
)

// Settings are the values bootstrap reads from the configuration tree.
type Settings struct {
	ClassPath    string
	ClassName    string
	Level        slog.Level
	Fallback     Fallback
	ScenarioPath string
	Policy       runner.Policy
}

// readSettings reads every key with its documented default. Missing keys
// and unknown levels degrade to the default; unknown fallback or policy
// names are configuration errors.
func readSettings(ctx context.Context, tree configtree.Tree) (Settings, error) {
	logger := ctxlog.FromContext(ctx)
	s := Settings{
		ClassPath:    stringOr(ctx, tree, KeyClassPath, logging.DefaultClassPath),
		ClassName:    stringOr(ctx, tree, KeyClassName, logging.DefaultClassName),
		ScenarioPath: stringOr(ctx, tree, KeyScenarioPath, DefaultScenarioPath),
	}

	levelName := stringOr(ctx, tree, KeyLevel, logging.LevelName(logging.DefaultLevel))
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		logger.Warn("Unknown log level, using the default.", "key", KeyLevel, "default", logging.LevelName(level), "error", err)
	}
	s.Level = level

	switch f := Fallback(strings.ToLower(stringOr(ctx, tree, KeyFallback, string(FallbackConsole)))); f {
	case FallbackConsole, FallbackHalt:
		s.Fallback = f
	default:
		return s, &ConfigError{Path: tree.Origin(), Err: fmt.Errorf("%s: unknown fallback '%s' (want console or halt)", KeyFallback, f)}
	}

	policy, err := runner.ParsePolicy(stringOr(ctx, tree, KeyFailurePolicy, runner.FailFast.String()))
	if err != nil {
		return s, &ConfigError{Path: tree.Origin(), Err: fmt.Errorf("%s: %w", KeyFailurePolicy, err)}
	}
	s.Policy = policy

	return s, nil
}

func stringOr(ctx context.Context, tree configtree.Tree, key, def string) string {
	logger := ctxlog.FromContext(ctx)
	v, err := tree.GetString(key)
	switch {
	case err == nil && v != "":
		return v
	case err == nil || errors.Is(err, configtree.ErrMissing):
		logger.Log(ctx, logging.LevelConfig, "Configuration key not set, using the default.", "key", key, "default", def)
	default:
		logger.Warn("Configuration key unusable, using the default.", "key", key, "default", def, "error", err)
	}
	return def
}
