package app

import (
	"context"
	"fmt"

	"github.com/sagit117/BuilderBricks/internal/catalog"
	"github.com/sagit117/BuilderBricks/internal/ctxlog"
	"github.com/sagit117/BuilderBricks/internal/runner"
)

// Run builds the scenario catalog and launches it, or only prints the plan
// in a dry run.
func (a *App) Run(ctx context.Context) error {
	logger := a.Logger("core")
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("App.Run method started.")

	settings := a.boot.Settings
	scenarios := catalog.New(a.bundled).List(ctx, settings.ScenarioPath)

	if a.config.DryRun {
		logger.Info("Dry run, nothing will be launched.", "scenarios", len(scenarios))
		return WritePlan(a.stdout, scenarios)
	}

	report, err := runner.New(a.boot.Registry, settings.Policy).RunAll(ctx, scenarios)
	if err != nil {
		return fmt.Errorf("scenario run %s failed: %w", report.RunID, err)
	}

	logger.Debug("App.Run method finished.")
	return nil
}
