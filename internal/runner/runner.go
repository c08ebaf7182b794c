package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sagit117/BuilderBricks/internal/ctxlog"
	"github.com/sagit117/BuilderBricks/internal/scenario"
)

// LauncherSource finds the launcher registered for a scenario name.
type LauncherSource interface {
	Launcher(name string) (scenario.Launcher, bool)
}

// Report describes what a run did with each scenario.
type Report struct {
	RunID    string
	Launched []*scenario.Descriptor
	Failed   []*scenario.Descriptor
	Skipped  []*scenario.Descriptor
}

// Runner launches scenarios sequentially in catalog order.
type Runner struct {
	source   LauncherSource
	policy   Policy
	fallback scenario.Launcher
	newID    func() string
}

// New creates a Runner. Scenarios without a launcher in source, or all of
// them when source is nil, get NoopLauncher.
func New(source LauncherSource, policy Policy) *Runner {
	return &Runner{
		source:   source,
		policy:   policy,
		fallback: NoopLauncher(),
		newID:    newRunID,
	}
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// RunAll launches every descriptor in the order given, each exactly once,
// never starting one before the previous has returned. The descriptors are
// only read. Under FailFast the first failure ends the run and the rest are
// reported as skipped; under BestEffort all failures are joined.
func (r *Runner) RunAll(ctx context.Context, catalog []*scenario.Descriptor) (*Report, error) {
	report := &Report{RunID: r.newID()}
	logger := ctxlog.FromContext(ctx).With("runID", report.RunID)
	ctx = ctxlog.WithLogger(ctx, logger)

	if len(catalog) == 0 {
		logger.Info("No scenarios to run.")
		return report, nil
	}
	logger.Info("Running scenarios.", "count", len(catalog), "policy", r.policy.String())

	var errs []error
	for i, d := range catalog {
		if err := ctx.Err(); err != nil {
			report.Skipped = append(report.Skipped, catalog[i:]...)
			errs = append(errs, err)
			logger.Warn("Run cancelled.", "skipped", len(catalog)-i)
			break
		}

		err := r.launch(ctx, d)
		report.Launched = append(report.Launched, d)
		if err == nil {
			continue
		}

		report.Failed = append(report.Failed, d)
		errs = append(errs, err)
		logger.Error("Scenario failed.", "scenario", d.Name, "priority", d.Priority, "error", err)
		if r.policy == FailFast {
			report.Skipped = append(report.Skipped, catalog[i+1:]...)
			if len(report.Skipped) > 0 {
				logger.Warn("Stopping run after failure.", "skipped", len(report.Skipped))
			}
			break
		}
	}

	logger.Info("Run finished.",
		"launched", len(report.Launched),
		"failed", len(report.Failed),
		"skipped", len(report.Skipped),
	)
	return report, errors.Join(errs...)
}

func (r *Runner) launch(ctx context.Context, d *scenario.Descriptor) (err error) {
	launcher := r.fallback
	if r.source != nil {
		if l, ok := r.source.Launcher(d.Name); ok {
			launcher = l
		}
	}

	logger := ctxlog.FromContext(ctx).With("scenario", d.Name, "version", d.Version, "priority", d.Priority)
	logger.Debug("Launching scenario.")

	defer func() {
		if rec := recover(); rec != nil {
			err = &ExecutionError{Scenario: d.Name, Priority: d.Priority, Err: fmt.Errorf("panic: %v", rec)}
		}
	}()

	if lerr := launcher.Launch(ctxlog.WithLogger(ctx, logger), d); lerr != nil {
		return &ExecutionError{Scenario: d.Name, Priority: d.Priority, Err: lerr}
	}
	logger.Debug("Scenario finished.")
	return nil
}

// NoopLauncher launches nothing; it logs the scenario and its cubs.
func NoopLauncher() scenario.Launcher {
	return scenario.LauncherFunc(func(ctx context.Context, d *scenario.Descriptor) error {
		ctxlog.FromContext(ctx).Info("Scenario launched.", "cubs", d.SubUnitNames())
		return nil
	})
}
