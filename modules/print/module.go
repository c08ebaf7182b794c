// Package print provides a launcher that prints a scenario and its cubs.
package print

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sagit117/BuilderBricks/internal/ctxlog"
	"github.com/sagit117/BuilderBricks/internal/registry"
	"github.com/sagit117/BuilderBricks/internal/scenario"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	// Scenarios lists the scenario names launched by printing.
	Scenarios []string
	// Output defaults to os.Stdout.
	Output io.Writer
}

// Launcher prints each launched scenario to Output.
type Launcher struct {
	Output io.Writer
}

// Launch implements scenario.Launcher.
func (l *Launcher) Launch(ctx context.Context, d *scenario.Descriptor) error {
	ctxlog.FromContext(ctx).Info("Printing scenario")

	if _, err := fmt.Fprintf(l.Output, "%s %s\n", d.Name, d.Version); err != nil {
		return fmt.Errorf("failed to print scenario %s: %w", d.Name, err)
	}
	if len(d.SubUnits) == 0 {
		_, err := fmt.Fprintln(l.Output, "      (no cubs)")
		return err
	}
	for _, su := range d.SubUnits {
		if _, err := fmt.Fprintf(l.Output, "      %d = %q\n", su.Index, su.Name); err != nil {
			return fmt.Errorf("failed to print scenario %s: %w", d.Name, err)
		}
	}
	return nil
}

// Register registers the launcher for every configured scenario name.
func (m *Module) Register(r *registry.Registry) {
	out := m.Output
	if out == nil {
		out = os.Stdout
	}
	launcher := &Launcher{Output: out}
	for _, name := range m.Scenarios {
		r.RegisterLauncher(name, launcher)
	}
}
