package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/sagit117/BuilderBricks/internal/logging"
	"github.com/sagit117/BuilderBricks/internal/resource"
	"github.com/sagit117/BuilderBricks/internal/scenario"
)

// Module is the interface that all compiled-in modules implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the bundled units and launchers for a single application instance.
type Registry struct {
	units     map[string]logging.UnitFactory
	launchers map[string]scenario.Launcher
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		units:     make(map[string]logging.UnitFactory),
		launchers: make(map[string]scenario.Launcher),
	}
}

// RegisterUnit bundles a logging unit under a binary location such as
// "/libs/logger-1.0.0.so".
func (r *Registry) RegisterUnit(location string, factory logging.UnitFactory) {
	name, ok := resource.BundledName(location)
	if !ok {
		panic(fmt.Sprintf("invalid bundled unit location '%s'", location))
	}
	if _, exists := r.units[name]; exists {
		panic(fmt.Sprintf("bundled unit '%s' already registered", name))
	}
	slog.Debug("Registering bundled unit.", "location", location, "name", name)
	r.units[name] = factory
}

// RegisterLauncher binds a launcher to every scenario with the given name.
func (r *Registry) RegisterLauncher(scenarioName string, launcher scenario.Launcher) {
	if _, exists := r.launchers[scenarioName]; exists {
		panic(fmt.Sprintf("launcher for scenario '%s' already registered", scenarioName))
	}
	slog.Debug("Registering scenario launcher.", "scenario", scenarioName)
	r.launchers[scenarioName] = launcher
}

// Has implements resource.Bundle for the bundled units.
func (r *Registry) Has(name string, kind resource.Kind) bool {
	if kind != resource.KindFile {
		return false
	}
	_, ok := r.units[name]
	return ok
}

// OpenUnit implements logging.Bundle. Each call builds a fresh unit.
func (r *Registry) OpenUnit(name string) (logging.Unit, error) {
	factory, ok := r.units[name]
	if !ok {
		return nil, fmt.Errorf("%w: bundled unit %s", resource.ErrNotFound, name)
	}
	unit := factory()
	if unit == nil {
		return nil, fmt.Errorf("bundled unit %s produced no symbols", name)
	}
	return unit, nil
}

// Launcher returns the launcher registered for a scenario name.
func (r *Registry) Launcher(scenarioName string) (scenario.Launcher, bool) {
	l, ok := r.launchers[scenarioName]
	return l, ok
}

// Units lists the bundled unit names in sorted order.
func (r *Registry) Units() []string {
	names := make([]string, 0, len(r.units))
	for name := range r.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Launchers lists the scenario names with a registered launcher in sorted order.
func (r *Registry) Launchers() []string {
	names := make([]string, 0, len(r.launchers))
	for name := range r.launchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
