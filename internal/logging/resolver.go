package logging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sagit117/BuilderBricks/internal/ctxlog"
	"github.com/sagit117/BuilderBricks/internal/resource"
)

const (
	// DefaultClassPath is the statically known location of the bundled
	// logging module.
	DefaultClassPath = "/libs/logger-1.0.0.so"
	// DefaultClassName names the type resolved inside the default module.
	DefaultClassName = "bricks.logger.MiniLogger"
)

// Bundle provides the units compiled into the binary.
type Bundle interface {
	resource.Bundle
	OpenUnit(name string) (Unit, error)
}

// Resolver loads logging modules and binds their entry points.
type Resolver struct {
	opener  Opener
	bundle  Bundle
	locator *resource.Locator
}

// NewResolver creates a Resolver. A nil opener defaults to PluginOpener; a
// nil bundle disables the bundled tier.
func NewResolver(opener Opener, bundle Bundle) *Resolver {
	if opener == nil {
		opener = PluginOpener{}
	}
	var tier resource.Bundle
	if bundle != nil {
		tier = bundle
	}
	return &Resolver{
		opener:  opener,
		bundle:  bundle,
		locator: resource.NewLocator(tier),
	}
}

// Resolve loads the unit at location and binds className inside it. When
// location cannot be found in either tier the default location is tried.
// Empty arguments select the defaults.
func (r *Resolver) Resolve(ctx context.Context, location, className string) (*ResolvedModule, error) {
	logger := ctxlog.FromContext(ctx)
	if location == "" {
		location = DefaultClassPath
	}
	if className == "" {
		className = DefaultClassName
	}
	fail := func(where string, err error) (*ResolvedModule, error) {
		return nil, &ResolutionError{Location: where, ClassName: className, Err: err}
	}

	loc, err := r.locator.Locate(location, resource.KindFile)
	if err != nil && location != DefaultClassPath {
		logger.Log(ctx, LevelConfig, "Logging module not found, falling back to the default location.",
			"location", location, "default", DefaultClassPath)
		loc, err = r.locator.Locate(DefaultClassPath, resource.KindFile)
	}
	if err != nil {
		return fail(location, err)
	}
	logger.Debug("Logging module located.", "location", loc.String(), "tier", loc.Tier.String())

	unit, err := r.open(loc)
	if err != nil {
		return fail(loc.String(), fmt.Errorf("failed to load unit: %w", err))
	}

	symbol := TypeName(className)
	if symbol == "" {
		return fail(loc.String(), errors.New("empty class name"))
	}
	sym, err := unit.Lookup(symbol)
	if err != nil {
		return fail(loc.String(), fmt.Errorf("failed to look up type %s: %w", symbol, err))
	}
	if resolvesToNil(sym) {
		return fail(loc.String(), fmt.Errorf("type %s resolved to nil", symbol))
	}

	module, missing := bind(sym)
	if len(missing) > 0 {
		return fail(loc.String(), fmt.Errorf("%w: type %s lacks %s", ErrMissingEntryPoint, symbol, strings.Join(missing, ", ")))
	}
	module.Location = loc
	module.ClassName = className

	logger.Debug("Logging module bound.", "class", className, "location", loc.String())
	return module, nil
}

func (r *Resolver) open(loc *resource.Location) (Unit, error) {
	if loc.Tier == resource.TierBundled {
		if r.bundle == nil {
			return nil, fmt.Errorf("%w: %s", resource.ErrNotFound, loc.Name)
		}
		return r.bundle.OpenUnit(loc.Name)
	}
	return r.opener.Open(loc.Path)
}
