package logging

import (
	"fmt"
	"log/slog"
	"plugin"
)

// LoggerGetter is the getLogger entry point.
type LoggerGetter interface {
	GetLogger(contextID string) *slog.Logger
}

// LevelSetter is the setLogLevel entry point.
type LevelSetter interface {
	SetLogLevel(level slog.Level)
}

// Provider is the full logging capability a module must expose.
type Provider interface {
	LoggerGetter
	LevelSetter
}

// Unit is a loaded code unit from which symbols can be looked up.
// *plugin.Plugin satisfies it through PluginOpener.
type Unit interface {
	Lookup(symbol string) (any, error)
}

// UnitFactory loads a fresh instance of a bundled unit. Every resolution
// gets its own instance so no state leaks between resolutions.
type UnitFactory func() Unit

// SymbolTable is a Unit compiled into the binary.
type SymbolTable map[string]any

// Lookup implements Unit.
func (s SymbolTable) Lookup(symbol string) (any, error) {
	v, ok := s[symbol]
	if !ok {
		return nil, fmt.Errorf("symbol %s not found in bundled unit", symbol)
	}
	return v, nil
}

// Opener loads a unit from a file on the real filesystem.
type Opener interface {
	Open(path string) (Unit, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(path string) (Unit, error)

// Open implements Opener.
func (f OpenerFunc) Open(path string) (Unit, error) {
	return f(path)
}

// PluginOpener opens Go plugins built with -buildmode=plugin.
type PluginOpener struct{}

// Open implements Opener.
func (PluginOpener) Open(path string) (Unit, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, err
	}
	return &pluginUnit{p: p}, nil
}

type pluginUnit struct {
	p *plugin.Plugin
}

func (u *pluginUnit) Lookup(symbol string) (any, error) {
	sym, err := u.p.Lookup(symbol)
	if err != nil {
		return nil, err
	}
	return sym, nil
}
