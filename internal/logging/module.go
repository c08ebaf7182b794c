package logging

import (
	"log/slog"
	"reflect"
	"strings"

	"github.com/sagit117/BuilderBricks/internal/resource"
)

// ResolvedModule is a logging module bound with both entry points.
type ResolvedModule struct {
	Location  *resource.Location
	ClassName string

	getLogger   func(contextID string) *slog.Logger
	setLogLevel func(level slog.Level)
}

// GetLogger invokes the module's getLogger entry point.
func (m *ResolvedModule) GetLogger(contextID string) *slog.Logger {
	return m.getLogger(contextID)
}

// SetLogLevel invokes the module's setLogLevel entry point.
func (m *ResolvedModule) SetLogLevel(level slog.Level) {
	m.setLogLevel(level)
}

// TypeName returns the symbol looked up for a class name: the segment after
// the last dot.
func TypeName(className string) string {
	className = strings.TrimSpace(className)
	if i := strings.LastIndex(className, "."); i >= 0 {
		return className[i+1:]
	}
	return className
}

// resolvesToNil reports whether sym, or the variable it points to, holds no
// value. Plugins export an uninitialised pointer variable as a non-nil
// pointer to a nil pointer.
func resolvesToNil(sym any) bool {
	if sym == nil {
		return true
	}
	v := reflect.ValueOf(sym)
	if isNilValue(v) {
		return true
	}
	return v.Kind() == reflect.Pointer && isNilValue(v.Elem())
}

func isNilValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		return v.IsNil() || isNilValue(v.Elem())
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan:
		return v.IsNil()
	default:
		return !v.IsValid()
	}
}

// bind extracts both entry points from a looked-up symbol. Plugins export
// variables as pointers, so the pointed-to value is tried as well. Nil
// candidates never bind.
func bind(sym any) (*ResolvedModule, []string) {
	var candidates []any
	if v := reflect.ValueOf(sym); v.IsValid() && !isNilValue(v) {
		candidates = append(candidates, sym)
		if v.Kind() == reflect.Pointer && !isNilValue(v.Elem()) {
			candidates = append(candidates, v.Elem().Interface())
		}
	}

	var getter LoggerGetter
	var setter LevelSetter
	for _, c := range candidates {
		if g, ok := c.(LoggerGetter); ok && getter == nil {
			getter = g
		}
		if s, ok := c.(LevelSetter); ok && setter == nil {
			setter = s
		}
	}

	var missing []string
	if getter == nil {
		missing = append(missing, "GetLogger")
	}
	if setter == nil {
		missing = append(missing, "SetLogLevel")
	}
	if len(missing) > 0 {
		return nil, missing
	}

	return &ResolvedModule{
		getLogger:   getter.GetLogger,
		setLogLevel: setter.SetLogLevel,
	}, nil
}
