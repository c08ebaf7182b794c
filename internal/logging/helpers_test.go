package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"

	"github.com/sagit117/BuilderBricks/internal/resource"
)

// recordingProvider is a Provider that records every entry point call.
type recordingProvider struct {
	mu       sync.Mutex
	out      *bytes.Buffer
	level    slog.LevelVar
	levels   []slog.Level
	contexts []string
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{out: &bytes.Buffer{}}
}

func (p *recordingProvider) GetLogger(contextID string) *slog.Logger {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.contexts = append(p.contexts, contextID)
	return slog.New(slog.NewTextHandler(p.out, &slog.HandlerOptions{Level: &p.level})).With("context", contextID)
}

func (p *recordingProvider) SetLogLevel(level slog.Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.levels = append(p.levels, level)
	p.level.Set(level)
}

// getterOnly exposes GetLogger but not SetLogLevel.
type getterOnly struct{}

func (getterOnly) GetLogger(string) *slog.Logger { return discardLogger }

// fakeBundle is an in-memory bundled tier counting every unit it opens.
type fakeBundle struct {
	units  map[string]UnitFactory
	opened map[string]int
}

func newFakeBundle() *fakeBundle {
	return &fakeBundle{units: map[string]UnitFactory{}, opened: map[string]int{}}
}

func (b *fakeBundle) add(location string, factory UnitFactory) {
	name, _ := resource.BundledName(location)
	b.units[name] = factory
}

func (b *fakeBundle) Has(name string, kind resource.Kind) bool {
	_, ok := b.units[name]
	return ok && kind == resource.KindFile
}

func (b *fakeBundle) OpenUnit(name string) (Unit, error) {
	factory, ok := b.units[name]
	if !ok {
		return nil, errors.New("no such unit")
	}
	b.opened[name]++
	return factory(), nil
}

// countingOpener is an Opener test double that counts loads.
type countingOpener struct {
	mu    sync.Mutex
	loads int
	unit  Unit
	err   error
}

func (o *countingOpener) Open(string) (Unit, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.loads++
	if o.err != nil {
		return nil, o.err
	}
	return o.unit, nil
}

func (o *countingOpener) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.loads
}
