package runner

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/sagit117/BuilderBricks/internal/ctxlog"
	"github.com/sagit117/BuilderBricks/internal/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type launchers map[string]scenario.Launcher

func (l launchers) Launcher(name string) (scenario.Launcher, bool) {
	launcher, ok := l[name]
	return launcher, ok
}

// recorder notes every launch in call order.
type recorder struct {
	calls []string
	fail  map[string]error
}

func (r *recorder) launcher(name string) scenario.Launcher {
	return scenario.LauncherFunc(func(ctx context.Context, d *scenario.Descriptor) error {
		r.calls = append(r.calls, d.Name)
		return r.fail[name]
	})
}

func (r *recorder) source(names ...string) launchers {
	out := launchers{}
	for _, n := range names {
		out[n] = r.launcher(n)
	}
	return out
}

func catalogOf(names ...string) []*scenario.Descriptor {
	out := make([]*scenario.Descriptor, 0, len(names))
	for i, n := range names {
		out = append(out, &scenario.Descriptor{Name: n, Version: "1", Priority: i * 10})
	}
	return out
}

func testContext() (context.Context, *bytes.Buffer) {
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger), logs
}

func TestRunAll_LaunchesInOrderExactlyOnce(t *testing.T) {
	rec := &recorder{}
	r := New(rec.source("a", "b", "c"), FailFast)
	ctx, _ := testContext()

	report, err := r.RunAll(ctx, catalogOf("a", "b", "c"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, rec.calls)
	assert.Len(t, report.Launched, 3)
	assert.Empty(t, report.Failed)
	assert.Empty(t, report.Skipped)
}

func TestRunAll_EmptyCatalog(t *testing.T) {
	rec := &recorder{}
	ctx, logs := testContext()

	report, err := New(rec.source("a"), FailFast).RunAll(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, rec.calls)
	assert.Empty(t, report.Launched)
	assert.Contains(t, logs.String(), "No scenarios to run.")
}

func TestRunAll_RunIDIsTimeOrderedUUID(t *testing.T) {
	ctx, logs := testContext()
	report, err := New(nil, FailFast).RunAll(ctx, catalogOf("a"))
	require.NoError(t, err)

	id, err := uuid.Parse(report.RunID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Contains(t, logs.String(), "runID="+report.RunID)
}

func TestRunAll_DefaultLauncherLogsCubs(t *testing.T) {
	ctx, logs := testContext()
	d := &scenario.Descriptor{
		Name:     "greeting",
		Version:  "1",
		SubUnits: []scenario.SubUnit{{Name: "hello"}, {Name: "goodbye", Index: 1}},
	}

	report, err := New(launchers{}, FailFast).RunAll(ctx, []*scenario.Descriptor{d})
	require.NoError(t, err)
	assert.Equal(t, []*scenario.Descriptor{d}, report.Launched)
	assert.Contains(t, logs.String(), "Scenario launched.")
	assert.Contains(t, logs.String(), "scenario=greeting")
	assert.Contains(t, logs.String(), "[hello goodbye]")
}

func TestRunAll_FailFastSkipsRemainder(t *testing.T) {
	boom := errors.New("boom")
	rec := &recorder{fail: map[string]error{"b": boom}}
	catalog := catalogOf("a", "b", "c", "d")
	ctx, _ := testContext()

	report, err := New(rec.source("a", "b", "c", "d"), FailFast).RunAll(ctx, catalog)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "b", execErr.Scenario)
	assert.Equal(t, 10, execErr.Priority)

	assert.Equal(t, []string{"a", "b"}, rec.calls)
	assert.Equal(t, catalog[:2], report.Launched)
	assert.Equal(t, catalog[1:2], report.Failed)
	assert.Equal(t, catalog[2:], report.Skipped)
}

func TestRunAll_BestEffortLaunchesEverything(t *testing.T) {
	errB, errD := errors.New("b broke"), errors.New("d broke")
	rec := &recorder{fail: map[string]error{"b": errB, "d": errD}}
	catalog := catalogOf("a", "b", "c", "d")
	ctx, _ := testContext()

	report, err := New(rec.source("a", "b", "c", "d"), BestEffort).RunAll(ctx, catalog)
	require.Error(t, err)
	assert.ErrorIs(t, err, errB)
	assert.ErrorIs(t, err, errD)

	assert.Equal(t, []string{"a", "b", "c", "d"}, rec.calls)
	assert.Equal(t, []*scenario.Descriptor{catalog[1], catalog[3]}, report.Failed)
	assert.Empty(t, report.Skipped)
}

func TestRunAll_PanicBecomesExecutionError(t *testing.T) {
	src := launchers{
		"bad": scenario.LauncherFunc(func(context.Context, *scenario.Descriptor) error {
			panic("launcher exploded")
		}),
	}
	ctx, _ := testContext()

	report, err := New(src, BestEffort).RunAll(ctx, catalogOf("bad", "good"))
	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "bad", execErr.Scenario)
	assert.Contains(t, execErr.Error(), "launcher exploded")
	assert.Len(t, report.Launched, 2)
}

func TestRunAll_CancelledContextSkips(t *testing.T) {
	rec := &recorder{}
	ctx, _ := testContext()
	ctx, cancel := context.WithCancel(ctx)
	cancel()

	report, err := New(rec.source("a"), BestEffort).RunAll(ctx, catalogOf("a", "b"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.calls)
	assert.Len(t, report.Skipped, 2)
}

func TestRunAll_DoesNotMutateCatalog(t *testing.T) {
	catalog := catalogOf("a", "b")
	before := []scenario.Descriptor{*catalog[0], *catalog[1]}
	ctx, _ := testContext()

	_, err := New(nil, FailFast).RunAll(ctx, catalog)
	require.NoError(t, err)
	assert.Equal(t, before[0], *catalog[0])
	assert.Equal(t, before[1], *catalog[1])
}

func TestParsePolicy(t *testing.T) {
	testCases := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{in: "", want: FailFast},
		{in: "fail-fast", want: FailFast},
		{in: "Best-Effort", want: BestEffort},
		{in: " best-effort ", want: BestEffort},
		{in: "retry", want: FailFast, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePolicy(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
			if !tc.wantErr {
				assert.Equal(t, got, mustParse(t, got.String()))
			}
		})
	}
}

func mustParse(t *testing.T, s string) Policy {
	t.Helper()
	p, err := ParsePolicy(s)
	require.NoError(t, err)
	return p
}
