package print

import (
	"bytes"
	"context"
	"testing"

	"github.com/sagit117/BuilderBricks/internal/registry"
	"github.com/sagit117/BuilderBricks/internal/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLauncher_PrintsCubsInOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	d := &scenario.Descriptor{
		Name:     "greeting",
		Version:  "1.0.0",
		SubUnits: []scenario.SubUnit{{Name: "hello", Index: 0}, {Name: "goodbye", Index: 2}},
	}

	require.NoError(t, (&Launcher{Output: buf}).Launch(context.Background(), d))
	assert.Equal(t, "greeting 1.0.0\n      0 = \"hello\"\n      2 = \"goodbye\"\n", buf.String())
}

func TestLauncher_NoCubs(t *testing.T) {
	buf := &bytes.Buffer{}
	d := &scenario.Descriptor{Name: "bootstrap", Version: "1"}

	require.NoError(t, (&Launcher{Output: buf}).Launch(context.Background(), d))
	assert.Equal(t, "bootstrap 1\n      (no cubs)\n", buf.String())
}

func TestModule_RegistersEveryScenario(t *testing.T) {
	reg := registry.New()
	(&Module{Scenarios: []string{"a", "b"}, Output: &bytes.Buffer{}}).Register(reg)

	_, ok := reg.Launcher("a")
	assert.True(t, ok)
	_, ok = reg.Launcher("b")
	assert.True(t, ok)
	_, ok = reg.Launcher("c")
	assert.False(t, ok)
}
