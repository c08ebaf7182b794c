package resource

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBundle() Bundle {
	return FS(fstest.MapFS{
		"scenario/a.conf":             {Data: []byte("scenario {}")},
		"app/config/app-default.conf": {Data: []byte("")},
	})
}

func TestLocate_FilesystemWins(t *testing.T) {
	dir := t.TempDir()
	locator := NewLocator(testBundle())

	loc, err := locator.Locate(dir, KindDir)
	require.NoError(t, err)
	assert.Equal(t, TierFilesystem, loc.Tier)
	assert.Equal(t, dir, loc.Path)
	assert.Empty(t, loc.Name)
}

func TestLocate_FallsBackToBundleWithSameRelativePath(t *testing.T) {
	locator := NewLocator(testBundle())
	missing := filepath.Join(t.TempDir(), "nowhere")

	_, err := locator.Locate(missing, KindDir)
	assert.ErrorIs(t, err, ErrNotFound)

	loc, err := locator.Locate("/scenario", KindDir)
	require.NoError(t, err)
	assert.Equal(t, TierBundled, loc.Tier)
	assert.Equal(t, "scenario", loc.Name)
	assert.Equal(t, "bundled:scenario", loc.String())

	loc, err = locator.Locate("app/config/app-default.conf", KindFile)
	require.NoError(t, err)
	assert.Equal(t, TierBundled, loc.Tier)
}

func TestLocate_KindMustMatch(t *testing.T) {
	file := filepath.Join(t.TempDir(), "scenario.conf")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	locator := NewLocator(testBundle())

	_, err := locator.Locate(file, KindDir)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = locator.Locate("/scenario", KindFile)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocate_NoBundle(t *testing.T) {
	locator := NewLocator(nil)
	_, err := locator.Locate("/scenario", KindDir)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = locator.Locate("", KindDir)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBundledName(t *testing.T) {
	cases := map[string]string{
		"/scenario":                  "scenario",
		"scenario/":                  "scenario",
		"/libs/logger-1.0.0.so":      "libs/logger-1.0.0.so",
		"./app/config/../config/a.c": "app/config/a.c",
		"/":                          ".",
	}
	for in, want := range cases {
		got, ok := BundledName(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := BundledName("../outside")
	assert.False(t, ok)
}
