package bundled

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsDefaults(t *testing.T) {
	_, err := fs.Stat(FS, "app/config/app-default.conf")
	require.NoError(t, err)

	entries, err := fs.ReadDir(FS, "scenario")
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}
