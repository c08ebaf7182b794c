package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"ALL":     LevelFinest,
		"finest":  LevelFinest,
		"FINER":   LevelFiner,
		"fine":    LevelFine,
		"debug":   slog.LevelDebug,
		"CONFIG":  LevelConfig,
		"info":    slog.LevelInfo,
		"WARNING": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		"SEVERE":  slog.LevelError,
		"error":   slog.LevelError,
		" off ":   LevelOff,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestParseLevel_UnknownFallsBackToDefault(t *testing.T) {
	got, err := ParseLevel("LOUD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"LOUD"`)
	assert.Equal(t, DefaultLevel, got)
}

func TestLevelName(t *testing.T) {
	for _, name := range []string{"FINEST", "FINER", "FINE", "CONFIG", "INFO", "WARNING", "SEVERE", "OFF"} {
		level, err := ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, name, LevelName(level))
	}
}
