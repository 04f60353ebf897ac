package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxUndoDepth, cfg.Editor.MaxUndoDepth)
	assert.Equal(t, SyncOff, cfg.Sync.Mode)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[logger]
log_level = "debug"

[editor]
max_undo_depth = 20
system_clipboard = false

[sync]
mode = "wifi"
interval_minutes = 5
on_launch = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, 20, cfg.Editor.MaxUndoDepth)
	assert.False(t, cfg.Editor.SystemClipboard)
	assert.Equal(t, SyncWifi, cfg.Sync.Mode)
	assert.Equal(t, 5, cfg.Sync.IntervalMinutes)
	assert.True(t, cfg.Sync.OnLaunch)
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateResetsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[editor]
max_undo_depth = -5

[sync]
mode = "bluetooth"
interval_minutes = 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxUndoDepth, cfg.Editor.MaxUndoDepth)
	assert.Equal(t, SyncOff, cfg.Sync.Mode)
	assert.Equal(t, int(DefaultSyncInterval.Minutes()), cfg.Sync.IntervalMinutes)
}

func TestZeroUndoDepthMeansUnbounded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[editor]\nmax_undo_depth = 0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Editor.MaxUndoDepth)
}
