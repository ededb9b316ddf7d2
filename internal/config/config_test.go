package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "editkit.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "editkit", cfg.Logging.Prefix)
	assert.Equal(t, 1000, cfg.History.MaxEntries)
	assert.True(t, cfg.History.MergeEnabled)
	assert.Equal(t, 128, cfg.Store.InitialCapacity)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileOverlay(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"

[history]
max_entries = 50
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 50, cfg.History.MaxEntries)
	// Untouched sections keep their defaults.
	assert.Equal(t, "editkit", cfg.Logging.Prefix)
	assert.Equal(t, 128, cfg.Store.InitialCapacity)
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, "not [valid toml")

	_, err := Load(path)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, path, perr.Path)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"
`)
	t.Setenv("EDITKIT_LOG_LEVEL", "error")
	t.Setenv("EDITKIT_HISTORY_MAX_ENTRIES", "7")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, 7, cfg.History.MaxEntries)
}

func TestMergeEnabledOverlays(t *testing.T) {
	path := writeConfig(t, `
[history]
merge_enabled = false
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.False(t, cfg.History.MergeEnabled)

	t.Setenv("EDITKIT_HISTORY_MERGE", "true")
	cfg, err = Load(path)

	require.NoError(t, err)
	assert.True(t, cfg.History.MergeEnabled)
}

func TestEnvBadMergeFlag(t *testing.T) {
	t.Setenv("EDITKIT_HISTORY_MERGE", "maybe")

	_, err := Load("")

	assert.Error(t, err)
}

func TestEnvBadNumber(t *testing.T) {
	t.Setenv("EDITKIT_STORE_CAPACITY", "lots")

	_, err := Load("")

	assert.Error(t, err)
}

func TestValidateRejectsBadLevel(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "loud"

	err := cfg.Validate()

	assert.True(t, errors.Is(err, ErrInvalidLogLevel))
}

func TestValidateRejectsNegatives(t *testing.T) {
	cfg := Default()
	cfg.History.MaxEntries = -1
	assert.True(t, errors.Is(cfg.Validate(), ErrInvalidValue))

	cfg = Default()
	cfg.Store.InitialCapacity = -5
	assert.True(t, errors.Is(cfg.Validate(), ErrInvalidValue))
}

func TestWatcherDeliversReload(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "info"
`)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("[logging]\nlevel = \"warn\"\n"), 0o644))

	select {
	case cfg := <-w.Configs():
		assert.Equal(t, "warn", cfg.Logging.Level)
	case err := <-w.Errors():
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherReportsBadReload(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "info"
`)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("broken ["), 0o644))

	select {
	case err := <-w.Errors():
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatcherDoubleClose(t *testing.T) {
	path := writeConfig(t, "")

	w, err := NewWatcher(path)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.True(t, errors.Is(w.Close(), ErrWatcherClosed))
}
