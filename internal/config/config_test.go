package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cs := NewConfigServiceAt(dir)

	cfg, err := cs.Load()
	require.NoError(t, err)

	if diff := cmp.Diff(defaultConfigIn(dir), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 45*time.Minute, cfg.Timing.EstimatedDuration)
	assert.Equal(t, StorageFile, cfg.Storage.Driver)
}

func TestSaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	cs := NewConfigServiceAt(dir)

	cfg := defaultConfigIn(dir)
	cfg.Timing.EstimatedDuration = 20 * time.Minute
	cfg.Input.WheelCooldown = 250 * time.Millisecond
	cfg.Storage.Driver = StorageSQLite
	cfg.UI.StartPresenter = true
	require.NoError(t, cs.Save(cfg))

	loaded, err := cs.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	raw, err := os.ReadFile(cs.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "20m0s")
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cs := NewConfigServiceAt(dir)
	require.NoError(t, cs.Save(defaultConfigIn(dir)))

	t.Setenv("DECKGRIP_LOG_LEVEL", "debug")
	t.Setenv("DECKGRIP_TIMING_ESTIMATED_DURATION", "10m")

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 10*time.Minute, cfg.Timing.EstimatedDuration)
}

func TestLoadFromPathMissing(t *testing.T) {
	cs := NewConfigServiceAt(t.TempDir())
	_, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage]\ndriver = \"redis\"\n"), 0o644))

	_, err := NewConfigServiceAt(dir).LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	cs := NewConfigServiceAt(dir)

	cfg, err := LoadOrCreate(cs)
	require.NoError(t, err)
	assert.FileExists(t, cs.Path())
	assert.True(t, cfg.UI.Mouse)
	assert.True(t, cfg.UI.AutoStart)

	again, err := LoadOrCreate(cs)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadAutoStartOff(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nauto_start = false\n"), 0o644))

	cfg, err := NewConfigServiceAt(dir).LoadFromPath(path)
	require.NoError(t, err)
	assert.False(t, cfg.UI.AutoStart)
	assert.True(t, cfg.UI.Mouse)
}

func TestLoadRejectsSubSecondEstimate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[timing]\nestimated_duration = \"500ms\"\n"), 0o644))

	_, err := NewConfigServiceAt(dir).LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "estimated_duration")
}
