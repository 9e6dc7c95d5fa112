package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hdfscope/internal/errors"
)

func TestDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, []string{"*.h5", "*.hdf5"}, cfg.Scan.Extensions)
	assert.Equal(t, "turbo", cfg.Viz.Colormap)
	assert.Equal(t, 0.25, cfg.Viz.Power)
	assert.Equal(t, 48, cfg.Viz.Width)
	assert.Equal(t, 500, cfg.Watch.DebounceMs)
	assert.False(t, cfg.Settings.Debug)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
scan:
  extensions: ["*.nxs"]
  default_directory: /data/stem
viz:
  width: 64
settings:
  debug: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"*.nxs"}, cfg.Scan.Extensions)
	assert.Equal(t, "/data/stem", cfg.Scan.DefaultDirectory)
	assert.Equal(t, 64, cfg.Viz.Width)
	assert.True(t, cfg.Settings.Debug)

	// Unset fields keep defaults
	assert.Equal(t, "turbo", cfg.Viz.Colormap)
	assert.Equal(t, 0.25, cfg.Viz.Power)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scan: ["), 0644))

	_, err := LoadConfigFile(path)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestValidate(t *testing.T) {
	cfg := New()
	cfg.Viz.Colormap = "plasma"
	assert.Error(t, cfg.Validate())

	cfg = New()
	cfg.Viz.Power = 0
	assert.Error(t, cfg.Validate())

	cfg = New()
	cfg.Viz.Power = 1.5
	assert.Error(t, cfg.Validate())

	assert.NoError(t, New().Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := New()
	cfg.Scan.DefaultDirectory = "/data"
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/data", loaded.Scan.DefaultDirectory)
	assert.Equal(t, cfg.Scan.Extensions, loaded.Scan.Extensions)
}
