package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadApplicationConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadApplicationConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, "Tableau", config.Name)
	assert.Equal(t, uint32(1000), config.StartWidth)
	assert.Equal(t, uint32(800), config.StartHeight)
	assert.Equal(t, "info", config.LogLevel)
	assert.True(t, config.WatchAssets)
}

func TestLoadApplicationConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tableau.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
name = "Scene"
start_width = 1280
start_height = 720
log_level = "debug"
watch_assets = false
mouse_sensitivity = 0.25
`), 0o644))

	config, err := LoadApplicationConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Scene", config.Name)
	assert.Equal(t, uint32(1280), config.StartWidth)
	assert.Equal(t, uint32(720), config.StartHeight)
	assert.Equal(t, "debug", config.LogLevel)
	assert.False(t, config.WatchAssets)
	assert.InDelta(t, 0.25, config.MouseSensitivity, 1e-6)

	// untouched keys keep their defaults
	assert.Equal(t, "assets", config.AssetsDir)
}

func TestLoadApplicationConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("start_width = ["), 0o644))

	_, err := LoadApplicationConfig(path)
	assert.Error(t, err)
}

func TestLoadApplicationConfigRejectsZeroDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.toml")
	require.NoError(t, os.WriteFile(path, []byte("start_width = 0"), 0o644))

	_, err := LoadApplicationConfig(path)
	assert.Error(t, err)
}
