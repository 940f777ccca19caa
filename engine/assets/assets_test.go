package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerIndexesKnownExtensions(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "wood.jpg")
	require.NoError(t, os.WriteFile(imagePath, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shader.frag"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	m, err := NewManager(dir, false)
	require.NoError(t, err)
	defer m.Shutdown()

	assert.Equal(t, 2, m.Count())

	asset, found := m.Find(imagePath)
	require.True(t, found)
	assert.Equal(t, AssetImage, asset.Type)
	assert.NotEqual(t, asset.ID.String(), "00000000-0000-0000-0000-000000000000")

	_, found = m.Find(filepath.Join(dir, "notes.txt"))
	assert.False(t, found)
}

func TestManagerDrainReloadsEmpty(t *testing.T) {
	m, err := NewManager(t.TempDir(), false)
	require.NoError(t, err)
	defer m.Shutdown()

	assert.Nil(t, m.DrainReloads())
}

func TestManagerWatchQueuesImageWrites(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "live.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("v1"), 0o644))

	m, err := NewManager(dir, true)
	require.NoError(t, err)
	defer m.Shutdown()

	require.NoError(t, os.WriteFile(imagePath, []byte("v2"), 0o644))

	// the watcher delivers asynchronously
	deadline := time.Now().Add(2 * time.Second)
	var pending []string
	for time.Now().Before(deadline) {
		pending = m.DrainReloads()
		if len(pending) > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.NotEmpty(t, pending)
	assert.Contains(t, pending, imagePath)

	// queue drains once
	assert.Nil(t, m.DrainReloads())
}

func TestManagerDrainDeduplicates(t *testing.T) {
	m, err := NewManager(t.TempDir(), false)
	require.NoError(t, err)
	defer m.Shutdown()

	m.mu.Lock()
	m.pending = append(m.pending, "a.png", "a.png", "b.png")
	m.mu.Unlock()

	assert.Equal(t, []string{"a.png", "b.png"}, m.DrainReloads())
}
