package assets

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/spaghettifunk/tableau/engine/core"
)

// AssetType classifies an indexed file by extension.
type AssetType int

const (
	AssetUnknown AssetType = iota
	AssetImage
	AssetShader
)

func (t AssetType) String() string {
	switch t {
	case AssetImage:
		return "image"
	case AssetShader:
		return "shader"
	default:
		return "unknown"
	}
}

// Asset is one indexed file under the assets directory.
type Asset struct {
	ID   uuid.UUID
	Path string
	Type AssetType
}

// Manager indexes the assets directory and, when watching is enabled,
// queues change notifications for the main thread. fsnotify delivers on
// its own goroutine; DrainReloads hands the pending paths back on the
// caller's thread so GL work never happens off the context thread.
type Manager struct {
	root    string
	assets  map[string]Asset
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	pending []string

	done chan struct{}
}

func classify(path string) AssetType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".bmp", ".tga", ".tiff":
		return AssetImage
	case ".glsl", ".vert", ".frag":
		return AssetShader
	default:
		return AssetUnknown
	}
}

// NewManager indexes root. With watch enabled it also starts an fsnotify
// watcher over root and every subdirectory.
func NewManager(root string, watch bool) (*Manager, error) {
	m := &Manager{
		root:   root,
		assets: make(map[string]Asset),
		done:   make(chan struct{}),
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if t := classify(path); t != AssetUnknown {
			m.assets[path] = Asset{ID: uuid.New(), Path: path, Type: t}
		}
		return nil
	})
	if err != nil {
		core.LogWarn("asset index of %s incomplete: %s", root, err)
	}
	core.LogInfo("indexed %d assets under %s", len(m.assets), root)

	if !watch {
		return m, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	m.watcher = watcher

	if err := watcher.Add(root); err != nil {
		core.LogWarn("cannot watch %s: %s", root, err)
	}
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() || path == root {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			core.LogWarn("cannot watch %s: %s", path, err)
		}
		return nil
	})

	go m.watch()
	return m, nil
}

func (m *Manager) watch() {
	for {
		select {
		case <-m.done:
			return
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if classify(event.Name) != AssetImage {
				continue
			}
			m.mu.Lock()
			if _, known := m.assets[event.Name]; !known {
				m.assets[event.Name] = Asset{ID: uuid.New(), Path: event.Name, Type: AssetImage}
			}
			m.pending = append(m.pending, event.Name)
			m.mu.Unlock()
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			core.LogWarn("asset watcher error: %s", err)
		}
	}
}

// DrainReloads returns the queued change paths, deduplicated, and clears
// the queue. Call from the main thread once per frame.
func (m *Manager) DrainReloads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.pending) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(m.pending))
	out := make([]string, 0, len(m.pending))
	for _, path := range m.pending {
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		out = append(out, path)
	}
	m.pending = m.pending[:0]
	return out
}

// Find returns the indexed asset for a path.
func (m *Manager) Find(path string) (Asset, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assets[path]
	return a, ok
}

// Count reports the number of indexed assets.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.assets)
}

func (m *Manager) Shutdown() error {
	close(m.done)
	if m.watcher != nil {
		return m.watcher.Close()
	}
	return nil
}
