package systems

import (
	"fmt"

	"github.com/spaghettifunk/tableau/engine/assets/loaders"
	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/renderer"
)

const (
	// TextureSlotNotFound is the sentinel returned by slot lookups for an
	// unregistered tag. Deliberately a valid sampler value so a caller error
	// shows up as wrong rendering, never a crash.
	TextureSlotNotFound int32 = -1
)

type TextureSystemConfig struct {
	// MaxTextureSlots caps the number of live registrations; slots map
	// one-to-one onto GPU texture units.
	MaxTextureSlots int
}

// TextureEntry associates a tag with an uploaded GPU texture and the slot
// it will be bound to. Slot equals registration order.
type TextureEntry struct {
	Tag      string
	FilePath string
	Handle   uint32
	Slot     int32
}

// TextureSystem is the load-once texture registry. Entries are written
// during scene setup and only read afterwards; there is no eviction or
// replacement, only the hot-reload path which rewrites pixels in place.
type TextureSystem struct {
	config   *TextureSystemConfig
	entries  []TextureEntry
	renderer *renderer.Renderer
}

func NewTextureSystem(config *TextureSystemConfig, r *renderer.Renderer) (*TextureSystem, error) {
	if config.MaxTextureSlots <= 0 {
		err := fmt.Errorf("func NewTextureSystem - config.MaxTextureSlots must be > 0")
		core.LogError(err.Error())
		return nil, err
	}
	return &TextureSystem{
		config:   config,
		entries:  make([]TextureEntry, 0, config.MaxTextureSlots),
		renderer: r,
	}, nil
}

// RegisterTexture decodes the image at filePath (flipped vertically for
// texture coordinate convention), uploads it and appends an entry whose
// slot is the registration index. Only RGB and RGBA sources are accepted;
// any failure is logged and registers nothing. Duplicate tags are appended
// and shadowed by first-match lookup.
func (ts *TextureSystem) RegisterTexture(filePath, tag string) bool {
	if len(ts.entries) >= ts.config.MaxTextureSlots {
		core.LogError("cannot register texture '%s': all %d texture slots in use", tag, ts.config.MaxTextureSlots)
		return false
	}

	img, err := loaders.LoadImage(filePath, true)
	if err != nil {
		core.LogError("could not load image '%s': %s", filePath, err)
		return false
	}

	if img.ChannelCount != 3 && img.ChannelCount != 4 {
		core.LogError("image '%s' has %d channels, only RGB and RGBA are supported: %s",
			filePath, img.ChannelCount, core.ErrUnsupportedImage)
		return false
	}

	handle, err := ts.renderer.TextureCreate(img)
	if err != nil {
		core.LogError("could not upload texture '%s': %s", tag, err)
		return false
	}

	slot := int32(len(ts.entries))
	ts.entries = append(ts.entries, TextureEntry{
		Tag:      tag,
		FilePath: filePath,
		Handle:   handle,
		Slot:     slot,
	})

	core.LogInfo("registered texture '%s' from %s (%dx%d, %d channels) in slot %d",
		tag, filePath, img.Width, img.Height, img.ChannelCount, slot)
	return true
}

// FindSlot returns the slot for a tag, first match wins, or
// TextureSlotNotFound.
func (ts *TextureSystem) FindSlot(tag string) int32 {
	for i := range ts.entries {
		if ts.entries[i].Tag == tag {
			return ts.entries[i].Slot
		}
	}
	return TextureSlotNotFound
}

// FindHandle returns the GPU handle for a tag, first match wins.
func (ts *TextureSystem) FindHandle(tag string) (uint32, bool) {
	for i := range ts.entries {
		if ts.entries[i].Tag == tag {
			return ts.entries[i].Handle, true
		}
	}
	return 0, false
}

// BindAll binds every registered texture to its slot-indexed texture unit.
// Idempotent; called once after all registrations.
func (ts *TextureSystem) BindAll() {
	for i := range ts.entries {
		ts.renderer.TextureBind(ts.entries[i].Slot, ts.entries[i].Handle)
	}
}

// Reload re-decodes a changed file and rewrites the pixels of every entry
// registered from that path. Handles and slots never change, so bindings
// made by BindAll stay valid.
func (ts *TextureSystem) Reload(filePath string) {
	reloaded := 0
	for i := range ts.entries {
		if ts.entries[i].FilePath != filePath {
			continue
		}
		img, err := loaders.LoadImage(filePath, true)
		if err != nil {
			core.LogError("hot reload of '%s' failed to decode: %s", filePath, err)
			return
		}
		if img.ChannelCount != 3 && img.ChannelCount != 4 {
			core.LogError("hot reload of '%s' rejected: %d channels", filePath, img.ChannelCount)
			return
		}
		if err := ts.renderer.TextureWriteData(ts.entries[i].Handle, img); err != nil {
			core.LogError("hot reload of '%s' failed to upload: %s", filePath, err)
			return
		}
		reloaded++
	}
	if reloaded > 0 {
		core.LogInfo("hot reloaded texture file %s (%d entries)", filePath, reloaded)
	}
}

// Count reports the number of live registrations.
func (ts *TextureSystem) Count() int {
	return len(ts.entries)
}

// Shutdown releases every GPU texture the registry owns.
func (ts *TextureSystem) Shutdown() error {
	for i := range ts.entries {
		ts.renderer.TextureDestroy(ts.entries[i].Handle)
	}
	ts.entries = ts.entries[:0]
	return nil
}
