package systems

import (
	"github.com/spaghettifunk/tableau/engine/renderer/metadata"
)

// MaterialSystem is the surface-property registry. Like the texture
// registry it is append-only with first-match lookup, so a duplicate tag
// shadows later definitions rather than overwriting them.
type MaterialSystem struct {
	materials []metadata.Material
}

func NewMaterialSystem() *MaterialSystem {
	return &MaterialSystem{
		materials: make([]metadata.Material, 0, 16),
	}
}

// Define appends a material. Duplicate tags are allowed.
func (ms *MaterialSystem) Define(material metadata.Material) {
	ms.materials = append(ms.materials, material)
}

// Find returns the first material registered under tag.
func (ms *MaterialSystem) Find(tag string) (metadata.Material, bool) {
	for i := range ms.materials {
		if ms.materials[i].Tag == tag {
			return ms.materials[i], true
		}
	}
	return metadata.Material{}, false
}

// Count reports the number of definitions, duplicates included.
func (ms *MaterialSystem) Count() int {
	return len(ms.materials)
}

func (ms *MaterialSystem) Shutdown() error {
	ms.materials = ms.materials[:0]
	return nil
}
