package systems

import (
	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/scene"
)

// SceneSystem walks the static assembly table each frame. Draw order
// follows table order; state is set per part in a fixed sequence so each
// draw is fully described before it is issued.
type SceneSystem struct {
	assemblies []scene.Assembly
	shader     *ShaderSystem
	geometry   *GeometrySystem
}

func NewSceneSystem(shader *ShaderSystem, geometry *GeometrySystem) *SceneSystem {
	return &SceneSystem{
		shader:   shader,
		geometry: geometry,
	}
}

// SetAssemblies replaces the scene table.
func (ss *SceneSystem) SetAssemblies(assemblies []scene.Assembly) {
	ss.assemblies = assemblies
	total := 0
	for i := range assemblies {
		total += len(assemblies[i].Parts)
	}
	core.LogInfo("scene table loaded: %d assemblies, %d parts", len(assemblies), total)
}

func (ss *SceneSystem) Assemblies() []scene.Assembly {
	return ss.assemblies
}

// DrawScene issues every part: transform, surface, material, UV scale,
// then the draw call.
func (ss *SceneSystem) DrawScene() {
	for ai := range ss.assemblies {
		assembly := &ss.assemblies[ai]
		for pi := range assembly.Parts {
			part := &assembly.Parts[pi]

			ss.shader.SetModelMatrix(scene.PartModelMatrix(assembly, part))

			if part.Texture != "" {
				ss.shader.SetTexture(part.Texture)
			} else if part.HasColor {
				ss.shader.SetSolidColor(part.Color[0], part.Color[1], part.Color[2], part.Color[3])
			}

			if part.Material != "" {
				ss.shader.SetMaterial(part.Material)
			}

			if part.UVScale[0] != 0 || part.UVScale[1] != 0 {
				ss.shader.SetUVScale(part.UVScale[0], part.UVScale[1])
			} else {
				ss.shader.SetUVScale(1, 1)
			}

			ss.geometry.DrawWithOptions(part.Shape, part.Draw)
		}
	}
}

func (ss *SceneSystem) Shutdown() error {
	ss.assemblies = nil
	return nil
}
