package systems

import (
	"github.com/spaghettifunk/tableau/engine/renderer"
	"github.com/spaghettifunk/tableau/engine/renderer/metadata"
)

const (
	torusMinorRadius       float32 = 0.05
	extraTorus2MinorRadius float32 = 0.061
)

// GeometrySystem uploads the fixed primitive set once and forwards draw
// requests. Meshes are shared; per-part variation comes entirely from the
// model transform and uniforms.
type GeometrySystem struct {
	renderer *renderer.Renderer
}

func NewGeometrySystem(r *renderer.Renderer) *GeometrySystem {
	return &GeometrySystem{renderer: r}
}

// Initialize loads every primitive the scene table can reference.
func (gs *GeometrySystem) Initialize() error {
	shapes := []struct {
		kind   metadata.ShapeKind
		config metadata.ShapeConfig
	}{
		{metadata.ShapePlane, metadata.ShapeConfig{}},
		{metadata.ShapeBox, metadata.ShapeConfig{}},
		{metadata.ShapeCone, metadata.ShapeConfig{}},
		{metadata.ShapeCylinder, metadata.ShapeConfig{}},
		{metadata.ShapeSphere, metadata.ShapeConfig{}},
		{metadata.ShapeTorus, metadata.ShapeConfig{TorusMinorRadius: torusMinorRadius}},
		{metadata.ShapeExtraTorus1, metadata.ShapeConfig{}},
		{metadata.ShapeExtraTorus2, metadata.ShapeConfig{TorusMinorRadius: extraTorus2MinorRadius}},
	}
	for _, s := range shapes {
		if err := gs.renderer.GeometryLoad(s.kind, s.config); err != nil {
			return err
		}
	}
	return nil
}

// Draw renders a whole primitive.
func (gs *GeometrySystem) Draw(kind metadata.ShapeKind) {
	gs.renderer.GeometryDraw(kind, metadata.DrawOptions{})
}

// DrawWithOptions renders a primitive subset, a single box face or a
// cylinder with selected caps.
func (gs *GeometrySystem) DrawWithOptions(kind metadata.ShapeKind, options metadata.DrawOptions) {
	gs.renderer.GeometryDraw(kind, options)
}

func (gs *GeometrySystem) Shutdown() error {
	gs.renderer.GeometryUnloadAll()
	return nil
}
