package metadata

// ShapeKind names a primitive mesh in the load-once/draw-many library.
type ShapeKind uint8

const (
	ShapePlane ShapeKind = iota
	ShapeBox
	ShapeCone
	ShapeCylinder
	ShapeSphere
	ShapeTorus
	ShapeExtraTorus1
	ShapeExtraTorus2
	SHAPE_KIND_COUNT
)

func (k ShapeKind) String() string {
	switch k {
	case ShapePlane:
		return "plane"
	case ShapeBox:
		return "box"
	case ShapeCone:
		return "cone"
	case ShapeCylinder:
		return "cylinder"
	case ShapeSphere:
		return "sphere"
	case ShapeTorus:
		return "torus"
	case ShapeExtraTorus1:
		return "extra_torus_1"
	case ShapeExtraTorus2:
		return "extra_torus_2"
	}
	return "unknown"
}

// BoxFace selects a single face of the box mesh for per-face draws.
type BoxFace uint8

const (
	BoxFaceTop BoxFace = iota
	BoxFaceBottom
	BoxFaceLeft
	BoxFaceRight
	BoxFaceFront
	BoxFaceBack
	BOX_FACE_COUNT
)

// ShapeConfig carries per-shape generation parameters. Only the fields
// meaningful for the shape kind are consulted.
type ShapeConfig struct {
	// Minor (tube) radius for torus variants, relative to a major radius of 1.
	TorusMinorRadius float32
	// Tessellation around the axis of revolution. Zero picks a default.
	Segments int
}

// DrawOptions selects which portion of a mesh to draw. The zero value draws
// the whole shape.
type DrawOptions struct {
	// Face, when set, restricts a box draw to one face.
	Face    BoxFace
	HasFace bool
	// Cylinder cap flags; consulted only when HasCaps is set.
	DrawTop    bool
	DrawBottom bool
	DrawSides  bool
	HasCaps    bool
}
