package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	tmath "github.com/spaghettifunk/tableau/engine/math"
	"github.com/spaghettifunk/tableau/engine/renderer/metadata"
)

// Part is one drawable primitive of an assembly. Either Texture or Color
// drives the surface; a non-empty Texture wins.
type Part struct {
	Shape       metadata.ShapeKind
	ShapeConfig metadata.ShapeConfig

	Scale       mgl32.Vec3
	RotationDeg mgl32.Vec3
	LocalOffset mgl32.Vec3
	// CoRotate pre-rotates LocalOffset by the assembly yaw, for parts
	// whose offset was authored in assembly-local space.
	CoRotate bool

	Texture  string
	Color    mgl32.Vec4
	HasColor bool
	Material string
	UVScale  mgl32.Vec2

	Draw metadata.DrawOptions
}

// Assembly is a named group of parts placed at a common origin with a
// shared yaw.
type Assembly struct {
	Name   string
	Origin mgl32.Vec3
	YawDeg float32
	Parts  []Part
}

// PartPosition resolves a part's world position from the assembly origin,
// applying the yaw to co-rotating offsets.
func PartPosition(a *Assembly, p *Part) mgl32.Vec3 {
	offset := p.LocalOffset
	if p.CoRotate {
		offset = tmath.RotateOffsetY(offset, a.YawDeg)
	}
	return a.Origin.Add(offset)
}

// PartModelMatrix composes the full model transform for a part.
func PartModelMatrix(a *Assembly, p *Part) mgl32.Mat4 {
	return tmath.ComposeModelMatrix(p.Scale, p.RotationDeg, PartPosition(a, p))
}
