package math

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ComposeModelMatrix builds a model matrix from placement parameters as
//
//	Translation * RotationX * RotationY * RotationZ * Scale
//
// The order is a contract: rotations are intrinsic, applied in the object's
// local frame before translation. Callers that need an offset to follow a
// rotated parent must pre-rotate the offset themselves (see RotateOffsetY)
// before adding it to the parent position.
func ComposeModelMatrix(scale, rotationDeg, position mgl32.Vec3) mgl32.Mat4 {
	translation := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	rotationX := mgl32.HomogRotate3DX(mgl32.DegToRad(rotationDeg.X()))
	rotationY := mgl32.HomogRotate3DY(mgl32.DegToRad(rotationDeg.Y()))
	rotationZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotationDeg.Z()))
	scaling := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())

	return translation.Mul4(rotationX).Mul4(rotationY).Mul4(rotationZ).Mul4(scaling)
}

// RotateOffsetY rotates a local-space offset around the Y axis by the given
// angle in degrees. Used by multi-part assemblies whose child parts sit at an
// offset from a yawed parent.
func RotateOffsetY(offset mgl32.Vec3, degrees float32) mgl32.Vec3 {
	rotated := mgl32.HomogRotate3DY(mgl32.DegToRad(degrees)).Mul4x1(offset.Vec4(1.0))
	return rotated.Vec3()
}
