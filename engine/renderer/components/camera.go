package components

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/tableau/engine/math"
)

type CameraMovement uint8

const (
	CameraForward CameraMovement = iota
	CameraBackward
	CameraLeft
	CameraRight
	CameraUp
	CameraDown
)

const (
	DefaultYaw         float32 = -90.0
	DefaultPitch       float32 = 0.0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45.0

	MinMovementSpeed float32 = 1.0
	MaxMovementSpeed float32 = 50.0

	pitchLimit float32 = 89.0
)

// Camera owns the navigable pose: position, orientation vectors, Euler
// angles and motion parameters. One instance exists for the process
// lifetime, owned by the camera system; nothing reads it concurrently.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32
}

func NewCamera() *Camera {
	c := &Camera{
		Position:         mgl32.Vec3{0, 0, 0},
		Front:            mgl32.Vec3{0, 0, -1},
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
	}
	c.updateVectors()
	return c
}

// SetPose replaces position and orientation directly, the way the fixed
// reference poses do. Front is stored as given (not renormalized from
// yaw/pitch); the next mouse movement resynchronizes the Euler angles.
func (c *Camera) SetPose(position, front, up mgl32.Vec3) {
	c.Position = position
	c.Front = front
	c.Up = up
	c.Right = front.Cross(up).Normalize()
}

// ViewMatrix derives the view transform from the current pose.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	center := c.Position.Add(c.Front)
	return mgl32.LookAtV(c.Position, center, c.Up)
}

// ProcessKeyboard displaces the camera along its axes, scaled by
// movementSpeed and the frame delta.
func (c *Camera) ProcessKeyboard(direction CameraMovement, deltaTime float64) {
	velocity := c.MovementSpeed * float32(deltaTime)
	switch direction {
	case CameraForward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case CameraBackward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case CameraLeft:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case CameraRight:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case CameraUp:
		c.Position = c.Position.Add(c.Up.Mul(velocity))
	case CameraDown:
		c.Position = c.Position.Sub(c.Up.Mul(velocity))
	}
}

// ProcessMouseMovement applies a cursor delta to yaw and pitch. Pitch is
// clamped to avoid flipping past the poles.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32) {
	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch += yOffset * c.MouseSensitivity
	c.Pitch = math.Clamp(c.Pitch, -pitchLimit, pitchLimit)
	c.updateVectors()
}

// ProcessMouseScroll trades scroll units for movement speed, clamped to
// a controllable range.
func (c *Camera) ProcessMouseScroll(yOffset float64) {
	c.MovementSpeed += float32(yOffset) * 0.1
	c.MovementSpeed = math.Clamp(c.MovementSpeed, MinMovementSpeed, MaxMovementSpeed)
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
