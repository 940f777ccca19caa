package components

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	assert.InDelta(t, DefaultSpeed, c.MovementSpeed, 1e-6)
	assert.InDelta(t, DefaultSensitivity, c.MouseSensitivity, 1e-6)
	assert.InDelta(t, DefaultZoom, c.Zoom, 1e-6)
	// default yaw of -90 looks down -Z
	assert.InDelta(t, 0.0, c.Front.X(), 1e-5)
	assert.InDelta(t, -1.0, c.Front.Z(), 1e-5)
}

func TestCameraSetPoseIsVerbatim(t *testing.T) {
	c := NewCamera()
	front := mgl32.Vec3{-0.1, -1.5, -2}
	c.SetPose(mgl32.Vec3{0, 8, 12}, front, mgl32.Vec3{0, 1, 0})

	// the preset front is used as-is, without renormalization
	assert.Equal(t, front, c.Front)
	assert.Equal(t, mgl32.Vec3{0, 8, 12}, c.Position)
}

func TestCameraKeyboardMovesAlongAxes(t *testing.T) {
	c := NewCamera()
	start := c.Position

	c.ProcessKeyboard(CameraForward, 1.0)
	forward := c.Position.Sub(start)
	assert.Greater(t, forward.Dot(c.Front), float32(0))

	c.ProcessKeyboard(CameraBackward, 1.0)
	assert.InDelta(t, float64(start.X()), float64(c.Position.X()), 1e-5)
	assert.InDelta(t, float64(start.Z()), float64(c.Position.Z()), 1e-5)

	c.ProcessKeyboard(CameraUp, 2.0)
	assert.InDelta(t, float64(start.Y()+2*c.MovementSpeed), float64(c.Position.Y()), 1e-4)
}

func TestCameraMouseMovementPitchClamp(t *testing.T) {
	c := NewCamera()

	c.ProcessMouseMovement(0, 1e6)
	assert.LessOrEqual(t, c.Pitch, float32(89))

	c.ProcessMouseMovement(0, -1e7)
	assert.GreaterOrEqual(t, c.Pitch, float32(-89))
}

func TestCameraScrollAdjustsSpeedWithClamp(t *testing.T) {
	c := NewCamera()

	c.ProcessMouseScroll(1)
	assert.InDelta(t, DefaultSpeed+0.1, c.MovementSpeed, 1e-5)

	c.ProcessMouseScroll(-1e4)
	assert.InDelta(t, MinMovementSpeed, c.MovementSpeed, 1e-6)

	c.ProcessMouseScroll(1e4)
	assert.InDelta(t, MaxMovementSpeed, c.MovementSpeed, 1e-6)
}

func TestCameraViewMatrixLooksAlongFront(t *testing.T) {
	c := NewCamera()
	c.SetPose(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})

	view := c.ViewMatrix()
	origin := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	// the world origin sits 5 units ahead of the camera
	assert.InDelta(t, 0.0, float64(origin.X()), 1e-5)
	assert.InDelta(t, 0.0, float64(origin.Y()), 1e-5)
	assert.InDelta(t, -5.0, float64(origin.Z()), 1e-5)
}
