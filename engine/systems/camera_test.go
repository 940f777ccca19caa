package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/tableau/engine/core"
)

func newCameraFixture(t *testing.T) *CameraSystem {
	t.Helper()
	core.EventSystemInitialize()
	require.NoError(t, core.InputInitialize())

	cs := NewCameraSystem(&CameraSystemConfig{MouseSensitivity: 0.1}, 1000, 800)
	require.NoError(t, cs.Initialize())
	t.Cleanup(func() {
		cs.Shutdown()
		releaseAllKeys()
	})
	return cs
}

func releaseAllKeys() {
	for _, key := range []core.KeyCode{core.KEY_W, core.KEY_A, core.KEY_S, core.KEY_D, core.KEY_Q, core.KEY_E, core.KEY_O, core.KEY_P} {
		core.InputProcessKey(key, false)
	}
	core.InputUpdate(0)
}

func pressKey(cs *CameraSystem, key core.KeyCode) {
	core.InputProcessKey(key, true)
	cs.Update(0.016)
}

func releaseKey(cs *CameraSystem, key core.KeyCode) {
	core.InputProcessKey(key, false)
	cs.Update(0.016)
}

func tapKey(cs *CameraSystem, key core.KeyCode) {
	pressKey(cs, key)
	releaseKey(cs, key)
}

func TestCameraStartsInPerspective(t *testing.T) {
	cs := newCameraFixture(t)

	assert.Equal(t, ProjectionPerspective, cs.Projection())
	assert.Equal(t, mgl32.Vec3{0, 8, 12}, cs.Camera().Position)
	assert.Equal(t, mgl32.Vec3{-0.1, -1.5, -2}, cs.Camera().Front)
	assert.InDelta(t, 80.0, cs.Camera().Zoom, 1e-6)
}

func TestCameraOrthoEntryLandsOnFront(t *testing.T) {
	cs := newCameraFixture(t)

	tapKey(cs, core.KEY_O)

	assert.Equal(t, ProjectionOrthographic, cs.Projection())
	assert.Equal(t, OrthoFront, cs.ActiveOrthoView())
	assert.Equal(t, mgl32.Vec3{1, 8, 10}, cs.Camera().Position)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, cs.Camera().Front)
}

func TestCameraOrthoCycleWrapsToFront(t *testing.T) {
	cs := newCameraFixture(t)

	tapKey(cs, core.KEY_O)
	assert.Equal(t, OrthoFront, cs.ActiveOrthoView())

	tapKey(cs, core.KEY_O)
	assert.Equal(t, OrthoSide, cs.ActiveOrthoView())
	assert.Equal(t, mgl32.Vec3{15, 8, 0}, cs.Camera().Position)

	tapKey(cs, core.KEY_O)
	assert.Equal(t, OrthoTop, cs.ActiveOrthoView())
	assert.Equal(t, mgl32.Vec3{0, 10, 0}, cs.Camera().Position)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, cs.Camera().Up)

	tapKey(cs, core.KEY_O)
	assert.Equal(t, OrthoFront, cs.ActiveOrthoView())
}

func TestCameraHeldKeyTogglesOnce(t *testing.T) {
	cs := newCameraFixture(t)

	pressKey(cs, core.KEY_O)
	assert.Equal(t, OrthoFront, cs.ActiveOrthoView())

	// still held across several frames
	cs.Update(0.016)
	cs.Update(0.016)
	assert.Equal(t, OrthoFront, cs.ActiveOrthoView())

	releaseKey(cs, core.KEY_O)
	pressKey(cs, core.KEY_O)
	assert.Equal(t, OrthoSide, cs.ActiveOrthoView())
}

func TestCameraPerspectiveResetRestoresPose(t *testing.T) {
	cs := newCameraFixture(t)

	tapKey(cs, core.KEY_O)
	tapKey(cs, core.KEY_O)
	require.Equal(t, OrthoSide, cs.ActiveOrthoView())

	tapKey(cs, core.KEY_P)

	assert.Equal(t, ProjectionPerspective, cs.Projection())
	assert.Equal(t, mgl32.Vec3{0, 8, 12}, cs.Camera().Position)
	assert.Equal(t, mgl32.Vec3{-0.1, -1.5, -2}, cs.Camera().Front)
	assert.InDelta(t, 80.0, cs.Camera().Zoom, 1e-6)
}

func TestCameraMovementKeys(t *testing.T) {
	cs := newCameraFixture(t)
	start := cs.Camera().Position

	core.InputProcessKey(core.KEY_W, true)
	cs.Update(0.1)
	core.InputProcessKey(core.KEY_W, false)

	moved := cs.Camera().Position.Sub(start)
	assert.Greater(t, moved.Len(), float32(0))
	// forward movement follows the front vector
	assert.Greater(t, moved.Dot(cs.Camera().Front), float32(0))
}

func TestCameraFirstMouseSampleOnlySetsBaseline(t *testing.T) {
	cs := newCameraFixture(t)
	front := cs.Camera().Front

	core.InputProcessMouseMove(500, 400)
	assert.Equal(t, front, cs.Camera().Front)

	core.InputProcessMouseMove(520, 380)
	assert.NotEqual(t, front, cs.Camera().Front)
}

func TestCameraScrollClampsSpeed(t *testing.T) {
	cs := newCameraFixture(t)

	core.InputProcessMouseWheel(-1000)
	assert.InDelta(t, 1.0, cs.Camera().MovementSpeed, 1e-6)

	core.InputProcessMouseWheel(1000)
	assert.InDelta(t, 50.0, cs.Camera().MovementSpeed, 1e-6)

	core.InputProcessMouseWheel(-1000)
	core.InputProcessMouseWheel(3)
	assert.InDelta(t, 1.3, cs.Camera().MovementSpeed, 1e-5)
}

func TestCameraProjectionChangedEventFires(t *testing.T) {
	cs := newCameraFixture(t)

	var descriptions []string
	core.EventRegister(core.EVENT_CODE_PROJECTION_CHANGED, func(context core.EventContext) {
		p, ok := context.Data.(core.ProjectionEvent)
		if ok {
			descriptions = append(descriptions, p.Description)
		}
	})
	t.Cleanup(func() { core.EventUnregisterAll(core.EVENT_CODE_PROJECTION_CHANGED) })

	tapKey(cs, core.KEY_O)
	tapKey(cs, core.KEY_P)

	assert.Equal(t, []string{"orthographic front", "perspective"}, descriptions)
}

func TestCameraProjectionMatrixModes(t *testing.T) {
	cs := newCameraFixture(t)

	perspective := cs.ProjectionMatrix()
	tapKey(cs, core.KEY_O)
	ortho := cs.ProjectionMatrix()

	assert.NotEqual(t, perspective, ortho)
	// orthographic projections have no perspective divide
	assert.InDelta(t, 0.0, ortho[11], 1e-6)
	assert.InDelta(t, -1.0, perspective[11], 1e-6)
}

func TestCameraResizeIgnoresZeroDimensions(t *testing.T) {
	cs := newCameraFixture(t)
	before := cs.ProjectionMatrix()

	cs.OnResize(0, 0)
	assert.Equal(t, before, cs.ProjectionMatrix())

	cs.OnResize(500, 500)
	assert.NotEqual(t, before, cs.ProjectionMatrix())
}
