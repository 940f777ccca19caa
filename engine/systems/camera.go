package systems

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/renderer/components"
)

// ProjectionMode selects how the scene is projected onto the viewport.
type ProjectionMode int

const (
	ProjectionPerspective ProjectionMode = iota
	ProjectionOrthographic
)

func (p ProjectionMode) String() string {
	if p == ProjectionOrthographic {
		return "orthographic"
	}
	return "perspective"
}

// OrthoView is the axis-aligned preset active while orthographic.
type OrthoView int

const (
	OrthoFront OrthoView = iota
	OrthoSide
	OrthoTop
)

func (v OrthoView) String() string {
	switch v {
	case OrthoSide:
		return "side"
	case OrthoTop:
		return "top"
	default:
		return "front"
	}
}

const (
	perspectiveFOVDegrees  float32 = 80.0
	perspectiveNearPlane   float32 = 0.1
	perspectiveFarPlane    float32 = 100.0
	orthographicHalfExtent float32 = 10.0
)

type CameraSystemConfig struct {
	MouseSensitivity float32
}

// CameraSystem owns the free-fly camera and the projection state machine.
// Keyboard movement is sampled every frame; projection toggles, mouse look
// and scroll arrive as events.
type CameraSystem struct {
	camera *components.Camera

	projection ProjectionMode
	orthoView  OrthoView

	// edge detection for the projection keys; a held key toggles once
	orthoKeyHeld       bool
	perspectiveKeyHeld bool

	// mouse look baseline; the first sample only establishes position
	firstMouse bool
	lastMouseX float64
	lastMouseY float64

	aspectWidth  float32
	aspectHeight float32
}

func NewCameraSystem(config *CameraSystemConfig, width, height uint32) *CameraSystem {
	camera := components.NewCamera()
	if config != nil && config.MouseSensitivity > 0 {
		camera.MouseSensitivity = config.MouseSensitivity
	}
	cs := &CameraSystem{
		camera:       camera,
		projection:   ProjectionPerspective,
		orthoView:    OrthoFront,
		firstMouse:   true,
		aspectWidth:  float32(width),
		aspectHeight: float32(height),
	}
	cs.resetPerspectivePose()
	return cs
}

// Initialize subscribes to the input events the controller consumes.
func (cs *CameraSystem) Initialize() error {
	core.EventRegister(core.EVENT_CODE_MOUSE_MOVED, cs.onMouseMoved)
	core.EventRegister(core.EVENT_CODE_MOUSE_WHEEL, cs.onMouseWheel)
	return nil
}

func (cs *CameraSystem) Camera() *components.Camera {
	return cs.camera
}

func (cs *CameraSystem) Projection() ProjectionMode {
	return cs.projection
}

func (cs *CameraSystem) ActiveOrthoView() OrthoView {
	return cs.orthoView
}

// resetPerspectivePose restores the canonical elevated pose looking down
// into the scene.
func (cs *CameraSystem) resetPerspectivePose() {
	cs.camera.SetPose(
		mgl32.Vec3{0.0, 8.0, 12.0},
		mgl32.Vec3{-0.1, -1.5, -2.0},
		mgl32.Vec3{0.0, 1.0, 0.0},
	)
	cs.camera.Zoom = perspectiveFOVDegrees
}

func (cs *CameraSystem) applyOrthoView() {
	switch cs.orthoView {
	case OrthoSide:
		cs.camera.SetPose(
			mgl32.Vec3{15.0, 8.0, 0.0},
			mgl32.Vec3{-1.0, 0.0, 0.0},
			mgl32.Vec3{0.0, 1.0, 0.0},
		)
	case OrthoTop:
		cs.camera.SetPose(
			mgl32.Vec3{0.0, 10.0, 0.0},
			mgl32.Vec3{0.0, -1.0, 0.0},
			mgl32.Vec3{0.0, 0.0, -1.0},
		)
	default:
		cs.camera.SetPose(
			mgl32.Vec3{1.0, 8.0, 10.0},
			mgl32.Vec3{0.0, 0.0, -1.0},
			mgl32.Vec3{0.0, 1.0, 0.0},
		)
	}
}

func (cs *CameraSystem) fireProjectionChanged() {
	description := cs.projection.String()
	if cs.projection == ProjectionOrthographic {
		description += " " + cs.orthoView.String()
	}
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_PROJECTION_CHANGED,
		Data: core.ProjectionEvent{Description: description},
	})
}

// Update samples the movement and projection keys. deltaTime is in
// seconds.
func (cs *CameraSystem) Update(deltaTime float64) {
	if core.InputIsKeyDown(core.KEY_W) {
		cs.camera.ProcessKeyboard(components.CameraForward, deltaTime)
	}
	if core.InputIsKeyDown(core.KEY_S) {
		cs.camera.ProcessKeyboard(components.CameraBackward, deltaTime)
	}
	if core.InputIsKeyDown(core.KEY_A) {
		cs.camera.ProcessKeyboard(components.CameraLeft, deltaTime)
	}
	if core.InputIsKeyDown(core.KEY_D) {
		cs.camera.ProcessKeyboard(components.CameraRight, deltaTime)
	}
	if core.InputIsKeyDown(core.KEY_Q) {
		cs.camera.ProcessKeyboard(components.CameraUp, deltaTime)
	}
	if core.InputIsKeyDown(core.KEY_E) {
		cs.camera.ProcessKeyboard(components.CameraDown, deltaTime)
	}

	cs.updateProjectionKeys()
}

func (cs *CameraSystem) updateProjectionKeys() {
	orthoDown := core.InputIsKeyDown(core.KEY_O)
	if orthoDown && !cs.orthoKeyHeld {
		if cs.projection == ProjectionPerspective {
			cs.projection = ProjectionOrthographic
			cs.orthoView = OrthoFront
		} else {
			// cycle front -> side -> top -> front
			cs.orthoView = (cs.orthoView + 1) % 3
		}
		cs.applyOrthoView()
		cs.fireProjectionChanged()
	}
	cs.orthoKeyHeld = orthoDown

	perspectiveDown := core.InputIsKeyDown(core.KEY_P)
	if perspectiveDown && !cs.perspectiveKeyHeld {
		cs.projection = ProjectionPerspective
		cs.resetPerspectivePose()
		cs.fireProjectionChanged()
	}
	cs.perspectiveKeyHeld = perspectiveDown
}

func (cs *CameraSystem) onMouseMoved(context core.EventContext) {
	mouse, ok := context.Data.(core.MouseEvent)
	if !ok {
		return
	}
	if cs.firstMouse {
		cs.lastMouseX = mouse.PosX
		cs.lastMouseY = mouse.PosY
		cs.firstMouse = false
		return
	}
	xOffset := float32(mouse.PosX - cs.lastMouseX)
	// screen Y grows downward, pitch grows upward
	yOffset := float32(cs.lastMouseY - mouse.PosY)
	cs.lastMouseX = mouse.PosX
	cs.lastMouseY = mouse.PosY
	cs.camera.ProcessMouseMovement(xOffset, yOffset)
}

func (cs *CameraSystem) onMouseWheel(context core.EventContext) {
	mouse, ok := context.Data.(core.MouseEvent)
	if !ok {
		return
	}
	cs.camera.ProcessMouseScroll(mouse.Scroll)
}

// ViewMatrix returns the current look-at transform.
func (cs *CameraSystem) ViewMatrix() mgl32.Mat4 {
	return cs.camera.ViewMatrix()
}

// ProjectionMatrix builds the projection for the active mode. The
// orthographic volume is a fixed cube so preset views frame the whole
// scene regardless of zoom.
func (cs *CameraSystem) ProjectionMatrix() mgl32.Mat4 {
	if cs.projection == ProjectionOrthographic {
		return mgl32.Ortho(
			-orthographicHalfExtent, orthographicHalfExtent,
			-orthographicHalfExtent, orthographicHalfExtent,
			perspectiveNearPlane, perspectiveFarPlane,
		)
	}
	return mgl32.Perspective(
		mgl32.DegToRad(cs.camera.Zoom),
		cs.aspectWidth/cs.aspectHeight,
		perspectiveNearPlane,
		perspectiveFarPlane,
	)
}

// PrepareFrame pushes per-frame camera state through the uniform
// dispatcher: view, projection, eye position and the headlamp spot light
// pose.
func (cs *CameraSystem) PrepareFrame(shader *ShaderSystem) {
	shader.SetViewMatrix(cs.ViewMatrix())
	shader.SetProjectionMatrix(cs.ProjectionMatrix())
	shader.SetViewPosition(cs.camera.Position)
	shader.renderer.SetVec3("spotLight.position", cs.camera.Position)
	shader.renderer.SetVec3("spotLight.direction", cs.camera.Front)
}

// OnResize keeps the perspective aspect ratio in step with the viewport.
func (cs *CameraSystem) OnResize(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}
	cs.aspectWidth = float32(width)
	cs.aspectHeight = float32(height)
}

func (cs *CameraSystem) Shutdown() error {
	core.EventUnregisterAll(core.EVENT_CODE_MOUSE_MOVED)
	core.EventUnregisterAll(core.EVENT_CODE_MOUSE_WHEEL)
	return nil
}
