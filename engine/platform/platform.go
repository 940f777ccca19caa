package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/tableau/engine/core"
)

func init() {
	// GLFW and the GL context are bound to the thread that created them.
	runtime.LockOSThread()
}

// Platform owns the window and translates GLFW callbacks into the input
// subsystem.
type Platform struct {
	Window *glfw.Window
}

func New() *Platform {
	return &Platform{}
}

// Startup creates the window with a 4.1 core profile context, captures the
// cursor and installs the input callbacks.
func (p *Platform) Startup(applicationName string, x, y int, width, height uint32) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(int(width), int(height), applicationName, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("%w: %v", core.ErrWindowCreation, err)
	}
	p.Window = window

	window.SetPos(x, y)
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	// mouse look owns the cursor
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	window.SetKeyCallback(p.keyCallback)
	window.SetMouseButtonCallback(p.mouseButtonCallback)
	window.SetCursorPosCallback(p.cursorPosCallback)
	window.SetScrollCallback(p.scrollCallback)
	window.SetFramebufferSizeCallback(p.framebufferSizeCallback)

	return nil
}

// PumpMessages polls the event queue. Returns false once the window wants
// to close.
func (p *Platform) PumpMessages() bool {
	glfw.PollEvents()
	return !p.Window.ShouldClose()
}

func (p *Platform) SwapBuffers() {
	p.Window.SwapBuffers()
}

// GetAbsoluteTime returns seconds since GLFW initialization.
func (p *Platform) GetAbsoluteTime() float64 {
	return glfw.GetTime()
}

func (p *Platform) Shutdown() error {
	if p.Window != nil {
		p.Window.Destroy()
		p.Window = nil
	}
	glfw.Terminate()
	return nil
}

func (p *Platform) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	code, ok := translateKey(key)
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		core.InputProcessKey(code, true)
	case glfw.Release:
		core.InputProcessKey(code, false)
	}
}

func (p *Platform) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	var b core.Button
	switch button {
	case glfw.MouseButtonLeft:
		b = core.BUTTON_LEFT
	case glfw.MouseButtonRight:
		b = core.BUTTON_RIGHT
	case glfw.MouseButtonMiddle:
		b = core.BUTTON_MIDDLE
	default:
		return
	}
	core.InputProcessButton(b, action == glfw.Press)
}

func (p *Platform) cursorPosCallback(_ *glfw.Window, x, y float64) {
	core.InputProcessMouseMove(x, y)
}

func (p *Platform) scrollCallback(_ *glfw.Window, _ float64, yOffset float64) {
	core.InputProcessMouseWheel(yOffset)
}

func (p *Platform) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_RESIZED,
		Data: core.SystemEvent{
			WindowWidth:  uint32(width),
			WindowHeight: uint32(height),
		},
	})
}

// translateKey maps GLFW key codes onto the engine's key table. Letters
// share the same values; the rest go through the switch.
func translateKey(key glfw.Key) (core.KeyCode, bool) {
	if key >= glfw.KeyA && key <= glfw.KeyZ {
		return core.KEY_A + core.KeyCode(key-glfw.KeyA), true
	}
	switch key {
	case glfw.KeyEscape:
		return core.KEY_ESCAPE, true
	case glfw.KeyEnter:
		return core.KEY_ENTER, true
	case glfw.KeyTab:
		return core.KEY_TAB, true
	case glfw.KeyBackspace:
		return core.KEY_BACKSPACE, true
	case glfw.KeySpace:
		return core.KEY_SPACE, true
	case glfw.KeyEnd:
		return core.KEY_END, true
	case glfw.KeyHome:
		return core.KEY_HOME, true
	case glfw.KeyLeft:
		return core.KEY_LEFT, true
	case glfw.KeyUp:
		return core.KEY_UP, true
	case glfw.KeyRight:
		return core.KEY_RIGHT, true
	case glfw.KeyDown:
		return core.KEY_DOWN, true
	case glfw.KeyF1:
		return core.KEY_F1, true
	case glfw.KeyF2:
		return core.KEY_F2, true
	case glfw.KeyF3:
		return core.KEY_F3, true
	case glfw.KeyF4:
		return core.KEY_F4, true
	case glfw.KeyLeftShift:
		return core.KEY_LSHIFT, true
	case glfw.KeyRightShift:
		return core.KEY_RSHIFT, true
	case glfw.KeyLeftControl:
		return core.KEY_LCONTROL, true
	case glfw.KeyRightControl:
		return core.KEY_RCONTROL, true
	default:
		return 0, false
	}
}
