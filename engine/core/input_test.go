package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupInput(t *testing.T) {
	t.Helper()
	EventSystemInitialize()
	require.NoError(t, InputInitialize())
	t.Cleanup(func() {
		InputProcessKey(KEY_W, false)
		InputUpdate(0)
		EventUnregisterAll(EVENT_CODE_KEY_PRESSED)
		EventUnregisterAll(EVENT_CODE_KEY_RELEASED)
		EventUnregisterAll(EVENT_CODE_MOUSE_WHEEL)
	})
}

func TestInputKeyStateTransitions(t *testing.T) {
	setupInput(t)

	assert.True(t, InputIsKeyUp(KEY_W))

	InputProcessKey(KEY_W, true)
	assert.True(t, InputIsKeyDown(KEY_W))
	assert.True(t, InputWasKeyUp(KEY_W))

	InputUpdate(0.016)
	assert.True(t, InputWasKeyDown(KEY_W))
}

func TestInputKeyChangeFiresEvent(t *testing.T) {
	setupInput(t)

	var pressed []KeyCode
	EventRegister(EVENT_CODE_KEY_PRESSED, func(context EventContext) {
		key, ok := context.Data.(KeyEvent)
		if ok {
			pressed = append(pressed, key.KeyCode)
		}
	})

	InputProcessKey(KEY_W, true)
	// a repeated press without a release fires nothing
	InputProcessKey(KEY_W, true)
	assert.Equal(t, []KeyCode{KEY_W}, pressed)
}

func TestInputMousePositionSnapshot(t *testing.T) {
	setupInput(t)

	InputProcessMouseMove(120, 140)
	InputUpdate(0.016)
	InputProcessMouseMove(130, 150)

	x, y := InputGetMousePosition()
	assert.Equal(t, 130.0, x)
	assert.Equal(t, 150.0, y)

	px, py := InputGetPreviousMousePosition()
	assert.Equal(t, 120.0, px)
	assert.Equal(t, 140.0, py)
}

func TestInputMouseWheelFiresEvent(t *testing.T) {
	setupInput(t)

	var scrolls []float64
	EventRegister(EVENT_CODE_MOUSE_WHEEL, func(context EventContext) {
		mouse, ok := context.Data.(MouseEvent)
		if ok {
			scrolls = append(scrolls, mouse.Scroll)
		}
	})

	InputProcessMouseWheel(1)
	InputProcessMouseWheel(-2)
	assert.Equal(t, []float64{1, -2}, scrolls)
}
