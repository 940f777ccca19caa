package core

import "sync"

type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// Keyboard key pressed. Data is KeyEvent.
	EVENT_CODE_KEY_PRESSED EventCode = 0x02

	// Keyboard key released. Data is KeyEvent.
	EVENT_CODE_KEY_RELEASED EventCode = 0x03

	// Mouse button pressed. Data is MouseEvent.
	EVENT_CODE_BUTTON_PRESSED EventCode = 0x04

	// Mouse button released. Data is MouseEvent.
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05

	// Mouse moved. Data is MouseEvent carrying the absolute cursor position.
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06

	// Mouse wheel scrolled. Data is MouseEvent carrying the scroll delta.
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07

	// Resized/resolution changed from the OS. Data is SystemEvent.
	EVENT_CODE_RESIZED EventCode = 0x08

	// The view controller switched projection mode or orthographic
	// subview. Data is ProjectionEvent.
	EVENT_CODE_PROJECTION_CHANGED EventCode = 0x09

	MAX_EVENT_CODE EventCode = 0xFF
)

type EventContext struct {
	Type EventCode
	Data interface{}
}

type KeyEvent struct {
	KeyCode KeyCode
}

type MouseEvent struct {
	Button Button
	PosX   float64
	PosY   float64
	Scroll float64
}

type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

type ProjectionEvent struct {
	Description string
}

// Callback invoked synchronously on the firing goroutine.
type FnOnEvent func(context EventContext)

type eventCodeEntry struct {
	callbacks []FnOnEvent
}

type eventSystemState struct {
	registered [MAX_EVENT_CODE + 1]eventCodeEntry
}

var onceEvent sync.Once
var isInitialized bool = false
var eventState *eventSystemState = nil

func EventSystemInitialize() bool {
	if isInitialized {
		return false
	}
	onceEvent.Do(func() {
		eventState = &eventSystemState{}
	})
	isInitialized = true
	return true
}

func EventSystemShutdown() error {
	for i := range eventState.registered {
		eventState.registered[i].callbacks = nil
	}
	isInitialized = false
	return nil
}

// EventRegister subscribes the callback to the given code. Callbacks fire
// in registration order.
func EventRegister(code EventCode, onEvent FnOnEvent) bool {
	if !isInitialized || code > MAX_EVENT_CODE {
		return false
	}
	eventState.registered[code].callbacks = append(eventState.registered[code].callbacks, onEvent)
	return true
}

// EventUnregisterAll drops every callback registered for the code.
func EventUnregisterAll(code EventCode) bool {
	if !isInitialized || code > MAX_EVENT_CODE {
		return false
	}
	if len(eventState.registered[code].callbacks) == 0 {
		return false
	}
	eventState.registered[code].callbacks = nil
	return true
}

// EventFire dispatches the context to all listeners of its code, on the
// calling goroutine. Everything in this engine runs single-threaded per
// frame, so ordering between fire and the frame's reads is guaranteed by
// sequencing alone.
func EventFire(context EventContext) bool {
	if !isInitialized || context.Type > MAX_EVENT_CODE {
		return false
	}
	callbacks := eventState.registered[context.Type].callbacks
	if len(callbacks) == 0 {
		return false
	}
	for _, cb := range callbacks {
		cb(context)
	}
	return true
}
