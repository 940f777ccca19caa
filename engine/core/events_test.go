package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spare codes for test traffic
const (
	testEventCodeA EventCode = 0x20
	testEventCodeB EventCode = 0x21
)

func TestEventRegisterAndFire(t *testing.T) {
	EventSystemInitialize()
	t.Cleanup(func() { EventUnregisterAll(testEventCodeA) })

	var received []EventContext
	EventRegister(testEventCodeA, func(context EventContext) {
		received = append(received, context)
	})

	fired := EventFire(EventContext{Type: testEventCodeA, Data: "payload"})
	assert.True(t, fired)
	require.Len(t, received, 1)
	assert.Equal(t, "payload", received[0].Data)
}

func TestEventFireWithoutListeners(t *testing.T) {
	EventSystemInitialize()
	assert.False(t, EventFire(EventContext{Type: testEventCodeB}))
}

func TestEventMultipleListenersFireInOrder(t *testing.T) {
	EventSystemInitialize()
	t.Cleanup(func() { EventUnregisterAll(testEventCodeA) })

	var order []int
	EventRegister(testEventCodeA, func(context EventContext) { order = append(order, 1) })
	EventRegister(testEventCodeA, func(context EventContext) { order = append(order, 2) })

	EventFire(EventContext{Type: testEventCodeA})
	assert.Equal(t, []int{1, 2}, order)
}

func TestEventUnregisterAll(t *testing.T) {
	EventSystemInitialize()

	calls := 0
	EventRegister(testEventCodeA, func(context EventContext) { calls++ })
	require.True(t, EventUnregisterAll(testEventCodeA))

	EventFire(EventContext{Type: testEventCodeA})
	assert.Equal(t, 0, calls)

	// nothing left to unregister
	assert.False(t, EventUnregisterAll(testEventCodeA))
}
