package engine

// Game is the application contract the engine drives. Every hook is
// required; State is opaque to the engine.
type Game struct {
	ApplicationConfig ApplicationConfig

	FnInitialize func() error
	FnUpdate     func(deltaTime float64) error
	FnRender     func(deltaTime float64) error
	FnOnResize   func(width uint32, height uint32) error
	FnShutdown   func() error

	State interface{}
}
