package engine

import (
	"fmt"

	"github.com/spaghettifunk/tableau/engine/assets"
	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/platform"
	"github.com/spaghettifunk/tableau/engine/renderer"
	"github.com/spaghettifunk/tableau/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to run
	EngineStageBootComplete
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
	// Engine is done shutting down
	EngineStageShutdown
)

// Engine drives the platform, renderer and systems through the frame loop
// and routes window events to the game.
type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    bool
	isSuspended  bool

	width  uint32
	height uint32

	platform *platform.Platform
	renderer *renderer.Renderer
	systems  *systems.SystemManager
	assets   *assets.Manager

	clock         *core.Clock
	lastFrameTime float64
}

func New(g *Game) (*Engine, error) {
	if g == nil {
		return nil, fmt.Errorf("engine.New: game instance is required")
	}
	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		platform:     platform.New(),
		clock:        core.NewClock(),
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageBooting

	config := e.gameInstance.ApplicationConfig
	e.width = config.StartWidth
	e.height = config.StartHeight

	level, err := core.ParseLogLevel(config.LogLevel)
	if err != nil {
		core.LogWarn("unknown log level %q, using info", config.LogLevel)
	} else {
		core.LogSetLevel(level)
	}

	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event subsystem")
	}
	if err := core.InputInitialize(); err != nil {
		return err
	}
	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onQuit)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e.onKeyPressed)
	core.EventRegister(core.EVENT_CODE_RESIZED, e.onResized)

	if err := e.platform.Startup(config.Name, config.StartPosX, config.StartPosY, e.width, e.height); err != nil {
		return err
	}

	e.renderer = renderer.New()
	if err := e.renderer.Initialize(config.Name, e.width, e.height); err != nil {
		return err
	}

	e.systems, err = systems.NewSystemManager(&systems.SystemManagerConfig{
		MaxTextureSlots:  16,
		MouseSensitivity: config.MouseSensitivity,
		Width:            e.width,
		Height:           e.height,
	}, e.renderer)
	if err != nil {
		return err
	}
	if err := e.systems.Initialize(); err != nil {
		return err
	}

	e.assets, err = assets.NewManager(config.AssetsDir, config.WatchAssets)
	if err != nil {
		core.LogWarn("asset manager unavailable: %s", err)
		e.assets = nil
	}

	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}
	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		return err
	}

	e.currentStage = EngineStageBootComplete
	return nil
}

// Systems exposes the subsystem registry to the game.
func (e *Engine) Systems() *systems.SystemManager {
	return e.systems
}

// Run executes the frame loop until the window closes or a quit event
// fires.
func (e *Engine) Run() error {
	e.isRunning = true
	e.currentStage = EngineStageRunning

	e.clock.Start()
	e.clock.Update()
	e.lastFrameTime = e.clock.Elapsed()

	for e.isRunning && e.platform.PumpMessages() {
		e.clock.Update()
		currentTime := e.clock.Elapsed()
		deltaTime := currentTime - e.lastFrameTime
		e.lastFrameTime = currentTime

		if e.isSuspended {
			continue
		}

		if e.assets != nil {
			for _, path := range e.assets.DrainReloads() {
				e.systems.TextureSystem.Reload(path)
			}
		}

		e.systems.CameraSystem.Update(deltaTime)

		if err := e.gameInstance.FnUpdate(deltaTime); err != nil {
			core.LogError("game update failed: %s", err)
			break
		}

		if err := e.renderer.BeginFrame(deltaTime); err != nil {
			core.LogError("begin frame failed: %s", err)
			break
		}

		e.systems.CameraSystem.PrepareFrame(e.systems.ShaderSystem)

		if err := e.gameInstance.FnRender(deltaTime); err != nil {
			core.LogError("game render failed: %s", err)
			break
		}

		if err := e.renderer.EndFrame(deltaTime); err != nil {
			core.LogError("end frame failed: %s", err)
			break
		}
		e.platform.SwapBuffers()

		core.MetricsUpdate(deltaTime)

		// Input snapshot rotates last, after all per-frame reads.
		core.InputUpdate(deltaTime)
	}

	e.isRunning = false
	return e.Shutdown()
}

func (e *Engine) onQuit(context core.EventContext) {
	core.LogInfo("quit requested, shutting down")
	e.isRunning = false
}

func (e *Engine) onKeyPressed(context core.EventContext) {
	key, ok := context.Data.(core.KeyEvent)
	if !ok {
		return
	}
	if key.KeyCode == core.KEY_ESCAPE {
		core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
	}
}

func (e *Engine) onResized(context core.EventContext) {
	size, ok := context.Data.(core.SystemEvent)
	if !ok {
		return
	}
	if size.WindowWidth == e.width && size.WindowHeight == e.height {
		return
	}
	e.width = size.WindowWidth
	e.height = size.WindowHeight

	// minimized
	if e.width == 0 || e.height == 0 {
		core.LogInfo("window minimized, suspending")
		e.isSuspended = true
		return
	}
	e.isSuspended = false

	e.renderer.OnResize(uint16(e.width), uint16(e.height))
	e.systems.CameraSystem.OnResize(e.width, e.height)
	e.gameInstance.FnOnResize(e.width, e.height)
}

// RequestShutdown asks the frame loop to exit after the current frame.
func (e *Engine) RequestShutdown() {
	core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShutdown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown

	if err := e.gameInstance.FnShutdown(); err != nil {
		core.LogError("game shutdown failed: %s", err)
	}
	if e.assets != nil {
		e.assets.Shutdown()
	}
	if e.systems != nil {
		e.systems.Shutdown()
	}
	if e.renderer != nil {
		e.renderer.Shutdown()
	}
	core.InputShutdown()
	core.EventSystemShutdown()
	e.platform.Shutdown()

	e.currentStage = EngineStageShutdown
	return nil
}
