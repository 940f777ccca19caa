package testbed

import (
	"fmt"

	"github.com/spaghettifunk/tableau/engine"
	"github.com/spaghettifunk/tableau/engine/core"
)

const statusLogInterval = 5.0 // seconds

// Testbed is the still-life application driven by the engine.
type Testbed struct {
	engine    *engine.Engine
	logTimer  float64
	assetsDir string
}

// NewGame builds the game instance for the still-life scene. Attach must
// be called with the owning engine before Run.
func NewGame(config engine.ApplicationConfig) *engine.Game {
	t := &Testbed{assetsDir: config.AssetsDir}
	return &engine.Game{
		ApplicationConfig: config,
		FnInitialize:      t.initialize,
		FnUpdate:          t.update,
		FnRender:          t.render,
		FnOnResize:        t.onResize,
		FnShutdown:        t.shutdown,
		State:             t,
	}
}

// Attach wires the engine into the game instance so the hooks can reach
// the subsystems.
func Attach(g *engine.Game, e *engine.Engine) error {
	t, ok := g.State.(*Testbed)
	if !ok {
		return fmt.Errorf("testbed.Attach: game state is not a testbed instance")
	}
	t.engine = e
	return nil
}

func (t *Testbed) initialize() error {
	sys := t.engine.Systems()

	defineMaterials(sys.MaterialSystem)
	setupLights(sys.ShaderSystem)
	registerTextures(sys.TextureSystem, t.assetsDir)
	sys.SceneSystem.SetAssemblies(sceneAssemblies())

	core.EventRegister(core.EVENT_CODE_PROJECTION_CHANGED, t.onProjectionChanged)
	return nil
}

func (t *Testbed) update(deltaTime float64) error {
	t.logTimer += deltaTime
	if t.logTimer >= statusLogInterval {
		t.logTimer = 0

		camera := t.engine.Systems().CameraSystem.Camera()
		fps, frameTime := core.MetricsFrame()
		core.LogDebug("camera at (%.2f, %.2f, %.2f), %.0f fps, %.2fms frame avg",
			camera.Position.X(), camera.Position.Y(), camera.Position.Z(), fps, frameTime)
	}
	return nil
}

func (t *Testbed) render(deltaTime float64) error {
	t.engine.Systems().SceneSystem.DrawScene()
	return nil
}

func (t *Testbed) onResize(width, height uint32) error {
	core.LogDebug("viewport now %dx%d", width, height)
	return nil
}

func (t *Testbed) onProjectionChanged(context core.EventContext) {
	p, ok := context.Data.(core.ProjectionEvent)
	if !ok {
		return
	}
	core.LogInfo("projection changed: %s", p.Description)
}

func (t *Testbed) shutdown() error {
	core.EventUnregisterAll(core.EVENT_CODE_PROJECTION_CHANGED)
	return nil
}
