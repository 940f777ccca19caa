package systems

import (
	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/renderer"
)

// SystemManager wires the subsystems together in dependency order and
// tears them down in reverse.
type SystemManager struct {
	TextureSystem  *TextureSystem
	MaterialSystem *MaterialSystem
	ShaderSystem   *ShaderSystem
	CameraSystem   *CameraSystem
	GeometrySystem *GeometrySystem
	SceneSystem    *SceneSystem

	renderer *renderer.Renderer
}

type SystemManagerConfig struct {
	MaxTextureSlots  int
	MouseSensitivity float32
	Width            uint32
	Height           uint32
}

func NewSystemManager(config *SystemManagerConfig, r *renderer.Renderer) (*SystemManager, error) {
	textureSystem, err := NewTextureSystem(&TextureSystemConfig{
		MaxTextureSlots: config.MaxTextureSlots,
	}, r)
	if err != nil {
		core.LogError("failed to create the texture system")
		return nil, err
	}

	materialSystem := NewMaterialSystem()
	shaderSystem := NewShaderSystem(r, textureSystem, materialSystem)
	cameraSystem := NewCameraSystem(&CameraSystemConfig{
		MouseSensitivity: config.MouseSensitivity,
	}, config.Width, config.Height)
	geometrySystem := NewGeometrySystem(r)
	sceneSystem := NewSceneSystem(shaderSystem, geometrySystem)

	return &SystemManager{
		TextureSystem:  textureSystem,
		MaterialSystem: materialSystem,
		ShaderSystem:   shaderSystem,
		CameraSystem:   cameraSystem,
		GeometrySystem: geometrySystem,
		SceneSystem:    sceneSystem,
		renderer:       r,
	}, nil
}

func (sm *SystemManager) Initialize() error {
	if err := sm.CameraSystem.Initialize(); err != nil {
		core.LogError("failed to initialize the camera system")
		return err
	}
	if err := sm.GeometrySystem.Initialize(); err != nil {
		core.LogError("failed to initialize the geometry system")
		return err
	}
	return nil
}

func (sm *SystemManager) Shutdown() error {
	if err := sm.SceneSystem.Shutdown(); err != nil {
		core.LogError("failed to shut down the scene system")
		return err
	}
	if err := sm.GeometrySystem.Shutdown(); err != nil {
		core.LogError("failed to shut down the geometry system")
		return err
	}
	if err := sm.CameraSystem.Shutdown(); err != nil {
		core.LogError("failed to shut down the camera system")
		return err
	}
	if err := sm.MaterialSystem.Shutdown(); err != nil {
		core.LogError("failed to shut down the material system")
		return err
	}
	if err := sm.TextureSystem.Shutdown(); err != nil {
		core.LogError("failed to shut down the texture system")
		return err
	}
	return nil
}
