package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/tableau/engine/renderer/metadata"
)

// RendererBackend is the GPU-facing contract. The OpenGL backend is the only
// production implementation; tests substitute a recording fake.
type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint16) error
	BeginFrame(deltaTime float64) error
	EndFrame(deltaTime float64) error

	// Texture resources.
	TextureCreate(img *metadata.ImageData) (uint32, error)
	TextureWriteData(handle uint32, img *metadata.ImageData) error
	TextureBind(slot int32, handle uint32)
	TextureDestroy(handle uint32)

	// Named uniform sink.
	SetMat4(name string, value mgl32.Mat4)
	SetVec2(name string, value mgl32.Vec2)
	SetVec3(name string, value mgl32.Vec3)
	SetVec4(name string, value mgl32.Vec4)
	SetFloat(name string, value float32)
	SetInt(name string, value int32)
	SetBool(name string, value bool)
	SetSampler2D(name string, slot int32)

	// Primitive mesh library.
	GeometryLoad(kind metadata.ShapeKind, config metadata.ShapeConfig) error
	GeometryDraw(kind metadata.ShapeKind, options metadata.DrawOptions)
	GeometryUnloadAll()
}
