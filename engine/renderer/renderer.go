package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/renderer/metadata"
	"github.com/spaghettifunk/tableau/engine/renderer/opengl"
)

// Renderer is the frontend facade the systems talk to. It forwards to the
// active backend and owns nothing else.
type Renderer struct {
	backend RendererBackend
}

// New creates a renderer over the OpenGL backend. The GL context must be
// current on the calling thread before Initialize.
func New() *Renderer {
	return &Renderer{
		backend: opengl.New(),
	}
}

// NewWithBackend wires an explicit backend. Used by tests.
func NewWithBackend(backend RendererBackend) *Renderer {
	return &Renderer{
		backend: backend,
	}
}

func (r *Renderer) Initialize(appName string, width, height uint32) error {
	if err := r.backend.Initialize(appName, width, height); err != nil {
		core.LogError("renderer backend failed to initialize: %s", err)
		return err
	}
	return nil
}

func (r *Renderer) Shutdown() error {
	return r.backend.Shutdown()
}

func (r *Renderer) OnResize(width, height uint16) error {
	return r.backend.Resized(width, height)
}

func (r *Renderer) BeginFrame(deltaTime float64) error {
	return r.backend.BeginFrame(deltaTime)
}

func (r *Renderer) EndFrame(deltaTime float64) error {
	return r.backend.EndFrame(deltaTime)
}

func (r *Renderer) TextureCreate(img *metadata.ImageData) (uint32, error) {
	return r.backend.TextureCreate(img)
}

func (r *Renderer) TextureWriteData(handle uint32, img *metadata.ImageData) error {
	return r.backend.TextureWriteData(handle, img)
}

func (r *Renderer) TextureBind(slot int32, handle uint32) {
	r.backend.TextureBind(slot, handle)
}

func (r *Renderer) TextureDestroy(handle uint32) {
	r.backend.TextureDestroy(handle)
}

func (r *Renderer) SetMat4(name string, value mgl32.Mat4) {
	r.backend.SetMat4(name, value)
}

func (r *Renderer) SetVec2(name string, value mgl32.Vec2) {
	r.backend.SetVec2(name, value)
}

func (r *Renderer) SetVec3(name string, value mgl32.Vec3) {
	r.backend.SetVec3(name, value)
}

func (r *Renderer) SetVec4(name string, value mgl32.Vec4) {
	r.backend.SetVec4(name, value)
}

func (r *Renderer) SetFloat(name string, value float32) {
	r.backend.SetFloat(name, value)
}

func (r *Renderer) SetInt(name string, value int32) {
	r.backend.SetInt(name, value)
}

func (r *Renderer) SetBool(name string, value bool) {
	r.backend.SetBool(name, value)
}

func (r *Renderer) SetSampler2D(name string, slot int32) {
	r.backend.SetSampler2D(name, slot)
}

func (r *Renderer) GeometryLoad(kind metadata.ShapeKind, config metadata.ShapeConfig) error {
	return r.backend.GeometryLoad(kind, config)
}

func (r *Renderer) GeometryDraw(kind metadata.ShapeKind, options metadata.DrawOptions) {
	r.backend.GeometryDraw(kind, options)
}

func (r *Renderer) GeometryUnloadAll() {
	r.backend.GeometryUnloadAll()
}
