package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/renderer/metadata"
)

// Backend is the OpenGL 4.1 core implementation of the renderer backend.
// All calls must come from the thread that owns the GL context.
type Backend struct {
	program *shaderProgram
	meshes  *meshLibrary
}

func New() *Backend {
	return &Backend{}
}

func (b *Backend) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	core.LogInfo("OpenGL version: %s", version)

	program, err := newShaderProgram()
	if err != nil {
		return fmt.Errorf("scene shader: %w", err)
	}
	b.program = program
	b.program.use()

	b.meshes = newMeshLibrary()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// Blending for the semi-transparent glass parts.
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.Viewport(0, 0, int32(appWidth), int32(appHeight))

	return nil
}

func (b *Backend) Shutdown() error {
	if b.meshes != nil {
		b.meshes.destroyAll()
	}
	if b.program != nil {
		b.program.destroy()
	}
	return nil
}

func (b *Backend) Resized(width, height uint16) error {
	gl.Viewport(0, 0, int32(width), int32(height))
	return nil
}

func (b *Backend) BeginFrame(deltaTime float64) error {
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	b.program.use()
	return nil
}

func (b *Backend) EndFrame(deltaTime float64) error {
	// Buffer swap happens in the platform layer.
	return nil
}

// TextureCreate uploads decoded RGBA pixels as a GL texture with repeat
// wrapping, linear filtering and generated mipmaps, and returns the handle.
func (b *Backend) TextureCreate(img *metadata.ImageData) (uint32, error) {
	if len(img.Pixels) == 0 {
		return 0, fmt.Errorf("texture upload with no pixel data")
	}

	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(img.Width), int32(img.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pixels[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return handle, nil
}

// TextureWriteData replaces the pixels of an existing texture in place.
// Used by hot reload; the handle stays stable so slot bindings survive.
func (b *Backend) TextureWriteData(handle uint32, img *metadata.ImageData) error {
	if len(img.Pixels) == 0 {
		return fmt.Errorf("texture update with no pixel data")
	}
	gl.BindTexture(gl.TEXTURE_2D, handle)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(img.Width), int32(img.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pixels[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

func (b *Backend) TextureBind(slot int32, handle uint32) {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + slot))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (b *Backend) TextureDestroy(handle uint32) {
	gl.DeleteTextures(1, &handle)
}

func (b *Backend) SetMat4(name string, value mgl32.Mat4) {
	if loc := b.program.location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}

func (b *Backend) SetVec2(name string, value mgl32.Vec2) {
	if loc := b.program.location(name); loc >= 0 {
		gl.Uniform2fv(loc, 1, &value[0])
	}
}

func (b *Backend) SetVec3(name string, value mgl32.Vec3) {
	if loc := b.program.location(name); loc >= 0 {
		gl.Uniform3fv(loc, 1, &value[0])
	}
}

func (b *Backend) SetVec4(name string, value mgl32.Vec4) {
	if loc := b.program.location(name); loc >= 0 {
		gl.Uniform4fv(loc, 1, &value[0])
	}
}

func (b *Backend) SetFloat(name string, value float32) {
	if loc := b.program.location(name); loc >= 0 {
		gl.Uniform1f(loc, value)
	}
}

func (b *Backend) SetInt(name string, value int32) {
	if loc := b.program.location(name); loc >= 0 {
		gl.Uniform1i(loc, value)
	}
}

func (b *Backend) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	b.SetInt(name, v)
}

func (b *Backend) SetSampler2D(name string, slot int32) {
	b.SetInt(name, slot)
}

func (b *Backend) GeometryLoad(kind metadata.ShapeKind, config metadata.ShapeConfig) error {
	return b.meshes.load(kind, config)
}

func (b *Backend) GeometryDraw(kind metadata.ShapeKind, options metadata.DrawOptions) {
	b.meshes.draw(kind, options)
}

func (b *Backend) GeometryUnloadAll() {
	b.meshes.destroyAll()
}
