package systems

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/tableau/engine/renderer/metadata"
)

// uniformCall records one setter invocation in order.
type uniformCall struct {
	Name  string
	Value interface{}
}

// fakeBackend records every call so tests can assert on uniform traffic
// and texture lifecycle without a GL context.
type fakeBackend struct {
	nextHandle uint32

	created   []uint32
	destroyed []uint32
	written   map[uint32]int
	bound     map[int32]uint32

	uniforms []uniformCall
	loaded   []metadata.ShapeKind
	drawn    []struct {
		Kind    metadata.ShapeKind
		Options metadata.DrawOptions
	}

	failTextureCreate bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		written: make(map[uint32]int),
		bound:   make(map[int32]uint32),
	}
}

func (f *fakeBackend) Initialize(appName string, width, height uint32) error { return nil }
func (f *fakeBackend) Shutdown() error                                       { return nil }
func (f *fakeBackend) Resized(width, height uint16) error                    { return nil }
func (f *fakeBackend) BeginFrame(deltaTime float64) error                    { return nil }
func (f *fakeBackend) EndFrame(deltaTime float64) error                      { return nil }

func (f *fakeBackend) TextureCreate(img *metadata.ImageData) (uint32, error) {
	if f.failTextureCreate {
		return 0, fmt.Errorf("texture upload rejected")
	}
	f.nextHandle++
	f.created = append(f.created, f.nextHandle)
	return f.nextHandle, nil
}

func (f *fakeBackend) TextureWriteData(handle uint32, img *metadata.ImageData) error {
	f.written[handle]++
	return nil
}

func (f *fakeBackend) TextureBind(slot int32, handle uint32) {
	f.bound[slot] = handle
}

func (f *fakeBackend) TextureDestroy(handle uint32) {
	f.destroyed = append(f.destroyed, handle)
}

func (f *fakeBackend) record(name string, value interface{}) {
	f.uniforms = append(f.uniforms, uniformCall{Name: name, Value: value})
}

func (f *fakeBackend) SetMat4(name string, value mgl32.Mat4) { f.record(name, value) }
func (f *fakeBackend) SetVec2(name string, value mgl32.Vec2) { f.record(name, value) }
func (f *fakeBackend) SetVec3(name string, value mgl32.Vec3) { f.record(name, value) }
func (f *fakeBackend) SetVec4(name string, value mgl32.Vec4) { f.record(name, value) }
func (f *fakeBackend) SetFloat(name string, value float32)   { f.record(name, value) }
func (f *fakeBackend) SetInt(name string, value int32)       { f.record(name, value) }
func (f *fakeBackend) SetBool(name string, value bool)       { f.record(name, value) }
func (f *fakeBackend) SetSampler2D(name string, slot int32)  { f.record(name, slot) }

func (f *fakeBackend) GeometryLoad(kind metadata.ShapeKind, config metadata.ShapeConfig) error {
	f.loaded = append(f.loaded, kind)
	return nil
}

func (f *fakeBackend) GeometryDraw(kind metadata.ShapeKind, options metadata.DrawOptions) {
	f.drawn = append(f.drawn, struct {
		Kind    metadata.ShapeKind
		Options metadata.DrawOptions
	}{kind, options})
}

func (f *fakeBackend) GeometryUnloadAll() {}

// uniformValue returns the last recorded value for a uniform name.
func (f *fakeBackend) uniformValue(name string) (interface{}, bool) {
	for i := len(f.uniforms) - 1; i >= 0; i-- {
		if f.uniforms[i].Name == name {
			return f.uniforms[i].Value, true
		}
	}
	return nil, false
}

// uniformNames lists recorded names in call order.
func (f *fakeBackend) uniformNames() []string {
	names := make([]string, len(f.uniforms))
	for i := range f.uniforms {
		names[i] = f.uniforms[i].Name
	}
	return names
}
