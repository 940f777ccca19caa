package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/tableau/engine/renderer"
	"github.com/spaghettifunk/tableau/engine/renderer/metadata"
	"github.com/spaghettifunk/tableau/engine/scene"
)

func newSceneFixture(t *testing.T) (*SceneSystem, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend()
	r := renderer.NewWithBackend(backend)
	ts, err := NewTextureSystem(&TextureSystemConfig{MaxTextureSlots: 16}, r)
	require.NoError(t, err)
	ms := NewMaterialSystem()
	shader := NewShaderSystem(r, ts, ms)
	geometry := NewGeometrySystem(r)
	return NewSceneSystem(shader, geometry), backend
}

func TestSceneDrawsPartsInTableOrder(t *testing.T) {
	ss, backend := newSceneFixture(t)
	ss.SetAssemblies([]scene.Assembly{
		{
			Name: "first",
			Parts: []scene.Part{
				{Shape: metadata.ShapePlane},
				{Shape: metadata.ShapeBox},
			},
		},
		{
			Name:  "second",
			Parts: []scene.Part{{Shape: metadata.ShapeCone}},
		},
	})

	ss.DrawScene()

	require.Len(t, backend.drawn, 3)
	assert.Equal(t, metadata.ShapePlane, backend.drawn[0].Kind)
	assert.Equal(t, metadata.ShapeBox, backend.drawn[1].Kind)
	assert.Equal(t, metadata.ShapeCone, backend.drawn[2].Kind)
}

func TestSceneSetsModelBeforeEachDraw(t *testing.T) {
	ss, backend := newSceneFixture(t)
	ss.SetAssemblies([]scene.Assembly{
		{
			Origin: mgl32.Vec3{1, 2, 3},
			Parts: []scene.Part{{
				Shape:       metadata.ShapeBox,
				Scale:       mgl32.Vec3{1, 1, 1},
				LocalOffset: mgl32.Vec3{0, 1, 0},
			}},
		},
	})

	ss.DrawScene()

	model, ok := backend.uniformValue("model")
	require.True(t, ok)
	matrix := model.(mgl32.Mat4)
	// translation column carries origin + offset
	assert.InDelta(t, 1.0, matrix[12], 1e-6)
	assert.InDelta(t, 3.0, matrix[13], 1e-6)
	assert.InDelta(t, 3.0, matrix[14], 1e-6)
}

func TestSceneColoredPartDisablesTexturing(t *testing.T) {
	ss, backend := newSceneFixture(t)
	ss.SetAssemblies([]scene.Assembly{
		{
			Parts: []scene.Part{{
				Shape:    metadata.ShapeCylinder,
				Scale:    mgl32.Vec3{1, 1, 1},
				Color:    mgl32.Vec4{1, 0.1, 0.3, 1},
				HasColor: true,
			}},
		},
	})

	ss.DrawScene()

	useTexture, ok := backend.uniformValue("bUseTexture")
	require.True(t, ok)
	assert.Equal(t, false, useTexture)

	objectColor, ok := backend.uniformValue("objectColor")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec4{1, 0.1, 0.3, 1}, objectColor)
}

func TestSceneDefaultUVScaleIsIdentity(t *testing.T) {
	ss, backend := newSceneFixture(t)
	ss.SetAssemblies([]scene.Assembly{
		{Parts: []scene.Part{{Shape: metadata.ShapeBox, Scale: mgl32.Vec3{1, 1, 1}}}},
	})

	ss.DrawScene()

	uv, ok := backend.uniformValue("UVscale")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec2{1, 1}, uv)
}

func TestSceneForwardsDrawOptions(t *testing.T) {
	ss, backend := newSceneFixture(t)
	ss.SetAssemblies([]scene.Assembly{
		{
			Parts: []scene.Part{{
				Shape: metadata.ShapeBox,
				Scale: mgl32.Vec3{1, 1, 1},
				Draw:  metadata.DrawOptions{Face: metadata.BoxFaceTop, HasFace: true},
			}},
		},
	})

	ss.DrawScene()

	require.Len(t, backend.drawn, 1)
	assert.True(t, backend.drawn[0].Options.HasFace)
	assert.Equal(t, metadata.BoxFaceTop, backend.drawn[0].Options.Face)
}

func TestScenePartPositionCoRotation(t *testing.T) {
	assembly := scene.Assembly{
		Origin: mgl32.Vec3{10, 0, 0},
		YawDeg: 90,
	}
	part := scene.Part{LocalOffset: mgl32.Vec3{1, 0, 0}, CoRotate: true}

	position := scene.PartPosition(&assembly, &part)
	// a 90 degree yaw swings +X into -Z
	assert.InDelta(t, 10.0, position.X(), 1e-5)
	assert.InDelta(t, 0.0, position.Y(), 1e-5)
	assert.InDelta(t, -1.0, position.Z(), 1e-5)

	part.CoRotate = false
	position = scene.PartPosition(&assembly, &part)
	assert.InDelta(t, 11.0, position.X(), 1e-5)
	assert.InDelta(t, 0.0, position.Z(), 1e-5)
}
