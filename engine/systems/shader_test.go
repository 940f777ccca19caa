package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/tableau/engine/renderer"
	"github.com/spaghettifunk/tableau/engine/renderer/metadata"
)

func newShaderFixture(t *testing.T) (*ShaderSystem, *fakeBackend, *TextureSystem, *MaterialSystem) {
	t.Helper()
	backend := newFakeBackend()
	r := renderer.NewWithBackend(backend)
	ts, err := NewTextureSystem(&TextureSystemConfig{MaxTextureSlots: 16}, r)
	require.NoError(t, err)
	ms := NewMaterialSystem()
	return NewShaderSystem(r, ts, ms), backend, ts, ms
}

func TestShaderSolidColorDisablesTexturing(t *testing.T) {
	ss, backend, _, _ := newShaderFixture(t)

	ss.SetSolidColor(0.3, 0.3, 0.4, 0.6)

	useTexture, ok := backend.uniformValue("bUseTexture")
	require.True(t, ok)
	assert.Equal(t, false, useTexture)

	objectColor, ok := backend.uniformValue("objectColor")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec4{0.3, 0.3, 0.4, 0.6}, objectColor)
}

func TestShaderUnknownTextureStillWritesSentinelSlot(t *testing.T) {
	ss, backend, _, _ := newShaderFixture(t)

	ss.SetTexture("never registered")

	useTexture, ok := backend.uniformValue("bUseTexture")
	require.True(t, ok)
	assert.Equal(t, true, useTexture)

	sampler, ok := backend.uniformValue("objectTexture")
	require.True(t, ok)
	assert.Equal(t, TextureSlotNotFound, sampler)
}

func TestShaderMaterialMissWritesNothing(t *testing.T) {
	ss, backend, _, _ := newShaderFixture(t)

	ss.SetMaterial("missing")
	assert.Empty(t, backend.uniforms)
}

func TestShaderMaterialUploadsAllProperties(t *testing.T) {
	ss, backend, _, ms := newShaderFixture(t)
	ms.Define(metadata.Material{
		Tag:             "steel",
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.2},
		AmbientStrength: 0.1,
		DiffuseColor:    mgl32.Vec3{0.4, 0.4, 0.4},
		SpecularColor:   mgl32.Vec3{0.9, 0.9, 0.9},
		Shininess:       64,
	})

	ss.SetMaterial("steel")

	assert.Equal(t, []string{
		"material.ambientColor",
		"material.ambientStrength",
		"material.diffuseColor",
		"material.specularColor",
		"material.shininess",
	}, backend.uniformNames())

	shininess, ok := backend.uniformValue("material.shininess")
	require.True(t, ok)
	assert.Equal(t, float32(64), shininess)
}

func TestShaderPointLightIndexed(t *testing.T) {
	ss, backend, _, _ := newShaderFixture(t)

	ss.SetPointLight(0, metadata.PointLight{
		Position: mgl32.Vec3{5, 12, 8},
		Active:   true,
	})

	position, ok := backend.uniformValue("pointLights[0].position")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{5, 12, 8}, position)

	active, ok := backend.uniformValue("pointLights[0].bActive")
	require.True(t, ok)
	assert.Equal(t, true, active)
}

func TestShaderPointLightOutOfRangeIgnored(t *testing.T) {
	ss, backend, _, _ := newShaderFixture(t)

	ss.SetPointLight(metadata.MAX_POINT_LIGHTS, metadata.PointLight{Active: true})
	ss.SetPointLight(-1, metadata.PointLight{Active: true})
	assert.Empty(t, backend.uniforms)
}

func TestShaderLightingToggle(t *testing.T) {
	ss, backend, _, _ := newShaderFixture(t)

	ss.SetLightingEnabled(true)
	enabled, ok := backend.uniformValue("bUseLighting")
	require.True(t, ok)
	assert.Equal(t, true, enabled)
}

func TestShaderUVScale(t *testing.T) {
	ss, backend, _, _ := newShaderFixture(t)

	ss.SetUVScale(10, 4)
	uv, ok := backend.uniformValue("UVscale")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec2{10, 4}, uv)
}
