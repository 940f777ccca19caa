package systems

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/renderer"
	"github.com/spaghettifunk/tableau/engine/renderer/metadata"
)

// ShaderSystem is the uniform dispatcher: the single funnel through which
// scene state reaches the shading program. It resolves texture and material
// tags via the registries so draw code only speaks in tags.
type ShaderSystem struct {
	renderer  *renderer.Renderer
	textures  *TextureSystem
	materials *MaterialSystem
}

func NewShaderSystem(r *renderer.Renderer, textures *TextureSystem, materials *MaterialSystem) *ShaderSystem {
	return &ShaderSystem{
		renderer:  r,
		textures:  textures,
		materials: materials,
	}
}

func (ss *ShaderSystem) SetModelMatrix(model mgl32.Mat4) {
	ss.renderer.SetMat4("model", model)
}

func (ss *ShaderSystem) SetViewMatrix(view mgl32.Mat4) {
	ss.renderer.SetMat4("view", view)
}

func (ss *ShaderSystem) SetProjectionMatrix(projection mgl32.Mat4) {
	ss.renderer.SetMat4("projection", projection)
}

func (ss *ShaderSystem) SetViewPosition(position mgl32.Vec3) {
	ss.renderer.SetVec3("viewPosition", position)
}

// SetSolidColor switches the program to untextured output with the given
// color. Texturing stays off until the next SetTexture call.
func (ss *ShaderSystem) SetSolidColor(r, g, b, a float32) {
	ss.renderer.SetBool("bUseTexture", false)
	ss.renderer.SetVec4("objectColor", mgl32.Vec4{r, g, b, a})
}

// SetTexture switches the program to textured output sampling the slot the
// tag resolved to. An unregistered tag still writes its sentinel slot, so
// a missing registration renders visibly wrong rather than hiding behind
// the previous binding.
func (ss *ShaderSystem) SetTexture(tag string) {
	slot := ss.textures.FindSlot(tag)
	if slot == TextureSlotNotFound {
		core.LogWarn("texture tag '%s' is not registered", tag)
	}
	ss.renderer.SetBool("bUseTexture", true)
	ss.renderer.SetSampler2D("objectTexture", slot)
}

func (ss *ShaderSystem) SetUVScale(u, v float32) {
	ss.renderer.SetVec2("UVscale", mgl32.Vec2{u, v})
}

// SetMaterial uploads the surface properties registered under tag. A miss
// writes nothing, leaving the previous material in effect.
func (ss *ShaderSystem) SetMaterial(tag string) {
	material, found := ss.materials.Find(tag)
	if !found {
		return
	}
	ss.renderer.SetVec3("material.ambientColor", material.AmbientColor)
	ss.renderer.SetFloat("material.ambientStrength", material.AmbientStrength)
	ss.renderer.SetVec3("material.diffuseColor", material.DiffuseColor)
	ss.renderer.SetVec3("material.specularColor", material.SpecularColor)
	ss.renderer.SetFloat("material.shininess", material.Shininess)
}

func (ss *ShaderSystem) SetDirectionalLight(light metadata.DirectionalLight) {
	ss.renderer.SetVec3("directionalLight.direction", light.Direction)
	ss.renderer.SetVec3("directionalLight.ambient", light.Ambient)
	ss.renderer.SetVec3("directionalLight.diffuse", light.Diffuse)
	ss.renderer.SetVec3("directionalLight.specular", light.Specular)
	ss.renderer.SetBool("directionalLight.bActive", light.Active)
}

// SetPointLight uploads one slot of the fixed point light array.
func (ss *ShaderSystem) SetPointLight(index int, light metadata.PointLight) {
	if index < 0 || index >= metadata.MAX_POINT_LIGHTS {
		core.LogWarn("point light index %d out of range [0, %d)", index, metadata.MAX_POINT_LIGHTS)
		return
	}
	prefix := fmt.Sprintf("pointLights[%d]", index)
	ss.renderer.SetVec3(prefix+".position", light.Position)
	ss.renderer.SetVec3(prefix+".ambient", light.Ambient)
	ss.renderer.SetVec3(prefix+".diffuse", light.Diffuse)
	ss.renderer.SetVec3(prefix+".specular", light.Specular)
	ss.renderer.SetBool(prefix+".bActive", light.Active)
}

func (ss *ShaderSystem) SetSpotLight(light metadata.SpotLight) {
	ss.renderer.SetVec3("spotLight.position", light.Position)
	ss.renderer.SetVec3("spotLight.direction", light.Direction)
	ss.renderer.SetVec3("spotLight.ambient", light.Ambient)
	ss.renderer.SetVec3("spotLight.diffuse", light.Diffuse)
	ss.renderer.SetVec3("spotLight.specular", light.Specular)
	ss.renderer.SetFloat("spotLight.cutOff", light.CutOff)
	ss.renderer.SetFloat("spotLight.outerCutOff", light.OuterCut)
	ss.renderer.SetFloat("spotLight.constant", light.Constant)
	ss.renderer.SetFloat("spotLight.linear", light.Linear)
	ss.renderer.SetFloat("spotLight.quadratic", light.Quadratic)
	ss.renderer.SetBool("spotLight.bActive", light.Active)
}

func (ss *ShaderSystem) SetLightingEnabled(enabled bool) {
	ss.renderer.SetBool("bUseLighting", enabled)
}
