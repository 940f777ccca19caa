package metadata

import "github.com/go-gl/mathgl/mgl32"

// Material holds the Phong shading properties a scene object is drawn with.
// Immutable once defined; the full set is declared during scene setup.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// MAX_POINT_LIGHTS mirrors the pointLights array length in the fragment shader.
const MAX_POINT_LIGHTS = 5

type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	Active   bool
}

type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Active    bool
}

// SpotLight is the follow-camera light; position and direction are rewritten
// every frame from the camera pose.
type SpotLight struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	CutOff    float32
	OuterCut  float32
	Constant  float32
	Linear    float32
	Quadratic float32
	Active    bool
}
