package opengl

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/tableau/engine/core"
)

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform vec2 UVscale;

out vec3 fragmentPosition;
out vec3 fragmentNormal;
out vec2 fragmentUV;

void main() {
    fragmentPosition = vec3(model * vec4(aPosition, 1.0));
    fragmentNormal = mat3(transpose(inverse(model))) * aNormal;
    fragmentUV = aTexCoord * UVscale;
    gl_Position = projection * view * vec4(fragmentPosition, 1.0);
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core
in vec3 fragmentPosition;
in vec3 fragmentNormal;
in vec2 fragmentUV;

out vec4 outFragColor;

struct Material {
    vec3 ambientColor;
    float ambientStrength;
    vec3 diffuseColor;
    vec3 specularColor;
    float shininess;
};

struct DirectionalLight {
    vec3 direction;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};

struct PointLight {
    vec3 position;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
};

struct SpotLight {
    vec3 position;
    vec3 direction;
    vec3 ambient;
    vec3 diffuse;
    vec3 specular;
    bool bActive;
    float cutOff;
    float outerCutOff;
    float constant;
    float linear;
    float quadratic;
};

#define TOTAL_POINT_LIGHTS 5

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec3 viewPosition;
uniform Material material;
uniform DirectionalLight directionalLight;
uniform PointLight pointLights[TOTAL_POINT_LIGHTS];
uniform SpotLight spotLight;

vec3 shadeDirectionalLight(DirectionalLight light, vec3 normal, vec3 viewDirection, vec3 baseColor) {
    vec3 lightDirection = normalize(-light.direction);
    float diffuseFactor = max(dot(normal, lightDirection), 0.0);
    vec3 reflectDirection = reflect(-lightDirection, normal);
    float specularFactor = pow(max(dot(viewDirection, reflectDirection), 0.0), max(material.shininess, 1.0));

    vec3 ambient = light.ambient * material.ambientStrength * material.ambientColor * baseColor;
    vec3 diffuse = light.diffuse * diffuseFactor * material.diffuseColor * baseColor;
    vec3 specular = light.specular * specularFactor * material.specularColor;
    return ambient + diffuse + specular;
}

vec3 shadePointLight(PointLight light, vec3 normal, vec3 viewDirection, vec3 baseColor) {
    vec3 lightDirection = normalize(light.position - fragmentPosition);
    float diffuseFactor = max(dot(normal, lightDirection), 0.0);
    vec3 reflectDirection = reflect(-lightDirection, normal);
    float specularFactor = pow(max(dot(viewDirection, reflectDirection), 0.0), max(material.shininess, 1.0));

    vec3 ambient = light.ambient * material.ambientStrength * material.ambientColor * baseColor;
    vec3 diffuse = light.diffuse * diffuseFactor * material.diffuseColor * baseColor;
    vec3 specular = light.specular * specularFactor * material.specularColor;
    return ambient + diffuse + specular;
}

vec3 shadeSpotLight(SpotLight light, vec3 normal, vec3 viewDirection, vec3 baseColor) {
    vec3 lightDirection = normalize(light.position - fragmentPosition);
    float theta = dot(lightDirection, normalize(-light.direction));
    float epsilon = light.cutOff - light.outerCutOff;
    float intensity = clamp((theta - light.outerCutOff) / epsilon, 0.0, 1.0);

    float dist = length(light.position - fragmentPosition);
    float attenuation = 1.0 / (light.constant + light.linear * dist + light.quadratic * dist * dist);

    float diffuseFactor = max(dot(normal, lightDirection), 0.0);
    vec3 reflectDirection = reflect(-lightDirection, normal);
    float specularFactor = pow(max(dot(viewDirection, reflectDirection), 0.0), max(material.shininess, 1.0));

    vec3 ambient = light.ambient * material.ambientStrength * material.ambientColor * baseColor;
    vec3 diffuse = light.diffuse * diffuseFactor * material.diffuseColor * baseColor;
    vec3 specular = light.specular * specularFactor * material.specularColor;
    return (ambient + diffuse + specular) * intensity * attenuation;
}

void main() {
    vec4 surface;
    if (bUseTexture) {
        surface = texture(objectTexture, fragmentUV);
    } else {
        surface = objectColor;
    }

    if (!bUseLighting) {
        outFragColor = surface;
        return;
    }

    vec3 normal = normalize(fragmentNormal);
    vec3 viewDirection = normalize(viewPosition - fragmentPosition);

    vec3 shaded = vec3(0.0);
    if (directionalLight.bActive) {
        shaded += shadeDirectionalLight(directionalLight, normal, viewDirection, surface.rgb);
    }
    for (int i = 0; i < TOTAL_POINT_LIGHTS; i++) {
        if (pointLights[i].bActive) {
            shaded += shadePointLight(pointLights[i], normal, viewDirection, surface.rgb);
        }
    }
    if (spotLight.bActive) {
        shaded += shadeSpotLight(spotLight, normal, viewDirection, surface.rgb);
    }

    outFragColor = vec4(shaded, surface.a);
}
` + "\x00"

// shaderProgram wraps the single GL program all scene objects render with,
// plus a lazily filled uniform location cache. A missing uniform is logged
// once and cached as -1 so later writes become no-ops.
type shaderProgram struct {
	handle    uint32
	locations map[string]int32
}

func newShaderProgram() (*shaderProgram, error) {
	prog, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	return &shaderProgram{
		handle:    prog,
		locations: make(map[string]int32),
	}, nil
}

func (sp *shaderProgram) use() {
	gl.UseProgram(sp.handle)
}

func (sp *shaderProgram) destroy() {
	gl.DeleteProgram(sp.handle)
	sp.handle = 0
}

func (sp *shaderProgram) location(name string) int32 {
	if loc, ok := sp.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(sp.handle, gl.Str(name+"\x00"))
	if loc < 0 {
		core.LogWarn("uniform '%s' not found in shader program", name)
	}
	sp.locations[name] = loc
	return loc
}

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("link failed: %v", infoLog)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("compile failed: %v", infoLog)
	}
	return shader, nil
}
