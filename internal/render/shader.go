package render

import rl "github.com/gen2brain/raylib-go/raylib"

// Shader sources. Both fragment programs share shadeGLSL and differ only in where the
// surface colour comes from: the material tint, or the albedo texture times the tint.
const (
	vertexGLSL = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
out vec3 worldPos;
out vec3 worldNormal;
out vec2 uv;
void main() {
  worldPos = (matModel * vec4(vertexPosition, 1.0)).xyz;
  worldNormal = mat3(matModel) * vertexNormal;
  uv = vertexTexCoord;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	fragmentHeaderGLSL = `#version 330
in vec3 worldPos;
in vec3 worldNormal;
in vec2 uv;
uniform vec4 colDiffuse;
uniform sampler2D texture0;
uniform vec3 eye;
uniform vec3 sunDir;
uniform vec3 sunColor;
uniform float sunStrength;
uniform vec3 skyAmbient;
uniform vec3 groundAmbient;
uniform vec2 gloss;
out vec4 finalColor;
`
	// shadeGLSL lights an albedo with a hemisphere ambient (sky above, ground below) and one
	// Blinn-Phong directional sun. gloss is (exponent, strength).
	shadeGLSL = `
vec3 shade(vec3 albedo) {
  vec3 n = normalize(worldNormal);
  vec3 l = normalize(sunDir);
  float lambert = max(dot(n, l), 0.0);
  vec3 hemi = mix(groundAmbient, skyAmbient, n.y * 0.5 + 0.5);
  vec3 h = normalize(l + normalize(eye - worldPos));
  float highlight = lambert > 0.0 ? pow(max(dot(n, h), 0.0), gloss.x) * gloss.y : 0.0;
  return albedo * (hemi + sunColor * sunStrength * lambert) + sunColor * sunStrength * highlight;
}
`
	tintedMainGLSL = `
void main() {
  finalColor = vec4(shade(colDiffuse.rgb), colDiffuse.a);
}
`
	texturedMainGLSL = `
void main() {
  vec4 albedo = texture(texture0, uv) * colDiffuse;
  finalColor = vec4(shade(albedo.rgb), albedo.a);
}
`
)

var (
	skyAmbient    = [3]float32{0.30, 0.33, 0.40}
	groundAmbient = [3]float32{0.18, 0.16, 0.14}
)

const (
	// fullIntensity is the light intensity that maps to maxDiffuse.
	fullIntensity    = float32(1000)
	maxDiffuse       = float32(0.75)
	specularPower    = float32(48.0)
	specularStrength = float32(0.25)
)

// lighting is the per-frame light state pushed to every lit shader.
type lighting struct {
	viewPos   [3]float32
	lightDir  [3]float32 // towards the light
	color     [3]float32
	intensity float32
}

// litShader is a loaded lighting program and its uniform locations. A shader that failed to
// compile leaves valid false and materials keep raylib's default shader.
type litShader struct {
	shader rl.Shader
	valid  bool
	locs   struct {
		eye, sunDir, sunColor, sunStrength, skyAmbient, groundAmbient, gloss int32
	}
}

func loadLitShader(textured bool) litShader {
	body := tintedMainGLSL
	if textured {
		body = texturedMainGLSL
	}
	s := litShader{shader: rl.LoadShaderFromMemory(vertexGLSL, fragmentHeaderGLSL+shadeGLSL+body)}
	if s.valid = rl.IsShaderValid(s.shader); !s.valid {
		return s
	}
	loc := func(name string) int32 { return rl.GetShaderLocation(s.shader, name) }
	s.locs.eye = loc("eye")
	s.locs.sunDir = loc("sunDir")
	s.locs.sunColor = loc("sunColor")
	s.locs.sunStrength = loc("sunStrength")
	s.locs.skyAmbient = loc("skyAmbient")
	s.locs.groundAmbient = loc("groundAmbient")
	s.locs.gloss = loc("gloss")
	return s
}

func (s *litShader) unload() {
	if s.valid {
		rl.UnloadShader(s.shader)
	}
	*s = litShader{}
}

// apply sets the lighting uniforms. Values are copied into locals before being handed to raylib.
func (s *litShader) apply(l *lighting) {
	if !s.valid {
		return
	}
	set := func(loc int32, v []float32, typ rl.ShaderUniformDataType) {
		if loc >= 0 {
			rl.SetShaderValueV(s.shader, loc, v, typ, 1)
		}
	}
	eye, dir, col := l.viewPos, l.lightDir, l.color
	sky, ground := skyAmbient, groundAmbient
	set(s.locs.eye, eye[:], rl.ShaderUniformVec3)
	set(s.locs.sunDir, dir[:], rl.ShaderUniformVec3)
	set(s.locs.sunColor, col[:], rl.ShaderUniformVec3)
	set(s.locs.sunStrength, []float32{l.intensity}, rl.ShaderUniformFloat)
	set(s.locs.skyAmbient, sky[:], rl.ShaderUniformVec3)
	set(s.locs.groundAmbient, ground[:], rl.ShaderUniformVec3)
	set(s.locs.gloss, []float32{specularPower, specularStrength}, rl.ShaderUniformVec2)
}
