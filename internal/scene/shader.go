package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// litShader is the one shader every scene mesh is drawn with: hemisphere
// ambient, one directional sun, Blinn-Phong specular, optional emissive,
// and linear distance fog. Uniform locations are resolved once at load.
type litShader struct {
	shader rl.Shader

	locViewPos          int32
	locSunDir           int32
	locSunColor         int32
	locSunIntensity     int32
	locAmbientColor     int32
	locAmbientIntensity int32
	locGroundColor      int32
	locFogColor         int32
	locFogNear          int32
	locFogFar           int32
	locFogEnabled       int32
	locEmissive         int32
	locSpecularPower    int32
	locSpecularStrength int32
}

// loadLitShader compiles the scene shader. Call only after the window and
// GL context exist.
func loadLitShader() *litShader {
	sh := rl.LoadShaderFromMemory(litVS, litFS)
	return &litShader{
		shader:              sh,
		locViewPos:          rl.GetShaderLocation(sh, "viewPos"),
		locSunDir:           rl.GetShaderLocation(sh, "sunDir"),
		locSunColor:         rl.GetShaderLocation(sh, "sunColor"),
		locSunIntensity:     rl.GetShaderLocation(sh, "sunIntensity"),
		locAmbientColor:     rl.GetShaderLocation(sh, "ambientColor"),
		locAmbientIntensity: rl.GetShaderLocation(sh, "ambientIntensity"),
		locGroundColor:      rl.GetShaderLocation(sh, "groundColor"),
		locFogColor:         rl.GetShaderLocation(sh, "fogColor"),
		locFogNear:          rl.GetShaderLocation(sh, "fogNear"),
		locFogFar:           rl.GetShaderLocation(sh, "fogFar"),
		locFogEnabled:       rl.GetShaderLocation(sh, "fogEnabled"),
		locEmissive:         rl.GetShaderLocation(sh, "emissiveColor"),
		locSpecularPower:    rl.GetShaderLocation(sh, "specularPower"),
		locSpecularStrength: rl.GetShaderLocation(sh, "specularStrength"),
	}
}

// setFrameUniforms pushes the per-frame state: camera position, sun, sky
// hemisphere, and fog. Called once before any mesh is drawn (cgo-safe:
// local arrays).
func (ls *litShader) setFrameUniforms(env Environment, viewPos [3]float32) {
	sunDir := [3]float32{env.SunDirection.X, env.SunDirection.Y, env.SunDirection.Z}
	sunColor := [3]float32{env.SunColor.R, env.SunColor.G, env.SunColor.B}
	ambColor := [3]float32{env.AmbientColor.R, env.AmbientColor.G, env.AmbientColor.B}
	groundColor := [3]float32{env.GroundColor.R, env.GroundColor.G, env.GroundColor.B}
	fogColor := [3]float32{env.FogColor.R, env.FogColor.G, env.FogColor.B}
	fogEnabled := float32(0)
	if env.FogEnabled {
		fogEnabled = 1
	}

	rl.SetShaderValueV(ls.shader, ls.locViewPos, viewPos[:], rl.ShaderUniformVec3, 1)
	rl.SetShaderValueV(ls.shader, ls.locSunDir, sunDir[:], rl.ShaderUniformVec3, 1)
	rl.SetShaderValueV(ls.shader, ls.locSunColor, sunColor[:], rl.ShaderUniformVec3, 1)
	rl.SetShaderValue(ls.shader, ls.locSunIntensity, []float32{env.SunIntensity}, rl.ShaderUniformFloat)
	rl.SetShaderValueV(ls.shader, ls.locAmbientColor, ambColor[:], rl.ShaderUniformVec3, 1)
	rl.SetShaderValue(ls.shader, ls.locAmbientIntensity, []float32{env.AmbientIntensity}, rl.ShaderUniformFloat)
	rl.SetShaderValueV(ls.shader, ls.locGroundColor, groundColor[:], rl.ShaderUniformVec3, 1)
	rl.SetShaderValueV(ls.shader, ls.locFogColor, fogColor[:], rl.ShaderUniformVec3, 1)
	rl.SetShaderValue(ls.shader, ls.locFogNear, []float32{env.FogNear}, rl.ShaderUniformFloat)
	rl.SetShaderValue(ls.shader, ls.locFogFar, []float32{env.FogFar}, rl.ShaderUniformFloat)
	rl.SetShaderValue(ls.shader, ls.locFogEnabled, []float32{fogEnabled}, rl.ShaderUniformFloat)
}

// setSurfaceUniforms pushes the per-mesh state: emissive term and specular
// response. Tint and alpha travel through the material's albedo map as
// colDiffuse.
func (ls *litShader) setSurfaceUniforms(emissive [3]float32, specPower, specStrength float32) {
	rl.SetShaderValueV(ls.shader, ls.locEmissive, emissive[:], rl.ShaderUniformVec3, 1)
	rl.SetShaderValue(ls.shader, ls.locSpecularPower, []float32{specPower}, rl.ShaderUniformFloat)
	rl.SetShaderValue(ls.shader, ls.locSpecularStrength, []float32{specStrength}, rl.ShaderUniformFloat)
}

// Same vertex attributes as raylib meshes: vertexPosition, vertexTexCoord,
// vertexNormal.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matNormal) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 sunDir;
uniform vec3 sunColor;
uniform float sunIntensity;
uniform vec3 ambientColor;
uniform float ambientIntensity;
uniform vec3 groundColor;
uniform vec3 fogColor;
uniform float fogNear;
uniform float fogFar;
uniform float fogEnabled;
uniform vec3 emissiveColor;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(sunDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * sunColor * sunIntensity;
  float hemi = N.y * 0.5 + 0.5;
  vec3 amb = mix(groundColor, ambientColor, hemi) * ambientIntensity * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = sunColor * spec * step(0.001, NdotL);
  vec3 color = amb + diffuse + specular + emissiveColor;
  if (fogEnabled > 0.5) {
    float dist = length(viewPos - fragPosition);
    float fogAmount = clamp((dist - fogNear) / (fogFar - fogNear), 0.0, 1.0);
    color = mix(color, fogColor, fogAmount);
  }
  finalColor = vec4(color, tint.a);
}
`
)
