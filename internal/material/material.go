// Package material resolves material descriptors into shaded-surface
// parameters. Resolution is pure; the scene's draw path feeds a Surface
// into the lighting shader each frame.
package material

import "github.com/slalter/dreamscape/internal/world"

// Defaults matching the backend schema.
const (
	defaultRoughness = 0.5
	defaultOpacity   = 1.0
)

// Specular response derived from roughness/metalness. Rough surfaces get a
// broad dim highlight, polished metal a tight bright one.
const (
	minSpecularPower    = 8.0
	maxSpecularPower    = 128.0
	minSpecularStrength = 0.08
	maxSpecularStrength = 0.9
)

// Surface is a resolved shading configuration. All color components are in
// [0,1]; Alpha already accounts for the transparency flag.
type Surface struct {
	Color             world.Color
	Alpha             float32
	Emissive          world.Color
	EmissiveIntensity float32
	Metalness         float32
	Roughness         float32
	SpecularPower     float32
	SpecularStrength  float32
	Transparent       bool
	Wireframe         bool
	FlatShading       bool
}

// Resolve maps a material descriptor to a Surface. An absent emissive color
// means no emissive contribution (intensity forced to zero), not black
// emissive at the declared intensity.
func Resolve(p world.MaterialParams) Surface {
	s := Surface{
		Color:       world.ColorOr(p.Color, world.White),
		Alpha:       1,
		Metalness:   clamp01(p.Metalness),
		Roughness:   clamp01(world.FloatOr(p.Roughness, defaultRoughness)),
		Transparent: p.Transparent,
		Wireframe:   p.Wireframe,
		FlatShading: p.FlatShading,
	}
	if p.Transparent {
		s.Alpha = clamp01(world.FloatOr(p.Opacity, defaultOpacity))
	}
	if p.Emissive != nil {
		s.Emissive = *p.Emissive
		s.EmissiveIntensity = p.EmissiveIntensity
	}

	gloss := 1 - s.Roughness
	s.SpecularPower = minSpecularPower + gloss*gloss*(maxSpecularPower-minSpecularPower)
	s.SpecularStrength = minSpecularStrength + (maxSpecularStrength-minSpecularStrength)*(0.3*gloss+0.7*s.Metalness)
	return s
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
