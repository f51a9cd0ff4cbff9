package material

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slalter/dreamscape/internal/world"
)

func TestResolveDefaults(t *testing.T) {
	s := Resolve(world.MaterialParams{})

	assert.Equal(t, world.White, s.Color)
	assert.Equal(t, float32(1), s.Alpha)
	assert.Equal(t, float32(0.5), s.Roughness)
	assert.Zero(t, s.Metalness)
	assert.False(t, s.Transparent)
	assert.False(t, s.Wireframe)
	assert.False(t, s.FlatShading)
}

func TestResolveEmissiveOnlyWhenColorPresent(t *testing.T) {
	// Intensity without an emissive color must not produce black emissive.
	s := Resolve(world.MaterialParams{EmissiveIntensity: 3})
	assert.Zero(t, s.EmissiveIntensity)

	lit := Resolve(world.MaterialParams{
		Emissive:          &world.Color{R: 1, G: 0.5, B: 0},
		EmissiveIntensity: 3,
	})
	assert.Equal(t, world.Color{R: 1, G: 0.5, B: 0}, lit.Emissive)
	assert.Equal(t, float32(3), lit.EmissiveIntensity)
}

func TestResolveOpacityRequiresTransparentFlag(t *testing.T) {
	op := float32(0.25)

	opaque := Resolve(world.MaterialParams{Opacity: &op})
	assert.Equal(t, float32(1), opaque.Alpha)

	seeThrough := Resolve(world.MaterialParams{Opacity: &op, Transparent: true})
	assert.Equal(t, float32(0.25), seeThrough.Alpha)
}

func TestResolveSpecularTracksRoughness(t *testing.T) {
	rough := float32(1)
	polished := float32(0)

	dull := Resolve(world.MaterialParams{Roughness: &rough})
	shiny := Resolve(world.MaterialParams{Roughness: &polished, Metalness: 1})

	assert.Less(t, dull.SpecularPower, shiny.SpecularPower)
	assert.Less(t, dull.SpecularStrength, shiny.SpecularStrength)
}

func TestResolveClampsOutOfRangeInputs(t *testing.T) {
	r := float32(4)
	s := Resolve(world.MaterialParams{Metalness: -2, Roughness: &r})
	assert.Zero(t, s.Metalness)
	assert.Equal(t, float32(1), s.Roughness)
}
