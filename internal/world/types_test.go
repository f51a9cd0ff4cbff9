package world

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeWorldObjectDefaults(t *testing.T) {
	raw := `{"name":"rock1","geometry":{"type":"box"},"material":{},"physics":{},"animation":{}}`
	var obj WorldObject
	require.NoError(t, json.Unmarshal([]byte(raw), &obj))

	assert.Equal(t, "rock1", obj.Name)
	assert.Equal(t, Vec3{}, obj.Position)
	assert.Equal(t, Vec3{X: 1, Y: 1, Z: 1}, obj.EffectiveScale())
	assert.Nil(t, obj.Material.Color, "absent color stays nil until resolved")
	assert.Nil(t, obj.Material.Emissive)
	assert.Equal(t, AnimNone, obj.Animation.Kind())
}

func TestDecodeWorldObjectFull(t *testing.T) {
	raw := `{
		"name": "lantern",
		"description": "a floating lantern",
		"position": {"x": 1, "y": 2, "z": 3},
		"rotation": {"x": 0, "y": 1.5708, "z": 0},
		"scale": {"x": 2, "y": 2, "z": 2},
		"geometry": {"type": "sphere", "radius": 0.3, "width_segments": 16, "height_segments": 8},
		"material": {"color": {"r": 1, "g": 0.8, "b": 0.2}, "emissive": {"r": 1, "g": 0.6, "b": 0}, "emissive_intensity": 2, "roughness": 0.1},
		"physics": {"has_gravity": false, "is_static": true},
		"animation": {"type": "bob", "speed": 0.5, "amplitude": 0.25},
		"children": [{"name": "lantern_handle", "geometry": {"type": "torus"}, "material": {}, "physics": {}, "animation": {}}],
		"tags": ["light", "decor"]
	}`
	var obj WorldObject
	require.NoError(t, json.Unmarshal([]byte(raw), &obj))

	assert.Equal(t, float32(0.3), *obj.Geometry.Radius)
	assert.Equal(t, int32(16), *obj.Geometry.WidthSegments)
	require.NotNil(t, obj.Material.Emissive)
	assert.Equal(t, float32(2), obj.Material.EmissiveIntensity)
	assert.Equal(t, AnimBob, obj.Animation.Kind())
	assert.Equal(t, float32(0.5), FloatOr(obj.Animation.Speed, 1))
	require.Len(t, obj.Children, 1)
	assert.Equal(t, "lantern_handle", obj.Children[0].Name)
	require.NotNil(t, obj.Physics.HasGravity)
	assert.False(t, *obj.Physics.HasGravity)
}

func TestAnimationKindNormalizesUnknown(t *testing.T) {
	for _, tag := range []string{"", "none", "wiggle", "ROTATE"} {
		assert.Equal(t, AnimNone, AnimationParams{Type: tag}.Kind(), "tag %q", tag)
	}
	assert.Equal(t, AnimOrbit, AnimationParams{Type: "orbit"}.Kind())
}

func TestEffectiveScaleLiftsZeroComponents(t *testing.T) {
	obj := WorldObject{Scale: &Vec3{X: 2, Y: 0, Z: 3}}
	assert.Equal(t, Vec3{X: 2, Y: 1, Z: 3}, obj.EffectiveScale())
}

func TestEnvelopeRoundTrip(t *testing.T) {
	msg, err := NewUserInput("a quiet forest at dusk")
	require.NoError(t, err)
	assert.Equal(t, MsgUserInput, msg.Type)

	encoded, err := json.Marshal(msg)
	require.NoError(t, err)

	var back Message
	require.NoError(t, json.Unmarshal(encoded, &back))
	var payload UserInput
	require.NoError(t, json.Unmarshal(back.Data, &payload))
	assert.Equal(t, "a quiet forest at dusk", payload.Text)
}

func TestDecodeEnvironmentSettings(t *testing.T) {
	raw := `{"sky_color":{"r":0.1,"g":0.1,"b":0.3},"fog_enabled":true,"fog_color":{"r":0.2,"g":0.2,"b":0.25},"fog_near":10,"fog_far":80,"time_of_day":"night"}`
	var env EnvironmentSettings
	require.NoError(t, json.Unmarshal([]byte(raw), &env))

	assert.True(t, env.FogEnabled)
	assert.Equal(t, float32(10), FloatOr(env.FogNear, 50))
	assert.Nil(t, env.SunPosition, "absent sun position stays nil")
	assert.Equal(t, "night", env.TimeOfDay)
}
