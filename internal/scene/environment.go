package scene

import (
	"github.com/chewxy/math32"

	"github.com/slalter/dreamscape/internal/world"
)

// Backend environment defaults: a clear daytime sky with the sun high in
// the southeast.
var (
	defaultSkyColor     = world.Color{R: 0.53, G: 0.81, B: 0.92}
	defaultGroundColor  = world.Color{R: 0.35, G: 0.42, B: 0.30}
	defaultAmbientColor = world.Color{R: 1, G: 1, B: 1}
	defaultSunColor     = world.Color{R: 1, G: 1, B: 0.95}
	defaultSunPosition  = world.Vec3{X: 50, Y: 100, Z: 50}
)

const (
	defaultAmbientIntensity = 0.6
	defaultSunIntensity     = 1.0
	defaultFogNear          = 50.0
	defaultFogFar           = 200.0
)

// Environment is the fully resolved sky/fog/light state applied by the
// renderer. Unlike the wire form, every field is concrete.
type Environment struct {
	SkyColor    world.Color
	GroundColor world.Color

	FogEnabled bool
	FogColor   world.Color
	FogNear    float32
	FogFar     float32

	AmbientColor     world.Color
	AmbientIntensity float32

	SunColor     world.Color
	SunIntensity float32
	// SunDirection points from the scene toward the sun, unit length.
	SunDirection world.Vec3

	TimeOfDay string
}

// DefaultEnvironment returns the environment applied before any update
// arrives.
func DefaultEnvironment() Environment {
	return ResolveEnvironment(world.EnvironmentSettings{})
}

// ResolveEnvironment fills an incoming settings payload out to a complete
// environment. Absent fields take defaults, not the previously applied
// values: an environment update is a full replacement. A nil fog color
// inherits the sky color so fog blends into the horizon.
func ResolveEnvironment(e world.EnvironmentSettings) Environment {
	sky := world.ColorOr(e.SkyColor, defaultSkyColor)
	env := Environment{
		SkyColor:         sky,
		GroundColor:      world.ColorOr(e.GroundColor, defaultGroundColor),
		FogEnabled:       e.FogEnabled,
		FogColor:         world.ColorOr(e.FogColor, sky),
		FogNear:          world.FloatOr(e.FogNear, defaultFogNear),
		FogFar:           world.FloatOr(e.FogFar, defaultFogFar),
		AmbientColor:     world.ColorOr(e.AmbientLightColor, defaultAmbientColor),
		AmbientIntensity: world.FloatOr(e.AmbientLightIntensity, defaultAmbientIntensity),
		SunColor:         world.ColorOr(e.SunColor, defaultSunColor),
		SunIntensity:     world.FloatOr(e.SunIntensity, defaultSunIntensity),
		SunDirection:     normalizedSunDirection(world.Vec3Or(e.SunPosition, defaultSunPosition)),
		TimeOfDay:        e.TimeOfDay,
	}
	if env.FogFar <= env.FogNear {
		env.FogFar = env.FogNear + 1
	}
	return env
}

// normalizedSunDirection converts a sun position to a unit direction from
// the origin. A degenerate position falls back to straight overhead.
func normalizedSunDirection(pos world.Vec3) world.Vec3 {
	mag := math32.Sqrt(pos.X*pos.X + pos.Y*pos.Y + pos.Z*pos.Z)
	if mag < 1e-6 {
		return world.Vec3{Y: 1}
	}
	return world.Vec3{X: pos.X / mag, Y: pos.Y / mag, Z: pos.Z / mag}
}
