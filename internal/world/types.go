// Package world defines the wire schema shared with the dreamscape backend:
// objects, environment, terrain, and the websocket message envelope.
// Field names and defaults mirror the backend schema exactly, so a payload
// produced by the server decodes without translation.
package world

// Geometry type tags. Unknown tags fall back to a box at build time.
const (
	GeometryBox      = "box"
	GeometrySphere   = "sphere"
	GeometryCylinder = "cylinder"
	GeometryCone     = "cone"
	GeometryTorus    = "torus"
	GeometryPlane    = "plane"
	GeometryCustom   = "custom"
)

// Animation type tags. Anything else is treated as "none".
const (
	AnimNone   = "none"
	AnimRotate = "rotate"
	AnimBob    = "bob"
	AnimOrbit  = "orbit"
)

// Terrain type tags.
const (
	TerrainFlat      = "flat"
	TerrainHills     = "hills"
	TerrainMountains = "mountains"
	TerrainWater     = "water"
)

// Vec3 is a 3D vector. Zero value is the origin.
type Vec3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Color is an RGB color with components in [0,1].
type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
}

// White is the default material color.
var White = Color{R: 1, G: 1, B: 1}

// GeometryParams describes parametric or raw-mesh geometry. Optional fields
// are pointers so "absent" is distinguishable from an explicit zero; each
// shape documents its defaults in the geometry package.
type GeometryParams struct {
	Type string `json:"type"`

	// Box and plane.
	Width  *float32 `json:"width,omitempty"`
	Height *float32 `json:"height,omitempty"`
	Depth  *float32 `json:"depth,omitempty"`

	// Sphere.
	Radius         *float32 `json:"radius,omitempty"`
	WidthSegments  *int32   `json:"width_segments,omitempty"`
	HeightSegments *int32   `json:"height_segments,omitempty"`

	// Cylinder and cone.
	RadiusTop    *float32 `json:"radius_top,omitempty"`
	RadiusBottom *float32 `json:"radius_bottom,omitempty"`

	// Torus.
	Tube            *float32 `json:"tube,omitempty"`
	RadialSegments  *int32   `json:"radial_segments,omitempty"`
	TubularSegments *int32   `json:"tubular_segments,omitempty"`

	// Custom raw mesh: flat xyz positions, triangle indices, optional
	// flat normals and uv pairs.
	Vertices []float32 `json:"vertices,omitempty"`
	Indices  []int32   `json:"indices,omitempty"`
	Normals  []float32 `json:"normals,omitempty"`
	UVs      []float32 `json:"uvs,omitempty"`
}

// MaterialParams describes a shaded surface. Nil color means white, nil
// roughness means 0.5, nil opacity means 1. A nil emissive means no emissive
// contribution at all, not black.
type MaterialParams struct {
	Color             *Color   `json:"color,omitempty"`
	Emissive          *Color   `json:"emissive,omitempty"`
	EmissiveIntensity float32  `json:"emissive_intensity,omitempty"`
	Metalness         float32  `json:"metalness,omitempty"`
	Roughness         *float32 `json:"roughness,omitempty"`
	Opacity           *float32 `json:"opacity,omitempty"`
	Transparent       bool     `json:"transparent,omitempty"`
	Wireframe         bool     `json:"wireframe,omitempty"`
	FlatShading       bool     `json:"flat_shading,omitempty"`
}

// PhysicsParams is carried on every object but not simulated by this client.
type PhysicsParams struct {
	HasGravity  *bool    `json:"has_gravity,omitempty"`
	IsStatic    *bool    `json:"is_static,omitempty"`
	Mass        *float32 `json:"mass,omitempty"`
	Friction    *float32 `json:"friction,omitempty"`
	Restitution *float32 `json:"restitution,omitempty"`
}

// AnimationParams describes a time-driven transform. Speed defaults to 1,
// axis to +Y, amplitude to 1.
type AnimationParams struct {
	Type      string   `json:"type,omitempty"`
	Speed     *float32 `json:"speed,omitempty"`
	Axis      *Vec3    `json:"axis,omitempty"`
	Amplitude *float32 `json:"amplitude,omitempty"`
}

// Kind returns the normalized animation type: one of the Anim* constants,
// with empty and unrecognized tags mapping to AnimNone.
func (a AnimationParams) Kind() string {
	switch a.Type {
	case AnimRotate, AnimBob, AnimOrbit:
		return a.Type
	}
	return AnimNone
}

// WorldObject is one object in the scene. Name is the identity used for
// modify and remove; children are owned substructures positioned relative
// to the parent and share its lifecycle.
type WorldObject struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Position    Vec3             `json:"position"`
	Rotation    Vec3             `json:"rotation"`
	Scale       *Vec3            `json:"scale,omitempty"`
	Geometry    GeometryParams   `json:"geometry"`
	Material    MaterialParams   `json:"material"`
	Physics     PhysicsParams    `json:"physics"`
	Animation   AnimationParams  `json:"animation"`
	Children    []WorldObject    `json:"children,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Metadata    map[string]any   `json:"metadata,omitempty"`
}

// EffectiveScale returns the object's scale with an absent scale meaning
// (1,1,1). Individual zero components are also lifted to 1, matching how
// the renderer treats degenerate scales.
func (o WorldObject) EffectiveScale() Vec3 {
	s := Vec3{X: 1, Y: 1, Z: 1}
	if o.Scale != nil {
		s = *o.Scale
	}
	if s.X == 0 {
		s.X = 1
	}
	if s.Y == 0 {
		s.Y = 1
	}
	if s.Z == 0 {
		s.Z = 1
	}
	return s
}

// EnvironmentSettings is the global sky/fog/light state. Nil fields take
// the backend defaults (see Resolve in the scene package).
type EnvironmentSettings struct {
	SkyColor              *Color   `json:"sky_color,omitempty"`
	GroundColor           *Color   `json:"ground_color,omitempty"`
	FogColor              *Color   `json:"fog_color,omitempty"`
	FogNear               *float32 `json:"fog_near,omitempty"`
	FogFar                *float32 `json:"fog_far,omitempty"`
	FogEnabled            bool     `json:"fog_enabled,omitempty"`
	AmbientLightColor     *Color   `json:"ambient_light_color,omitempty"`
	AmbientLightIntensity *float32 `json:"ambient_light_intensity,omitempty"`
	SunColor              *Color   `json:"sun_color,omitempty"`
	SunIntensity          *float32 `json:"sun_intensity,omitempty"`
	SunPosition           *Vec3    `json:"sun_position,omitempty"`
	TimeOfDay             string   `json:"time_of_day,omitempty"`
}

// TerrainParams controls procedural terrain generation. Seed is optional;
// the generator substitutes a fixed constant so terrain stays reproducible.
type TerrainParams struct {
	Type     string   `json:"type,omitempty"`
	Size     *float32 `json:"size,omitempty"`
	Height   *float32 `json:"height,omitempty"`
	Color    *Color   `json:"color,omitempty"`
	Segments *int32   `json:"segments,omitempty"`
	Seed     *int64   `json:"seed,omitempty"`
}

// FloatOr returns *p, or def when p is nil.
func FloatOr(p *float32, def float32) float32 {
	if p == nil {
		return def
	}
	return *p
}

// IntOr returns *p, or def when p is nil.
func IntOr(p *int32, def int32) int32 {
	if p == nil {
		return def
	}
	return *p
}

// ColorOr returns *p, or def when p is nil.
func ColorOr(p *Color, def Color) Color {
	if p == nil {
		return def
	}
	return *p
}

// Vec3Or returns *p, or def when p is nil.
func Vec3Or(p *Vec3, def Vec3) Vec3 {
	if p == nil {
		return def
	}
	return *p
}
