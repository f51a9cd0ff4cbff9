package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/slalter/dreamscape/internal/world"
)

func newTestScene() *Scene {
	return New(zap.NewNop(), func() float64 { return 0 })
}

func f32(v float32) *float32 { return &v }

func obj(name string) world.WorldObject {
	return world.WorldObject{Name: name, Geometry: world.GeometryParams{Type: world.GeometryBox}}
}

func TestCreateThenRemove(t *testing.T) {
	s := newTestScene()
	s.Create(obj("tree"))
	require.NotNil(t, s.Get("tree"))
	assert.Equal(t, 1, s.Len())

	s.Remove("tree")
	assert.Nil(t, s.Get("tree"))
	assert.Zero(t, s.Len())
}

func TestRemoveUnknownIsNoOp(t *testing.T) {
	s := newTestScene()
	s.Create(obj("rock"))
	s.Remove("ghost")
	assert.Equal(t, 1, s.Len())
}

func TestModifyUnknownIsNoOp(t *testing.T) {
	s := newTestScene()
	s.Modify(obj("ghost"))
	assert.Zero(t, s.Len())
}

func TestModifyOverwritesTransformAndSurface(t *testing.T) {
	s := newTestScene()
	s.Create(obj("cube"))

	red := world.Color{R: 1}
	mod := obj("cube")
	mod.Position = world.Vec3{X: 3, Y: 1, Z: -2}
	mod.Scale = &world.Vec3{X: 2, Y: 2, Z: 2}
	mod.Material = world.MaterialParams{Color: &red}
	s.Modify(mod)

	n := s.Get("cube")
	require.NotNil(t, n)
	assert.Equal(t, world.Vec3{X: 3, Y: 1, Z: -2}, n.Position)
	assert.Equal(t, world.Vec3{X: 2, Y: 2, Z: 2}, n.Scale)
	assert.Equal(t, red, n.Surface.Color)
}

func TestModifyLeavesGeometryAndAnimationAlone(t *testing.T) {
	s := newTestScene()
	o := obj("spinner")
	o.Animation = world.AnimationParams{Type: world.AnimRotate}
	s.Create(o)
	require.Equal(t, 1, s.AnimationCount())
	meshBefore := s.Get("spinner").Mesh

	mod := obj("spinner")
	mod.Geometry = world.GeometryParams{Type: world.GeometrySphere}
	s.Modify(mod)

	assert.Equal(t, meshBefore, s.Get("spinner").Mesh, "modify must not rebuild geometry")
	assert.Equal(t, 1, s.AnimationCount(), "modify must not touch animation registrations")
}

func TestNameCollisionReplacesExistingNode(t *testing.T) {
	s := newTestScene()
	first := obj("lamp")
	first.Animation = world.AnimationParams{Type: world.AnimBob}
	s.Create(first)
	require.Equal(t, 1, s.AnimationCount())

	second := obj("lamp")
	second.Geometry = world.GeometryParams{Type: world.GeometrySphere}
	s.Create(second)

	assert.Equal(t, 1, s.Len(), "replacement must not duplicate the name")
	assert.Zero(t, s.AnimationCount(), "old node's animation must be deregistered")
	assert.Greater(t, s.Get("lamp").Mesh.VertexCount(), 24, "the newer descriptor wins")
}

func TestCreateWithEmptyNameIsDropped(t *testing.T) {
	s := newTestScene()
	s.Create(world.WorldObject{})
	assert.Zero(t, s.Len())
}

func TestRemoveDeregistersDescendantAnimations(t *testing.T) {
	s := newTestScene()
	parent := obj("mobile")
	child := obj("moon")
	child.Animation = world.AnimationParams{Type: world.AnimOrbit}
	parent.Children = []world.WorldObject{child}
	parent.Animation = world.AnimationParams{Type: world.AnimRotate}
	s.Create(parent)
	require.Equal(t, 2, s.AnimationCount())

	s.Remove("mobile")
	assert.Zero(t, s.AnimationCount(), "children's registrations go with the parent")
}

func TestChildrenAreNotAddressableByName(t *testing.T) {
	s := newTestScene()
	parent := obj("snowman")
	parent.Children = []world.WorldObject{obj("head")}
	s.Create(parent)

	assert.Nil(t, s.Get("head"))
	assert.Equal(t, 1, s.Len())
	assert.Len(t, s.Get("snowman").Children, 1)
}

func TestFlatShadedCreateExpandsMesh(t *testing.T) {
	s := newTestScene()
	o := obj("crystal")
	o.Material = world.MaterialParams{FlatShading: true}
	s.Create(o)

	n := s.Get("crystal")
	require.NotNil(t, n)
	assert.Nil(t, n.Mesh.Indices, "flat shading expands to a raw triangle list")
}

func TestReplayIsIdempotent(t *testing.T) {
	s := newTestScene()
	objects := []world.WorldObject{obj("a"), obj("b"), obj("c")}

	for _, o := range objects {
		s.Create(o)
	}
	first := s.Names()
	for _, o := range objects {
		s.Create(o)
	}

	assert.Equal(t, first, s.Names())
	assert.Equal(t, 3, s.Len())
}

func TestClearEmptiesEverything(t *testing.T) {
	s := newTestScene()
	o := obj("thing")
	o.Animation = world.AnimationParams{Type: world.AnimBob}
	s.Create(o)
	s.AddTerrain(world.TerrainParams{Type: world.TerrainHills})
	s.SetEnvironment(world.EnvironmentSettings{FogEnabled: true, FogNear: f32(5)})

	s.Clear()

	assert.Zero(t, s.Len())
	assert.Zero(t, s.TerrainCount())
	assert.Zero(t, s.AnimationCount())
	assert.Equal(t, DefaultEnvironment(), s.Environment())
}

func TestAddTerrainAppends(t *testing.T) {
	s := newTestScene()
	s.AddTerrain(world.TerrainParams{Type: world.TerrainFlat})
	s.AddTerrain(world.TerrainParams{Type: world.TerrainWater})
	assert.Equal(t, 2, s.TerrainCount())
}

func TestAnimationMovesNodeOnAdvance(t *testing.T) {
	now := 0.0
	s := New(zap.NewNop(), func() float64 { return now })

	o := obj("floater")
	o.Position = world.Vec3{Y: 2}
	o.Animation = world.AnimationParams{Type: world.AnimBob, Amplitude: f32(1)}
	s.Create(o)

	now = 1.5707963 // pi/2
	s.Advance()
	assert.InDelta(t, 3.0, s.Get("floater").Position.Y, 1e-4)
}

func TestEnvironmentUpdateIsFullReplacement(t *testing.T) {
	s := newTestScene()
	night := world.Color{R: 0.05, G: 0.05, B: 0.15}
	s.SetEnvironment(world.EnvironmentSettings{SkyColor: &night, TimeOfDay: "night"})
	require.Equal(t, night, s.Environment().SkyColor)

	// A later update omitting the sky falls back to the default, it does
	// not keep the night sky.
	s.SetEnvironment(world.EnvironmentSettings{TimeOfDay: "day"})
	assert.Equal(t, defaultSkyColor, s.Environment().SkyColor)
}
