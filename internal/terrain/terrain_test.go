package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slalter/dreamscape/internal/world"
)

func f32(v float32) *float32 { return &v }
func i32(v int32) *int32     { return &v }
func i64(v int64) *int64     { return &v }

func TestHillsAreReproducible(t *testing.T) {
	p := world.TerrainParams{
		Type:     world.TerrainHills,
		Size:     f32(50),
		Height:   f32(8),
		Segments: i32(16),
		Seed:     i64(7),
	}
	a := Generate(p)
	b := Generate(p)
	assert.Equal(t, a.Mesh, b.Mesh, "identical params must produce identical heightfields")
}

func TestOmittedSeedEqualsDefaultSeed(t *testing.T) {
	withDefault := Generate(world.TerrainParams{Type: world.TerrainHills, Seed: i64(DefaultSeed)})
	without := Generate(world.TerrainParams{Type: world.TerrainHills})
	assert.Equal(t, withDefault.Mesh, without.Mesh)
}

func TestMountainsDisplaceTwiceAsFarAsHills(t *testing.T) {
	hills := Generate(world.TerrainParams{Type: world.TerrainHills, Height: f32(10), Seed: i64(3)})
	mountains := Generate(world.TerrainParams{Type: world.TerrainMountains, Height: f32(10), Seed: i64(3)})

	assert.Greater(t, peak(mountains), peak(hills))
	assert.InDelta(t, 2*peak(hills), peak(mountains), 1e-3)
}

func TestFlatAndWaterStayLevel(t *testing.T) {
	for _, kind := range []string{world.TerrainFlat, world.TerrainWater} {
		tr := Generate(world.TerrainParams{Type: kind, Height: f32(20)})
		for i := 1; i < len(tr.Mesh.Positions); i += 3 {
			require.Zero(t, tr.Mesh.Positions[i], "type %s must not displace", kind)
		}
	}
}

func TestWaterSurfaceIsTranslucent(t *testing.T) {
	tr := Generate(world.TerrainParams{Type: world.TerrainWater})
	assert.True(t, tr.Surface.Transparent)
	assert.InDelta(t, waterOpacity, tr.Surface.Alpha, 1e-5)
	assert.InDelta(t, waterRoughness, tr.Surface.Roughness, 1e-5)
}

func TestMountainsAreFlatShaded(t *testing.T) {
	tr := Generate(world.TerrainParams{Type: world.TerrainMountains})
	assert.True(t, tr.Surface.FlatShading)
	assert.Nil(t, tr.Mesh.Indices, "faceted mesh is expanded to a raw triangle list")
}

func TestUnknownTypeDegradesToFlat(t *testing.T) {
	tr := Generate(world.TerrainParams{Type: "lava"})
	assert.Equal(t, world.TerrainFlat, tr.Type)
}

func TestDefaultsApplied(t *testing.T) {
	tr := Generate(world.TerrainParams{})
	assert.Equal(t, float32(100), tr.Size)
	// 32 segments -> 33x33 grid.
	assert.Equal(t, 33*33, tr.Mesh.VertexCount())
}

// peak returns the maximum vertex height.
func peak(tr Terrain) float32 {
	max := float32(0)
	for i := 1; i < len(tr.Mesh.Positions); i += 3 {
		if h := tr.Mesh.Positions[i]; h > max {
			max = h
		}
	}
	return max
}
