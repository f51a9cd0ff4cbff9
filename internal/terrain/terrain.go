// Package terrain builds procedural heightfield surfaces from terrain
// descriptors. Generation is deterministic: the same type/size/height/
// segments/seed always produces the same mesh, bit for bit.
package terrain

import (
	"github.com/chewxy/math32"

	"github.com/slalter/dreamscape/internal/geometry"
	"github.com/slalter/dreamscape/internal/material"
	"github.com/slalter/dreamscape/internal/world"
)

// Defaults matching the backend schema. DefaultSeed keeps terrain
// reproducible when the descriptor omits a seed.
const (
	DefaultSeed     = 42
	defaultSize     = 100.0
	defaultHeight   = 10.0
	defaultSegments = 32
)

var defaultGroundColor = world.Color{R: 0.34, G: 0.49, B: 0.27}

// Water surface: translucent with a tight highlight.
const (
	waterOpacity   = 0.7
	waterRoughness = 0.05
)

// Terrain is a generated heightfield surface ready for the scene to adopt.
type Terrain struct {
	Type    string
	Size    float32
	Mesh    geometry.MeshData
	Surface material.Surface
}

// Generate builds a square subdivided surface for the given descriptor.
// Hills and mountains displace every vertex through a two-octave
// trigonometric field; water and flat stay level. An unknown type tag
// degrades to flat rather than failing.
func Generate(p world.TerrainParams) Terrain {
	size := world.FloatOr(p.Size, defaultSize)
	height := world.FloatOr(p.Height, defaultHeight)
	segments := int(world.IntOr(p.Segments, defaultSegments))
	color := world.ColorOr(p.Color, defaultGroundColor)
	seed := float32(DefaultSeed)
	if p.Seed != nil {
		seed = float32(*p.Seed)
	}

	mesh := geometry.Grid(size, size, segments)

	kind := p.Type
	switch kind {
	case world.TerrainFlat, world.TerrainHills, world.TerrainMountains, world.TerrainWater:
	default:
		kind = world.TerrainFlat
	}

	switch kind {
	case world.TerrainHills:
		displace(&mesh, height*0.5, seed)
	case world.TerrainMountains:
		displace(&mesh, height, seed)
		// Faceted shading makes the ridges read as rock.
		mesh = geometry.Flatten(mesh)
	}

	roughness := float32(1)
	mp := world.MaterialParams{Color: &color, Roughness: &roughness}
	if kind == world.TerrainWater {
		wr := float32(waterRoughness)
		wo := float32(waterOpacity)
		mp.Roughness = &wr
		mp.Opacity = &wo
		mp.Transparent = true
	}
	if kind == world.TerrainMountains {
		mp.FlatShading = true
	}

	return Terrain{
		Type:    kind,
		Size:    size,
		Mesh:    mesh,
		Surface: material.Resolve(mp),
	}
}

// displace raises every vertex by a two-octave trigonometric field of its
// world x/z position, then recomputes the surface normals.
func displace(m *geometry.MeshData, maxHeight, seed float32) {
	for i := 0; i < len(m.Positions); i += 3 {
		x, z := m.Positions[i], m.Positions[i+2]
		h := math32.Sin(x*0.05+seed)*math32.Cos(z*0.05+seed)*maxHeight +
			math32.Sin(x*0.1+2*seed)*math32.Cos(z*0.08+2*seed)*maxHeight*0.5
		m.Positions[i+1] = h
	}
	m.Normals = geometry.ComputeNormals(m.Positions, m.Indices)
}
