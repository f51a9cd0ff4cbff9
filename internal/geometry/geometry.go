// Package geometry builds CPU-side mesh buffers from geometry descriptors.
// Everything here is pure: descriptors go in, flat vertex arrays come out.
// GPU upload happens later, in the scene's draw path, so meshes can be built
// and inspected without a window.
package geometry

// MeshData is a renderable mesh buffer: flat xyz positions, matching flat
// normals, optional uv pairs, and triangle indices. Indices may be nil for
// non-indexed meshes (e.g. after flat-shading expansion).
type MeshData struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint16
}

// VertexCount returns the number of vertices.
func (m MeshData) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m MeshData) TriangleCount() int {
	if m.Indices != nil {
		return len(m.Indices) / 3
	}
	return m.VertexCount() / 3
}

// Default dimensions for parametric shapes. A box with no fields is the unit
// cube; a sphere with no fields has radius 0.5 with 32x16 segments, so its
// diameter matches the cube's side.
const (
	defaultBoxSide        = 1.0
	defaultSphereRadius   = 0.5
	defaultSphereWidthSeg = 32
	defaultSphereHeightSeg = 16
	defaultCylinderRadius = 0.5
	defaultCylinderHeight = 1.0
	defaultRadialSegments = 32
	defaultTorusRadius    = 0.5
	defaultTorusTube      = 0.2
	defaultTorusRadialSeg = 16
	defaultTorusTubularSeg = 32
	defaultPlaneSide      = 1.0
)

// maxVertices is the most vertices a mesh may carry with 16-bit indices.
const maxVertices = 1 << 16

// clampSegments bounds a segment count, guarding against zero or negative
// counts in malformed descriptors and against subdivision so fine that the
// vertex count would overflow 16-bit indices.
func clampSegments(n, min, max int32) int {
	if n < min {
		n = min
	}
	if n > max {
		n = max
	}
	return int(n)
}
