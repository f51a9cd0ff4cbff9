package geometry

import "github.com/chewxy/math32"

// Custom builds a mesh from flat vertex/index arrays. Normals are computed
// from the triangle topology when not supplied; uvs are carried through only
// when present. Returns ok=false when the arrays cannot form a valid mesh,
// in which case the caller substitutes a default shape.
func Custom(vertices []float32, indices []int32, normals, uvs []float32) (MeshData, bool) {
	if len(vertices) == 0 || len(vertices)%3 != 0 {
		return MeshData{}, false
	}
	vertexCount := len(vertices) / 3
	if vertexCount > maxVertices {
		return MeshData{}, false
	}

	var idx []uint16
	if len(indices) > 0 {
		if len(indices)%3 != 0 {
			return MeshData{}, false
		}
		idx = make([]uint16, len(indices))
		for i, v := range indices {
			if v < 0 || int(v) >= vertexCount {
				return MeshData{}, false
			}
			idx[i] = uint16(v)
		}
	} else {
		// No indices: vertices are taken as a raw triangle list.
		if vertexCount%3 != 0 {
			return MeshData{}, false
		}
	}

	m := MeshData{
		Positions: append([]float32(nil), vertices...),
		Indices:   idx,
	}
	if len(normals) == len(vertices) {
		m.Normals = append([]float32(nil), normals...)
	} else {
		m.Normals = ComputeNormals(m.Positions, m.Indices)
	}
	if len(uvs) == vertexCount*2 {
		m.UVs = append([]float32(nil), uvs...)
	}
	return m, true
}

// ComputeNormals returns smooth per-vertex normals: the area-weighted
// average of the face normals of every triangle touching each vertex.
// indices may be nil for a raw triangle list.
func ComputeNormals(positions []float32, indices []uint16) []float32 {
	normals := make([]float32, len(positions))
	triangles := len(indices) / 3
	if indices == nil {
		triangles = len(positions) / 9
	}
	vertexAt := func(tri, corner int) int {
		if indices != nil {
			return int(indices[tri*3+corner])
		}
		return tri*3 + corner
	}
	for t := 0; t < triangles; t++ {
		a, b, c := vertexAt(t, 0), vertexAt(t, 1), vertexAt(t, 2)
		ax, ay, az := positions[a*3], positions[a*3+1], positions[a*3+2]
		ux, uy, uz := positions[b*3]-ax, positions[b*3+1]-ay, positions[b*3+2]-az
		vx, vy, vz := positions[c*3]-ax, positions[c*3+1]-ay, positions[c*3+2]-az
		// Cross product; magnitude carries the area weighting.
		nx := uy*vz - uz*vy
		ny := uz*vx - ux*vz
		nz := ux*vy - uy*vx
		for _, i := range [3]int{a, b, c} {
			normals[i*3] += nx
			normals[i*3+1] += ny
			normals[i*3+2] += nz
		}
	}
	for i := 0; i < len(normals); i += 3 {
		l := math32.Sqrt(normals[i]*normals[i] + normals[i+1]*normals[i+1] + normals[i+2]*normals[i+2])
		if l > 0 {
			normals[i] /= l
			normals[i+1] /= l
			normals[i+2] /= l
		} else {
			normals[i+1] = 1 // degenerate vertex: point up
		}
	}
	return normals
}

// Flatten expands an indexed mesh into a raw triangle list with one normal
// per face, producing faceted shading. Meshes that are already non-indexed
// get their normals recomputed per face in place.
func Flatten(m MeshData) MeshData {
	if m.Indices == nil {
		m.Normals = faceNormals(m.Positions)
		return m
	}
	out := MeshData{
		Positions: make([]float32, 0, len(m.Indices)*3),
	}
	hasUV := len(m.UVs) == m.VertexCount()*2
	if hasUV {
		out.UVs = make([]float32, 0, len(m.Indices)*2)
	}
	for _, idx := range m.Indices {
		i := int(idx)
		out.Positions = append(out.Positions, m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2])
		if hasUV {
			out.UVs = append(out.UVs, m.UVs[i*2], m.UVs[i*2+1])
		}
	}
	out.Normals = faceNormals(out.Positions)
	return out
}

// faceNormals computes one normal per triangle of a raw triangle list,
// repeated for each of its three vertices.
func faceNormals(positions []float32) []float32 {
	normals := make([]float32, len(positions))
	for t := 0; t < len(positions)/9; t++ {
		base := t * 9
		ax, ay, az := positions[base], positions[base+1], positions[base+2]
		ux, uy, uz := positions[base+3]-ax, positions[base+4]-ay, positions[base+5]-az
		vx, vy, vz := positions[base+6]-ax, positions[base+7]-ay, positions[base+8]-az
		nx := uy*vz - uz*vy
		ny := uz*vx - ux*vz
		nz := ux*vy - uy*vx
		l := math32.Sqrt(nx*nx + ny*ny + nz*nz)
		if l > 0 {
			nx, ny, nz = nx/l, ny/l, nz/l
		} else {
			ny = 1
		}
		for c := 0; c < 3; c++ {
			normals[base+c*3] = nx
			normals[base+c*3+1] = ny
			normals[base+c*3+2] = nz
		}
	}
	return normals
}
