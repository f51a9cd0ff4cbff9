package geometry

import "github.com/chewxy/math32"

// Box returns a w x h x d box centered at the origin, 4 vertices per face so
// each face has hard normals and its own uv quad.
func Box(w, h, d float32) MeshData {
	hx, hy, hz := w*0.5, h*0.5, d*0.5

	// Six faces: +X -X +Y -Y +Z -Z. Each row is origin corner, edge u, edge v, normal.
	faces := [6][4][3]float32{
		{{hx, -hy, -hz}, {0, 0, 2 * hz}, {0, 2 * hy, 0}, {1, 0, 0}},
		{{-hx, -hy, hz}, {0, 0, -2 * hz}, {0, 2 * hy, 0}, {-1, 0, 0}},
		{{-hx, hy, hz}, {2 * hx, 0, 0}, {0, 0, -2 * hz}, {0, 1, 0}},
		{{-hx, -hy, -hz}, {2 * hx, 0, 0}, {0, 0, 2 * hz}, {0, -1, 0}},
		{{-hx, -hy, hz}, {2 * hx, 0, 0}, {0, 2 * hy, 0}, {0, 0, 1}},
		{{hx, -hy, -hz}, {-2 * hx, 0, 0}, {0, 2 * hy, 0}, {0, 0, -1}},
	}

	m := MeshData{
		Positions: make([]float32, 0, 6*4*3),
		Normals:   make([]float32, 0, 6*4*3),
		UVs:       make([]float32, 0, 6*4*2),
		Indices:   make([]uint16, 0, 6*6),
	}
	for _, f := range faces {
		base := uint16(m.VertexCount())
		origin, eu, ev, n := f[0], f[1], f[2], f[3]
		for _, c := range [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}} {
			m.Positions = append(m.Positions,
				origin[0]+eu[0]*c[0]+ev[0]*c[1],
				origin[1]+eu[1]*c[0]+ev[1]*c[1],
				origin[2]+eu[2]*c[0]+ev[2]*c[1],
			)
			m.Normals = append(m.Normals, n[0], n[1], n[2])
			m.UVs = append(m.UVs, c[0], c[1])
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// Sphere returns a latitude/longitude sphere of the given radius.
// widthSegs is the slice count around the equator, heightSegs the ring count
// from pole to pole.
func Sphere(radius float32, widthSegs, heightSegs int) MeshData {
	m := MeshData{
		Positions: make([]float32, 0, (widthSegs+1)*(heightSegs+1)*3),
		Normals:   make([]float32, 0, (widthSegs+1)*(heightSegs+1)*3),
		UVs:       make([]float32, 0, (widthSegs+1)*(heightSegs+1)*2),
	}
	for iy := 0; iy <= heightSegs; iy++ {
		v := float32(iy) / float32(heightSegs)
		theta := v * math32.Pi // 0 at top pole, pi at bottom
		sinT, cosT := math32.Sincos(theta)
		for ix := 0; ix <= widthSegs; ix++ {
			u := float32(ix) / float32(widthSegs)
			phi := u * 2 * math32.Pi
			sinP, cosP := math32.Sincos(phi)
			nx, ny, nz := cosP*sinT, cosT, sinP*sinT
			m.Positions = append(m.Positions, nx*radius, ny*radius, nz*radius)
			m.Normals = append(m.Normals, nx, ny, nz)
			m.UVs = append(m.UVs, u, v)
		}
	}
	stride := widthSegs + 1
	for iy := 0; iy < heightSegs; iy++ {
		for ix := 0; ix < widthSegs; ix++ {
			a := uint16(iy*stride + ix)
			b := uint16((iy+1)*stride + ix)
			m.Indices = append(m.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return m
}

// Cylinder returns a capped cylinder centered at the origin with its axis
// along Y, tapering from radiusBottom at -h/2 to radiusTop at +h/2.
// radiusTop of zero produces a cone (no top cap).
func Cylinder(radiusTop, radiusBottom, height float32, radialSegs int) MeshData {
	var m MeshData
	hy := height * 0.5

	// Side wall. Normals tilt with the taper so cones shade correctly.
	slope := (radiusBottom - radiusTop) / height
	for i := 0; i <= radialSegs; i++ {
		u := float32(i) / float32(radialSegs)
		sinA, cosA := math32.Sincos(u * 2 * math32.Pi)
		nx, ny, nz := cosA, slope, sinA
		inv := 1 / math32.Sqrt(nx*nx+ny*ny+nz*nz)
		nx, ny, nz = nx*inv, ny*inv, nz*inv

		m.Positions = append(m.Positions, cosA*radiusBottom, -hy, sinA*radiusBottom)
		m.Normals = append(m.Normals, nx, ny, nz)
		m.UVs = append(m.UVs, u, 0)

		m.Positions = append(m.Positions, cosA*radiusTop, hy, sinA*radiusTop)
		m.Normals = append(m.Normals, nx, ny, nz)
		m.UVs = append(m.UVs, u, 1)
	}
	for i := 0; i < radialSegs; i++ {
		a := uint16(i * 2)
		m.Indices = append(m.Indices, a, a+1, a+2, a+2, a+1, a+3)
	}

	appendCap := func(radius, y, ny float32) {
		if radius <= 0 {
			return
		}
		center := uint16(m.VertexCount())
		m.Positions = append(m.Positions, 0, y, 0)
		m.Normals = append(m.Normals, 0, ny, 0)
		m.UVs = append(m.UVs, 0.5, 0.5)
		for i := 0; i <= radialSegs; i++ {
			sinA, cosA := math32.Sincos(float32(i) / float32(radialSegs) * 2 * math32.Pi)
			m.Positions = append(m.Positions, cosA*radius, y, sinA*radius)
			m.Normals = append(m.Normals, 0, ny, 0)
			m.UVs = append(m.UVs, cosA*0.5+0.5, sinA*0.5+0.5)
		}
		for i := 0; i < radialSegs; i++ {
			a := center + 1 + uint16(i)
			if ny > 0 {
				m.Indices = append(m.Indices, center, a+1, a)
			} else {
				m.Indices = append(m.Indices, center, a, a+1)
			}
		}
	}
	appendCap(radiusBottom, -hy, -1)
	appendCap(radiusTop, hy, 1)
	return m
}

// Torus returns a torus in the XZ plane: ring radius around the Y axis,
// tube radius around the ring.
func Torus(radius, tube float32, radialSegs, tubularSegs int) MeshData {
	var m MeshData
	for j := 0; j <= radialSegs; j++ {
		v := float32(j) / float32(radialSegs) * 2 * math32.Pi
		sinV, cosV := math32.Sincos(v)
		for i := 0; i <= tubularSegs; i++ {
			u := float32(i) / float32(tubularSegs) * 2 * math32.Pi
			sinU, cosU := math32.Sincos(u)

			cx, cz := cosU*radius, sinU*radius
			m.Positions = append(m.Positions,
				cosU*(radius+tube*cosV),
				tube*sinV,
				sinU*(radius+tube*cosV),
			)
			nx := m.Positions[len(m.Positions)-3] - cx
			ny := m.Positions[len(m.Positions)-2]
			nz := m.Positions[len(m.Positions)-1] - cz
			inv := 1 / math32.Sqrt(nx*nx+ny*ny+nz*nz)
			m.Normals = append(m.Normals, nx*inv, ny*inv, nz*inv)
			m.UVs = append(m.UVs, float32(i)/float32(tubularSegs), float32(j)/float32(radialSegs))
		}
	}
	stride := tubularSegs + 1
	for j := 0; j < radialSegs; j++ {
		for i := 0; i < tubularSegs; i++ {
			a := uint16(j*stride + i)
			b := uint16((j+1)*stride + i)
			m.Indices = append(m.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return m
}

// Plane returns a single w x d quad on the XZ plane facing +Y, centered at
// the origin.
func Plane(w, d float32) MeshData {
	return Grid(w, d, 1)
}

// Grid returns a w x d surface on the XZ plane facing +Y, centered at the
// origin and subdivided into segments x segments quads. The terrain
// generator displaces its vertices in place.
func Grid(w, d float32, segments int) MeshData {
	if segments < 1 {
		segments = 1
	}
	// Clamp subdivision so the vertex count stays within 16-bit indices.
	for (segments+1)*(segments+1) > maxVertices {
		segments /= 2
	}
	m := MeshData{
		Positions: make([]float32, 0, (segments+1)*(segments+1)*3),
		Normals:   make([]float32, 0, (segments+1)*(segments+1)*3),
		UVs:       make([]float32, 0, (segments+1)*(segments+1)*2),
		Indices:   make([]uint16, 0, segments*segments*6),
	}
	for iz := 0; iz <= segments; iz++ {
		tz := float32(iz) / float32(segments)
		for ix := 0; ix <= segments; ix++ {
			tx := float32(ix) / float32(segments)
			m.Positions = append(m.Positions, (tx-0.5)*w, 0, (tz-0.5)*d)
			m.Normals = append(m.Normals, 0, 1, 0)
			m.UVs = append(m.UVs, tx, tz)
		}
	}
	stride := segments + 1
	for iz := 0; iz < segments; iz++ {
		for ix := 0; ix < segments; ix++ {
			a := uint16(iz*stride + ix)
			b := uint16((iz+1)*stride + ix)
			m.Indices = append(m.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return m
}
