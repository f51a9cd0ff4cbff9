package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/slalter/dreamscape/internal/geometry"
	"github.com/slalter/dreamscape/internal/material"
	"github.com/slalter/dreamscape/internal/world"
)

// Editor grid appearance.
const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
)

// gpuMesh is the GPU side of a node or terrain: an uploaded raylib mesh and
// its material. Created lazily on first Draw so GPU resources are allocated
// after the window/OpenGL context exists. The CPU slices are retained so the
// buffers the mesh points into stay reachable.
type gpuMesh struct {
	mesh rl.Mesh
	mtl  rl.Material

	verts, norms, uvs []float32
	indices           []uint16
}

// uploadMesh copies the CPU buffers into a raylib mesh and uploads it. Must
// be called with a live GL context.
func (s *Scene) uploadMesh(md geometry.MeshData) *gpuMesh {
	g := &gpuMesh{
		verts:   append([]float32(nil), md.Positions...),
		norms:   append([]float32(nil), md.Normals...),
		indices: append([]uint16(nil), md.Indices...),
	}
	if len(md.UVs) > 0 {
		g.uvs = append([]float32(nil), md.UVs...)
	} else {
		g.uvs = make([]float32, md.VertexCount()*2)
	}

	g.mesh.VertexCount = int32(md.VertexCount())
	g.mesh.TriangleCount = int32(md.TriangleCount())
	g.mesh.Vertices = &g.verts[0]
	g.mesh.Normals = &g.norms[0]
	g.mesh.Texcoords = &g.uvs[0]
	if len(g.indices) > 0 {
		g.mesh.Indices = &g.indices[0]
	}
	rl.UploadMesh(&g.mesh, false)

	g.mtl = rl.LoadMaterialDefault()
	g.mtl.Shader = s.shader.shader
	return g
}

// disposeGPU releases the node's GPU mesh if one was ever uploaded. Safe to
// call headless; nodes that were never drawn carry no GPU state.
func (s *Scene) disposeGPU(n *Node) {
	if n.gpu == nil {
		return
	}
	rl.UnloadMesh(&n.gpu.mesh)
	n.gpu = nil
}

func (s *Scene) disposeTerrainGPU(t *terrainEntry) {
	if t.gpu == nil {
		return
	}
	rl.UnloadMesh(&t.gpu.mesh)
	t.gpu = nil
}

// SkyColor returns the current sky as a raylib color for the frame clear.
func (s *Scene) SkyColor() rl.Color {
	return toRGBA(s.env.SkyColor, 1)
}

// Camera3D converts the first-person rig to the raylib camera for this
// frame.
func (s *Scene) Camera3D() rl.Camera3D {
	pos := s.Camera.Position
	tgt := s.Camera.Target()
	return rl.Camera3D{
		Position:   rl.NewVector3(pos.X, pos.Y, pos.Z),
		Target:     rl.NewVector3(tgt.X, tgt.Y, tgt.Z),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       s.Camera.FovY,
		Projection: rl.CameraPerspective,
	}
}

// UpdateCameraInput applies mouse look and WASD movement for this frame.
// captured gates mouse look so the camera holds still while the input bar
// owns the cursor. Space and left shift move vertically (fly controls).
func (s *Scene) UpdateCameraInput(dt, sensitivity, moveSpeed float32, captured bool) {
	if captured {
		d := rl.GetMouseDelta()
		s.Camera.Rotate(d.X*sensitivity, -d.Y*sensitivity)
	}

	var forward, strafe float32
	if rl.IsKeyDown(rl.KeyW) {
		forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		forward--
	}
	if rl.IsKeyDown(rl.KeyD) {
		strafe++
	}
	if rl.IsKeyDown(rl.KeyA) {
		strafe--
	}
	s.Camera.Move(forward, strafe, moveSpeed, dt)

	if rl.IsKeyDown(rl.KeySpace) {
		s.Camera.Position.Y += moveSpeed * dt
	}
	if rl.IsKeyDown(rl.KeyLeftShift) {
		s.Camera.Position.Y -= moveSpeed * dt
	}
}

// Draw renders the whole scene. Must be called between BeginMode3D and
// EndMode3D. The shader loads on first call, after the window exists.
func (s *Scene) Draw() {
	if s.shader == nil {
		s.shader = loadLitShader()
	}
	pos := s.Camera.Position
	s.shader.setFrameUniforms(s.env, [3]float32{pos.X, pos.Y, pos.Z})

	if s.GridVisible {
		drawEditorGrid()
	}

	for _, t := range s.terrains {
		if t.gpu == nil {
			t.gpu = s.uploadMesh(t.data.Mesh)
		}
		s.drawSurface(t.gpu, t.data.Surface, rl.MatrixIdentity())
	}
	for _, n := range s.order {
		s.drawNode(n, rl.MatrixIdentity())
	}
}

// drawNode draws a node and its children. parentWorld carries the composed
// ancestor transform so child positions stay parent-relative.
func (s *Scene) drawNode(n *Node, parentWorld rl.Matrix) {
	local := rl.MatrixMultiply(
		rl.MatrixMultiply(
			rl.MatrixScale(n.Scale.X, n.Scale.Y, n.Scale.Z),
			rl.MatrixRotateXYZ(rl.NewVector3(n.Rotation.X, n.Rotation.Y, n.Rotation.Z)),
		),
		rl.MatrixTranslate(n.Position.X, n.Position.Y, n.Position.Z),
	)
	transform := rl.MatrixMultiply(local, parentWorld)

	if n.gpu == nil {
		n.gpu = s.uploadMesh(n.Mesh)
	}
	s.drawSurface(n.gpu, n.Surface, transform)

	for _, c := range n.Children {
		s.drawNode(c, transform)
	}
}

// drawSurface submits one uploaded mesh with its resolved surface applied.
func (s *Scene) drawSurface(g *gpuMesh, surf material.Surface, transform rl.Matrix) {
	if albedo := g.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = toRGBA(surf.Color, surf.Alpha)
	}
	emissive := [3]float32{
		surf.Emissive.R * surf.EmissiveIntensity,
		surf.Emissive.G * surf.EmissiveIntensity,
		surf.Emissive.B * surf.EmissiveIntensity,
	}
	s.shader.setSurfaceUniforms(emissive, surf.SpecularPower, surf.SpecularStrength)

	if surf.Wireframe {
		rl.EnableWireMode()
		rl.DrawMesh(g.mesh, g.mtl, transform)
		rl.DisableWireMode()
		return
	}
	rl.DrawMesh(g.mesh, g.mtl, transform)
}

// drawEditorGrid draws minor and major reference lines on the ground plane,
// with the world axes highlighted through the origin.
func drawEditorGrid() {
	minor := rl.NewColor(180, 180, 180, gridMinorAlpha)
	major := rl.NewColor(210, 210, 210, gridMajorAlpha)
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := minor
		if i%gridMajorStep == 0 {
			c = major
		}
		fi := float32(i)
		rl.DrawLine3D(rl.NewVector3(fi, 0, -gridExtent), rl.NewVector3(fi, 0, gridExtent), c)
		rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, fi), rl.NewVector3(gridExtent, 0, fi), c)
	}
	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0), rl.NewColor(220, 80, 80, 220))
	rl.DrawLine3D(rl.NewVector3(0, 0, -gridExtent), rl.NewVector3(0, 0, gridExtent), rl.NewColor(80, 80, 220, 220))
}

// toRGBA converts a linear [0,1] color plus alpha to raylib's 8-bit form.
func toRGBA(c world.Color, alpha float32) rl.Color {
	return rl.NewColor(to8(c.R), to8(c.G), to8(c.B), to8(alpha))
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
