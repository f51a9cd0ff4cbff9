package scene

import (
	"github.com/slalter/dreamscape/internal/geometry"
	"github.com/slalter/dreamscape/internal/material"
	"github.com/slalter/dreamscape/internal/world"
)

// Node is the live representation of a WorldObject: a mesh buffer, a
// resolved surface, and a transform. Children are owned substructures in
// parent-local space; they are not tracked in the scene registry and are
// disposed with their parent. GPU state is attached lazily on first draw.
type Node struct {
	Name        string
	Description string

	Position world.Vec3
	Rotation world.Vec3 // Euler angles, radians
	Scale    world.Vec3

	// BasePosition is the position recorded when the node's animation was
	// registered; bob and orbit offsets are relative to it.
	BasePosition world.Vec3

	Mesh    geometry.MeshData
	Surface material.Surface

	// Physics is carried for round-tripping but not simulated.
	Physics   world.PhysicsParams
	Animation world.AnimationParams
	Tags      []string

	Children []*Node

	gpu *gpuMesh
}

// SetPosition moves the node in parent-local space. Implements the
// animation scheduler's target interface.
func (n *Node) SetPosition(v world.Vec3) { n.Position = v }

// SetRotation sets the node's Euler rotation in radians.
func (n *Node) SetRotation(v world.Vec3) { n.Rotation = v }

// walk visits the node and every descendant, depth first.
func (n *Node) walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.walk(visit)
	}
}
