// Package scene owns the authoritative in-memory scene graph: the mapping
// from object names to live render nodes, the terrain surfaces, the global
// environment, the first-person camera, and the animation schedule.
//
// The store is deliberately free of GPU calls. Meshes are built and mutated
// as CPU buffers and uploaded lazily on first draw (after the window and GL
// context exist), so every mutation path can run headless under test.
package scene

import (
	"sort"

	"go.uber.org/zap"

	"github.com/slalter/dreamscape/internal/animation"
	"github.com/slalter/dreamscape/internal/geometry"
	"github.com/slalter/dreamscape/internal/material"
	"github.com/slalter/dreamscape/internal/terrain"
	"github.com/slalter/dreamscape/internal/world"
)

// Scene is one session's render state. It is owned by the render loop and
// mutated only between frames, so it needs no locking.
type Scene struct {
	log   *zap.Logger
	sched *animation.Scheduler

	nodes    map[string]*Node
	order    []*Node // insertion order, for deterministic draw order
	terrains []*terrainEntry

	env    Environment
	Camera Camera

	GridVisible bool

	shader *litShader
}

type terrainEntry struct {
	data terrain.Terrain
	gpu  *gpuMesh
}

// New returns an empty scene. clock feeds the animation scheduler; it must
// be monotonic (e.g. seconds since startup).
func New(log *zap.Logger, clock animation.Clock) *Scene {
	return &Scene{
		log:         log,
		sched:       animation.NewScheduler(clock),
		nodes:       make(map[string]*Node),
		env:         DefaultEnvironment(),
		Camera:      NewCamera(),
		GridVisible: true,
	}
}

// Create builds a render node for obj and inserts it under obj.Name,
// registering any animations on the node and its children. A colliding name
// replaces the existing node: the old node is disposed first and the
// replacement is logged, so a confused upstream generation cannot strand
// stale geometry or leak animation registrations.
func (s *Scene) Create(obj world.WorldObject) {
	if obj.Name == "" {
		s.log.Warn("dropping object create with empty name")
		return
	}
	if old, ok := s.nodes[obj.Name]; ok {
		s.log.Warn("object name collision, replacing existing node", zap.String("name", obj.Name))
		s.removeNode(old)
	}
	n := s.buildNode(obj)
	s.nodes[obj.Name] = n
	s.order = append(s.order, n)
	s.log.Info("object created",
		zap.String("name", obj.Name),
		zap.String("geometry", obj.Geometry.Type),
		zap.Int("children", len(n.Children)))
}

// Modify updates the node named obj.Name in place: the transform is
// overwritten and the surface is re-resolved. Geometry and animation
// registrations are left untouched; a modify is the cheap path for "it
// moved or changed color". Unknown names are a no-op.
func (s *Scene) Modify(obj world.WorldObject) {
	n, ok := s.nodes[obj.Name]
	if !ok {
		s.log.Debug("modify for unknown object ignored", zap.String("name", obj.Name))
		return
	}
	n.Position = obj.Position
	n.Rotation = obj.Rotation
	n.Scale = obj.EffectiveScale()
	n.Surface = material.Resolve(obj.Material)
	s.log.Info("object modified", zap.String("name", obj.Name))
}

// Remove detaches and disposes the node with the given name, its children,
// and all of their animation registrations, synchronously. Unknown names
// are a no-op.
func (s *Scene) Remove(name string) {
	n, ok := s.nodes[name]
	if !ok {
		s.log.Debug("remove for unknown object ignored", zap.String("name", name))
		return
	}
	s.removeNode(n)
	s.log.Info("object removed", zap.String("name", name))
}

// Clear empties the scene: all nodes, terrain, and animation registrations
// are dropped and the environment returns to defaults. Called when the
// backend replays a fresh world state at session start.
func (s *Scene) Clear() {
	for _, n := range s.order {
		n.walk(func(c *Node) {
			s.disposeGPU(c)
		})
	}
	for _, t := range s.terrains {
		s.disposeTerrainGPU(t)
	}
	s.nodes = make(map[string]*Node)
	s.order = nil
	s.terrains = nil
	s.sched.Reset()
	s.env = DefaultEnvironment()
	s.log.Info("scene cleared")
}

// AddTerrain generates a terrain surface and adds it to the scene. Terrain
// has no name; it cannot be modified or removed except by clearing the
// whole scene.
func (s *Scene) AddTerrain(p world.TerrainParams) {
	t := terrain.Generate(p)
	s.terrains = append(s.terrains, &terrainEntry{data: t})
	s.log.Info("terrain created",
		zap.String("type", t.Type),
		zap.Float32("size", t.Size),
		zap.Int("vertices", t.Mesh.VertexCount()))
}

// SetEnvironment replaces the whole environment configuration. Partial
// updates are resolved against defaults, never merged with the previous
// state.
func (s *Scene) SetEnvironment(e world.EnvironmentSettings) {
	s.env = ResolveEnvironment(e)
	s.log.Info("environment updated", zap.String("time_of_day", s.env.TimeOfDay))
}

// Environment returns the currently applied environment state.
func (s *Scene) Environment() Environment {
	return s.env
}

// Advance applies all scheduled animations at the scheduler's current time.
// Called once per render tick, before the frame is submitted.
func (s *Scene) Advance() {
	s.sched.Advance()
}

// Get returns the live node for name, or nil.
func (s *Scene) Get(name string) *Node {
	return s.nodes[name]
}

// Len returns the number of named nodes in the scene (children excluded).
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Names returns the sorted names of all live nodes.
func (s *Scene) Names() []string {
	names := make([]string, 0, len(s.nodes))
	for name := range s.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TerrainCount returns the number of terrain surfaces in the scene.
func (s *Scene) TerrainCount() int {
	return len(s.terrains)
}

// AnimationCount returns the number of active animation registrations.
func (s *Scene) AnimationCount() int {
	return s.sched.Len()
}

// buildNode constructs a node (and its children, recursively) from a
// descriptor and registers its animation. Malformed geometry degrades to a
// default shape inside geometry.Build; it never fails the create.
func (s *Scene) buildNode(obj world.WorldObject) *Node {
	surface := material.Resolve(obj.Material)
	mesh := geometry.Build(obj.Geometry)
	if surface.FlatShading {
		mesh = geometry.Flatten(mesh)
	}
	n := &Node{
		Name:         obj.Name,
		Description:  obj.Description,
		Position:     obj.Position,
		Rotation:     obj.Rotation,
		Scale:        obj.EffectiveScale(),
		BasePosition: obj.Position,
		Mesh:         mesh,
		Surface:      surface,
		Physics:      obj.Physics,
		Animation:    obj.Animation,
		Tags:         obj.Tags,
	}
	s.sched.Register(n, obj.Animation, obj.Position)
	for _, c := range obj.Children {
		n.Children = append(n.Children, s.buildNode(c))
	}
	return n
}

// removeNode detaches n from the registry and draw order and disposes the
// node and all descendants, deregistering their animations immediately.
func (s *Scene) removeNode(n *Node) {
	delete(s.nodes, n.Name)
	for i, o := range s.order {
		if o == n {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	n.walk(func(c *Node) {
		s.sched.Deregister(c)
		s.disposeGPU(c)
	})
}
