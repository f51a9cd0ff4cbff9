// Package animation drives time-based transforms for scene nodes.
// Registrations live exactly as long as their owning node: the scene
// deregisters them synchronously when it removes a node.
package animation

import (
	"github.com/chewxy/math32"

	"github.com/slalter/dreamscape/internal/world"
)

// defaultOrbitRadius is used when an orbit animation has zero amplitude.
const defaultOrbitRadius = 2.0

// Clock is a monotonic elapsed-time source in seconds, independent of
// wall-clock time. Animation phase is computed against it.
type Clock func() float64

// Target is a node the scheduler can move. Rotation is Euler angles in
// radians, position is in parent-local space.
type Target interface {
	SetPosition(world.Vec3)
	SetRotation(world.Vec3)
}

type registration struct {
	target Target
	kind   string
	speed  float32
	axis   world.Vec3
	amp    float32
	start  float64
	base   world.Vec3
}

// Scheduler holds active animation registrations and applies them each tick.
// Not safe for concurrent use; the render loop owns it.
type Scheduler struct {
	now  Clock
	regs []registration
}

// NewScheduler returns a scheduler reading time from now.
func NewScheduler(now Clock) *Scheduler {
	return &Scheduler{now: now}
}

// Register adds an animation for target starting at the scheduler's current
// time, with base as the target's position at registration. Descriptors with
// kind "none" (or an unknown tag) are ignored. Registering the same target
// again resets its phase: the animation restarts from now.
func (s *Scheduler) Register(target Target, p world.AnimationParams, base world.Vec3) {
	kind := p.Kind()
	if kind == world.AnimNone {
		return
	}
	s.Deregister(target)
	s.regs = append(s.regs, registration{
		target: target,
		kind:   kind,
		speed:  world.FloatOr(p.Speed, 1),
		axis:   world.Vec3Or(p.Axis, world.Vec3{Y: 1}),
		amp:    world.FloatOr(p.Amplitude, 1),
		start:  s.now(),
		base:   base,
	})
}

// Deregister removes any registration owned by target. Safe to call for
// targets that were never registered.
func (s *Scheduler) Deregister(target Target) {
	kept := s.regs[:0]
	for _, r := range s.regs {
		if r.target != target {
			kept = append(kept, r)
		}
	}
	// Clear the tail so removed targets are not pinned.
	for i := len(kept); i < len(s.regs); i++ {
		s.regs[i] = registration{}
	}
	s.regs = kept
}

// Reset drops every registration. Used when the whole scene is cleared.
func (s *Scheduler) Reset() {
	s.regs = nil
}

// Len returns the number of active registrations.
func (s *Scheduler) Len() int {
	return len(s.regs)
}

// Advance applies every registration at the scheduler's current time.
// Animations never terminate on their own; they run until deregistered.
func (s *Scheduler) Advance() {
	now := s.now()
	for _, r := range s.regs {
		t := float32(now-r.start) * r.speed
		switch r.kind {
		case world.AnimRotate:
			r.target.SetRotation(world.Vec3{
				X: r.axis.X * t,
				Y: r.axis.Y * t,
				Z: r.axis.Z * t,
			})
		case world.AnimBob:
			r.target.SetPosition(world.Vec3{
				X: r.base.X,
				Y: r.base.Y + math32.Sin(t)*r.amp,
				Z: r.base.Z,
			})
		case world.AnimOrbit:
			radius := r.amp
			if radius == 0 {
				radius = defaultOrbitRadius
			}
			r.target.SetPosition(world.Vec3{
				X: r.base.X + math32.Cos(t)*radius,
				Y: r.base.Y,
				Z: r.base.Z + math32.Sin(t)*radius,
			})
		}
	}
}
