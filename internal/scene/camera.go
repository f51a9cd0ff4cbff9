package scene

import (
	"github.com/chewxy/math32"

	"github.com/slalter/dreamscape/internal/world"
)

// Camera defaults: eye height 1.7 world units, 75 degree vertical FOV.
const (
	defaultEyeHeight = 1.7
	defaultFovY      = 75.0
	// pitchLimit keeps the view off the exact poles so the look vector never
	// degenerates.
	pitchLimit = math32.Pi/2 - 0.001
)

// Camera is a first-person rig: a position plus yaw/pitch angles in radians.
// Yaw 0 faces -Z; positive yaw turns right, positive pitch looks up. All of
// the math here is CPU-side; the draw path converts to a raylib camera per
// frame.
type Camera struct {
	Position world.Vec3
	Yaw      float32
	Pitch    float32
	FovY     float32
}

// NewCamera returns a camera at the origin at eye height, facing -Z.
func NewCamera() Camera {
	return Camera{
		Position: world.Vec3{Y: defaultEyeHeight},
		FovY:     defaultFovY,
	}
}

// Rotate applies a look delta and clamps pitch short of straight up/down.
func (c *Camera) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}
}

// Forward returns the unit view direction.
func (c *Camera) Forward() world.Vec3 {
	sy, cy := math32.Sincos(c.Yaw)
	sp, cp := math32.Sincos(c.Pitch)
	return world.Vec3{X: cp * sy, Y: sp, Z: -cp * cy}
}

// Right returns the unit strafe direction, always horizontal.
func (c *Camera) Right() world.Vec3 {
	sy, cy := math32.Sincos(c.Yaw)
	return world.Vec3{X: cy, Z: sy}
}

// Target returns the point one unit ahead of the camera along its view
// direction.
func (c *Camera) Target() world.Vec3 {
	f := c.Forward()
	return world.Vec3{X: c.Position.X + f.X, Y: c.Position.Y + f.Y, Z: c.Position.Z + f.Z}
}

// Move translates the camera in the ground plane. forward/strafe are input
// axes in [-1, 1]; movement ignores pitch so looking down does not slow
// walking, and diagonal input is normalized so it is no faster than a
// single axis.
func (c *Camera) Move(forward, strafe, speed, dt float32) {
	sy, cy := math32.Sincos(c.Yaw)
	// Horizontal basis vectors only.
	dx := sy*forward + cy*strafe
	dz := -cy*forward + sy*strafe
	if mag := math32.Hypot(dx, dz); mag > 1 {
		dx /= mag
		dz /= mag
	}
	c.Position.X += dx * speed * dt
	c.Position.Z += dz * speed * dt
}
