// Package camera holds the free-fly camera state the pipeline builds a
// view matrix from each frame.
package camera

import "go3drender/internal/vecmath"

// Camera is a position/orientation pair driven by yaw and pitch. Like
// the rest of the math layer it is a plain value type; callers hold it
// behind a pointer when they want mutation to be visible across the
// frame (see scene.World.Camera).
type Camera struct {
	Position        vecmath.Vec3
	Direction       vecmath.Vec3
	ForwardVelocity vecmath.Vec3
	Yaw             float32
	Pitch           float32
}

// NewCamera returns a Camera at position looking down +Z.
func NewCamera(position vecmath.Vec3) *Camera {
	c := &Camera{Position: position}
	c.updateDirection()
	return c
}

// updateDirection rederives Direction from Yaw/Pitch by rotating the
// unit vector (0,0,1) first around X by pitch, then around Y by yaw.
func (c *Camera) updateDirection() {
	c.Direction = vecmath.Vec3{0, 0, 1}.RotateX(c.Pitch).RotateY(c.Yaw)
}

// GetLookAtTarget returns Position + Direction, the point a view matrix
// should look at this frame.
func (c *Camera) GetLookAtTarget() vecmath.Vec3 {
	return c.Position.Add(c.Direction)
}

// SetPosition overwrites the camera's position outright.
func (c *Camera) SetPosition(p vecmath.Vec3) {
	c.Position = p
}

// UpdatePosition advances Position by delta (already scaled by the
// caller, typically forward_velocity * delta_time).
func (c *Camera) UpdatePosition(delta vecmath.Vec3) {
	c.Position = c.Position.Add(delta)
}

// RotateYaw adds d radians to Yaw and rederives Direction.
func (c *Camera) RotateYaw(d float32) {
	c.Yaw += d
	c.updateDirection()
}

// RotatePitch adds d radians to Pitch and rederives Direction. No
// implicit clamping; callers that want to avoid gimbal lock near the
// poles should clamp d themselves before calling.
func (c *Camera) RotatePitch(d float32) {
	c.Pitch += d
	c.updateDirection()
}

// SetForwardVelocity overwrites the scratch velocity motion commands
// scale Direction by before calling UpdatePosition.
func (c *Camera) SetForwardVelocity(v vecmath.Vec3) {
	c.ForwardVelocity = v
}
