package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// maxPitch keeps the free camera just short of straight up/down (~89°) so the
// basis never inverts.
const maxPitch = 1.55

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is a position plus a yaw/pitch-derived orthonormal basis. It is a
// plain value: copying it snapshots the full pose, which is how the mode
// controller saves and restores the free-fly pose.
type Camera struct {
	Position mgl32.Vec3

	forward mgl32.Vec3
	right   mgl32.Vec3
	up      mgl32.Vec3
	yaw     float32
	pitch   float32
}

// New returns a camera at the origin looking down -Z.
func New() *Camera {
	c := &Camera{yaw: -math32.Pi / 2}
	c.updateVectors()
	return c
}

// Forward returns the view direction.
func (c *Camera) Forward() mgl32.Vec3 { return c.forward }

// Right returns the camera-space right axis.
func (c *Camera) Right() mgl32.Vec3 { return c.right }

// Up returns the camera-space up axis.
func (c *Camera) Up() mgl32.Vec3 { return c.up }

// MoveForward translates along the view direction; negative distance moves
// backward. MoveRight and MoveUp behave the same along their axes.
func (c *Camera) MoveForward(distance float32) {
	c.Position = c.Position.Add(c.forward.Mul(distance))
}

func (c *Camera) MoveRight(distance float32) {
	c.Position = c.Position.Add(c.right.Mul(distance))
}

func (c *Camera) MoveUp(distance float32) {
	c.Position = c.Position.Add(c.up.Mul(distance))
}

// RotateYaw turns the camera left/right by angle radians.
func (c *Camera) RotateYaw(angle float32) {
	c.yaw += angle
	c.updateVectors()
}

// RotatePitch tilts the camera up/down by angle radians, clamped to maxPitch.
func (c *Camera) RotatePitch(angle float32) {
	c.pitch = mgl32.Clamp(c.pitch+angle, -maxPitch, maxPitch)
	c.updateVectors()
}

// updateVectors rebuilds the basis from yaw and pitch.
func (c *Camera) updateVectors() {
	sy, cy := math32.Sincos(c.yaw)
	sp, cp := math32.Sincos(c.pitch)
	c.forward = mgl32.Vec3{cy * cp, sp, sy * cp}.Normalize()
	c.right = c.forward.Cross(worldUp).Normalize()
	c.up = c.right.Cross(c.forward).Normalize()
}

// LookAt points the camera at target and rebuilds yaw/pitch so later
// free-fly rotation continues from the same orientation.
func (c *Camera) LookAt(target mgl32.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() < 1e-6 {
		return
	}
	c.forward = dir.Normalize()
	// A vertical target leaves no horizontal component to cross with
	// world up; keep the previous right vector in that case.
	if r := c.forward.Cross(worldUp); r.LenSqr() > 1e-6 {
		c.right = r.Normalize()
	}
	c.up = c.right.Cross(c.forward).Normalize()
	c.pitch = math32.Asin(mgl32.Clamp(c.forward.Y(), -1, 1))
	c.yaw = math32.Atan2(c.forward.Z(), c.forward.X())
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.forward), c.up)
}
