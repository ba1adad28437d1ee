package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a free-flying camera. Yaw and pitch are in degrees; pitch is
// clamped just short of vertical so the view matrix never degenerates.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32

	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	MoveSpeed   float32
	Sensitivity float32
}

// NewCamera creates a camera for the given viewport.
func NewCamera(width, height int, fov float32) *Camera {
	return &Camera{
		Position:    mgl32.Vec3{0, 40, 0},
		Yaw:         -90,
		FOV:         fov,
		AspectRatio: float32(width) / float32(height),
		NearPlane:   0.1,
		FarPlane:    1000,
		MoveSpeed:   40,
		Sensitivity: 0.1,
	}
}

// SetViewport updates the aspect ratio after a window resize.
func (c *Camera) SetViewport(width, height int) {
	if height > 0 {
		c.AspectRatio = float32(width) / float32(height)
	}
}

// Forward returns the unit view direction.
func (c *Camera) Forward() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	return mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

// Right returns the unit vector to the camera's right.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Forward().Cross(mgl32.Vec3{0, 1, 0}).Normalize()
}

// Look rotates the camera by a mouse delta in pixels.
func (c *Camera) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch -= dy * c.Sensitivity
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// Move translates the camera along a direction in camera space: X right,
// Y up, Z forward. The direction is scaled by MoveSpeed and dt.
func (c *Camera) Move(dir mgl32.Vec3, dt float32) {
	if dir.Len() == 0 {
		return
	}
	step := dir.Normalize().Mul(c.MoveSpeed * dt)
	c.Position = c.Position.
		Add(c.Right().Mul(step.X())).
		Add(mgl32.Vec3{0, step.Y(), 0}).
		Add(c.Forward().Mul(step.Z()))
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}
