package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testFrustum() Frustum {
	proj := mgl32.Perspective(mgl32.DegToRad(70), 16.0/9.0, 0.1, 500)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	return NewFrustum(proj.Mul4(view))
}

func TestFrustumBoxAhead(t *testing.T) {
	f := testFrustum()
	if !f.ContainsAABB(mgl32.Vec3{-16, -16, -64}, mgl32.Vec3{16, 16, -32}) {
		t.Error("box directly ahead should be visible")
	}
}

func TestFrustumBoxBehind(t *testing.T) {
	f := testFrustum()
	if f.ContainsAABB(mgl32.Vec3{-16, -16, 32}, mgl32.Vec3{16, 16, 64}) {
		t.Error("box behind the camera should be culled")
	}
}

func TestFrustumBoxBeyondFarPlane(t *testing.T) {
	f := testFrustum()
	if f.ContainsAABB(mgl32.Vec3{-16, -16, -700}, mgl32.Vec3{16, 16, -600}) {
		t.Error("box past the far plane should be culled")
	}
}

func TestFrustumBoxStraddlingPlane(t *testing.T) {
	f := testFrustum()
	// Straddles the near plane; the positive-vertex test keeps it.
	if !f.ContainsAABB(mgl32.Vec3{-1, -1, -2}, mgl32.Vec3{1, 1, 2}) {
		t.Error("box straddling the near plane should be visible")
	}
}

func TestFrustumBoxFarOffAxis(t *testing.T) {
	f := testFrustum()
	if f.ContainsAABB(mgl32.Vec3{400, -16, -48}, mgl32.Vec3{432, 16, -16}) {
		t.Error("box far to the side should be culled")
	}
}
