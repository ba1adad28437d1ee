package voxel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Coord identifies a chunk by integer chunk coordinates.
type Coord struct {
	X, Y, Z int
}

// Add returns the component-wise sum of two coordinates.
func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

// DistSq returns the squared Euclidean distance to another chunk coordinate.
func (c Coord) DistSq(o Coord) int {
	dx := c.X - o.X
	dy := c.Y - o.Y
	dz := c.Z - o.Z
	return dx*dx + dy*dy + dz*dz
}

// WorldOffset returns the world-space position of the chunk's origin corner.
func (c Coord) WorldOffset() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X * Size), float32(c.Y * Size), float32(c.Z * Size)}
}

// CoordFromWorld returns the coordinate of the chunk containing a world-space
// position.
func CoordFromWorld(p mgl32.Vec3) Coord {
	return Coord{
		X: floorDiv(int(math.Floor(float64(p.X()))), Size),
		Y: floorDiv(int(math.Floor(float64(p.Y()))), Size),
		Z: floorDiv(int(math.Floor(float64(p.Z()))), Size),
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
