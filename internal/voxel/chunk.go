package voxel

import "fmt"

const (
	// Size is the side length of a cubic chunk, in voxels.
	Size = 32

	// Volume is the number of cells in a chunk.
	Volume = Size * Size * Size
)

// BoundsError reports a local coordinate outside [0, Size). Callers are
// expected to stay in range; cross-chunk lookups go through neighbor chunk
// references, never through this interface.
type BoundsError struct {
	X, Y, Z int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("voxel: local coordinate (%d,%d,%d) outside [0,%d)", e.X, e.Y, e.Z, Size)
}

// Index converts local coordinates to the flat dense-storage index.
func Index(x, y, z int) int {
	return x + y*Size + z*Size*Size
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size && z >= 0 && z < Size
}

// Chunk is a Size³ cube of voxels. A chunk whose cells all hold the same
// value is kept in a compressed uniform representation; the first Set that
// breaks uniformity materializes dense storage.
//
// Chunks are immutable once handed to the streaming manager, so meshing
// workers may share them without copying.
type Chunk struct {
	uniform Voxel
	dense   []Voxel // nil while uniform
}

// NewUniform creates a chunk with every cell set to v.
func NewUniform(v Voxel) *Chunk {
	return &Chunk{uniform: v}
}

// IsUniform reports whether the chunk is in the compressed representation.
func (c *Chunk) IsUniform() bool {
	return c.dense == nil
}

// At returns the voxel at the given local coordinates.
func (c *Chunk) At(x, y, z int) (Voxel, error) {
	if !inBounds(x, y, z) {
		return Voxel{}, &BoundsError{x, y, z}
	}
	return c.AtUnchecked(x, y, z), nil
}

// AtUnchecked is At without the bounds check, for mesher and generator inner
// loops that iterate [0, Size) by construction.
func (c *Chunk) AtUnchecked(x, y, z int) Voxel {
	if c.dense == nil {
		return c.uniform
	}
	return c.dense[Index(x, y, z)]
}

// Set writes the voxel at the given local coordinates, materializing dense
// storage first if the chunk is uniform and the write would change a cell.
func (c *Chunk) Set(x, y, z int, v Voxel) error {
	if !inBounds(x, y, z) {
		return &BoundsError{x, y, z}
	}
	if c.dense == nil {
		if v == c.uniform {
			return nil
		}
		c.materialize()
	}
	c.dense[Index(x, y, z)] = v
	return nil
}

func (c *Chunk) materialize() {
	c.dense = make([]Voxel, Volume)
	if (c.uniform != Voxel{}) {
		for i := range c.dense {
			c.dense[i] = c.uniform
		}
	}
}

// Compress converts a homogeneous dense chunk back to the uniform
// representation. A no-op when the chunk is already uniform or its cells
// differ.
func (c *Chunk) Compress() {
	if c.dense == nil {
		return
	}
	first := c.dense[0]
	for _, v := range c.dense[1:] {
		if v != first {
			return
		}
	}
	c.uniform = first
	c.dense = nil
}

// Empty reports whether the chunk is uniformly air.
func (c *Chunk) Empty() bool {
	return c.dense == nil && c.uniform.Empty()
}
