package worldgen

import "voxelstream/internal/voxel"

// FlatGenerator fills everything below a fixed world height with a single
// material. Used by tests and as a development world.
type FlatGenerator struct {
	Height   int
	Material voxel.Material
}

// NewFlatGenerator creates a flat world with its surface at the given world
// height.
func NewFlatGenerator(height int) *FlatGenerator {
	return &FlatGenerator{Height: height, Material: voxel.MaterialGrass}
}

// Generate populates the chunk at the given coordinate.
func (g *FlatGenerator) Generate(coord voxel.Coord) *voxel.Chunk {
	baseY := coord.Y * voxel.Size

	// Entire chunk above or below the surface stays uniform.
	if baseY >= g.Height {
		return voxel.NewUniform(voxel.Voxel{})
	}
	fill := colorize(g.Material, hash3(0, 0, 0, 0))
	if baseY+voxel.Size <= g.Height {
		return voxel.NewUniform(fill)
	}

	chunk := voxel.NewUniform(voxel.Voxel{})
	top := g.Height - baseY
	for z := 0; z < voxel.Size; z++ {
		for y := 0; y < top; y++ {
			for x := 0; x < voxel.Size; x++ {
				_ = chunk.Set(x, y, z, fill)
			}
		}
	}
	return chunk
}
