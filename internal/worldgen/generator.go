package worldgen

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"voxelstream/internal/voxel"
)

// Generator produces voxel chunks from noise. It is stateless beyond the
// read-only configuration and noise tables, so Generate may be called
// concurrently for different coordinates.
type Generator struct {
	cfg      Config
	density  opensimplex.Noise
	material opensimplex.Noise
}

// New builds a generator, validating the configuration once up front.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		cfg:      cfg,
		density:  opensimplex.New(cfg.Seed),
		material: opensimplex.New(cfg.Seed + 1),
	}, nil
}

// Generate populates the chunk at the given coordinate. Deterministic:
// identical (coord, Config) always yields a bit-identical chunk.
func (g *Generator) Generate(coord voxel.Coord) *voxel.Chunk {
	chunk := voxel.NewUniform(voxel.Voxel{})

	baseX := coord.X * voxel.Size
	baseY := coord.Y * voxel.Size
	baseZ := coord.Z * voxel.Size

	df := g.cfg.DensityFrequency
	mf := g.cfg.MaterialFrequency

	for z := 0; z < voxel.Size; z++ {
		for y := 0; y < voxel.Size; y++ {
			for x := 0; x < voxel.Size; x++ {
				wx := float64(baseX + x)
				wy := float64(baseY + y)
				wz := float64(baseZ + z)

				if g.density.Eval3(wx*df, wy*df, wz*df) >= g.cfg.DensityThreshold {
					continue
				}

				h := hash3(int64(baseX+x), int64(baseY+y), int64(baseZ+z), g.cfg.Seed)

				threshold := (g.material.Eval3(wx*mf, wy*mf, wz*mf) + 1) / 2
				threshold = math.Pow(threshold, g.cfg.MaterialExponent)

				mat := voxel.MaterialGrass
				if unitFloat(h, 0) < threshold {
					mat = voxel.MaterialStone
				}

				// Loops stay within [0, Size); the write cannot fail.
				_ = chunk.Set(x, y, z, colorize(mat, h))
			}
		}
	}

	chunk.Compress()
	return chunk
}

// colorize derives the stored color from the material and position hash.
// Each solid voxel gets a slightly different shade, so neighboring cells of
// the same material remain distinguishable.
func colorize(mat voxel.Material, h uint64) voxel.Voxel {
	v := voxel.Voxel{Material: mat}
	switch mat {
	case voxel.MaterialGrass:
		v.R = channel(h, 1, 0.07, 0.11)
		v.G = channel(h, 2, 0.28, 0.32)
		v.B = channel(h, 3, 0.01, 0.04)
	case voxel.MaterialDirt:
		v.R = channel(h, 1, 0.12, 0.18)
		v.G = channel(h, 2, 0.06, 0.14)
		v.B = channel(h, 3, 0.02, 0.02)
	case voxel.MaterialStone:
		gray := channel(h, 1, 0.25, 0.35)
		v.R, v.G, v.B = gray, gray, gray
	}
	return v
}

func channel(h uint64, lane uint, lo, hi float64) uint8 {
	return uint8(255 * (lo + unitFloat(h, lane)*(hi-lo)))
}
