package worldgen

import (
	"crypto/sha256"
	"errors"
	"testing"

	"voxelstream/internal/voxel"
)

// hashChunk computes a SHA-256 over every cell of a chunk.
func hashChunk(c *voxel.Chunk) [32]byte {
	h := sha256.New()
	buf := make([]byte, 4)
	for z := 0; z < voxel.Size; z++ {
		for y := 0; y < voxel.Size; y++ {
			for x := 0; x < voxel.Size; x++ {
				v := c.AtUnchecked(x, y, z)
				buf[0] = byte(v.Material)
				buf[1], buf[2], buf[3] = v.R, v.G, v.B
				h.Write(buf)
			}
		}
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig(12345)
	coords := []voxel.Coord{{X: 0, Y: 0, Z: 0}, {X: 3, Y: -1, Z: 7}, {X: -2, Y: 2, Z: -5}}

	for _, coord := range coords {
		g1, err := New(cfg)
		if err != nil {
			t.Fatal(err)
		}
		g2, err := New(cfg)
		if err != nil {
			t.Fatal(err)
		}
		if hashChunk(g1.Generate(coord)) != hashChunk(g2.Generate(coord)) {
			t.Errorf("chunk at %v not deterministic", coord)
		}
	}
}

func TestGenerateSeedChangesTerrain(t *testing.T) {
	g1, err := New(DefaultConfig(1))
	if err != nil {
		t.Fatal(err)
	}
	g2, err := New(DefaultConfig(2))
	if err != nil {
		t.Fatal(err)
	}
	for cy := 0; cy < 4; cy++ {
		coord := voxel.Coord{X: 0, Y: cy, Z: 0}
		if hashChunk(g1.Generate(coord)) != hashChunk(g2.Generate(coord)) {
			return
		}
	}
	t.Error("different seeds produced identical chunks")
}

func TestGenerateMixedOccupancy(t *testing.T) {
	g, err := New(DefaultConfig(1337))
	if err != nil {
		t.Fatal(err)
	}
	// The density noise varies slowly relative to a single chunk; a small
	// window near the origin can fall entirely on one side of the
	// threshold. Sample the chunks in [-2,2)^3, a 128-block cube spanning
	// more than a full noise period.
	solid, air := 0, 0
	for cz := -2; cz < 2; cz++ {
		for cy := -2; cy < 2; cy++ {
			for cx := -2; cx < 2; cx++ {
				c := g.Generate(voxel.Coord{X: cx, Y: cy, Z: cz})
				for z := 0; z < voxel.Size; z++ {
					for y := 0; y < voxel.Size; y++ {
						for x := 0; x < voxel.Size; x++ {
							if c.AtUnchecked(x, y, z).Empty() {
								air++
							} else {
								solid++
							}
						}
					}
				}
			}
		}
	}
	if solid == 0 {
		t.Error("expected some solid voxels, got all air")
	}
	if air == 0 {
		t.Error("expected some air voxels, got all solid")
	}
}

func TestGenerateCompressesHomogeneousChunks(t *testing.T) {
	// Far above the density field's solid range some chunk comes out all
	// air; scan a few coordinates and require at least one uniform result.
	g, err := New(DefaultConfig(99))
	if err != nil {
		t.Fatal(err)
	}
	for cy := 0; cy < 8; cy++ {
		c := g.Generate(voxel.Coord{X: 0, Y: cy, Z: 0})
		if c.IsUniform() {
			return
		}
	}
	t.Skip("no homogeneous chunk found in scanned column; compression untested for this seed")
}

func TestSolidVoxelsHaveDistinctColors(t *testing.T) {
	g, err := New(DefaultConfig(7))
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[voxel.Voxel]struct{})
	for cy := -2; cy < 2; cy++ {
		c := g.Generate(voxel.Coord{X: 0, Y: cy, Z: 0})
		for z := 0; z < voxel.Size; z++ {
			for y := 0; y < voxel.Size; y++ {
				for x := 0; x < voxel.Size; x++ {
					if v := c.AtUnchecked(x, y, z); !v.Empty() {
						seen[v] = struct{}{}
					}
				}
			}
		}
	}
	if len(seen) < 2 {
		t.Errorf("expected per-voxel color jitter, got %d distinct solid voxel values", len(seen))
	}
}

func TestConfigValidation(t *testing.T) {
	bad := []Config{
		{Seed: 1, DensityFrequency: 0, DensityThreshold: 0, MaterialFrequency: 0.01, MaterialExponent: 1},
		{Seed: 1, DensityFrequency: 0.01, DensityThreshold: -2, MaterialFrequency: 0.01, MaterialExponent: 1},
		{Seed: 1, DensityFrequency: 0.01, DensityThreshold: 0, MaterialFrequency: -1, MaterialExponent: 1},
		{Seed: 1, DensityFrequency: 0.01, DensityThreshold: 0, MaterialFrequency: 0.01, MaterialExponent: 0},
	}
	for i, cfg := range bad {
		if _, err := New(cfg); err == nil {
			t.Errorf("case %d: expected NoiseConfigError, got nil", i)
		} else {
			var nce *NoiseConfigError
			if !errors.As(err, &nce) {
				t.Errorf("case %d: expected *NoiseConfigError, got %T", i, err)
			}
		}
	}
	if err := DefaultConfig(1).Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestFlatGeneratorSurface(t *testing.T) {
	g := NewFlatGenerator(10)
	c := g.Generate(voxel.Coord{X: 0, Y: 0, Z: 0})

	if v := c.AtUnchecked(5, 9, 5); v.Empty() {
		t.Error("expected solid below surface")
	}
	if v := c.AtUnchecked(5, 10, 5); !v.Empty() {
		t.Error("expected air at surface height")
	}

	if above := g.Generate(voxel.Coord{X: 0, Y: 1, Z: 0}); !above.Empty() {
		t.Error("chunk above surface should be uniform air")
	}
	deep := g.Generate(voxel.Coord{X: 0, Y: -1, Z: 0})
	if !deep.IsUniform() || deep.Empty() {
		t.Error("chunk below surface should be uniform solid")
	}
}

func BenchmarkGenerate(b *testing.B) {
	g, err := New(DefaultConfig(12345))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Generate(voxel.Coord{X: i % 8, Y: 0, Z: 0})
	}
}
