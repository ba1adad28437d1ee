package voxel

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestUniformChunkReadsEverywhere(t *testing.T) {
	stone := Voxel{Material: MaterialStone, R: 80, G: 80, B: 80}
	c := NewUniform(stone)

	if !c.IsUniform() {
		t.Fatal("expected fresh chunk to be uniform")
	}
	for _, p := range [][3]int{{0, 0, 0}, {Size - 1, Size - 1, Size - 1}, {5, 17, 30}} {
		v, err := c.At(p[0], p[1], p[2])
		if err != nil {
			t.Fatalf("At(%v): %v", p, err)
		}
		if v != stone {
			t.Errorf("At(%v) = %v, want %v", p, v, stone)
		}
	}
}

func TestSetMaterializesUniformChunk(t *testing.T) {
	c := NewUniform(Voxel{})
	grass := Voxel{Material: MaterialGrass, R: 20, G: 80, B: 10}

	// A write of the uniform value must not materialize.
	if err := c.Set(1, 2, 3, Voxel{}); err != nil {
		t.Fatal(err)
	}
	if !c.IsUniform() {
		t.Error("writing the uniform value should keep the chunk uniform")
	}

	if err := c.Set(1, 2, 3, grass); err != nil {
		t.Fatal(err)
	}
	if c.IsUniform() {
		t.Error("expected dense representation after a uniformity-breaking Set")
	}
	if v := c.AtUnchecked(1, 2, 3); v != grass {
		t.Errorf("AtUnchecked(1,2,3) = %v, want %v", v, grass)
	}
	// The rest of the chunk keeps the old uniform value.
	if v := c.AtUnchecked(0, 0, 0); !v.Empty() {
		t.Errorf("AtUnchecked(0,0,0) = %v, want air", v)
	}
}

func TestBoundsError(t *testing.T) {
	c := NewUniform(Voxel{})
	cases := [][3]int{{-1, 0, 0}, {Size, 0, 0}, {0, -1, 0}, {0, Size, 0}, {0, 0, -1}, {0, 0, Size}}
	for _, p := range cases {
		if _, err := c.At(p[0], p[1], p[2]); err == nil {
			t.Errorf("At(%v): expected BoundsError, got nil", p)
		} else {
			var be *BoundsError
			if !errors.As(err, &be) {
				t.Errorf("At(%v): expected *BoundsError, got %T", p, err)
			}
		}
		if err := c.Set(p[0], p[1], p[2], Voxel{Material: MaterialStone}); err == nil {
			t.Errorf("Set(%v): expected BoundsError, got nil", p)
		}
	}
}

func TestCompressRoundTrip(t *testing.T) {
	dirt := Voxel{Material: MaterialDirt, R: 40, G: 25, B: 5}
	c := NewUniform(Voxel{})
	if err := c.Set(0, 0, 0, dirt); err != nil {
		t.Fatal(err)
	}
	c.Compress()
	if c.IsUniform() {
		t.Fatal("chunk with two distinct values must not compress")
	}

	// Overwrite every cell with the same value; now it must compress.
	for z := 0; z < Size; z++ {
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				if err := c.Set(x, y, z, dirt); err != nil {
					t.Fatal(err)
				}
			}
		}
	}
	c.Compress()
	if !c.IsUniform() {
		t.Fatal("homogeneous chunk should compress to uniform")
	}
	if v := c.AtUnchecked(9, 9, 9); v != dirt {
		t.Errorf("after compress: got %v, want %v", v, dirt)
	}
}

func TestIndexOrdering(t *testing.T) {
	// Flat index is x + y*S + z*S*S.
	if Index(1, 0, 0) != 1 {
		t.Errorf("Index(1,0,0) = %d, want 1", Index(1, 0, 0))
	}
	if Index(0, 1, 0) != Size {
		t.Errorf("Index(0,1,0) = %d, want %d", Index(0, 1, 0), Size)
	}
	if Index(0, 0, 1) != Size*Size {
		t.Errorf("Index(0,0,1) = %d, want %d", Index(0, 0, 1), Size*Size)
	}
	if Index(Size-1, Size-1, Size-1) != Volume-1 {
		t.Errorf("Index(max) = %d, want %d", Index(Size-1, Size-1, Size-1), Volume-1)
	}
}

func TestCoordFromWorld(t *testing.T) {
	cases := []struct {
		pos  mgl32.Vec3
		want Coord
	}{
		{mgl32.Vec3{0, 0, 0}, Coord{0, 0, 0}},
		{mgl32.Vec3{Size - 0.5, 0, 0}, Coord{0, 0, 0}},
		{mgl32.Vec3{Size, 0, 0}, Coord{1, 0, 0}},
		{mgl32.Vec3{-0.5, -0.5, -0.5}, Coord{-1, -1, -1}},
		{mgl32.Vec3{-Size, 0, 0}, Coord{-1, 0, 0}},
		{mgl32.Vec3{-Size - 1, 0, 0}, Coord{-2, 0, 0}},
	}
	for _, tc := range cases {
		if got := CoordFromWorld(tc.pos); got != tc.want {
			t.Errorf("CoordFromWorld(%v) = %v, want %v", tc.pos, got, tc.want)
		}
	}
}
