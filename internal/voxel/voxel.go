package voxel

// Material identifies what a voxel cell is made of. MaterialAir marks an
// empty cell; everything else is solid.
type Material uint8

const (
	MaterialAir Material = iota
	MaterialGrass
	MaterialDirt
	MaterialStone
)

// Voxel is one cell's attributes: a material plus the 8-bit RGB color baked
// in by the generator. Normals are not stored; the mesher derives them from
// the face direction.
type Voxel struct {
	Material Material
	R, G, B  uint8
}

// Empty reports whether the voxel is air.
func (v Voxel) Empty() bool {
	return v.Material == MaterialAir
}
