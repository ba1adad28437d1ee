package meshing

// Quad is one greedy-merged axis-aligned face rectangle in chunk-local voxel
// units. W extends along the direction's second in-plane axis, H along the
// first. Quads are only ever emitted for faces adjacent to empty space.
type Quad struct {
	X, Y, Z uint8
	W, H    uint8
	Dir     Direction

	R, G, B  uint8
	AO       [4]uint8
	Reversed bool
}
