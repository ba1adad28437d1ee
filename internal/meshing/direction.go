package meshing

// Direction is a face-normal index. The numbering is part of the packed
// record wire format and must match the decode stage's lookup table.
type Direction uint8

const (
	DirZPos Direction = iota // (0, 0, 1)
	DirYPos                  // (0, 1, 0)
	DirXPos                  // (1, 0, 0)
	DirZNeg                  // (0, 0, -1)
	DirYNeg                  // (0, -1, 0)
	DirXNeg                  // (-1, 0, 0)
)

// Directions lists all six face directions in wire-format order.
var Directions = [6]Direction{DirZPos, DirYPos, DirXPos, DirZNeg, DirYNeg, DirXNeg}

var directionVecs = [6][3]int{
	{0, 0, 1},
	{0, 1, 0},
	{1, 0, 0},
	{0, 0, -1},
	{0, -1, 0},
	{-1, 0, 0},
}

// Vec returns the unit normal vector.
func (d Direction) Vec() [3]int {
	return directionVecs[d]
}

// Axes returns the two in-plane unit axes spanning the face, derived by
// rotating the normal's components. Quad heights run along the first axis,
// widths along the second.
func (d Direction) Axes() (a1, a2 [3]int) {
	v := directionVecs[d]
	a1 = [3]int{abs(v[1]), abs(v[2]), abs(v[0])}
	a2 = [3]int{abs(v[2]), abs(v[0]), abs(v[1])}
	return a1, a2
}

// Backside reports whether the face points along a negative axis; backsides
// use mirrored triangle winding.
func (d Direction) Backside() bool {
	return d >= DirZNeg
}

// Opposite returns the direction facing the other way.
func (d Direction) Opposite() Direction {
	return (d + 3) % 6
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
