package meshing

// Mesh is the packed geometry for one chunk: four corner records (two words
// each) per quad, plus a triangle index list into them. Owned by the
// streaming manager once complete; replaced atomically on remesh.
type Mesh struct {
	Verts   []uint32
	Indices []uint32
}

// Index winding patterns, chosen per quad by (backside, reversed). The
// reversed variants flip the triangulation diagonal for AO-correct
// interpolation.
var indexPatterns = [2][2][6]uint32{
	{ // front faces
		{2, 3, 0, 0, 3, 1},
		{2, 1, 0, 3, 1, 2},
	},
	{ // backsides
		{0, 1, 3, 3, 2, 0},
		{0, 1, 2, 2, 1, 3},
	},
}

// QuadCount returns the number of quads in the mesh.
func (m *Mesh) QuadCount() int {
	return len(m.Verts) / 8
}

// appendQuad expands a quad into its four corner records and six indices.
// Corner order is origin, origin+a1·H, origin+a2·W, origin+a1·H+a2·W,
// matching the AO corner order; the per-vertex index (gl_VertexID & 3) on
// the consuming side selects the corresponding AO field.
func (m *Mesh) appendQuad(q Quad) {
	v := q.Dir.Vec()
	a1, a2 := q.Dir.Axes()

	x, y, z := int(q.X), int(q.Y), int(q.Z)
	if !q.Dir.Backside() {
		// Front faces lie on the far plane of the cell.
		x += v[0]
		y += v[1]
		z += v[2]
	}
	w, h := int(q.W), int(q.H)

	base := uint32(len(m.Verts) / 2)
	rec := Record{
		R: q.R, G: q.G, B: q.B,
		Normal:   uint8(q.Dir),
		AO:       q.AO,
		Reversed: q.Reversed,
	}
	corners := [4][3]int{
		{x, y, z},
		{x + a1[0]*h, y + a1[1]*h, z + a1[2]*h},
		{x + a2[0]*w, y + a2[1]*w, z + a2[2]*w},
		{x + a1[0]*h + a2[0]*w, y + a1[1]*h + a2[1]*w, z + a1[2]*h + a2[2]*w},
	}
	for _, c := range corners {
		rec.X, rec.Y, rec.Z = uint8(c[0]), uint8(c[1]), uint8(c[2])
		w0, w1 := rec.Pack()
		m.Verts = append(m.Verts, w0, w1)
	}

	back, rev := 0, 0
	if q.Dir.Backside() {
		back = 1
	}
	if q.Reversed {
		rev = 1
	}
	for _, i := range indexPatterns[back][rev] {
		m.Indices = append(m.Indices, base+i)
	}
}

// BuildMesh generates the packed mesh for the neighborhood's center chunk.
func BuildMesh(n *Neighborhood) Mesh {
	var m Mesh
	for _, q := range CollectQuads(n) {
		m.appendQuad(q)
	}
	return m
}
