package meshing

// Ambient occlusion levels are 2-bit: 0 = fully lit, 3 = fully occluded.
// Each face corner samples the two edge neighbors and the diagonal neighbor
// of the cell the face opens into; when both edge neighbors are solid the
// corner is fully occluded regardless of the diagonal.

// faceAO computes the four corner occlusion levels for the face of the cell
// at (x, y, z) opening toward dir. Corner order matches the packed record:
// (-a1,-a2), (+a1,-a2), (-a1,+a2), (+a1,+a2).
func faceAO(n *Neighborhood, x, y, z int, dir Direction) [4]uint8 {
	v := dir.Vec()
	a1, a2 := dir.Axes()
	bx, by, bz := x+v[0], y+v[1], z+v[2]

	corner := func(s1, s2 int) uint8 {
		e1x, e1y, e1z := a1[0]*s1, a1[1]*s1, a1[2]*s1
		e2x, e2y, e2z := a2[0]*s2, a2[1]*s2, a2[2]*s2
		side1 := n.Occupied(bx+e1x, by+e1y, bz+e1z)
		side2 := n.Occupied(bx+e2x, by+e2y, bz+e2z)
		if side1 && side2 {
			return 3
		}
		occ := uint8(0)
		if side1 {
			occ++
		}
		if side2 {
			occ++
		}
		if n.Occupied(bx+e1x+e2x, by+e1y+e2y, bz+e1z+e2z) {
			occ++
		}
		return occ
	}

	return [4]uint8{
		corner(-1, -1),
		corner(+1, -1),
		corner(-1, +1),
		corner(+1, +1),
	}
}

// reversedOrientation picks the triangulation diagonal so the two corners
// with the more divergent occlusion never share an edge, avoiding the bent
// interpolated shadow across the quad.
func reversedOrientation(ao [4]uint8) bool {
	return ao[0]+ao[3] >= ao[1]+ao[2]
}
