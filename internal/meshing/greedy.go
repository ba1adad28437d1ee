package meshing

import "voxelstream/internal/voxel"

// maskCell is one face slot in the 2D merge mask. Two cells merge only when
// they are exactly equal: same color and same per-corner AO class; a change
// in either breaks the run.
type maskCell struct {
	visible bool
	r, g, b uint8
	ao      [4]uint8
	rev     bool
}

// CollectQuads runs greedy meshing over all six face directions and returns
// the merged quads for the neighborhood's center chunk. Output order is
// deterministic: directions in wire order, layers ascending, runs extended
// along the secondary in-plane axis first.
func CollectQuads(n *Neighborhood) []Quad {
	if n.Center == nil || n.Center.Empty() {
		return nil
	}
	var quads []Quad
	for _, dir := range Directions {
		quads = collectDirection(n, dir, quads)
	}
	return quads
}

func collectDirection(n *Neighborhood, dir Direction, quads []Quad) []Quad {
	const s = voxel.Size
	v := dir.Vec()
	av := [3]int{abs(v[0]), abs(v[1]), abs(v[2])}
	a1, a2 := dir.Axes()

	var mask [s * s]maskCell

	for layer := 0; layer < s; layer++ {
		any := false
		for u := 0; u < s; u++ {
			for w := 0; w < s; w++ {
				x := layer*av[0] + u*a1[0] + w*a2[0]
				y := layer*av[1] + u*a1[1] + w*a2[1]
				z := layer*av[2] + u*a1[2] + w*a2[2]

				cell := n.Center.AtUnchecked(x, y, z)
				if cell.Empty() || n.Occupied(x+v[0], y+v[1], z+v[2]) {
					mask[u*s+w] = maskCell{}
					continue
				}
				ao := faceAO(n, x, y, z, dir)
				mask[u*s+w] = maskCell{
					visible: true,
					r:       cell.R, g: cell.G, b: cell.B,
					ao:  ao,
					rev: reversedOrientation(ao),
				}
				any = true
			}
		}
		if !any {
			continue
		}

		for i := 0; i < s*s; {
			cur := mask[i]
			if !cur.visible {
				i++
				continue
			}
			u0 := i / s
			w0 := i % s

			width := 1
			for w1 := w0 + 1; w1 < s && mask[u0*s+w1] == cur; w1++ {
				width++
			}
			height := 1
		grow:
			for u1 := u0 + 1; u1 < s; u1++ {
				for w1 := w0; w1 < w0+width; w1++ {
					if mask[u1*s+w1] != cur {
						break grow
					}
				}
				height++
			}

			ox := layer*av[0] + u0*a1[0] + w0*a2[0]
			oy := layer*av[1] + u0*a1[1] + w0*a2[1]
			oz := layer*av[2] + u0*a1[2] + w0*a2[2]
			quads = append(quads, Quad{
				X: uint8(ox), Y: uint8(oy), Z: uint8(oz),
				W: uint8(width), H: uint8(height),
				Dir: dir,
				R:   cur.r, G: cur.g, B: cur.b,
				AO:       cur.ao,
				Reversed: cur.rev,
			})

			for u1 := u0; u1 < u0+height; u1++ {
				for w1 := w0; w1 < w0+width; w1++ {
					mask[u1*s+w1] = maskCell{}
				}
			}
		}
	}
	return quads
}
