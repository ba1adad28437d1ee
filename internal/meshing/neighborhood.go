package meshing

import "voxelstream/internal/voxel"

// Neighborhood bundles the chunk being meshed with its six face-adjacent
// neighbor snapshots. Sides is indexed by Direction; a nil side (neighbor
// not yet generated, or world edge) reads as all air.
//
// The chunks are immutable snapshots: workers only read them, so no copy or
// lock is needed during meshing.
type Neighborhood struct {
	Center *voxel.Chunk
	Sides  [6]*voxel.Chunk
}

// SideMask returns a bitmask of the directions whose neighbor snapshot is
// present. The streaming manager compares masks to decide remeshing.
func (n *Neighborhood) SideMask() uint8 {
	var mask uint8
	for i, s := range n.Sides {
		if s != nil {
			mask |= 1 << i
		}
	}
	return mask
}

// Occupied reports whether the cell at center-relative coordinates is solid.
// Coordinates may extend one cell past the center chunk on any axis; samples
// outside the center and its six face neighbors (diagonal chunks, absent
// neighbors) read as empty.
func (n *Neighborhood) Occupied(x, y, z int) bool {
	side := -1
	if x < 0 {
		side = int(DirXNeg)
		x += voxel.Size
	} else if x >= voxel.Size {
		side = int(DirXPos)
		x -= voxel.Size
	}
	if y < 0 {
		if side >= 0 {
			return false
		}
		side = int(DirYNeg)
		y += voxel.Size
	} else if y >= voxel.Size {
		if side >= 0 {
			return false
		}
		side = int(DirYPos)
		y -= voxel.Size
	}
	if z < 0 {
		if side >= 0 {
			return false
		}
		side = int(DirZNeg)
		z += voxel.Size
	} else if z >= voxel.Size {
		if side >= 0 {
			return false
		}
		side = int(DirZPos)
		z -= voxel.Size
	}

	if side < 0 {
		return !n.Center.AtUnchecked(x, y, z).Empty()
	}
	chunk := n.Sides[side]
	if chunk == nil {
		return false
	}
	return !chunk.AtUnchecked(x, y, z).Empty()
}
