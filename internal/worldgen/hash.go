package worldgen

// SplitMix64-style position hash, stable across runs for the same inputs.
// Drives the per-voxel color jitter so regeneration reproduces colors
// exactly.
func hash3(x, y, z, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F ^ uint64(z)*0x165667B19E3779F9 ^ uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// unitFloat maps an 8-bit slice of a hash to [0, 1).
func unitFloat(h uint64, lane uint) float64 {
	return float64((h>>(8*lane))&0xFF) / 256.0
}
