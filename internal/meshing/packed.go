package meshing

// Packed corner record layout, two little-endian 32-bit words per vertex.
// This is the binary contract with the rendering stage's decode logic and
// must round-trip exactly:
//
//	word 0: [31:24] x  [23:16] y  [15:8] z  [7:0] r
//	word 1: [31:24] g  [23:16] b  [15:13] normal index
//	        [12:11] ao1  [10:9] ao2  [8:7] ao3  [6:5] ao4
//	        [4] orientation reversed  [3:0] reserved, zero

// Record is the decoded form of one packed corner record.
type Record struct {
	X, Y, Z  uint8
	R, G, B  uint8
	Normal   uint8
	AO       [4]uint8
	Reversed bool
}

// Pack encodes the record into the two-word wire layout.
func (r Record) Pack() (uint32, uint32) {
	w0 := uint32(r.X)<<24 | uint32(r.Y)<<16 | uint32(r.Z)<<8 | uint32(r.R)
	w1 := uint32(r.G)<<24 | uint32(r.B)<<16 |
		uint32(r.Normal&0x7)<<13 |
		uint32(r.AO[0]&0x3)<<11 |
		uint32(r.AO[1]&0x3)<<9 |
		uint32(r.AO[2]&0x3)<<7 |
		uint32(r.AO[3]&0x3)<<5
	if r.Reversed {
		w1 |= 1 << 4
	}
	return w0, w1
}

// Unpack decodes two wire words back into a record.
func Unpack(w0, w1 uint32) Record {
	return Record{
		X:      uint8(w0 >> 24),
		Y:      uint8(w0 >> 16),
		Z:      uint8(w0 >> 8),
		R:      uint8(w0),
		G:      uint8(w1 >> 24),
		B:      uint8(w1 >> 16),
		Normal: uint8(w1>>13) & 0x7,
		AO: [4]uint8{
			uint8(w1>>11) & 0x3,
			uint8(w1>>9) & 0x3,
			uint8(w1>>7) & 0x3,
			uint8(w1>>5) & 0x3,
		},
		Reversed: w1&(1<<4) != 0,
	}
}
