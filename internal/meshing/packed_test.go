package meshing

import "testing"

func TestRecordRoundTrip(t *testing.T) {
	records := []Record{
		{},
		{X: 32, Y: 0, Z: 17, R: 255, G: 1, B: 128, Normal: 0, AO: [4]uint8{0, 1, 2, 3}, Reversed: true},
		{X: 255, Y: 255, Z: 255, R: 0, G: 255, B: 0, Normal: 5, AO: [4]uint8{3, 3, 3, 3}},
		{X: 1, Y: 2, Z: 3, R: 4, G: 5, B: 6, Normal: 3, AO: [4]uint8{2, 0, 1, 3}, Reversed: false},
	}
	for _, r := range records {
		w0, w1 := r.Pack()
		if got := Unpack(w0, w1); got != r {
			t.Errorf("round trip mismatch: packed %+v, unpacked %+v", r, got)
		}
	}
}

func TestPackBitLayout(t *testing.T) {
	r := Record{
		X: 0xAB, Y: 0xCD, Z: 0xEF, R: 0x12,
		G: 0x34, B: 0x56,
		Normal:   5,
		AO:       [4]uint8{1, 2, 3, 0},
		Reversed: true,
	}
	w0, w1 := r.Pack()
	if w0 != 0xABCDEF12 {
		t.Errorf("word0 = %#08x, want 0xABCDEF12", w0)
	}
	want := uint32(0x34)<<24 | uint32(0x56)<<16 | 5<<13 | 1<<11 | 2<<9 | 3<<7 | 0<<5 | 1<<4
	if w1 != want {
		t.Errorf("word1 = %#08x, want %#08x", w1, want)
	}
	// Reserved bits stay zero.
	if w1&0xF != 0 {
		t.Errorf("reserved bits set in word1: %#08x", w1)
	}
}

func TestNormalTableMatchesWireOrder(t *testing.T) {
	want := [6][3]int{
		{0, 0, 1}, {0, 1, 0}, {1, 0, 0},
		{0, 0, -1}, {0, -1, 0}, {-1, 0, 0},
	}
	for i, dir := range Directions {
		if dir.Vec() != want[i] {
			t.Errorf("normal index %d = %v, want %v", i, dir.Vec(), want[i])
		}
	}
	for _, dir := range Directions {
		v, o := dir.Vec(), dir.Opposite().Vec()
		if v[0]+o[0] != 0 || v[1]+o[1] != 0 || v[2]+o[2] != 0 {
			t.Errorf("Opposite(%d) = %d is not the inverse direction", dir, dir.Opposite())
		}
	}
}
