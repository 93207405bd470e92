package bits

import (
	"testing"
)

// FuzzPattern fuzzes the Pattern/FromPattern/SignExtend round trip for 16 bit values.
func FuzzPattern(f *testing.F) {
	f.Add(int16(0))
	f.Add(int16(-1))
	f.Add(int16(32767))
	f.Add(int16(-32768))

	f.Fuzz(func(t *testing.T, v int16) {
		p := Pattern(v)
		if p > 0xFFFF {
			t.Errorf("FuzzPattern: pattern %x wider than 16 bits", p)
		}
		if got := FromPattern[int16](p); got != v {
			t.Errorf("FuzzPattern: round-trip failed: got %d, want %d", got, v)
		}
		if got := SignExtend(p, 16); got != int64(v) {
			t.Errorf("FuzzPattern: SignExtend: got %d, want %d", got, v)
		}
	})
}
