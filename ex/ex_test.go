package ex

import (
	"math"
	"testing"
)

func TestDiff(t *testing.T) {
	if got := Diff[uint8](3, 10); got != 7 {
		t.Errorf("TestDiff(uint8 3-10): got %d, want 7", got)
	}
	if got := Diff[uint8](10, 3); got != 7 {
		t.Errorf("TestDiff(uint8 10-3): got %d, want 7", got)
	}
	if got := Diff[uint8](255, 0); got != 255 {
		t.Errorf("TestDiff(uint8 max-min): got %d, want 255", got)
	}
	if got := Diff[int32](3, 10); got != -7 {
		t.Errorf("TestDiff(int32 3-10): got %d, want -7", got)
	}
	if got := Diff(1.5, 4.0); got != -2.5 {
		t.Errorf("TestDiff(float64): got %v, want -2.5", got)
	}
}

func TestAbs(t *testing.T) {
	if got := Abs[uint16](65535); got != 65535 {
		t.Errorf("TestAbs(uint16): got %d, want 65535", got)
	}
	if got := Abs[int8](-5); got != 5 {
		t.Errorf("TestAbs(int8 -5): got %d, want 5", got)
	}
	if got := Abs[int8](math.MinInt8); got != math.MinInt8 {
		t.Errorf("TestAbs(int8 min): got %d, want %d", got, math.MinInt8)
	}
	if got := Abs(float32(-2.25)); got != 2.25 {
		t.Errorf("TestAbs(float32): got %v, want 2.25", got)
	}
	if got := Abs(math.Copysign(0, -1)); math.Signbit(got) {
		t.Errorf("TestAbs(-0.0): sign bit still set")
	}
	if got := Abs(math.NaN()); !math.IsNaN(got) {
		t.Errorf("TestAbs(NaN): got %v, want NaN", got)
	}
	// NaN payloads, signaling ones included, keep every bit but the sign.
	if got := math.Float32bits(Abs(math.Float32frombits(0xff800001))); got != 0x7f800001 {
		t.Errorf("TestAbs(float32 -sNaN): got %#x, want 0x7f800001", got)
	}
	if got := math.Float64bits(Abs(math.Float64frombits(0xfff0000000000001))); got != 0x7ff0000000000001 {
		t.Errorf("TestAbs(float64 -sNaN): got %#x, want 0x7ff0000000000001", got)
	}
	if got := Abs(float32(math.Inf(-1))); !math.IsInf(float64(got), 1) {
		t.Errorf("TestAbs(float32 -Inf): got %v, want +Inf", got)
	}
}
