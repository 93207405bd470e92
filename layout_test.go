package numy

import (
	"math"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/pkg/errors"
)

type kelvin float32

func TestNewLayout(t *testing.T) {
	if _, err := NewLayout[kelvin, uint32, [4]byte](); err != nil {
		t.Errorf("TestNewLayout(kelvin): got err == %s, want err == nil", err)
	}
	if _, err := NewLayout[float32, uint64, [8]byte](); !errors.Is(err, ErrWidthMismatch) {
		t.Errorf("TestNewLayout(float32, uint64): got err == %v, want ErrWidthMismatch", err)
	}
	if _, err := NewLayout[float64, uint64, [4]byte](); !errors.Is(err, ErrWidthMismatch) {
		t.Errorf("TestNewLayout(float64, [4]byte): got err == %v, want ErrWidthMismatch", err)
	}
}

func TestLayoutBytes(t *testing.T) {
	if got := F64.ToBits(1); got != 0x3FF0000000000000 {
		t.Errorf("TestLayoutBytes: F64.ToBits(1): got %#x", got)
	}
	if got := F32.FromBits(0xBF800000); got != -1 {
		t.Errorf("TestLayoutBytes: F32.FromBits(0xBF800000): got %v", got)
	}
	if diff := pretty.Compare([8]byte{0x3F, 0xF0}, F64.ToBEBytes(1)); diff != "" {
		t.Errorf("TestLayoutBytes: F64.ToBEBytes(1) diff:\n%s", diff)
	}
	if diff := pretty.Compare([4]byte{0, 0, 0x80, 0x3F}, F32.ToLEBytes(1)); diff != "" {
		t.Errorf("TestLayoutBytes: F32.ToLEBytes(1) diff:\n%s", diff)
	}
	ne := F32.ToNEBytes(1)
	want := F32.ToBEBytes(1)
	if nativeLittle() {
		want = F32.ToLEBytes(1)
	}
	if diff := pretty.Compare(want, ne); diff != "" {
		t.Errorf("TestLayoutBytes: F32.ToNEBytes(1) diff:\n%s", diff)
	}
}

func layoutSamples64() []uint64 {
	return []uint64{
		0, 0x8000000000000000, 0x3FF0000000000000, 0x7FF0000000000000, 0xFFF0000000000000,
		0x7FF8000000000000, 0x7FF0000000000001, 0xFFFFFFFFFFFFFFFF, 0x7FF4000000C0FFEE, 1,
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	for _, b := range layoutSamples64() {
		x := F64.FromBits(b)
		checks := map[string]float64{
			"bits": F64.FromBits(F64.ToBits(x)),
			"be":   F64.FromBEBytes(F64.ToBEBytes(x)),
			"le":   F64.FromLEBytes(F64.ToLEBytes(x)),
			"ne":   F64.FromNEBytes(F64.ToNEBytes(x)),
		}
		for name, got := range checks {
			if math.Float64bits(got) != b {
				t.Errorf("TestLayoutRoundTrip(%#x): %s: got %#x", b, name, math.Float64bits(got))
			}
		}
	}

	for _, b := range []uint32{0, 0x80000000, 0x7FC00000, 0x7F800001, 0xFFFFFFFF, 0x7FA0BEEF, 1} {
		x := F32.FromBits(b)
		for name, got := range map[string]float32{
			"bits": F32.FromBits(F32.ToBits(x)),
			"be":   F32.FromBEBytes(F32.ToBEBytes(x)),
			"le":   F32.FromLEBytes(F32.ToLEBytes(x)),
			"ne":   F32.FromNEBytes(F32.ToNEBytes(x)),
		} {
			if math.Float32bits(got) != b {
				t.Errorf("TestLayoutRoundTrip(float32 %#x): %s: got %#x", b, name, math.Float32bits(got))
			}
		}
	}
}

func TestLayoutAppendDecode(t *testing.T) {
	buf := F64.Append([]byte{0xAA}, -2, BigEndian)
	if diff := pretty.Compare([]byte{0xAA, 0xC0, 0, 0, 0, 0, 0, 0, 0}, buf); diff != "" {
		t.Errorf("TestLayoutAppendDecode: Append diff:\n%s", diff)
	}
	got, err := F64.Decode(buf[1:], BigEndian)
	if err != nil {
		t.Fatalf("TestLayoutAppendDecode: Decode: got err == %s, want err == nil", err)
	}
	if got != -2 {
		t.Errorf("TestLayoutAppendDecode: Decode: got %v, want -2", got)
	}

	buf = F32.Append(nil, 0.5, LittleEndian)
	if f, err := F32.Decode(append(buf, 0xFF), LittleEndian); err != nil || f != 0.5 {
		t.Errorf("TestLayoutAppendDecode: float32 Decode: got (%v, %v), want (0.5, nil)", f, err)
	}

	if _, err := F32.Decode([]byte{1, 2, 3}, LittleEndian); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("TestLayoutAppendDecode: short Decode: got err == %v, want ErrShortBuffer", err)
	}
}

func FuzzLayout64(f *testing.F) {
	for _, b := range layoutSamples64() {
		f.Add(b)
	}
	f.Fuzz(func(t *testing.T, b uint64) {
		x := F64.FromBits(b)
		for _, e := range []Endian{BigEndian, LittleEndian, NativeEndian} {
			got, err := F64.Decode(F64.Append(nil, x, e), e)
			if err != nil {
				t.Fatalf("FuzzLayout64(%#x, %s): %s", b, e, err)
			}
			if math.Float64bits(got) != b {
				t.Fatalf("FuzzLayout64(%#x, %s): got %#x", b, e, math.Float64bits(got))
			}
		}
		if TotalCmp(x, x) != 0 {
			t.Fatalf("FuzzLayout64(%#x): TotalCmp(x, x) != 0", b)
		}
	})
}
