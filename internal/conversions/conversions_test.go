package conversions

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func TestBytesToNumAndNumToBytes(t *testing.T) {
	u16 := uint16(0x0102)
	b := NumToBytes(&u16)
	want := binary.NativeEndian.AppendUint16(nil, 0x0102)
	if !bytes.Equal(b, want) {
		t.Errorf("TestBytesToNumAndNumToBytes(uint16): got %v, want %v", b, want)
	}
	if got := BytesToNum[uint16](b); got != u16 {
		t.Errorf("TestBytesToNumAndNumToBytes(uint16): got %d, want %d", got, u16)
	}

	f := math.Float64frombits(0x7FF8000000000ABC)
	b = NumToBytes(&f)
	if len(b) != 8 {
		t.Fatalf("TestBytesToNumAndNumToBytes(float64): got len %d, want 8", len(b))
	}
	if got := BytesToNum[float64](b); math.Float64bits(got) != 0x7FF8000000000ABC {
		t.Errorf("TestBytesToNumAndNumToBytes(float64): got %x, want 7ff8000000000abc", math.Float64bits(got))
	}

	i8 := int8(-1)
	if got := NumToBytes(&i8); !bytes.Equal(got, []byte{255}) {
		t.Errorf("TestBytesToNumAndNumToBytes(int8): got %v, want [255]", got)
	}
}

func TestBytesToNumBadLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("TestBytesToNumBadLength: expected a panic")
		}
	}()
	BytesToNum[uint32]([]byte{1, 2})
}

func TestLittleEndian(t *testing.T) {
	want := binary.NativeEndian.Uint16([]byte{1, 0}) == 1
	if got := LittleEndian(); got != want {
		t.Errorf("TestLittleEndian: got %v, want %v", got, want)
	}
}

func TestByteSlice2String(t *testing.T) {
	if got := ByteSlice2String([]byte("u8 checked_sub 5 10")); got != "u8 checked_sub 5 10" {
		t.Errorf("TestByteSlice2String: got %q", got)
	}
	if got := ByteSlice2String(nil); got != "" {
		t.Errorf("TestByteSlice2String(nil): got %q", got)
	}
}
