package numy

import (
	"math"
	"math/big"
	"testing"

	"github.com/pkg/errors"
)

type meters uint16

func TestNewCounterpart(t *testing.T) {
	if _, err := NewCounterpart[celsius, meters](); err != nil {
		t.Errorf("TestNewCounterpart(celsius, meters): got err == %s, want err == nil", err)
	}
	_, err := NewCounterpart[int32, uint64]()
	if !errors.Is(err, ErrWidthMismatch) {
		t.Errorf("TestNewCounterpart(int32, uint64): got err == %v, want ErrWidthMismatch", err)
	}
	if errors.Cause(err) != ErrWidthMismatch {
		t.Errorf("TestNewCounterpart(int32, uint64): errors.Cause() is not ErrWidthMismatch")
	}
}

func TestCasts(t *testing.T) {
	if got := I8.CastUnsigned(-1); got != 255 {
		t.Errorf("TestCasts: CastUnsigned(int8 -1): got %d, want 255", got)
	}
	if got := I8.CastSigned(128); got != math.MinInt8 {
		t.Errorf("TestCasts: CastSigned(uint8 128): got %d", got)
	}
	if got := I64.CastSigned(math.MaxUint64); got != -1 {
		t.Errorf("TestCasts: CastSigned(MaxUint64): got %d", got)
	}
	for i := range 256 {
		v := int8(i)
		if I8.CastSigned(I8.CastUnsigned(v)) != v {
			t.Fatalf("TestCasts: cast round trip of %d failed", v)
		}
	}
	if got := Int.CastUnsigned(-2); got != math.MaxUint-1 {
		t.Errorf("TestCasts: Int.CastUnsigned(-2): got %d", got)
	}
}

func TestUnsignedAbsAndAbsDiff(t *testing.T) {
	if got := I8.UnsignedAbs(math.MinInt8); got != 128 {
		t.Errorf("TestUnsignedAbsAndAbsDiff: UnsignedAbs(int8 min): got %d, want 128", got)
	}
	if got := I32.UnsignedAbs(-5); got != 5 {
		t.Errorf("TestUnsignedAbsAndAbsDiff: UnsignedAbs(-5): got %d, want 5", got)
	}
	if got := I8.AbsDiff(math.MinInt8, math.MaxInt8); got != 255 {
		t.Errorf("TestUnsignedAbsAndAbsDiff: AbsDiff(min, max): got %d, want 255", got)
	}
	if got := I16.AbsDiff(10, -10); got != 20 {
		t.Errorf("TestUnsignedAbsAndAbsDiff: AbsDiff(10, -10): got %d, want 20", got)
	}
}

// crossCheck verifies one cross sign operation against the exact result.
func crossCheck[R Integer](t *testing.T, name string, a, b int64, exact *big.Int, cv R, ok bool, ov R, o bool, wv R, sv R) {
	t.Helper()
	lo, hi := bounds[R]()
	fits := exact.Cmp(lo) >= 0 && exact.Cmp(hi) <= 0
	want := wrapBig[R](exact)
	switch {
	case ok != fits:
		t.Fatalf("%s(%d, %d): checked ok=%v, want %v", name, a, b, ok, fits)
	case o == ok:
		t.Fatalf("%s(%d, %d): overflowing flag %v == checked ok", name, a, b, o)
	case ov != wv || wv != want:
		t.Fatalf("%s(%d, %d): wrapping got %v, overflowing got %v, want %v", name, a, b, wv, ov, want)
	case ok && cv != want:
		t.Fatalf("%s(%d, %d): checked got %v, want %v", name, a, b, cv, want)
	}
	wantSat := want
	switch {
	case exact.Cmp(lo) < 0:
		wantSat = minInt[R]()
	case exact.Cmp(hi) > 0:
		wantSat = maxInt[R]()
	}
	if sv != wantSat {
		t.Fatalf("%s(%d, %d): saturating got %v, want %v", name, a, b, sv, wantSat)
	}
}

func TestCrossSignExhaustive8(t *testing.T) {
	c := I8
	for i := range 256 {
		for j := range 256 {
			s, u := int8(i), uint8(j)
			bs, bu := big.NewInt(int64(s)), big.NewInt(int64(u))

			cv, ok := c.CheckedAddUnsigned(s, u)
			ov, o := c.OverflowingAddUnsigned(s, u)
			crossCheck(t, "AddUnsigned", int64(s), int64(u), new(big.Int).Add(bs, bu),
				cv, ok, ov, o, c.WrappingAddUnsigned(s, u), c.SaturatingAddUnsigned(s, u))

			cv, ok = c.CheckedSubUnsigned(s, u)
			ov, o = c.OverflowingSubUnsigned(s, u)
			crossCheck(t, "SubUnsigned", int64(s), int64(u), new(big.Int).Sub(bs, bu),
				cv, ok, ov, o, c.WrappingSubUnsigned(s, u), c.SaturatingSubUnsigned(s, u))

			ucv, uok := c.CheckedAddSigned(u, s)
			uov, uo := c.OverflowingAddSigned(u, s)
			crossCheck(t, "AddSigned", int64(u), int64(s), new(big.Int).Add(bu, bs),
				ucv, uok, uov, uo, c.WrappingAddSigned(u, s), c.SaturatingAddSigned(u, s))

			ucv, uok = c.CheckedSubSigned(u, s)
			uov, uo = c.OverflowingSubSigned(u, s)
			crossCheck(t, "SubSigned", int64(u), int64(s), new(big.Int).Sub(bu, bs),
				ucv, uok, uov, uo, c.WrappingSubSigned(u, s), c.SaturatingSubSigned(u, s))
		}
	}
}

func TestCrossSign64(t *testing.T) {
	if got, ok := I64.CheckedAddUnsigned(math.MinInt64, math.MaxUint64); !ok || got != math.MaxInt64 {
		t.Errorf("TestCrossSign64: CheckedAddUnsigned(min, MaxUint64): got (%d, %v)", got, ok)
	}
	if _, ok := I64.CheckedAddUnsigned(0, 1<<63); ok {
		t.Errorf("TestCrossSign64: CheckedAddUnsigned(0, 2^63): got ok")
	}
	if got := I64.SaturatingSubUnsigned(0, math.MaxUint64); got != math.MinInt64 {
		t.Errorf("TestCrossSign64: SaturatingSubUnsigned(0, MaxUint64): got %d", got)
	}
	if got, ok := I64.CheckedAddSigned(5, -5); !ok || got != 0 {
		t.Errorf("TestCrossSign64: CheckedAddSigned(5, -5): got (%d, %v)", got, ok)
	}
	if got := I64.SaturatingAddSigned(5, -6); got != 0 {
		t.Errorf("TestCrossSign64: SaturatingAddSigned(5, -6): got %d", got)
	}
	if got := I64.SaturatingSubSigned(math.MaxUint64, -1); got != math.MaxUint64 {
		t.Errorf("TestCrossSign64: SaturatingSubSigned(MaxUint64, -1): got %d", got)
	}
	if got, o := I64.OverflowingSubSigned(0, math.MinInt64); got != 1<<63 || o {
		t.Errorf("TestCrossSign64: OverflowingSubSigned(0, min): got (%d, %v)", got, o)
	}
}
