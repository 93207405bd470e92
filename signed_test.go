package numy

import (
	"math"
	"testing"
)

func TestSignPredicates(t *testing.T) {
	negZero := math.Copysign(0, -1)
	negNaN := math.Float64frombits(0xFFF8000000000001)

	tests := []struct {
		name     string
		x        float64
		negative bool
		positive bool
	}{
		{"+0.0", 0, false, true},
		{"-0.0", negZero, true, false},
		{"1.5", 1.5, false, true},
		{"-Inf", math.Inf(-1), true, false},
		{"+NaN", math.NaN(), false, true},
		{"-NaN", negNaN, true, false},
	}
	for _, test := range tests {
		if got := IsNegative(test.x); got != test.negative {
			t.Errorf("TestSignPredicates(%s): IsNegative: got %v, want %v", test.name, got, test.negative)
		}
		if got := IsPositive(test.x); got != test.positive {
			t.Errorf("TestSignPredicates(%s): IsPositive: got %v, want %v", test.name, got, test.positive)
		}
	}
	if !IsNegative(float32(negZero)) {
		t.Errorf("TestSignPredicates: float32 -0.0 is not negative")
	}

	if IsNegative[int32](0) || IsPositive[int32](0) {
		t.Errorf("TestSignPredicates: integer 0 must be neither negative nor positive")
	}
	if !IsNegative[int8](-1) || !IsPositive[int64](1) {
		t.Errorf("TestSignPredicates: integer sign predicates are wrong")
	}
}

func TestNegOneAndAbs(t *testing.T) {
	if NegOne[int8]() != -1 || NegOne[float32]() != -1 || NegOne[celsius]() != -1 {
		t.Errorf("TestNegOneAndAbs: NegOne is wrong")
	}
	if got := Abs[int16](-300); got != 300 {
		t.Errorf("TestNegOneAndAbs: Abs(-300): got %d", got)
	}
	if got := Abs[int8](math.MinInt8); got != math.MinInt8 {
		t.Errorf("TestNegOneAndAbs: Abs(int8 min) must wrap: got %d", got)
	}
	if got := Abs(math.Copysign(0, -1)); math.Signbit(got) {
		t.Errorf("TestNegOneAndAbs: Abs(-0.0) kept its sign bit")
	}
	if got := Abs(float32(-2.5)); got != 2.5 {
		t.Errorf("TestNegOneAndAbs: Abs(float32 -2.5): got %v", got)
	}
	negNaN := math.Float64frombits(0xFFF0000000000123)
	if got := math.Float64bits(Abs(negNaN)); got != 0x7FF0000000000123 {
		t.Errorf("TestNegOneAndAbs: Abs(-NaN) must only clear the sign bit: got %#x", got)
	}
}

func TestSignum(t *testing.T) {
	if Signum[int32](-40) != -1 || Signum[int32](0) != 0 || Signum[int32](9) != 1 {
		t.Errorf("TestSignum: integer Signum is wrong")
	}
	if got := Signum(math.Copysign(0, -1)); got != -1 {
		t.Errorf("TestSignum(-0.0): got %v, want -1", got)
	}
	if got := Signum(float32(0)); got != 1 {
		t.Errorf("TestSignum(+0.0): got %v, want 1", got)
	}
	if got := Signum(-7.5); got != -1 {
		t.Errorf("TestSignum(-7.5): got %v, want -1", got)
	}
	if got := Signum(math.NaN()); !math.IsNaN(got) {
		t.Errorf("TestSignum(NaN): got %v, want NaN", got)
	}
}

func TestAbsPolicies(t *testing.T) {
	for i := range 256 {
		x := int8(i)
		ov, o := OverflowingAbs(x)
		cv, ok := CheckedAbs(x)
		isMin := x == math.MinInt8
		if o != isMin || ok == isMin {
			t.Fatalf("TestAbsPolicies(%d): overflow=%v ok=%v", x, o, ok)
		}
		if ov != WrappingAbs(x) {
			t.Fatalf("TestAbsPolicies(%d): OverflowingAbs %d != WrappingAbs %d", x, ov, WrappingAbs(x))
		}
		want := x
		if x < 0 {
			want = -x
		}
		if ok && cv != want {
			t.Fatalf("TestAbsPolicies(%d): CheckedAbs: got %d, want %d", x, cv, want)
		}
		sv := SaturatingAbs(x)
		if (isMin && sv != math.MaxInt8) || (!isMin && sv != want) {
			t.Fatalf("TestAbsPolicies(%d): SaturatingAbs: got %d", x, sv)
		}
	}
}
