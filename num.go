package numy

import (
	"fmt"
	"math"

	"github.com/bearlytools/numy/internal/bits"
)

// Zero returns 0 as a T.
func Zero[T Number]() T { return 0 }

// One returns 1 as a T.
func One[T Number]() T { return 1 }

// Two returns 2 as a T.
func Two[T Number]() T { return 2 }

// IsFloat reports if T is a floating-point type.
func IsFloat[T Number]() bool {
	var half T = 1
	half /= 2
	return half != 0
}

// IsSigned reports if T can represent negative values.
func IsSigned[T Number]() bool {
	var z T
	return z-1 < 0
}

// MinValue returns the smallest finite value of T. For floats that is -MaxFloat, not -Inf.
func MinValue[T Number]() T {
	if IsFloat[T]() {
		f := -math.MaxFloat64
		if bits.Width[T]() == 32 {
			f = -math.MaxFloat32
		}
		return T(f)
	}
	if !IsSigned[T]() {
		return 0
	}
	m := int64(-1) << (bits.Width[T]() - 1)
	return T(m)
}

// MaxValue returns the largest finite value of T. For floats that is MaxFloat, not +Inf.
func MaxValue[T Number]() T {
	if IsFloat[T]() {
		f := math.MaxFloat64
		if bits.Width[T]() == 32 {
			f = math.MaxFloat32
		}
		return T(f)
	}
	m := bits.Mask(bits.Width[T]())
	if IsSigned[T]() {
		m >>= 1
	}
	return T(m)
}

// Min returns the smaller of a and b. For floats a NaN operand is ignored and the other
// operand returned; if both are NaN, NaN is returned. This differs from the builtin min,
// which propagates NaN.
func Min[T Number](a, b T) T {
	switch {
	case isNaN(a):
		return b
	case isNaN(b):
		return a
	case b < a:
		return b
	}
	return a
}

// Max returns the larger of a and b with the same NaN handling as Min.
func Max[T Number](a, b T) T {
	switch {
	case isNaN(a):
		return b
	case isNaN(b):
		return a
	case b > a:
		return b
	}
	return a
}

// Clamp restricts x to [lo, hi]. A NaN x is returned unchanged.
// Precondition: lo <= hi and neither bound is NaN. Violating it panics.
func Clamp[T Number](x, lo, hi T) T {
	if !(lo <= hi) {
		panic(fmt.Sprintf("numy.Clamp: min (%v) > max (%v), or either was NaN", lo, hi))
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func isNaN[T Number](x T) bool {
	return x != x
}
