package numy

// NegOne returns -1 as a T.
func NegOne[T Signed]() T {
	var x T
	return x - 1
}

// IsNegative reports if x is negative. Floats consult the sign bit, so -0.0 and NaNs with
// a set sign bit are negative.
func IsNegative[T Signed](x T) bool {
	if IsFloat[T]() {
		return signBit(x)
	}
	return x < 0
}

// IsPositive reports if x is positive. Floats consult the sign bit, so +0.0 and NaNs with
// a clear sign bit are positive. Integer 0 is neither positive nor negative.
func IsPositive[T Signed](x T) bool {
	if IsFloat[T]() {
		return !signBit(x)
	}
	return x > 0
}

// Abs returns the absolute value of x. For floats the sign bit is cleared (NaN stays NaN).
// For integers Abs(MinValue) wraps to MinValue, use CheckedAbs or SaturatingAbs to avoid it.
func Abs[T Signed](x T) T {
	if IsFloat[T]() {
		return floatFromBits[T](floatBits(x) &^ signMask[T]())
	}
	if x < 0 {
		return -x
	}
	return x
}

// Signum returns -1, 0 or 1 for integers. For floats it returns 1.0 for +0.0 and positive
// values, -1.0 for -0.0 and negative values and NaN for NaN.
func Signum[T Signed](x T) T {
	if IsFloat[T]() {
		if x != x {
			return x
		}
		one := floatBits(T(1))
		return floatFromBits[T](one | floatBits(x)&signMask[T]())
	}
	switch {
	case x < 0:
		return NegOne[T]()
	case x > 0:
		return 1
	}
	return 0
}

// OverflowingAbs returns the wrapping absolute value of x and whether x was MinValue.
func OverflowingAbs[T SignedInteger](x T) (T, bool) {
	return Abs(x), x == minInt[T]()
}

// CheckedAbs returns |x|. ok is false for MinValue.
func CheckedAbs[T SignedInteger](x T) (T, bool) {
	if x == minInt[T]() {
		return 0, false
	}
	return Abs(x), true
}

// WrappingAbs returns |x| modulo 2^Bits, MinValue stays MinValue.
func WrappingAbs[T SignedInteger](x T) T {
	return Abs(x)
}

// SaturatingAbs returns |x|, MinValue saturates to MaxValue.
func SaturatingAbs[T SignedInteger](x T) T {
	if x == minInt[T]() {
		return maxInt[T]()
	}
	return Abs(x)
}

// SaturatingNeg returns -x, -MinValue saturates to MaxValue.
func SaturatingNeg[T SignedInteger](x T) T {
	if x == minInt[T]() {
		return maxInt[T]()
	}
	return -x
}
