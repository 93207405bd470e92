package numy

import (
	"github.com/bearlytools/numy/internal/bits"
)

// This file holds the four overflow policy families for integers. The Overflowing* form of
// each operation is the primitive, the other policies are derived from it so that
// CheckedX fails exactly when OverflowingX reports overflow and WrappingX equals the value
// half of OverflowingX.

// OverflowingAdd returns a+b modulo 2^Bits and whether the true sum was not representable.
func OverflowingAdd[T Integer](a, b T) (T, bool) {
	r := a + b
	if bits.Signed[T]() {
		return r, (a^r)&(b^r) < 0
	}
	return r, r < a
}

// CheckedAdd returns a+b. ok is false if the sum overflows.
func CheckedAdd[T Integer](a, b T) (T, bool) {
	r, o := OverflowingAdd(a, b)
	if o {
		return 0, false
	}
	return r, true
}

// WrappingAdd returns a+b modulo 2^Bits.
func WrappingAdd[T Integer](a, b T) T {
	return a + b
}

// SaturatingAdd returns a+b clamped to [MinValue, MaxValue].
func SaturatingAdd[T Integer](a, b T) T {
	r, o := OverflowingAdd(a, b)
	if !o {
		return r
	}
	if b < 0 {
		return minInt[T]()
	}
	return maxInt[T]()
}

// OverflowingSub returns a-b modulo 2^Bits and whether the true difference was not representable.
func OverflowingSub[T Integer](a, b T) (T, bool) {
	r := a - b
	if bits.Signed[T]() {
		return r, (a^b)&(a^r) < 0
	}
	return r, b > a
}

// CheckedSub returns a-b. ok is false if the difference overflows.
func CheckedSub[T Integer](a, b T) (T, bool) {
	r, o := OverflowingSub(a, b)
	if o {
		return 0, false
	}
	return r, true
}

// WrappingSub returns a-b modulo 2^Bits.
func WrappingSub[T Integer](a, b T) T {
	return a - b
}

// SaturatingSub returns a-b clamped to [MinValue, MaxValue].
func SaturatingSub[T Integer](a, b T) T {
	r, o := OverflowingSub(a, b)
	if !o {
		return r
	}
	if b < 0 {
		return maxInt[T]()
	}
	return minInt[T]()
}

// OverflowingMul returns a*b modulo 2^Bits and whether the true product was not representable.
func OverflowingMul[T Integer](a, b T) (T, bool) {
	r := a * b
	if a == 0 {
		return r, false
	}
	// r/a cannot see this one: MIN/-1 wraps back to MIN.
	if bits.Signed[T]() && a == negOne[T]() && b == minInt[T]() {
		return r, true
	}
	return r, r/a != b
}

// CheckedMul returns a*b. ok is false if the product overflows.
func CheckedMul[T Integer](a, b T) (T, bool) {
	r, o := OverflowingMul(a, b)
	if o {
		return 0, false
	}
	return r, true
}

// WrappingMul returns a*b modulo 2^Bits.
func WrappingMul[T Integer](a, b T) T {
	return a * b
}

// SaturatingMul returns a*b clamped to [MinValue, MaxValue].
func SaturatingMul[T Integer](a, b T) T {
	r, o := OverflowingMul(a, b)
	if !o {
		return r
	}
	if (a < 0) != (b < 0) {
		return minInt[T]()
	}
	return maxInt[T]()
}

// divOverflows reports the single overflowing division, MinValue / -1.
func divOverflows[T Integer](a, b T) bool {
	return bits.Signed[T]() && a == minInt[T]() && b == negOne[T]()
}

// OverflowingDiv returns a/b truncated toward zero. MinValue / -1 returns (MinValue, true).
// A zero divisor panics.
func OverflowingDiv[T Integer](a, b T) (T, bool) {
	return a / b, divOverflows(a, b)
}

// CheckedDiv returns a/b. ok is false if b is 0 or the quotient overflows.
func CheckedDiv[T Integer](a, b T) (T, bool) {
	if b == 0 || divOverflows(a, b) {
		return 0, false
	}
	return a / b, true
}

// WrappingDiv returns a/b, MinValue / -1 is MinValue. A zero divisor panics.
func WrappingDiv[T Integer](a, b T) T {
	return a / b
}

// SaturatingDiv returns a/b, MinValue / -1 is MaxValue. A zero divisor panics.
func SaturatingDiv[T Integer](a, b T) T {
	if divOverflows(a, b) {
		return maxInt[T]()
	}
	return a / b
}

// DivEuclid returns the Euclidean quotient q of a/b, the q for which a = b*q + r with
// 0 <= r < |b|. MinValue / -1 wraps to MinValue. A zero divisor panics.
func DivEuclid[T Integer](a, b T) T {
	q := a / b
	if a%b < 0 {
		if b > 0 {
			return q - 1
		}
		return q + 1
	}
	return q
}

// OverflowingDivEuclid is DivEuclid plus the MinValue / -1 overflow flag.
func OverflowingDivEuclid[T Integer](a, b T) (T, bool) {
	return DivEuclid(a, b), divOverflows(a, b)
}

// CheckedDivEuclid returns DivEuclid(a, b). ok is false if b is 0 or the quotient overflows.
func CheckedDivEuclid[T Integer](a, b T) (T, bool) {
	if b == 0 || divOverflows(a, b) {
		return 0, false
	}
	return DivEuclid(a, b), true
}

// WrappingDivEuclid is DivEuclid.
func WrappingDivEuclid[T Integer](a, b T) T {
	return DivEuclid(a, b)
}

// OverflowingRem returns a%b. MinValue % -1 returns (0, true). A zero divisor panics.
func OverflowingRem[T Integer](a, b T) (T, bool) {
	return a % b, divOverflows(a, b)
}

// CheckedRem returns a%b. ok is false if b is 0 or for MinValue % -1.
func CheckedRem[T Integer](a, b T) (T, bool) {
	if b == 0 || divOverflows(a, b) {
		return 0, false
	}
	return a % b, true
}

// WrappingRem returns a%b, MinValue % -1 is 0. A zero divisor panics.
func WrappingRem[T Integer](a, b T) T {
	return a % b
}

// RemEuclid returns the least nonnegative remainder of a/b. A zero divisor panics.
func RemEuclid[T Integer](a, b T) T {
	r := a % b
	if r < 0 {
		if b < 0 {
			return r - b
		}
		return r + b
	}
	return r
}

// OverflowingRemEuclid is RemEuclid plus the MinValue / -1 overflow flag.
func OverflowingRemEuclid[T Integer](a, b T) (T, bool) {
	return RemEuclid(a, b), divOverflows(a, b)
}

// CheckedRemEuclid returns RemEuclid(a, b). ok is false if b is 0 or for MinValue % -1.
func CheckedRemEuclid[T Integer](a, b T) (T, bool) {
	if b == 0 || divOverflows(a, b) {
		return 0, false
	}
	return RemEuclid(a, b), true
}

// WrappingRemEuclid is RemEuclid.
func WrappingRemEuclid[T Integer](a, b T) T {
	return RemEuclid(a, b)
}

// OverflowingNeg returns -a modulo 2^Bits. For signed types only -MinValue overflows, for
// unsigned types every nonzero a does.
func OverflowingNeg[T Integer](a T) (T, bool) {
	if bits.Signed[T]() {
		return -a, a == minInt[T]()
	}
	return -a, a != 0
}

// CheckedNeg returns -a. ok is false if the negation overflows.
func CheckedNeg[T Integer](a T) (T, bool) {
	r, o := OverflowingNeg(a)
	if o {
		return 0, false
	}
	return r, true
}

// WrappingNeg returns -a modulo 2^Bits.
func WrappingNeg[T Integer](a T) T {
	return -a
}

// OverflowingShl returns a << (n mod Bits) and whether n >= Bits.
func OverflowingShl[T Integer](a T, n uint32) (T, bool) {
	w := Bits[T]()
	return a << (n & (w - 1)), n >= w
}

// CheckedShl returns a << n. ok is false if n >= Bits.
func CheckedShl[T Integer](a T, n uint32) (T, bool) {
	if n >= Bits[T]() {
		return 0, false
	}
	return a << n, true
}

// WrappingShl returns a << (n mod Bits).
func WrappingShl[T Integer](a T, n uint32) T {
	return a << (n & (Bits[T]() - 1))
}

// OverflowingShr returns a >> (n mod Bits) and whether n >= Bits. Signed types shift arithmetically.
func OverflowingShr[T Integer](a T, n uint32) (T, bool) {
	w := Bits[T]()
	return a >> (n & (w - 1)), n >= w
}

// CheckedShr returns a >> n. ok is false if n >= Bits.
func CheckedShr[T Integer](a T, n uint32) (T, bool) {
	if n >= Bits[T]() {
		return 0, false
	}
	return a >> n, true
}

// WrappingShr returns a >> (n mod Bits).
func WrappingShr[T Integer](a T, n uint32) T {
	return a >> (n & (Bits[T]() - 1))
}

// OverflowingPow returns base**exp modulo 2^Bits and whether any step overflowed.
// Pow(x, 0) is 1 for every x, including 0.
func OverflowingPow[T Integer](base T, exp uint32) (T, bool) {
	if exp == 0 {
		return 1, false
	}
	var (
		acc      T = 1
		overflow bool
		o        bool
	)
	for {
		if exp&1 == 1 {
			acc, o = OverflowingMul(acc, base)
			overflow = overflow || o
			if exp == 1 {
				return acc, overflow
			}
		}
		exp >>= 1
		base, o = OverflowingMul(base, base)
		overflow = overflow || o
	}
}

// CheckedPow returns base**exp. ok is false if the result overflows.
func CheckedPow[T Integer](base T, exp uint32) (T, bool) {
	r, o := OverflowingPow(base, exp)
	if o {
		return 0, false
	}
	return r, true
}

// WrappingPow returns base**exp modulo 2^Bits.
func WrappingPow[T Integer](base T, exp uint32) T {
	r, _ := OverflowingPow(base, exp)
	return r
}

// SaturatingPow returns base**exp clamped to [MinValue, MaxValue].
func SaturatingPow[T Integer](base T, exp uint32) T {
	r, o := OverflowingPow(base, exp)
	if !o {
		return r
	}
	if base < 0 && exp%2 == 1 {
		return minInt[T]()
	}
	return maxInt[T]()
}

// Pow returns base**exp. Overflow wraps, use CheckedPow or SaturatingPow to detect it.
func Pow[T Integer](base T, exp uint32) T {
	return WrappingPow(base, exp)
}

// Midpoint returns (a+b)/2 without intermediate overflow. Unsigned results round down,
// signed results round toward zero.
func Midpoint[T Integer](a, b T) T {
	m := a&b + (a^b)>>1
	if m < 0 && (a^b)&1 != 0 {
		m++
	}
	return m
}
