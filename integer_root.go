package numy

import (
	"fmt"
)

// isqrt64 is the digit by digit square root of n rounded down.
func isqrt64(n uint64) uint64 {
	var r uint64
	bit := uint64(1) << 62
	for bit > n {
		bit >>= 2
	}
	for bit != 0 {
		if n >= r+bit {
			n -= r + bit
			r = r>>1 + bit
		} else {
			r >>= 1
		}
		bit >>= 2
	}
	return r
}

// CheckedIsqrt returns the square root of x rounded down. ok is false if x is negative.
func CheckedIsqrt[T Integer](x T) (T, bool) {
	if x < 0 {
		return 0, false
	}
	return T(isqrt64(uint64(x))), true
}

// Isqrt returns the square root of x rounded down. It panics if x is negative.
func Isqrt[T Integer](x T) T {
	r, ok := CheckedIsqrt(x)
	if !ok {
		panic(fmt.Sprintf("argument of integer square root cannot be negative: %v", x))
	}
	return r
}

// CheckedIlog returns the base "base" logarithm of x rounded down.
// ok is false if x <= 0 or base < 2.
func CheckedIlog[T Integer](x, base T) (uint32, bool) {
	if x <= 0 || base < 2 {
		return 0, false
	}
	var n uint32
	for x >= base {
		x /= base
		n++
	}
	return n, true
}

// CheckedIlog2 returns the base 2 logarithm of x rounded down. ok is false if x <= 0.
func CheckedIlog2[T Integer](x T) (uint32, bool) {
	if x <= 0 {
		return 0, false
	}
	return Bits[T]() - 1 - LeadingZeros(x), true
}

// CheckedIlog10 returns the base 10 logarithm of x rounded down. ok is false if x <= 0.
func CheckedIlog10[T Integer](x T) (uint32, bool) {
	return CheckedIlog(x, 10)
}

// Ilog returns the base "base" logarithm of x rounded down.
// It panics if base < 2 or x <= 0.
func Ilog[T Integer](x, base T) uint32 {
	if base < 2 {
		panic(fmt.Sprintf("base of integer logarithm must be at least 2, got %v", base))
	}
	n, ok := CheckedIlog(x, base)
	if !ok {
		panicNonPositiveLog(x)
	}
	return n
}

// Ilog2 returns the base 2 logarithm of x rounded down. It panics if x <= 0.
func Ilog2[T Integer](x T) uint32 {
	n, ok := CheckedIlog2(x)
	if !ok {
		panicNonPositiveLog(x)
	}
	return n
}

// Ilog10 returns the base 10 logarithm of x rounded down. It panics if x <= 0.
func Ilog10[T Integer](x T) uint32 {
	n, ok := CheckedIlog10(x)
	if !ok {
		panicNonPositiveLog(x)
	}
	return n
}

func panicNonPositiveLog[T Integer](x T) {
	panic(fmt.Sprintf("argument of integer logarithm must be positive, got %v", x))
}
