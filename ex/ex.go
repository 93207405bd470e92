// Package ex holds optional numeric extensions that do not belong to every Number: the
// difference and absolute value with one signature across signed, unsigned and float types.
package ex

import (
	"math"

	"github.com/bearlytools/numy"
	"github.com/bearlytools/numy/internal/bits"
)

// Diff returns the difference between a and b.
//
// For unsigned types this is |a-b| and never underflows. For signed integers and floats it
// is a-b, which is negative when a < b and wraps for signed integers whose difference does
// not fit. Code that is generic over both must not assume a sign.
func Diff[T numy.Number](a, b T) T {
	if !numy.IsSigned[T]() && a < b {
		return b - a
	}
	return a - b
}

// Abs returns the absolute value of x. Unsigned values are returned as is, signed MinValue
// wraps to MinValue and floats have their sign bit cleared.
func Abs[T numy.Number](x T) T {
	switch {
	case numy.IsFloat[T]():
		// Clear the sign bit at the float's own width; a float32 converted to float64
		// would lose a signaling NaN's payload.
		if bits.Width[T]() == 32 {
			return T(math.Float32frombits(math.Float32bits(float32(x)) &^ uint32(bits.SignBit(32))))
		}
		return T(math.Float64frombits(math.Float64bits(float64(x)) &^ bits.SignBit(64)))
	case x < 0:
		return -x
	}
	return x
}
