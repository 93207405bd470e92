package numy

import (
	"math"

	"github.com/bearlytools/numy/internal/bits"
)

// Floats are computed through float64 and the math package and rounded back to the
// operand type. For float32 the IEEE operations (+ - * / Sqrt and the rounding family) are
// still exact because float64 has more than twice the precision. Transcendentals carry the
// tolerance of the math package.

// is32 reports if T is 32 bits wide. Only meaningful when T is a float.
func is32[T Number]() bool {
	return bits.Width[T]() == 32
}

// floatBits returns the IEEE-754 bit pattern of x, zero extended for float32.
func floatBits[T Number](x T) uint64 {
	if is32[T]() {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

// floatFromBits is the inverse of floatBits.
func floatFromBits[T Number](b uint64) T {
	if is32[T]() {
		return T(math.Float32frombits(uint32(b)))
	}
	return T(math.Float64frombits(b))
}

// signMask is the sign bit of T's float pattern.
func signMask[T Number]() uint64 {
	return bits.SignBit(bits.Width[T]())
}

// signBit reports if the sign bit of float x is set.
func signBit[T Number](x T) bool {
	return floatBits(x)&signMask[T]() != 0
}

// expMantBits returns the exponent and mantissa field widths of T.
func expMantBits[T Number]() (exp, mant uint) {
	if is32[T]() {
		return 8, 23
	}
	return 11, 52
}

// Radix returns the base of the internal representation of F.
func Radix[F Float]() uint32 { return 2 }

// MantissaDigits returns the number of significant base 2 digits of F, including the implicit bit.
func MantissaDigits[F Float]() uint32 {
	if is32[F]() {
		return 24
	}
	return 53
}

// Digits returns the number of decimal digits that survive a round trip through F.
func Digits[F Float]() uint32 {
	if is32[F]() {
		return 6
	}
	return 15
}

// Epsilon returns the difference between 1.0 and the next larger F.
func Epsilon[F Float]() F {
	if is32[F]() {
		return floatFromBits[F](0x34000000)
	}
	return floatFromBits[F](0x3CB0000000000000)
}

// MinPositive returns the smallest positive normal F.
func MinPositive[F Float]() F {
	if is32[F]() {
		return floatFromBits[F](0x00800000)
	}
	return floatFromBits[F](0x0010000000000000)
}

// MinExp returns one more than the minimum normal power of 2 exponent.
func MinExp[F Float]() int32 {
	if is32[F]() {
		return -125
	}
	return -1021
}

// MaxExp returns one more than the maximum power of 2 exponent.
func MaxExp[F Float]() int32 {
	if is32[F]() {
		return 128
	}
	return 1024
}

// Min10Exp returns the minimum n such that 10**n is a normal F.
func Min10Exp[F Float]() int32 {
	if is32[F]() {
		return -37
	}
	return -307
}

// Max10Exp returns the maximum n such that 10**n is a finite F.
func Max10Exp[F Float]() int32 {
	if is32[F]() {
		return 38
	}
	return 308
}

// NaN returns the canonical quiet NaN of F.
func NaN[F Float]() F {
	if is32[F]() {
		return floatFromBits[F](0x7FC00000)
	}
	return floatFromBits[F](0x7FF8000000000000)
}

// Inf returns positive infinity.
func Inf[F Float]() F { return F(math.Inf(1)) }

// NegInf returns negative infinity.
func NegInf[F Float]() F { return F(math.Inf(-1)) }

// Floor returns the greatest integer value <= x.
func Floor[F Float](x F) F { return F(math.Floor(float64(x))) }

// Ceil returns the least integer value >= x.
func Ceil[F Float](x F) F { return F(math.Ceil(float64(x))) }

// Trunc returns the integer part of x.
func Trunc[F Float](x F) F { return F(math.Trunc(float64(x))) }

// Fract returns the fractional part of x, x - Trunc(x).
func Fract[F Float](x F) F { return x - Trunc(x) }

// Round returns the nearest integer, rounding half away from zero.
func Round[F Float](x F) F { return F(math.Round(float64(x))) }

// RoundTiesEven returns the nearest integer, rounding half to even.
func RoundTiesEven[F Float](x F) F { return F(math.RoundToEven(float64(x))) }

// MulAdd returns x*y + z computed with a single rounding.
func MulAdd[F Float](x, y, z F) F {
	if is32[F]() {
		return F(fma32(float32(x), float32(y), float32(z)))
	}
	return F(math.FMA(float64(x), float64(y), float64(z)))
}

// fma32 is a correctly rounded float32 fused multiply-add. The product of two float32s is
// exact in float64. The sum is rounded to odd in float64, which has more than 2*24+2 bits
// of precision, so the final conversion to float32 rounds once.
func fma32(x, y, z float32) float32 {
	p, w := float64(x)*float64(y), float64(z)
	s := p + w
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}
	// TwoSum: err is the exact rounding error of s.
	bb := s - p
	err := (p - (s - bb)) + (w - bb)
	if err == 0 {
		return float32(s)
	}
	b := math.Float64bits(s)
	if b&1 == 0 {
		// Step to the odd neighbour that lies between s and the exact sum.
		if (err > 0) == (s > 0) {
			b++
		} else {
			b--
		}
	}
	return float32(math.Float64frombits(b))
}

// FloatDivEuclid returns the Euclidean quotient of a/b, the integer valued q for which
// a = b*q + FloatRemEuclid(a, b). It is DivEuclid for floats.
func FloatDivEuclid[F Float](a, b F) F {
	q := Trunc(a / b)
	if F(math.Mod(float64(a), float64(b))) < 0 {
		if b > 0 {
			return q - 1
		}
		return q + 1
	}
	return q
}

// FloatRemEuclid returns the least nonnegative remainder of a/b (up to rounding).
// It is RemEuclid for floats.
func FloatRemEuclid[F Float](a, b F) F {
	r := F(math.Mod(float64(a), float64(b)))
	if r < 0 {
		return r + Abs(b)
	}
	return r
}

// Powi returns x**n.
func Powi[F Float](x F, n int32) F { return F(math.Pow(float64(x), float64(n))) }

// Powf returns x**y.
func Powf[F Float](x, y F) F { return F(math.Pow(float64(x), float64(y))) }

// Sqrt returns the square root of x. Sqrt of a negative number other than -0 is NaN.
func Sqrt[F Float](x F) F { return F(math.Sqrt(float64(x))) }

// Cbrt returns the cube root of x.
func Cbrt[F Float](x F) F { return F(math.Cbrt(float64(x))) }

// Hypot returns Sqrt(x*x + y*y) without undue overflow or underflow.
func Hypot[F Float](x, y F) F { return F(math.Hypot(float64(x), float64(y))) }

// Recip returns 1/x.
func Recip[F Float](x F) F { return 1 / x }

// FloatMidpoint returns (a+b)/2 without overflowing to infinity. It is Midpoint for floats.
func FloatMidpoint[F Float](a, b F) F {
	lo := MinPositive[F]() * 2
	hi := MaxValue[F]() / 2
	absA, absB := Abs(a), Abs(b)
	switch {
	case absA <= hi && absB <= hi:
		return (a + b) / 2
	case absA < lo:
		return a + b/2
	case absB < lo:
		return a/2 + b
	}
	return a/2 + b/2
}

// Copysign returns a value with the magnitude of x and the sign bit of y. NaN is accepted
// for either argument.
func Copysign[F Float](x, y F) F {
	s := signMask[F]()
	return floatFromBits[F](floatBits(x)&^s | floatBits(y)&s)
}

// Exp returns e**x.
func Exp[F Float](x F) F { return F(math.Exp(float64(x))) }

// Exp2 returns 2**x.
func Exp2[F Float](x F) F { return F(math.Exp2(float64(x))) }

// ExpM1 returns e**x - 1, accurate for x near zero.
func ExpM1[F Float](x F) F { return F(math.Expm1(float64(x))) }

// Ln returns the natural logarithm of x.
func Ln[F Float](x F) F { return F(math.Log(float64(x))) }

// Ln1p returns Ln(1+x), accurate for x near zero.
func Ln1p[F Float](x F) F { return F(math.Log1p(float64(x))) }

// Log returns the logarithm of x in the given base.
func Log[F Float](x, base F) F {
	return F(math.Log(float64(x)) / math.Log(float64(base)))
}

// Log2 returns the base 2 logarithm of x.
func Log2[F Float](x F) F { return F(math.Log2(float64(x))) }

// Log10 returns the base 10 logarithm of x.
func Log10[F Float](x F) F { return F(math.Log10(float64(x))) }

// Sin returns the sine of x in radians.
func Sin[F Float](x F) F { return F(math.Sin(float64(x))) }

// Cos returns the cosine of x in radians.
func Cos[F Float](x F) F { return F(math.Cos(float64(x))) }

// Tan returns the tangent of x in radians.
func Tan[F Float](x F) F { return F(math.Tan(float64(x))) }

// Asin returns the arcsine of x, in radians.
func Asin[F Float](x F) F { return F(math.Asin(float64(x))) }

// Acos returns the arccosine of x, in radians.
func Acos[F Float](x F) F { return F(math.Acos(float64(x))) }

// Atan returns the arctangent of x, in radians.
func Atan[F Float](x F) F { return F(math.Atan(float64(x))) }

// Atan2 returns the arc tangent of y/x using the signs of both to pick the quadrant.
func Atan2[F Float](y, x F) F { return F(math.Atan2(float64(y), float64(x))) }

// SinCos returns Sin(x), Cos(x).
func SinCos[F Float](x F) (sin, cos F) {
	s, c := math.Sincos(float64(x))
	return F(s), F(c)
}

// Sinh returns the hyperbolic sine of x.
func Sinh[F Float](x F) F { return F(math.Sinh(float64(x))) }

// Cosh returns the hyperbolic cosine of x.
func Cosh[F Float](x F) F { return F(math.Cosh(float64(x))) }

// Tanh returns the hyperbolic tangent of x.
func Tanh[F Float](x F) F { return F(math.Tanh(float64(x))) }

// Asinh returns the inverse hyperbolic sine of x.
func Asinh[F Float](x F) F { return F(math.Asinh(float64(x))) }

// Acosh returns the inverse hyperbolic cosine of x.
func Acosh[F Float](x F) F { return F(math.Acosh(float64(x))) }

// Atanh returns the inverse hyperbolic tangent of x.
func Atanh[F Float](x F) F { return F(math.Atanh(float64(x))) }

// ToDegrees converts radians to degrees.
func ToDegrees[F Float](x F) F { return x * F(180/math.Pi) }

// ToRadians converts degrees to radians.
func ToRadians[F Float](x F) F { return x * F(math.Pi/180) }

//go:generate go tool github.com/johnsiilver/stringer -type=Category -linecomment

// Category is the IEEE-754 class of a float.
type Category uint8

const (
	// CatNaN is any NaN.
	CatNaN Category = iota // nan
	// CatInfinite is positive or negative infinity.
	CatInfinite // infinite
	// CatZero is positive or negative zero.
	CatZero // zero
	// CatSubnormal is a nonzero value with a zero exponent field.
	CatSubnormal // subnormal
	// CatNormal is every other finite value.
	CatNormal // normal
)

// Classify returns the IEEE-754 class of x.
func Classify[F Float](x F) Category {
	eb, mb := expMantBits[F]()
	b := floatBits(x)
	field := bits.Range(mb, mb+eb)
	exp, mant := b&field, b&bits.Mask(mb)
	switch {
	case exp == field && mant != 0:
		return CatNaN
	case exp == field:
		return CatInfinite
	case exp == 0 && mant == 0:
		return CatZero
	case exp == 0:
		return CatSubnormal
	}
	return CatNormal
}

// IsNaN reports if x is a NaN.
func IsNaN[F Float](x F) bool { return x != x }

// IsInfinite reports if x is positive or negative infinity.
func IsInfinite[F Float](x F) bool { return Classify(x) == CatInfinite }

// IsFinite reports if x is neither infinite nor NaN.
func IsFinite[F Float](x F) bool {
	c := Classify(x)
	return c != CatNaN && c != CatInfinite
}

// IsSubnormal reports if x is subnormal.
func IsSubnormal[F Float](x F) bool { return Classify(x) == CatSubnormal }

// IsNormal reports if x is neither zero, infinite, subnormal nor NaN.
func IsNormal[F Float](x F) bool { return Classify(x) == CatNormal }

// IsSignPositive reports if the sign bit of x is clear. This includes +0 and NaNs with a clear sign bit.
func IsSignPositive[F Float](x F) bool { return !signBit(x) }

// IsSignNegative reports if the sign bit of x is set. This includes -0 and NaNs with a set sign bit.
func IsSignNegative[F Float](x F) bool { return signBit(x) }

// NextUp returns the least F greater than x. NaN and +Inf are returned unchanged.
// Either zero steps to the smallest positive subnormal.
func NextUp[F Float](x F) F {
	b := floatBits(x)
	if IsNaN(x) || b == floatBits(Inf[F]()) {
		return x
	}
	abs := b &^ signMask[F]()
	switch {
	case abs == 0:
		b = 1
	case b == abs:
		b++
	default:
		b--
	}
	return floatFromBits[F](b)
}

// NextDown returns the greatest F less than x. NaN and -Inf are returned unchanged.
func NextDown[F Float](x F) F {
	b := floatBits(x)
	if IsNaN(x) || b == floatBits(NegInf[F]()) {
		return x
	}
	abs := b &^ signMask[F]()
	switch {
	case abs == 0:
		b = signMask[F]() | 1
	case b == abs:
		b--
	default:
		b++
	}
	return floatFromBits[F](b)
}

// totalKey maps a float to an int64 whose natural order is the IEEE-754 totalOrder.
func totalKey[F Float](x F) int64 {
	k := int64(floatBits(x) << (64 - bits.Width[F]()))
	k ^= int64(uint64(k>>63) >> 1)
	return k
}

// TotalCmp compares a and b under the IEEE-754 totalOrder predicate and returns -1, 0 or +1:
//
//	-NaN < -Inf < negative finites < -0 < +0 < positive finites < +Inf < +NaN
//
// NaNs are ordered by their payload. Unlike <, TotalCmp is a total order over every bit
// pattern, so it is suitable for slices.SortFunc.
func TotalCmp[F Float](a, b F) int {
	ka, kb := totalKey(a), totalKey(b)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	}
	return 0
}
