package numy

import (
	mbits "math/bits"

	"github.com/bearlytools/numy/internal/bits"
	"github.com/bearlytools/numy/internal/conversions"
)

// Bits returns the width of T in bits.
func Bits[T Integer]() uint32 {
	return uint32(bits.Width[T]())
}

// CountOnes returns the number of one bits in x's pattern.
func CountOnes[T Integer](x T) uint32 {
	return uint32(mbits.OnesCount64(bits.Pattern(x)))
}

// CountZeros returns the number of zero bits in x's pattern.
func CountZeros[T Integer](x T) uint32 {
	return Bits[T]() - CountOnes(x)
}

// LeadingZeros returns the number of leading zero bits in x's pattern.
func LeadingZeros[T Integer](x T) uint32 {
	return uint32(mbits.LeadingZeros64(bits.Pattern(x))) - (64 - Bits[T]())
}

// TrailingZeros returns the number of trailing zero bits in x's pattern. TrailingZeros(0) is Bits[T]().
func TrailingZeros[T Integer](x T) uint32 {
	return min(uint32(mbits.TrailingZeros64(bits.Pattern(x))), Bits[T]())
}

// LeadingOnes returns the number of leading one bits in x's pattern.
func LeadingOnes[T Integer](x T) uint32 {
	return LeadingZeros(^x)
}

// TrailingOnes returns the number of trailing one bits in x's pattern.
func TrailingOnes[T Integer](x T) uint32 {
	return TrailingZeros(^x)
}

// RotateLeft rotates x left by n bits. n is reduced modulo Bits[T]().
func RotateLeft[T Integer](x T, n uint32) T {
	w := Bits[T]()
	n %= w
	if n == 0 {
		return x
	}
	p := bits.Pattern(x)
	return bits.FromPattern[T](p<<n | p>>(w-n))
}

// RotateRight rotates x right by n bits. n is reduced modulo Bits[T]().
func RotateRight[T Integer](x T, n uint32) T {
	w := Bits[T]()
	return RotateLeft(x, (w-n%w)%w)
}

// SwapBytes reverses the byte order of x.
func SwapBytes[T Integer](x T) T {
	return bits.FromPattern[T](mbits.ReverseBytes64(bits.Pattern(x)) >> (64 - Bits[T]()))
}

// ReverseBits reverses the bit order of x.
func ReverseBits[T Integer](x T) T {
	return bits.FromPattern[T](mbits.Reverse64(bits.Pattern(x)) >> (64 - Bits[T]()))
}

// ToBE converts x to big endian from the target's endianness.
// On big endian targets this is a no-op, on little endian targets the bytes are swapped.
func ToBE[T Integer](x T) T {
	if conversions.LittleEndian() {
		return SwapBytes(x)
	}
	return x
}

// ToLE converts x to little endian from the target's endianness.
func ToLE[T Integer](x T) T {
	if conversions.LittleEndian() {
		return x
	}
	return SwapBytes(x)
}

// FromBE converts a big endian x to the target's endianness.
func FromBE[T Integer](x T) T {
	return ToBE(x)
}

// FromLE converts a little endian x to the target's endianness.
func FromLE[T Integer](x T) T {
	return ToLE(x)
}

// IsPowerOfTwo reports if x is a power of two.
func IsPowerOfTwo[T UnsignedInteger](x T) bool {
	return x != 0 && x&(x-1) == 0
}

// CheckedNextPowerOfTwo returns the smallest power of two >= x. ok is false when that is not
// representable in T.
func CheckedNextPowerOfTwo[T UnsignedInteger](x T) (T, bool) {
	if x <= 1 {
		return 1, true
	}
	shift := uint32(64 - mbits.LeadingZeros64(bits.Pattern(x-1)))
	if shift >= Bits[T]() {
		return 0, false
	}
	return T(1) << shift, true
}

func minInt[T Integer]() T {
	if bits.Signed[T]() {
		return T(1) << (Bits[T]() - 1)
	}
	return 0
}

func maxInt[T Integer]() T {
	return ^minInt[T]()
}

// negOne is -1 for signed T. For unsigned T it is MaxValue and must not be used.
func negOne[T Integer]() T {
	return ^T(0)
}
