// Package numy provides capability constraints and generic operations that let numeric
// algorithms be written once and instantiated for every primitive integer and
// floating-point type while keeping each type's exact machine arithmetic.
//
// A capability is a type-set constraint (which makes Go's operators available on a type
// parameter) plus the generic functions constrained by it:
//
//	Bit, Arithmetic      operator sets (& | ^ << >>, + - * / %) and their assigning forms
//	Number               Bounded (MinValue/MaxValue) + Arithmetic + ordering (Min/Max/Clamp)
//	Integer              bit queries, rotation, endianness and the arithmetic policy families
//	SignedInteger        Integer + Signed; Counterpart tables bridge to UnsignedInteger
//	Signed               NegOne, Abs, IsNegative, IsPositive for signed integers and floats
//	Float                classification, transcendentals, TotalCmp, Layout tables
//
// Integer overflow is never a property of the operators. Callers pick a policy per call:
//
//	Checked*      (T, bool), ok is false on overflow, division by zero or a bad domain
//	Saturating*   clamps to MinValue/MaxValue
//	Wrapping*     result modulo 2^Bits (two's complement for signed types)
//	Overflowing*  the wrapping result plus a flag that is set exactly when Checked* fails
//
// Plain operators wrap on overflow and panic on a zero divisor. Isqrt, Ilog*, Clamp with
// min > max and SaturatingDiv/Wrapping*Div/Overflowing*Div by zero are precondition
// violations and panic.
//
// Associated types are fixed per concrete type by the Counterpart and Layout tables
// (I8, I16, I32, I64, Int, F32, F64), never looked up at runtime.
package numy

import (
	"golang.org/x/exp/constraints"

	"github.com/bearlytools/numy/internal/binary"
	"github.com/bearlytools/numy/internal/conversions"
)

// SignedInteger is satisfied by the signed integer types.
type SignedInteger interface {
	constraints.Signed
}

// UnsignedInteger is satisfied by the unsigned integer types. uintptr is not a number.
type UnsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is satisfied by every fixed-width integer type.
type Integer interface {
	SignedInteger | UnsignedInteger
}

// Float is satisfied by the floating-point types.
type Float interface {
	constraints.Float
}

// Bit is the capability of a fixed-width bit pattern: &, |, ^, &^, <<, >>, unary ^ and
// the assigning forms. A shift amount may be of any integer type, so both a same-type
// amount and a uint32 amount are accepted. Shifting by the width or more yields 0 (all
// ones for a right shift of a negative value); a negative amount panics.
type Bit interface {
	Integer
}

// Arithmetic is the capability of +, -, *, / (and % for integers) plus the assigning
// forms, where x op= y is x = x op y. No overflow policy is implied.
type Arithmetic interface {
	Integer | Float
}

// Number is the base numeric capability: Bounded, Arithmetic and ordering.
type Number interface {
	Arithmetic
}

// Signed is satisfied by the types that can represent negative values.
type Signed interface {
	SignedInteger | Float
}

//go:generate go tool github.com/johnsiilver/stringer -type=Endian -linecomment

// Endian names a byte order for serialization.
type Endian uint8

const (
	// BigEndian puts the most significant byte first.
	BigEndian Endian = iota // big
	// LittleEndian puts the least significant byte first.
	LittleEndian // little
	// NativeEndian is the byte order of the build target. It is not portable between
	// machines and must not be used for data that leaves the process.
	NativeEndian // native
)

func (e Endian) order() binary.Order {
	switch e {
	case BigEndian:
		return binary.Big
	case LittleEndian:
		return binary.Little
	}
	if conversions.LittleEndian() {
		return binary.Little
	}
	return binary.Big
}
