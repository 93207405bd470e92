package numy

import (
	"github.com/pkg/errors"

	"github.com/bearlytools/numy/internal/bits"
)

// Counterpart binds a signed integer type S to the unsigned integer type U of the same
// width. It carries no data, its methods are the operations that need both types.
type Counterpart[S SignedInteger, U UnsignedInteger] struct{}

// The counterpart tables for the predeclared integer types.
var (
	I8  = Counterpart[int8, uint8]{}
	I16 = Counterpart[int16, uint16]{}
	I32 = Counterpart[int32, uint32]{}
	I64 = Counterpart[int64, uint64]{}
	Int = Counterpart[int, uint]{}
)

// NewCounterpart returns the table for S and U, or ErrWidthMismatch if their widths differ.
// Use it for named integer types, the predeclared pairs are available as I8 ... Int.
func NewCounterpart[S SignedInteger, U UnsignedInteger]() (Counterpart[S, U], error) {
	sw, uw := bits.Width[S](), bits.Width[U]()
	if sw != uw {
		return Counterpart[S, U]{}, errors.Wrapf(ErrWidthMismatch, "signed type is %d bits, unsigned type is %d bits", sw, uw)
	}
	return Counterpart[S, U]{}, nil
}

// CastUnsigned reinterprets the bits of v as U. It is not a value conversion: -1 becomes MaxValue.
func (Counterpart[S, U]) CastUnsigned(v S) U {
	return bits.FromPattern[U](bits.Pattern(v))
}

// CastSigned reinterprets the bits of v as S. Values above the signed maximum become negative.
func (Counterpart[S, U]) CastSigned(v U) S {
	return S(bits.SignExtend(bits.Pattern(v), bits.Width[U]()))
}

// UnsignedAbs returns |v| as U. It cannot overflow, UnsignedAbs(MinValue) is 2^(Bits-1).
func (Counterpart[S, U]) UnsignedAbs(v S) U {
	if v < 0 {
		return -U(v)
	}
	return U(v)
}

// AbsDiff returns |a-b| as U. It cannot overflow.
func (Counterpart[S, U]) AbsDiff(a, b S) U {
	if a < b {
		return U(b) - U(a)
	}
	return U(a) - U(b)
}

// OverflowingAddUnsigned returns a+b modulo 2^Bits and whether the true sum exceeds MaxValue.
func (Counterpart[S, U]) OverflowingAddUnsigned(a S, b U) (S, bool) {
	r, o := OverflowingAdd(a, S(b))
	return r, o != (S(b) < 0)
}

// CheckedAddUnsigned returns a+b. ok is false if the sum exceeds MaxValue.
func (c Counterpart[S, U]) CheckedAddUnsigned(a S, b U) (S, bool) {
	r, o := c.OverflowingAddUnsigned(a, b)
	if o {
		return 0, false
	}
	return r, true
}

// SaturatingAddUnsigned returns a+b, saturating at MaxValue.
func (c Counterpart[S, U]) SaturatingAddUnsigned(a S, b U) S {
	r, o := c.OverflowingAddUnsigned(a, b)
	if o {
		return maxInt[S]()
	}
	return r
}

// WrappingAddUnsigned returns a+b modulo 2^Bits.
func (Counterpart[S, U]) WrappingAddUnsigned(a S, b U) S {
	return a + S(b)
}

// OverflowingSubUnsigned returns a-b modulo 2^Bits and whether the true difference is below MinValue.
func (Counterpart[S, U]) OverflowingSubUnsigned(a S, b U) (S, bool) {
	r, o := OverflowingSub(a, S(b))
	return r, o != (S(b) < 0)
}

// CheckedSubUnsigned returns a-b. ok is false if the difference is below MinValue.
func (c Counterpart[S, U]) CheckedSubUnsigned(a S, b U) (S, bool) {
	r, o := c.OverflowingSubUnsigned(a, b)
	if o {
		return 0, false
	}
	return r, true
}

// SaturatingSubUnsigned returns a-b, saturating at MinValue.
func (c Counterpart[S, U]) SaturatingSubUnsigned(a S, b U) S {
	r, o := c.OverflowingSubUnsigned(a, b)
	if o {
		return minInt[S]()
	}
	return r
}

// WrappingSubUnsigned returns a-b modulo 2^Bits.
func (Counterpart[S, U]) WrappingSubUnsigned(a S, b U) S {
	return a - S(b)
}

// OverflowingAddSigned returns a+b modulo 2^Bits and whether the true sum is outside [0, MaxValue].
func (Counterpart[S, U]) OverflowingAddSigned(a U, b S) (U, bool) {
	r, o := OverflowingAdd(a, U(b))
	return r, o != (b < 0)
}

// CheckedAddSigned returns a+b. ok is false if the sum is outside [0, MaxValue].
func (c Counterpart[S, U]) CheckedAddSigned(a U, b S) (U, bool) {
	r, o := c.OverflowingAddSigned(a, b)
	if o {
		return 0, false
	}
	return r, true
}

// SaturatingAddSigned returns a+b clamped to [0, MaxValue].
func (c Counterpart[S, U]) SaturatingAddSigned(a U, b S) U {
	r, o := c.OverflowingAddSigned(a, b)
	switch {
	case !o:
		return r
	case b < 0:
		return 0
	}
	return maxInt[U]()
}

// WrappingAddSigned returns a+b modulo 2^Bits.
func (Counterpart[S, U]) WrappingAddSigned(a U, b S) U {
	return a + U(b)
}

// OverflowingSubSigned returns a-b modulo 2^Bits and whether the true difference is outside [0, MaxValue].
func (Counterpart[S, U]) OverflowingSubSigned(a U, b S) (U, bool) {
	r, o := OverflowingSub(a, U(b))
	return r, o != (b < 0)
}

// CheckedSubSigned returns a-b. ok is false if the difference is outside [0, MaxValue].
func (c Counterpart[S, U]) CheckedSubSigned(a U, b S) (U, bool) {
	r, o := c.OverflowingSubSigned(a, b)
	if o {
		return 0, false
	}
	return r, true
}

// SaturatingSubSigned returns a-b clamped to [0, MaxValue].
func (c Counterpart[S, U]) SaturatingSubSigned(a U, b S) U {
	r, o := c.OverflowingSubSigned(a, b)
	switch {
	case !o:
		return r
	case b < 0:
		return maxInt[U]()
	}
	return 0
}

// WrappingSubSigned returns a-b modulo 2^Bits.
func (Counterpart[S, U]) WrappingSubSigned(a U, b S) U {
	return a - U(b)
}
