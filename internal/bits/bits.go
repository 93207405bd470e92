// Package bits provides width-aware bit pattern helpers. This is not a replacement for math/bits.
//
// Every integer is handled as its two's complement pattern zero extended into a uint64,
// so one code path serves all widths up to 64 bits.
package bits

import (
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Width returns the storage width of T in bits.
func Width[T any]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) * 8
}

// Signed reports if I is a signed integer type.
func Signed[I constraints.Integer]() bool {
	var z I
	return ^z < 0
}

// Mask returns a uint64 with the low "width" bits set. width must be <= 64.
func Mask(width uint) uint64 {
	if width > 64 {
		panic(fmt.Sprintf("Mask() cannot receive a width of %d, 64 is the maximum", width))
	}
	if width == 64 {
		return ^uint64(0)
	}
	return 1<<width - 1
}

// Range creates a mask for setting, getting and clearing a set of bits.
// start is the bit location you wish to start at and end is the bit you wish to end at (exclusive).
// Index starts at 0. So Range(1, 4) will create a mask that includes bits at location 1 to 3.
// If start >= end, this will panic.
func Range(start, end uint) uint64 {
	if start >= end {
		panic("start cannot be >= end")
	}
	return Mask(end) &^ Mask(start)
}

// SignBit returns a pattern with only the top bit of a "width" bit number set.
func SignBit(width uint) uint64 {
	return 1 << (width - 1)
}

// Pattern returns the two's complement bit pattern of v zero extended to 64 bits.
func Pattern[I constraints.Integer](v I) uint64 {
	return uint64(v) & Mask(Width[I]())
}

// FromPattern converts the low Width[I]() bits of p back to an I.
func FromPattern[I constraints.Integer](p uint64) I {
	return I(p)
}

// SignExtend interprets the low "width" bits of p as a two's complement number.
func SignExtend(p uint64, width uint) int64 {
	shift := 64 - width
	return int64(p<<shift) >> shift
}

// GetBit gets a single bit value from "store" in position "pos". true if set, false if not.
func GetBit(store uint64, pos uint) bool {
	if pos > 63 {
		panic(fmt.Sprintf("can't GetBit() position %d", pos))
	}
	return store&(1<<pos) != 0
}

// String renders the low "width" bits of p most significant bit first, grouped by byte.
func String(p uint64, width uint) string {
	buff := strings.Builder{}
	for i := int(width) - 1; i >= 0; i-- {
		if GetBit(p, uint(i)) {
			buff.WriteByte('1')
		} else {
			buff.WriteByte('0')
		}
		if i != 0 && i%8 == 0 {
			buff.WriteByte(' ')
		}
	}
	return buff.String()
}
