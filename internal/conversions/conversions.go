// Package conversions is a set of unsafe conversions from one type to another. Such as converting
// some number to its slice representation or a slice representation to a string.
package conversions

import (
	"unsafe"
)

// FixedNumbers are number types that don't vary in size.
type FixedNumbers interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// NumToBytes returns the underlying storage that value points at, in the host's byte order.
// This is a pointer to a number, because otherwise we'd have to make an
// allocation and at that point it would be a useless exercise.
func NumToBytes[N FixedNumbers](value *N) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(value)), unsafe.Sizeof(*value))
}

// BytesToNum copies the host-order bytes in value into a number. value must have the
// correct length for N or this panics.
func BytesToNum[N FixedNumbers](value []byte) N {
	var n N
	b := NumToBytes(&n)
	if len(value) != len(b) {
		panic("value was invalid")
	}
	copy(b, value)
	return n
}

var littleEndian = func() bool {
	one := uint16(1)
	return NumToBytes(&one)[0] == 1
}()

// LittleEndian reports if the build target stores numbers least significant byte first.
func LittleEndian() bool {
	return littleEndian
}

// ByteSlice2String coverts bs to a string. It is no longer safe to use bs after this.
// This prevents having to make a copy of bs.
func ByteSlice2String(bs []byte) string {
	return unsafe.String(unsafe.SliceData(bs), len(bs))
}
