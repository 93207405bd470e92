// Package binary replaces the encoding/binary package in the standard library for fixed
// width patterns in either byte order, using generics.
package binary

import (
	"encoding/binary"
	"fmt"

	"github.com/bearlytools/numy/internal/bits"
	"golang.org/x/exp/constraints"
)

// Order is the byte order of an encoded pattern.
type Order uint8

const (
	// Little puts the least significant byte first.
	Little Order = iota
	// Big puts the most significant byte first.
	Big
)

func (o Order) enc() binary.ByteOrder {
	if o == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Put writes the low n bytes of pattern p into b. n must be 1, 2, 4 or 8.
func Put(b []byte, p uint64, n int, o Order) {
	_ = b[n-1] // bounds check hint to compiler; see golang.org/issue/14808

	switch n {
	case 1:
		b[0] = byte(p)
	case 2:
		o.enc().PutUint16(b, uint16(p))
	case 4:
		o.enc().PutUint32(b, uint32(p))
	case 8:
		o.enc().PutUint64(b, p)
	default:
		panic(fmt.Sprintf("unsupported pattern size %d bytes", n))
	}
}

// Get reads an n byte pattern from b. n must be 1, 2, 4 or 8.
func Get(b []byte, n int, o Order) uint64 {
	_ = b[n-1] // bounds check hint to compiler; see golang.org/issue/14808

	switch n {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(o.enc().Uint16(b))
	case 4:
		return uint64(o.enc().Uint32(b))
	case 8:
		return o.enc().Uint64(b)
	}
	panic(fmt.Sprintf("unsupported pattern size %d bytes", n))
}

// Append appends the low n bytes of pattern p to dst.
func Append(dst []byte, p uint64, n int, o Order) []byte {
	var buf [8]byte
	Put(buf[:n], p, n, o)
	return append(dst, buf[:n]...)
}

// PutInt puts any integer into a []byte slice that is at least as long as the integer's storage.
func PutInt[T constraints.Integer](b []byte, v T, o Order) {
	Put(b, bits.Pattern(v), int(bits.Width[T]()/8), o)
}

// GetInt gets any integer from a []byte slice.
func GetInt[T constraints.Integer](b []byte, o Order) T {
	return bits.FromPattern[T](Get(b, int(bits.Width[T]()/8), o))
}
