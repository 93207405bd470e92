package numy

import (
	"github.com/pkg/errors"

	"github.com/bearlytools/numy/internal/binary"
	"github.com/bearlytools/numy/internal/bits"
	"github.com/bearlytools/numy/internal/conversions"
)

// ByteArray is the set of fixed byte arrays a float can be serialized into.
type ByteArray interface {
	[4]byte | [8]byte
}

// Layout binds a float type F to the unsigned integer B holding its bit pattern and the
// byte array A holding its serialized form. All three have the same width. Tables for
// named float types should be built with NewLayout, which checks that.
type Layout[F Float, B UnsignedInteger, A ByteArray] struct{}

// The layout tables for the predeclared float types.
var (
	F32 = Layout[float32, uint32, [4]byte]{}
	F64 = Layout[float64, uint64, [8]byte]{}
)

// NewLayout returns the table for F, B and A, or ErrWidthMismatch if their widths differ.
func NewLayout[F Float, B UnsignedInteger, A ByteArray]() (Layout[F, B, A], error) {
	var a A
	fw, bw, aw := bits.Width[F](), bits.Width[B](), uint(len(a))*8
	if fw != bw || fw != aw {
		return Layout[F, B, A]{}, errors.Wrapf(ErrWidthMismatch, "float is %d bits, bits type is %d bits, byte array is %d bits", fw, bw, aw)
	}
	return Layout[F, B, A]{}, nil
}

func (Layout[F, B, A]) size() int {
	return int(bits.Width[F]() / 8)
}

// ToBits returns the raw IEEE-754 bit pattern of x. This is not a value conversion.
func (Layout[F, B, A]) ToBits(x F) B {
	return B(floatBits(x))
}

// FromBits returns the float with bit pattern b. NaN payloads and the sign of zero survive.
func (Layout[F, B, A]) FromBits(b B) F {
	return floatFromBits[F](uint64(b))
}

func (l Layout[F, B, A]) toBytes(x F, e Endian) A {
	var (
		buf [8]byte
		a   A
	)
	n := l.size()
	binary.Put(buf[:n], floatBits(x), n, e.order())
	for i := range n {
		a[i] = buf[i]
	}
	return a
}

func (l Layout[F, B, A]) fromBytes(a A, e Endian) F {
	var buf [8]byte
	n := l.size()
	for i := range n {
		buf[i] = a[i]
	}
	return floatFromBits[F](binary.Get(buf[:n], n, e.order()))
}

// ToBEBytes returns the bit pattern of x as big endian bytes.
func (l Layout[F, B, A]) ToBEBytes(x F) A { return l.toBytes(x, BigEndian) }

// ToLEBytes returns the bit pattern of x as little endian bytes.
func (l Layout[F, B, A]) ToLEBytes(x F) A { return l.toBytes(x, LittleEndian) }

// ToNEBytes returns the bit pattern of x in the target's byte order.
// The result is not portable between machines.
func (Layout[F, B, A]) ToNEBytes(x F) A {
	var a A
	for i, b := range conversions.NumToBytes(&x) {
		a[i] = b
	}
	return a
}

// FromBEBytes is the inverse of ToBEBytes.
func (l Layout[F, B, A]) FromBEBytes(a A) F { return l.fromBytes(a, BigEndian) }

// FromLEBytes is the inverse of ToLEBytes.
func (l Layout[F, B, A]) FromLEBytes(a A) F { return l.fromBytes(a, LittleEndian) }

// FromNEBytes is the inverse of ToNEBytes.
func (l Layout[F, B, A]) FromNEBytes(a A) F {
	b := make([]byte, l.size())
	for i := range b {
		b[i] = a[i]
	}
	return conversions.BytesToNum[F](b)
}

// Append appends the bit pattern of x to dst in byte order e.
func (l Layout[F, B, A]) Append(dst []byte, x F, e Endian) []byte {
	n := l.size()
	return binary.Append(dst, floatBits(x), n, e.order())
}

// Decode reads a float in byte order e from the front of b. Extra bytes are ignored.
func (l Layout[F, B, A]) Decode(b []byte, e Endian) (F, error) {
	n := l.size()
	if len(b) < n {
		return 0, errors.Wrapf(ErrShortBuffer, "decoding a %d byte float from %d bytes", n, len(b))
	}
	return floatFromBits[F](binary.Get(b[:n], n, e.order())), nil
}
