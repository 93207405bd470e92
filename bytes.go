package numy

import (
	"github.com/pkg/errors"

	"github.com/bearlytools/numy/internal/binary"
)

// AppendInt appends the two's complement pattern of x to dst in byte order e.
// It appends exactly Bits[T]()/8 bytes.
func AppendInt[T Integer](dst []byte, x T, e Endian) []byte {
	var buf [8]byte
	n := int(Bits[T]() / 8)
	binary.PutInt(buf[:n], x, e.order())
	return append(dst, buf[:n]...)
}

// DecodeInt reads a T in byte order e from the front of b. Extra bytes are ignored.
func DecodeInt[T Integer](b []byte, e Endian) (T, error) {
	n := int(Bits[T]() / 8)
	if len(b) < n {
		return 0, errors.Wrapf(ErrShortBuffer, "decoding a %d byte integer from %d bytes", n, len(b))
	}
	return binary.GetInt[T](b, e.order()), nil
}
