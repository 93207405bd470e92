package numy

import "github.com/pkg/errors"

var (
	// ErrWidthMismatch is returned when a Counterpart or Layout is built over types of differing widths.
	ErrWidthMismatch = errors.New("numy: width mismatch")
	// ErrShortBuffer is returned when a decoder is given fewer bytes than the type's width.
	ErrShortBuffer = errors.New("numy: short buffer")
)
