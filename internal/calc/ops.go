package calc

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/bearlytools/numy"
)

// output is what an operation produced.
type output struct {
	values   []string
	ok       *bool
	overflow *bool
}

// opFunc is an operation bound to its argument parsers.
type opFunc func(args []string) (output, error)

// parser converts a script argument to an operand.
type parser[T any] func(s string) (T, error)

func arity(args []string, n int) error {
	if len(args) != n {
		return errors.Wrapf(ErrArgs, "want %d argument(s), got %d", n, len(args))
	}
	return nil
}

func value(vs ...any) output {
	out := output{values: make([]string, 0, len(vs))}
	for _, v := range vs {
		out.values = append(out.values, render(v))
	}
	return out
}

func nullary[R any](f func() R) opFunc {
	return func(args []string) (output, error) {
		if err := arity(args, 0); err != nil {
			return output{}, err
		}
		return value(f()), nil
	}
}

func unary[A, R any](pa parser[A], f func(A) R) opFunc {
	return func(args []string) (output, error) {
		if err := arity(args, 1); err != nil {
			return output{}, err
		}
		a, err := pa(args[0])
		if err != nil {
			return output{}, err
		}
		return value(f(a)), nil
	}
}

func unaryPair[A, R any](pa parser[A], f func(A) (R, R)) opFunc {
	return func(args []string) (output, error) {
		if err := arity(args, 1); err != nil {
			return output{}, err
		}
		a, err := pa(args[0])
		if err != nil {
			return output{}, err
		}
		r1, r2 := f(a)
		return value(r1, r2), nil
	}
}

func binary[A, B, R any](pa parser[A], pb parser[B], f func(A, B) R) opFunc {
	return func(args []string) (output, error) {
		if err := arity(args, 2); err != nil {
			return output{}, err
		}
		a, err := pa(args[0])
		if err != nil {
			return output{}, err
		}
		b, err := pb(args[1])
		if err != nil {
			return output{}, err
		}
		return value(f(a, b)), nil
	}
}

func ternary[A, B, C, R any](pa parser[A], pb parser[B], pc parser[C], f func(A, B, C) R) opFunc {
	return func(args []string) (output, error) {
		if err := arity(args, 3); err != nil {
			return output{}, err
		}
		a, err := pa(args[0])
		if err != nil {
			return output{}, err
		}
		b, err := pb(args[1])
		if err != nil {
			return output{}, err
		}
		c, err := pc(args[2])
		if err != nil {
			return output{}, err
		}
		return value(f(a, b, c)), nil
	}
}

// flagged wraps a (value, flag) operation. For checked operations the flag is ok and a
// false flag drops the value. For overflowing operations the value is always kept.
func flagged[R any](r R, flag bool, checked bool) output {
	if checked {
		if !flag {
			return output{ok: &flag}
		}
		out := value(r)
		out.ok = &flag
		return out
	}
	out := value(r)
	out.overflow = &flag
	return out
}

func checked1[A, R any](pa parser[A], f func(A) (R, bool)) opFunc {
	return unaryFlag(pa, f, true)
}

func overflowing1[A, R any](pa parser[A], f func(A) (R, bool)) opFunc {
	return unaryFlag(pa, f, false)
}

func unaryFlag[A, R any](pa parser[A], f func(A) (R, bool), checked bool) opFunc {
	return func(args []string) (output, error) {
		if err := arity(args, 1); err != nil {
			return output{}, err
		}
		a, err := pa(args[0])
		if err != nil {
			return output{}, err
		}
		r, flag := f(a)
		return flagged(r, flag, checked), nil
	}
}

func checked2[A, B, R any](pa parser[A], pb parser[B], f func(A, B) (R, bool)) opFunc {
	return binaryFlag(pa, pb, f, true)
}

func overflowing2[A, B, R any](pa parser[A], pb parser[B], f func(A, B) (R, bool)) opFunc {
	return binaryFlag(pa, pb, f, false)
}

func binaryFlag[A, B, R any](pa parser[A], pb parser[B], f func(A, B) (R, bool), checked bool) opFunc {
	return func(args []string) (output, error) {
		if err := arity(args, 2); err != nil {
			return output{}, err
		}
		a, err := pa(args[0])
		if err != nil {
			return output{}, err
		}
		b, err := pb(args[1])
		if err != nil {
			return output{}, err
		}
		r, flag := f(a, b)
		return flagged(r, flag, checked), nil
	}
}

// render formats an operation result. Floats use the shortest representation that reads
// back to the same value and byte slices are hex.
func render(v any) string {
	switch x := v.(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case []byte:
		return hex.EncodeToString(x)
	case [4]byte:
		return hex.EncodeToString(x[:])
	case [8]byte:
		return hex.EncodeToString(x[:])
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// parseInt parses an integer of type T. Base prefixes (0x, 0o, 0b) and _ separators are
// accepted.
func parseInt[T numy.Integer](s string) (T, error) {
	w := int(numy.Bits[T]())
	if numy.IsSigned[T]() {
		v, err := strconv.ParseInt(s, 0, w)
		if err != nil {
			return 0, errors.Wrapf(ErrArgs, "%q is not a %d bit signed integer", s, w)
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(s, 0, w)
	if err != nil {
		return 0, errors.Wrapf(ErrArgs, "%q is not a %d bit unsigned integer", s, w)
	}
	return T(v), nil
}

// parseFloat parses a float of type F. nan, inf and -inf are accepted.
func parseFloat[F numy.Float](s string) (F, error) {
	w := int(numy.MantissaDigits[F]())
	size := 64
	if w == 24 {
		size = 32
	}
	v, err := strconv.ParseFloat(s, size)
	if err != nil {
		return 0, errors.Wrapf(ErrArgs, "%q is not a %d bit float", s, size)
	}
	return F(v), nil
}

func parseHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, errors.Wrapf(ErrArgs, "%q is not hex", s)
	}
	return b, nil
}

var (
	parseU32 parser[uint32] = parseInt[uint32]
	parseI32 parser[int32]  = parseInt[int32]
)

// decodeExact decodes a value that must use all of b.
func decodeExact[T any](b []byte, size int, e numy.Endian, decode func([]byte, numy.Endian) (T, error)) (T, error) {
	if len(b) != size {
		var zero T
		return zero, errors.Wrapf(ErrArgs, "want %d bytes, got %d", size, len(b))
	}
	return decode(b, e)
}

// fromBytes is an operation decoding a hex argument in byte order e.
func fromBytes[T any](size int, e numy.Endian, decode func([]byte, numy.Endian) (T, error)) opFunc {
	return func(args []string) (output, error) {
		if err := arity(args, 1); err != nil {
			return output{}, err
		}
		b, err := parseHex(args[0])
		if err != nil {
			return output{}, err
		}
		v, err := decodeExact(b, size, e, decode)
		if err != nil {
			return output{}, err
		}
		return value(v), nil
	}
}
