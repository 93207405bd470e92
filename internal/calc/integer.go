package calc

import (
	"encoding/hex"

	"github.com/bearlytools/numy"
	"github.com/bearlytools/numy/internal/bits"
)

// intOps adds the operations every integer type has.
func intOps[T numy.Integer](m map[string]opFunc) {
	p := parser[T](parseInt[T])
	size := int(numy.Bits[T]() / 8)

	m["bits"] = nullary(numy.Bits[T])
	m["min_value"] = nullary(numy.MinValue[T])
	m["max_value"] = nullary(numy.MaxValue[T])
	m["zero"] = nullary(numy.Zero[T])
	m["one"] = nullary(numy.One[T])
	m["two"] = nullary(numy.Two[T])
	m["min"] = binary(p, p, numy.Min[T])
	m["max"] = binary(p, p, numy.Max[T])
	m["clamp"] = ternary(p, p, p, numy.Clamp[T])

	m["count_ones"] = unary(p, numy.CountOnes[T])
	m["count_zeros"] = unary(p, numy.CountZeros[T])
	m["leading_zeros"] = unary(p, numy.LeadingZeros[T])
	m["trailing_zeros"] = unary(p, numy.TrailingZeros[T])
	m["leading_ones"] = unary(p, numy.LeadingOnes[T])
	m["trailing_ones"] = unary(p, numy.TrailingOnes[T])
	m["rotate_left"] = binary(p, parseU32, numy.RotateLeft[T])
	m["rotate_right"] = binary(p, parseU32, numy.RotateRight[T])
	m["swap_bytes"] = unary(p, numy.SwapBytes[T])
	m["reverse_bits"] = unary(p, numy.ReverseBits[T])
	m["to_be"] = unary(p, numy.ToBE[T])
	m["to_le"] = unary(p, numy.ToLE[T])
	m["from_be"] = unary(p, numy.FromBE[T])
	m["from_le"] = unary(p, numy.FromLE[T])

	m["add"] = binary(p, p, func(a, b T) T { return a + b })
	m["sub"] = binary(p, p, func(a, b T) T { return a - b })
	m["mul"] = binary(p, p, func(a, b T) T { return a * b })
	m["div"] = binary(p, p, func(a, b T) T { return a / b })
	m["rem"] = binary(p, p, func(a, b T) T { return a % b })
	m["and"] = binary(p, p, func(a, b T) T { return a & b })
	m["or"] = binary(p, p, func(a, b T) T { return a | b })
	m["xor"] = binary(p, p, func(a, b T) T { return a ^ b })
	m["not"] = unary(p, func(a T) T { return ^a })
	m["shl"] = binary(p, parseU32, func(a T, n uint32) T { return a << n })
	m["shr"] = binary(p, parseU32, func(a T, n uint32) T { return a >> n })

	m["checked_add"] = checked2(p, p, numy.CheckedAdd[T])
	m["checked_sub"] = checked2(p, p, numy.CheckedSub[T])
	m["checked_mul"] = checked2(p, p, numy.CheckedMul[T])
	m["checked_div"] = checked2(p, p, numy.CheckedDiv[T])
	m["checked_div_euclid"] = checked2(p, p, numy.CheckedDivEuclid[T])
	m["checked_rem"] = checked2(p, p, numy.CheckedRem[T])
	m["checked_rem_euclid"] = checked2(p, p, numy.CheckedRemEuclid[T])
	m["checked_neg"] = checked1(p, numy.CheckedNeg[T])
	m["checked_shl"] = checked2(p, parseU32, numy.CheckedShl[T])
	m["checked_shr"] = checked2(p, parseU32, numy.CheckedShr[T])
	m["checked_pow"] = checked2(p, parseU32, numy.CheckedPow[T])

	m["saturating_add"] = binary(p, p, numy.SaturatingAdd[T])
	m["saturating_sub"] = binary(p, p, numy.SaturatingSub[T])
	m["saturating_mul"] = binary(p, p, numy.SaturatingMul[T])
	m["saturating_div"] = binary(p, p, numy.SaturatingDiv[T])
	m["saturating_pow"] = binary(p, parseU32, numy.SaturatingPow[T])

	m["wrapping_add"] = binary(p, p, numy.WrappingAdd[T])
	m["wrapping_sub"] = binary(p, p, numy.WrappingSub[T])
	m["wrapping_mul"] = binary(p, p, numy.WrappingMul[T])
	m["wrapping_div"] = binary(p, p, numy.WrappingDiv[T])
	m["wrapping_div_euclid"] = binary(p, p, numy.WrappingDivEuclid[T])
	m["wrapping_rem"] = binary(p, p, numy.WrappingRem[T])
	m["wrapping_rem_euclid"] = binary(p, p, numy.WrappingRemEuclid[T])
	m["wrapping_neg"] = unary(p, numy.WrappingNeg[T])
	m["wrapping_shl"] = binary(p, parseU32, numy.WrappingShl[T])
	m["wrapping_shr"] = binary(p, parseU32, numy.WrappingShr[T])
	m["wrapping_pow"] = binary(p, parseU32, numy.WrappingPow[T])

	m["overflowing_add"] = overflowing2(p, p, numy.OverflowingAdd[T])
	m["overflowing_sub"] = overflowing2(p, p, numy.OverflowingSub[T])
	m["overflowing_mul"] = overflowing2(p, p, numy.OverflowingMul[T])
	m["overflowing_div"] = overflowing2(p, p, numy.OverflowingDiv[T])
	m["overflowing_div_euclid"] = overflowing2(p, p, numy.OverflowingDivEuclid[T])
	m["overflowing_rem"] = overflowing2(p, p, numy.OverflowingRem[T])
	m["overflowing_rem_euclid"] = overflowing2(p, p, numy.OverflowingRemEuclid[T])
	m["overflowing_neg"] = overflowing1(p, numy.OverflowingNeg[T])
	m["overflowing_shl"] = overflowing2(p, parseU32, numy.OverflowingShl[T])
	m["overflowing_shr"] = overflowing2(p, parseU32, numy.OverflowingShr[T])
	m["overflowing_pow"] = overflowing2(p, parseU32, numy.OverflowingPow[T])

	m["div_euclid"] = binary(p, p, numy.DivEuclid[T])
	m["rem_euclid"] = binary(p, p, numy.RemEuclid[T])
	m["pow"] = binary(p, parseU32, numy.Pow[T])
	m["midpoint"] = binary(p, p, numy.Midpoint[T])
	m["isqrt"] = unary(p, numy.Isqrt[T])
	m["checked_isqrt"] = checked1(p, numy.CheckedIsqrt[T])
	m["ilog"] = binary(p, p, numy.Ilog[T])
	m["ilog2"] = unary(p, numy.Ilog2[T])
	m["ilog10"] = unary(p, numy.Ilog10[T])
	m["checked_ilog"] = checked2(p, p, numy.CheckedIlog[T])
	m["checked_ilog2"] = checked1(p, numy.CheckedIlog2[T])
	m["checked_ilog10"] = checked1(p, numy.CheckedIlog10[T])

	for name, e := range map[string]numy.Endian{"be": numy.BigEndian, "le": numy.LittleEndian, "ne": numy.NativeEndian} {
		m["to_"+name+"_bytes"] = unary(p, func(x T) []byte { return numy.AppendInt(nil, x, e) })
		m["from_"+name+"_bytes"] = fromBytes(size, e, numy.DecodeInt[T])
	}
}

// inspectInt describes an integer value.
func inspectInt[T numy.Integer](name string) func(string) (Inspection, error) {
	return func(s string) (Inspection, error) {
		x, err := parseInt[T](s)
		if err != nil {
			return Inspection{}, err
		}
		w := numy.Bits[T]()
		in := Inspection{
			Type:    name,
			Value:   render(x),
			Bits:    w,
			Pattern: bits.String(bits.Pattern(x), uint(w)),
			BE:      hex.EncodeToString(numy.AppendInt(nil, x, numy.BigEndian)),
			LE:      hex.EncodeToString(numy.AppendInt(nil, x, numy.LittleEndian)),
		}
		if numy.IsSigned[T]() {
			in.Sign = "positive"
			if x < 0 {
				in.Sign = "negative"
			}
		}
		return in, nil
	}
}

// newSigned returns the evaluator for signed type S.
func newSigned[S numy.SignedInteger, U numy.UnsignedInteger](name string, c numy.Counterpart[S, U]) *evaluator {
	m := map[string]opFunc{}
	intOps[S](m)

	p := parser[S](parseInt[S])
	pu := parser[U](parseInt[U])

	m["neg_one"] = nullary(numy.NegOne[S])
	m["abs"] = unary(p, numy.Abs[S])
	m["signum"] = unary(p, numy.Signum[S])
	m["is_negative"] = unary(p, numy.IsNegative[S])
	m["is_positive"] = unary(p, numy.IsPositive[S])
	m["checked_abs"] = checked1(p, numy.CheckedAbs[S])
	m["saturating_abs"] = unary(p, numy.SaturatingAbs[S])
	m["wrapping_abs"] = unary(p, numy.WrappingAbs[S])
	m["overflowing_abs"] = overflowing1(p, numy.OverflowingAbs[S])
	m["saturating_neg"] = unary(p, numy.SaturatingNeg[S])

	m["cast_unsigned"] = unary(p, c.CastUnsigned)
	m["unsigned_abs"] = unary(p, c.UnsignedAbs)
	m["abs_diff"] = binary(p, p, c.AbsDiff)
	m["checked_add_unsigned"] = checked2(p, pu, c.CheckedAddUnsigned)
	m["checked_sub_unsigned"] = checked2(p, pu, c.CheckedSubUnsigned)
	m["saturating_add_unsigned"] = binary(p, pu, c.SaturatingAddUnsigned)
	m["saturating_sub_unsigned"] = binary(p, pu, c.SaturatingSubUnsigned)
	m["wrapping_add_unsigned"] = binary(p, pu, c.WrappingAddUnsigned)
	m["wrapping_sub_unsigned"] = binary(p, pu, c.WrappingSubUnsigned)
	m["overflowing_add_unsigned"] = overflowing2(p, pu, c.OverflowingAddUnsigned)
	m["overflowing_sub_unsigned"] = overflowing2(p, pu, c.OverflowingSubUnsigned)

	return &evaluator{name: name, ops: m, inspect: inspectInt[S](name)}
}

// newUnsigned returns the evaluator for unsigned type U.
func newUnsigned[S numy.SignedInteger, U numy.UnsignedInteger](name string, c numy.Counterpart[S, U]) *evaluator {
	m := map[string]opFunc{}
	intOps[U](m)

	p := parser[U](parseInt[U])
	ps := parser[S](parseInt[S])

	m["is_power_of_two"] = unary(p, numy.IsPowerOfTwo[U])
	m["checked_next_power_of_two"] = checked1(p, numy.CheckedNextPowerOfTwo[U])

	m["cast_signed"] = unary(p, c.CastSigned)
	m["checked_add_signed"] = checked2(p, ps, c.CheckedAddSigned)
	m["checked_sub_signed"] = checked2(p, ps, c.CheckedSubSigned)
	m["saturating_add_signed"] = binary(p, ps, c.SaturatingAddSigned)
	m["saturating_sub_signed"] = binary(p, ps, c.SaturatingSubSigned)
	m["wrapping_add_signed"] = binary(p, ps, c.WrappingAddSigned)
	m["wrapping_sub_signed"] = binary(p, ps, c.WrappingSubSigned)
	m["overflowing_add_signed"] = overflowing2(p, ps, c.OverflowingAddSigned)
	m["overflowing_sub_signed"] = overflowing2(p, ps, c.OverflowingSubSigned)

	return &evaluator{name: name, ops: m, inspect: inspectInt[U](name)}
}
