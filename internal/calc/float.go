package calc

import (
	"encoding/hex"

	"github.com/bearlytools/numy"
	"github.com/bearlytools/numy/internal/bits"
)

// newFloat returns the evaluator for float type F.
func newFloat[F numy.Float, B numy.UnsignedInteger, A numy.ByteArray](name string, l numy.Layout[F, B, A]) *evaluator {
	m := map[string]opFunc{}
	p := parser[F](parseFloat[F])
	size := int(numy.Bits[B]() / 8)

	for k, f := range map[string]func() F{
		"min_value":    numy.MinValue[F],
		"max_value":    numy.MaxValue[F],
		"zero":         numy.Zero[F],
		"one":          numy.One[F],
		"two":          numy.Two[F],
		"neg_one":      numy.NegOne[F],
		"epsilon":      numy.Epsilon[F],
		"min_positive": numy.MinPositive[F],
		"nan":          numy.NaN[F],
		"inf":          numy.Inf[F],
		"neg_inf":      numy.NegInf[F],

		"e":              numy.E[F],
		"pi":             numy.Pi[F],
		"tau":            numy.Tau[F],
		"sqrt_2":         numy.Sqrt2[F],
		"ln_2":           numy.Ln2[F],
		"ln_10":          numy.Ln10[F],
		"log2_e":         numy.Log2E[F],
		"log2_10":        numy.Log2Of10[F],
		"log10_e":        numy.Log10E[F],
		"log10_2":        numy.Log10Of2[F],
		"frac_1_pi":      numy.Frac1Pi[F],
		"frac_2_pi":      numy.Frac2Pi[F],
		"frac_2_sqrt_pi": numy.Frac2SqrtPi[F],
		"frac_1_sqrt_2":  numy.Frac1Sqrt2[F],
		"frac_pi_2":      numy.FracPi2[F],
		"frac_pi_3":      numy.FracPi3[F],
		"frac_pi_4":      numy.FracPi4[F],
		"frac_pi_6":      numy.FracPi6[F],
		"frac_pi_8":      numy.FracPi8[F],
	} {
		m[k] = nullary(f)
	}
	m["radix"] = nullary(numy.Radix[F])
	m["mantissa_digits"] = nullary(numy.MantissaDigits[F])
	m["digits"] = nullary(numy.Digits[F])
	m["min_exp"] = nullary(numy.MinExp[F])
	m["max_exp"] = nullary(numy.MaxExp[F])
	m["min_10_exp"] = nullary(numy.Min10Exp[F])
	m["max_10_exp"] = nullary(numy.Max10Exp[F])

	for k, f := range map[string]func(F) F{
		"floor":           numy.Floor[F],
		"ceil":            numy.Ceil[F],
		"trunc":           numy.Trunc[F],
		"fract":           numy.Fract[F],
		"round":           numy.Round[F],
		"round_ties_even": numy.RoundTiesEven[F],
		"sqrt":            numy.Sqrt[F],
		"cbrt":            numy.Cbrt[F],
		"recip":           numy.Recip[F],
		"exp":             numy.Exp[F],
		"exp2":            numy.Exp2[F],
		"exp_m1":          numy.ExpM1[F],
		"ln":              numy.Ln[F],
		"ln_1p":           numy.Ln1p[F],
		"log2":            numy.Log2[F],
		"log10":           numy.Log10[F],
		"sin":             numy.Sin[F],
		"cos":             numy.Cos[F],
		"tan":             numy.Tan[F],
		"asin":            numy.Asin[F],
		"acos":            numy.Acos[F],
		"atan":            numy.Atan[F],
		"sinh":            numy.Sinh[F],
		"cosh":            numy.Cosh[F],
		"tanh":            numy.Tanh[F],
		"asinh":           numy.Asinh[F],
		"acosh":           numy.Acosh[F],
		"atanh":           numy.Atanh[F],
		"to_degrees":      numy.ToDegrees[F],
		"to_radians":      numy.ToRadians[F],
		"abs":             numy.Abs[F],
		"signum":          numy.Signum[F],
		"next_up":         numy.NextUp[F],
		"next_down":       numy.NextDown[F],
		"neg":             func(x F) F { return -x },
	} {
		m[k] = unary(p, f)
	}

	for k, f := range map[string]func(F) bool{
		"is_nan":           numy.IsNaN[F],
		"is_infinite":      numy.IsInfinite[F],
		"is_finite":        numy.IsFinite[F],
		"is_subnormal":     numy.IsSubnormal[F],
		"is_normal":        numy.IsNormal[F],
		"is_sign_positive": numy.IsSignPositive[F],
		"is_sign_negative": numy.IsSignNegative[F],
		"is_negative":      numy.IsNegative[F],
		"is_positive":      numy.IsPositive[F],
	} {
		m[k] = unary(p, f)
	}
	m["classify"] = unary(p, numy.Classify[F])
	m["sin_cos"] = unaryPair(p, numy.SinCos[F])

	for k, f := range map[string]func(F, F) F{
		"add":        func(a, b F) F { return a + b },
		"sub":        func(a, b F) F { return a - b },
		"mul":        func(a, b F) F { return a * b },
		"div":        func(a, b F) F { return a / b },
		"min":        numy.Min[F],
		"max":        numy.Max[F],
		"hypot":      numy.Hypot[F],
		"atan2":      numy.Atan2[F],
		"powf":       numy.Powf[F],
		"copysign":   numy.Copysign[F],
		"log":        numy.Log[F],
		"midpoint":   numy.FloatMidpoint[F],
		"div_euclid": numy.FloatDivEuclid[F],
		"rem_euclid": numy.FloatRemEuclid[F],
	} {
		m[k] = binary(p, p, f)
	}
	m["total_cmp"] = binary(p, p, numy.TotalCmp[F])
	m["powi"] = binary(p, parseI32, numy.Powi[F])
	m["mul_add"] = ternary(p, p, p, numy.MulAdd[F])
	m["clamp"] = ternary(p, p, p, numy.Clamp[F])

	m["to_bits"] = unary(p, l.ToBits)
	m["from_bits"] = unary(parser[B](parseInt[B]), l.FromBits)
	m["to_be_bytes"] = unary(p, l.ToBEBytes)
	m["to_le_bytes"] = unary(p, l.ToLEBytes)
	m["to_ne_bytes"] = unary(p, l.ToNEBytes)
	m["from_be_bytes"] = fromBytes(size, numy.BigEndian, l.Decode)
	m["from_le_bytes"] = fromBytes(size, numy.LittleEndian, l.Decode)
	m["from_ne_bytes"] = fromBytes(size, numy.NativeEndian, l.Decode)

	inspect := func(s string) (Inspection, error) {
		x, err := p(s)
		if err != nil {
			return Inspection{}, err
		}
		in := Inspection{
			Type:    name,
			Value:   render(x),
			Bits:    numy.Bits[B](),
			Pattern: bits.String(uint64(l.ToBits(x)), uint(numy.Bits[B]())),
			BE:      render(l.ToBEBytes(x)),
			LE:      hex.EncodeToString(l.Append(nil, x, numy.LittleEndian)),
			Class:   numy.Classify(x).String(),
			Sign:    "positive",
		}
		if numy.IsSignNegative(x) {
			in.Sign = "negative"
		}
		return in, nil
	}

	return &evaluator{name: name, ops: m, inspect: inspect}
}
