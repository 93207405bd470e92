package numy

import "math"

// Mathematical constants, correctly rounded to F. The conversions happen at compile time on
// exact constant values, so float32 results are not double rounded through float64.

// E is Euler's number.
func E[F Float]() F { return F(math.E) }

// Pi is π.
func Pi[F Float]() F { return F(math.Pi) }

// Tau is 2π.
func Tau[F Float]() F { return F(2 * math.Pi) }

// Sqrt2 is √2.
func Sqrt2[F Float]() F { return F(math.Sqrt2) }

// Ln2 is ln(2).
func Ln2[F Float]() F { return F(math.Ln2) }

// Ln10 is ln(10).
func Ln10[F Float]() F { return F(math.Ln10) }

// Log2E is log₂(e).
func Log2E[F Float]() F { return F(math.Log2E) }

// Log2Of10 is log₂(10).
func Log2Of10[F Float]() F { return F(math.Ln10 / math.Ln2) }

// Log10E is log₁₀(e).
func Log10E[F Float]() F { return F(math.Log10E) }

// Log10Of2 is log₁₀(2).
func Log10Of2[F Float]() F { return F(math.Ln2 / math.Ln10) }

// Frac1Pi is 1/π.
func Frac1Pi[F Float]() F { return F(1 / math.Pi) }

// Frac2Pi is 2/π.
func Frac2Pi[F Float]() F { return F(2 / math.Pi) }

// Frac2SqrtPi is 2/√π.
func Frac2SqrtPi[F Float]() F { return F(2 / math.SqrtPi) }

// Frac1Sqrt2 is 1/√2.
func Frac1Sqrt2[F Float]() F { return F(1 / math.Sqrt2) }

// FracPi2 is π/2.
func FracPi2[F Float]() F { return F(math.Pi / 2) }

// FracPi3 is π/3.
func FracPi3[F Float]() F { return F(math.Pi / 3) }

// FracPi4 is π/4.
func FracPi4[F Float]() F { return F(math.Pi / 4) }

// FracPi6 is π/6.
func FracPi6[F Float]() F { return F(math.Pi / 6) }

// FracPi8 is π/8.
func FracPi8[F Float]() F { return F(math.Pi / 8) }

