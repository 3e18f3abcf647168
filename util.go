package approx

import "math"

// Polyval evaluates a polynomial at x using Horner's method. Coefficients are
// ordered from the highest degree down to the constant term. Every step is a
// fused multiply-add, which bounds the rounding error to roughly one rounding
// per term.
func Polyval(coeffs []float64, x float64) float64 {
	acc := coeffs[0]
	for _, c := range coeffs[1:] {
		acc = math.FMA(acc, x, c)
	}
	return acc
}

// PeriodicClamp folds x into a small interval around zero: it returns the
// remainder r and period count n such that x ≈ r + n*period with
// |r| <= period/2. The count is n = round(x/period) with ties rounded away
// from zero in the direction of x's sign.
//
// The quotient must fit in an int32. Inputs whose magnitude divided by the
// period exceeds that range saturate n to math.MaxInt32 or math.MinInt32;
// the remainder is then meaningless but the call remains well defined.
func PeriodicClamp(x, period float64) (float64, int32) {
	n := truncInt32(x/period + math.Copysign(0.5, x))
	return x - float64(n)*period, n
}

// truncInt32 truncates toward zero, saturating at the int32 extremes.
// Go leaves out-of-range float-to-integer conversion implementation-defined,
// so the clamp has to happen before the conversion.
func truncInt32(q float64) int32 {
	switch {
	case q >= math.MaxInt32:
		return math.MaxInt32
	case q <= math.MinInt32:
		return math.MinInt32
	}
	return int32(q)
}

// Powi raises base to the integer power n using exponentiation by squaring,
// O(log n) multiplications. Negative exponents invert the base first.
// Powi(x, 0) == 1 for every finite nonzero x.
func Powi(base float64, n int32) float64 {
	m := uint64(int64(n))
	if n < 0 {
		base = 1 / base
		m = uint64(-int64(n))
	}

	acc := 1.0
	for m != 0 {
		if m&1 != 0 {
			acc *= base
		}
		base *= base
		m >>= 1
	}
	return acc
}
