package approx

import "math"

// FastSqrt computes sqrt(x) with relative error well under 1e-12 for
// positive finite x.
//
// A reciprocal-square-root estimate is seeded from the bit pattern of x
// (the binary64 magic-constant trick) and refined with three Newton-Raphson
// iterations; multiplying back by x and finishing with one Heron step brings
// the result to within a few ulps of the true root.
//
// Special cases: FastSqrt(0) = 0, FastSqrt(+Inf) = +Inf, and negative input
// yields NaN.
func FastSqrt(x float64) float64 {
	if x == 0 {
		return 0
	}
	if x < 0 || math.IsInf(x, 1) || math.IsNaN(x) {
		if x < 0 {
			return math.NaN()
		}
		return x
	}

	const rsqrtMagic = 0x5fe6eb50c7b537a9
	r := math.Float64frombits(rsqrtMagic - math.Float64bits(x)>>1)

	half := 0.5 * x
	r = r * (1.5 - half*r*r)
	r = r * (1.5 - half*r*r)
	r = r * (1.5 - half*r*r)

	s := x * r
	return 0.5 * (s + x/s)
}
