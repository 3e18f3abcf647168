package approx

import "math"

// logCoeffs approximates ln(1+t) for t in (2^(-1/4)-1, 2^(1/4)-1), highest
// degree first. The domain is narrow enough that degree 17 reaches 1e-12
// relative accuracy; the tiny trailing constant absorbs the fit's residual
// at t = 0.
var logCoeffs = [...]float64{
	0.05830012414910911,
	-0.0724454848037986,
	0.06745456264338053,
	-0.07071157326414279,
	0.0768621149324746,
	-0.08336128638736695,
	0.09091112804841374,
	-0.09999937157336908,
	0.1111110784241662,
	-0.12500000775209813,
	0.14285714306426145,
	-0.1666666666256715,
	0.2,
	-0.25,
	0.3333333333333333,
	-0.5,
	1.0,
	-7.458340731200207e-155,
}

const (
	ln2          = 0.6931471805599453
	lnSqrt2      = 0.34657359027997264
	lnQuartRoot2 = 0.17328679513998632

	sqrt2         = 1.4142135623730951
	invSqrt2      = 0.7071067811865476
	quartRoot2    = 1.189207115002721
	invQuartRoot2 = 0.8408964152537145
)

// ieeeExponent reads the unbiased binary exponent of x straight from its
// IEEE 754 bit pattern (bits 52-62, bias 1023). This is the one platform
// assumption in the package: float64 must be binary64.
func ieeeExponent(x float64) int32 {
	const expMask = 0x7ff0000000000000
	return int32((math.Float64bits(x)&expMask)>>52) - 1023
}

// FastLog computes the natural logarithm of x with roughly 1e-12 relative
// error for positive finite x. Zero, negative, infinite, and NaN inputs are
// not special-cased.
//
// The exponent field provides a coarse log2 estimate n; after scaling by
// 2^-n the mantissa is folded twice more, by sqrt(2) and by 2^(1/4), each
// fold recording a ±1 flag. That confines the polynomial's argument to
// (2^(-1/4)-1, 2^(1/4)-1), and the result is rebuilt as
// poly + n*ln2 ± ln(sqrt 2) ± ln(2^(1/4)).
func FastLog(x float64) float64 {
	n := ieeeExponent(x)
	if n < 0 {
		// keep the scaled mantissa above 1 so the folds walk downward
		n++
	}
	x = math.Ldexp(x, int(-n))

	sign1 := 1.0
	if x > 1 {
		x *= invSqrt2
	} else {
		sign1 = -1.0
		x *= sqrt2
	}

	sign2 := 1.0
	if x > 1 {
		x *= invQuartRoot2
	} else {
		sign2 = -1.0
		x *= quartRoot2
	}

	return Polyval(logCoeffs[:], x-1) +
		float64(n)*ln2 + sign1*lnSqrt2 + sign2*lnQuartRoot2
}
