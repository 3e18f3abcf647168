package approx

import "math"

// atanCoeffs approximates atan(t) for t in [0, 0.25], highest degree first.
// Fitted offline at Chebyshev nodes; the residual on the domain stays below
// one ulp of the result.
var atanCoeffs = [...]float64{
	-0.016936229350129506,
	-0.060878072482160206,
	0.13587572288589092,
	-0.006127758558601346,
	-0.14187191989572975,
	-0.00010485509390980446,
	0.20000731568228808,
	-3.227755259044285e-07,
	-0.3333333249440463,
	-1.1252358766977721e-10,
	1.0000000000005904,
	-4.996003610813204e-16,
}

// Arctangents of the half-angle pivots 1/4, 1/2, and 1. These are the fixed
// angles added back while unwinding the substitution chain.
const (
	atanQuarter = 0.24497866312686414
	atanHalf    = 0.4636476090008061
	atanOne     = 0.7853981633974483
)

// halfAngleStep applies the half-angle tangent substitution
// s = (v - f) / (1 + f*v), which satisfies atan(v) = atan(s) + atan(f).
func halfAngleStep(v, f float64) float64 {
	return (v - f) / (1 + f*v)
}

// FastAtan computes atan(x) with roughly 1e-12 absolute error.
//
// Three successive half-angle substitutions with pivots 1, 1/2, and 1/4 fold
// |x| into [0, 0.25], taking absolute values between steps. The polynomial
// approximates atan there, and the angle is rebuilt by walking the chain
// backwards: each step copies the sign of its substitution result onto the
// running angle and adds the pivot's arctangent. FastAtan is exactly odd.
func FastAtan(x float64) float64 {
	s0 := x
	x0 := math.Abs(s0)

	s1 := halfAngleStep(x0, 1)
	x1 := math.Abs(s1) // in [0, 1]

	s2 := halfAngleStep(x1, 0.5)
	x2 := math.Abs(s2) // in [0, 0.5]

	s3 := halfAngleStep(x2, 0.25)
	x3 := math.Abs(s3) // in [0, 0.25]

	p := Polyval(atanCoeffs[:], x3)

	p = math.Copysign(p, s3) + atanQuarter
	p = math.Copysign(p, s2) + atanHalf
	p = math.Copysign(p, s1) + atanOne
	return math.Copysign(p, s0)
}

// FastAtan2 computes the angle of the point (x, y) in (-π, π], using the
// signs of both arguments to pick the quadrant.
//
// Special cases:
//   - FastAtan2(y, 0) = +π/2 for y > 0, -π/2 for y < 0
//   - FastAtan2(0, 0) = NaN (the direction of the origin is undefined)
func FastAtan2(y, x float64) float64 {
	if x == 0 {
		switch {
		case y > 0:
			return math.Pi / 2
		case y < 0:
			return -math.Pi / 2
		}
		return math.NaN()
	}

	a := FastAtan(y / x)
	if x > 0 {
		return a
	}
	if y >= 0 {
		return a + math.Pi
	}
	return a - math.Pi
}
