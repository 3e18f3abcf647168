package vec

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// atanCoeffs mirrors package approx: atan(t) for t in [0, 0.25], highest
// degree first.
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

const (
	atanQuarter = 0.24497866312686414
	atanHalf    = 0.4636476090008061
	atanOne     = 0.7853981633974483
)

// halfAngleStep applies s = (v - f) / (1 + f*v) per lane.
func halfAngleStep(v hwy.Vec[float64], f float64) hwy.Vec[float64] {
	fv := hwy.Set(f)
	return hwy.Div(hwy.Sub(v, fv), hwy.MulAdd(fv, v, hwy.Set(1.0)))
}

// Atan computes atan(x) per lane; see approx.FastAtan. The sign bookkeeping
// of the scalar walk-back is already arithmetic (copysign), so the vector
// form is a direct restatement with lane-wise sign copies.
func Atan(x hwy.Vec[float64]) hwy.Vec[float64] {
	s0 := x
	x0 := hwy.Abs(s0)

	s1 := halfAngleStep(x0, 1)
	x1 := hwy.Abs(s1)

	s2 := halfAngleStep(x1, 0.5)
	x2 := hwy.Abs(s2)

	s3 := halfAngleStep(x2, 0.25)
	x3 := hwy.Abs(s3)

	p := Polyval(atanCoeffs[:], x3)

	p = hwy.Add(copySign(p, s3), hwy.Set(atanQuarter))
	p = hwy.Add(copySign(p, s2), hwy.Set(atanHalf))
	p = hwy.Add(copySign(p, s1), hwy.Set(atanOne))
	return copySign(p, s0)
}

// Atan2 computes the angle of each (x, y) lane pair in (-π, π]; see
// approx.FastAtan2 for the quadrant contract.
//
// The division runs unconditionally: x = 0 lanes push ±Inf or NaN through
// Atan and are then overwritten by the mask-selected special column
// (π/2 sign-copied from y, NaN where y is zero as well).
func Atan2(y, x hwy.Vec[float64]) hwy.Vec[float64] {
	zero := hwy.Zero[float64]()
	pi := hwy.Set(math.Pi)

	a := Atan(hwy.Div(y, x))

	corrected := hwy.Merge(hwy.Add(a, pi), hwy.Sub(a, pi), hwy.GreaterEqual(y, zero))
	a = hwy.Merge(a, corrected, hwy.Greater(x, zero))

	axis := copySign(hwy.Set(math.Pi/2), y)
	axis = hwy.Merge(hwy.Set(math.NaN()), axis, hwy.Equal(y, zero))
	return hwy.Merge(axis, a, hwy.Equal(x, zero))
}
