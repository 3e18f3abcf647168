package vec

import "github.com/ajroetker/go-highway/hwy"

// Constants and coefficients mirror package approx; expOfPeriod = e^0.2.
const (
	expPeriod   = 0.2
	expOfPeriod = 1.2214027581601698
)

var expCoeffs = [...]float64{
	2.755731922398589e-7,
	2.7557319223985893e-6,
	2.48015873015873e-5,
	0.0001984126984126984,
	0.001388888888888889,
	0.008333333333333333,
	0.041666666666666664,
	0.16666666666666666,
	0.5,
	1.0,
	1.0,
}

// Exp computes e^x per lane; see approx.FastExp for the algorithm and the
// accuracy target.
func Exp(x hwy.Vec[float64]) hwy.Vec[float64] {
	u, n := PeriodicClamp(x, expPeriod)
	expu := Polyval(expCoeffs[:], u)
	fac := Powi(hwy.Set(expOfPeriod), n)
	return hwy.Mul(expu, fac)
}
