package approx

// The reduction period for FastExp and its exponential: expOfPeriod = e^0.2.
// A period of 0.2 keeps the polynomial's argument inside [-0.1, 0.1], where
// the degree-10 truncated Taylor series is accurate past 1e-15.
const (
	expPeriod   = 0.2
	expOfPeriod = 1.2214027581601698
)

// expCoeffs is the truncated Taylor series of e^u, highest degree first
// (Polyval order): u^10/10! down to u and the constant 1.
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

// FastExp computes e^x with roughly 1e-12 relative error over practical input
// ranges (|x| up to about 25).
//
// The argument is folded to u = x - 0.2n with |u| <= 0.1, the polynomial
// approximates e^u, and the result is reconstructed as e^u * (e^0.2)^n via
// Powi. Overflow and underflow are not special-cased; the reconstruction
// saturates to +Inf or 0 through ordinary float64 arithmetic.
func FastExp(x float64) float64 {
	u, n := PeriodicClamp(x, expPeriod)
	return Polyval(expCoeffs[:], u) * Powi(expOfPeriod, n)
}
