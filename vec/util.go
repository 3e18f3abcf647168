package vec

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// Polyval evaluates a polynomial per lane using Horner's method.
// Coefficients are ordered from the highest degree down to the constant
// term, and every step is a lane-wise fused multiply-add.
func Polyval(coeffs []float64, x hwy.Vec[float64]) hwy.Vec[float64] {
	acc := hwy.Set(coeffs[0])
	for _, c := range coeffs[1:] {
		acc = hwy.MulAdd(acc, x, hwy.Set(c))
	}
	return acc
}

// copySign gives each lane of v the sign bit of the matching lane of s.
func copySign(v, s hwy.Vec[float64]) hwy.Vec[float64] {
	sign := hwy.SignBit[float64]()
	return hwy.Or(hwy.AndNot(sign, v), hwy.And(s, sign))
}

// PeriodicClamp folds each lane of x into [-period/2, period/2], returning
// the remainders and the per-lane period counts, with
// x ≈ r + n*period per lane. Ties round away from zero by sign-copying 0.5
// rather than branching. Quotients outside the int32 range saturate at the
// extremes before conversion, matching the scalar contract.
func PeriodicClamp(x hwy.Vec[float64], period float64) (hwy.Vec[float64], hwy.Vec[int32]) {
	q := hwy.Add(hwy.Div(x, hwy.Set(period)), copySign(hwy.Set(0.5), x))
	q = hwy.Min(q, hwy.Set(float64(math.MaxInt32)))
	q = hwy.Max(q, hwy.Set(float64(math.MinInt32)))
	n := hwy.ConvertToInt32(q)
	r := hwy.Sub(x, hwy.Mul(hwy.ConvertToFloat64(n), hwy.Set(period)))
	return r, n
}

// Powi raises each lane of base to the matching lane's integer exponent by
// repeated squaring. The low-bit test of the scalar algorithm becomes a
// per-lane mask select, and the loop runs until every lane's remaining
// exponent is zero; lanes that finish early keep folding with a no-op under
// the mask.
func Powi(base hwy.Vec[float64], n hwy.Vec[int32]) hwy.Vec[float64] {
	// MinInt32 survives Abs and would never shift to zero
	n = hwy.Max(n, hwy.Set(int32(-math.MaxInt32)))

	zero := hwy.Zero[float64]()
	neg := hwy.Less(hwy.ConvertToFloat64(n), zero)
	x := hwy.Merge(hwy.Div(hwy.Set(1.0), base), base, neg)

	m := hwy.Abs(n)
	mZero := hwy.Zero[int32]()
	one := hwy.Set(int32(1))

	acc := hwy.Set(1.0)
	for hwy.NotEqual(m, mZero).AnyTrue() {
		odd := hwy.Greater(hwy.ConvertToFloat64(hwy.And(m, one)), zero)
		acc = hwy.Merge(hwy.Mul(acc, x), acc, odd)
		x = hwy.Mul(x, x)
		m = hwy.ShiftRight(m, 1)
	}
	return acc
}
