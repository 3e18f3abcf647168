package vec

import "github.com/ajroetker/go-highway/hwy"

// Constants and coefficients mirror package approx.
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

// ieeeExponent extracts the unbiased binary exponent of each lane from its
// IEEE 754 bit pattern. The bit reinterpretation is the single
// platform-dependent primitive in the package.
func ieeeExponent(x hwy.Vec[float64]) hwy.Vec[int32] {
	const expMask = 0x7ff0000000000000
	bits := hwy.BitCastF64ToI64(x)
	e := hwy.ShiftRight(hwy.And(bits, hwy.Set(int64(expMask))), 52)
	return hwy.TruncateI64ToI32(hwy.Sub(e, hwy.Set(int64(1023))))
}

// Log computes the natural logarithm per lane; see approx.FastLog for the
// algorithm. Each of the scalar form's conditional folds becomes a
// select/sign-copy pair keyed off the fold pivot's residual.
func Log(x hwy.Vec[float64]) hwy.Vec[float64] {
	one := hwy.Set(1.0)
	zero := hwy.Zero[float64]()

	n := ieeeExponent(x)
	n = hwy.Merge(hwy.Add(n, hwy.Set(int32(1))), n, hwy.Less(n, hwy.Zero[int32]()))

	x = hwy.Mul(x, Powi(hwy.Set(2.0), hwy.Neg(n)))

	s1 := hwy.Sub(x, one)
	x = hwy.Mul(x, hwy.Merge(hwy.Set(invSqrt2), hwy.Set(sqrt2), hwy.GreaterEqual(s1, zero)))

	s2 := hwy.Sub(x, one)
	x = hwy.Mul(x, hwy.Merge(hwy.Set(invQuartRoot2), hwy.Set(quartRoot2), hwy.GreaterEqual(s2, zero)))

	p := Polyval(logCoeffs[:], hwy.Sub(x, one))
	p = hwy.MulAdd(hwy.ConvertToFloat64(n), hwy.Set(ln2), p)
	p = hwy.Add(p, copySign(hwy.Set(lnSqrt2), s1))
	return hwy.Add(p, copySign(hwy.Set(lnQuartRoot2), s2))
}
