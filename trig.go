package approx

import "math"

// sinCoeffs approximates sin(u + π/4) for |u| <= π/4, highest degree first.
// Centering the expansion at π/4 lets the single table serve both sine and
// cosine through an input phase shift.
var sinCoeffs = [...]float64{
	-5.407361331613617163144122758433153285488547082146937337448369019307e-13,
	-8.111041997420425744716184137649729928232820623220406006172553528961e-12,
	1.135545879638859604260265779270962189952594887250856840864157494054e-10,
	1.476209643530517485538345513052250846938373353426113893123404742270e-09,
	-1.771451572236620982646014615662701016326048024111336671748085690725e-08,
	-1.948596729460283080910616077228971117958652826522470338922894259797e-07,
	1.948596729460283080910616077228971117958652826522470338922894259797e-06,
	1.753737056514254772819554469506074006162787543870223305030604833817e-05,
	-0.000140298964521140381825564357560485920493023003509617864402448386,
	-0.000982092751647982672778950502923401443451161024567325050817138706,
	0.005892556509887896036673703017540408660706966147403950304902832241,
	0.029462782549439480183368515087702043303534830737019751524514161208,
	-0.117851130197757920733474060350808173214139322948079006098056644832,
	-0.353553390593273762200422181052424519642417968844237018294169934497,
	0.707106781186547524400844362104849039284835937688474036588339868995,
	0.707106781186547524400844362104849039284835937688474036588339868995,
}

// sinShift is the shared reduction core behind FastSin and FastCos.
// It reduces by π/2, mirrors the remainder when bit 0 of the quadrant count
// is set, and flips the polynomial's sign when bit 1 is set.
func sinShift(x float64) float64 {
	u, n := PeriodicClamp(x, math.Pi/2)
	if n&1 != 0 {
		u = -u
	}
	s := Polyval(sinCoeffs[:], u)
	if n&2 != 0 {
		s = -s
	}
	return s
}

// FastSin computes sin(x) with roughly 1e-12 absolute error for |x| up to a
// few thousand; accuracy degrades with the magnitude of x as the π/2
// reduction loses bits.
func FastSin(x float64) float64 {
	return sinShift(x - math.Pi/4)
}

// FastCos computes cos(x); see FastSin for the accuracy behavior.
func FastCos(x float64) float64 {
	return sinShift(x + math.Pi/4)
}

// FastTan computes tan(x) as FastSin(x)/FastCos(x). Odd multiples of π/2 are
// not special-cased: the division by a near-zero cosine produces ±Inf under
// ordinary float64 semantics.
func FastTan(x float64) float64 {
	return FastSin(x) / FastCos(x)
}
