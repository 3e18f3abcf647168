package vec

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// sinCoeffs mirrors package approx: sin(u + π/4) for |u| <= π/4, highest
// degree first.
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

// sinShift is the shared quadrant-reduction core behind Sin and Cos. The two
// conditional negations of the scalar form become mask selects keyed off the
// low two bits of the quadrant count.
func sinShift(x hwy.Vec[float64]) hwy.Vec[float64] {
	u, n := PeriodicClamp(x, math.Pi/2)

	zero := hwy.Zero[float64]()
	bit0 := hwy.Greater(hwy.ConvertToFloat64(hwy.And(n, hwy.Set(int32(1)))), zero)
	u = hwy.Merge(hwy.Neg(u), u, bit0)

	s := Polyval(sinCoeffs[:], u)

	bit1 := hwy.Greater(hwy.ConvertToFloat64(hwy.And(n, hwy.Set(int32(2)))), zero)
	return hwy.Merge(hwy.Neg(s), s, bit1)
}

// Sin computes sin(x) per lane; see approx.FastSin.
func Sin(x hwy.Vec[float64]) hwy.Vec[float64] {
	return sinShift(hwy.Sub(x, hwy.Set(math.Pi/4)))
}

// Cos computes cos(x) per lane; see approx.FastCos.
func Cos(x hwy.Vec[float64]) hwy.Vec[float64] {
	return sinShift(hwy.Add(x, hwy.Set(math.Pi/4)))
}

// SinCos computes sine and cosine of x per lane in one call.
func SinCos(x hwy.Vec[float64]) (sin, cos hwy.Vec[float64]) {
	return Sin(x), Cos(x)
}

// Tan computes tan(x) per lane as Sin(x)/Cos(x). Lanes at odd multiples of
// π/2 divide by a near-zero cosine and produce ±Inf.
func Tan(x hwy.Vec[float64]) hwy.Vec[float64] {
	return hwy.Div(Sin(x), Cos(x))
}
