package vec

import (
	"github.com/ajroetker/go-highway/hwy"
	"github.com/meko-christian/algo-approx"
)

// The *Slice kernels apply a function to every element of a float64 slice,
// processing full vectors at the current dispatch width and finishing any
// remainder with the scalar kernel. Input and output may be the same slice;
// an output shorter than the input truncates the work.

// ExpSlice computes e^x element-wise.
func ExpSlice(input, output []float64) {
	mapSlice(input, output, Exp, approx.FastExp)
}

// LogSlice computes the natural logarithm element-wise.
func LogSlice(input, output []float64) {
	mapSlice(input, output, Log, approx.FastLog)
}

// SinSlice computes sin element-wise.
func SinSlice(input, output []float64) {
	mapSlice(input, output, Sin, approx.FastSin)
}

// CosSlice computes cos element-wise.
func CosSlice(input, output []float64) {
	mapSlice(input, output, Cos, approx.FastCos)
}

// TanSlice computes tan element-wise.
func TanSlice(input, output []float64) {
	mapSlice(input, output, Tan, approx.FastTan)
}

// AtanSlice computes atan element-wise.
func AtanSlice(input, output []float64) {
	mapSlice(input, output, Atan, approx.FastAtan)
}

// Atan2Slice computes atan2(y[i], x[i]) element-wise.
func Atan2Slice(y, x, output []float64) {
	size := min(len(y), len(x), len(output))
	lanes := hwy.MaxLanes[float64]()

	ii := 0
	for ; ii+lanes <= size; ii += lanes {
		vy := hwy.Load(y[ii : ii+lanes])
		vx := hwy.Load(x[ii : ii+lanes])
		hwy.Store(Atan2(vy, vx), output[ii:])
	}
	for ; ii < size; ii++ {
		output[ii] = approx.FastAtan2(y[ii], x[ii])
	}
}

func mapSlice(input, output []float64, vecFn func(hwy.Vec[float64]) hwy.Vec[float64], scalarFn func(float64) float64) {
	size := min(len(input), len(output))
	lanes := hwy.MaxLanes[float64]()

	ii := 0
	for ; ii+lanes <= size; ii += lanes {
		v := hwy.Load(input[ii : ii+lanes])
		hwy.Store(vecFn(v), output[ii:])
	}
	for ; ii < size; ii++ {
		output[ii] = scalarFn(input[ii])
	}
}
