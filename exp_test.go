package approx

import (
	"math"
	"testing"
)

func TestFastExp(t *testing.T) {
	tests := []struct {
		name string
		x    float64
	}{
		{"zero", 0},
		{"one", 1},
		{"negative one", -1},
		{"half", 0.5},
		{"pi", math.Pi},
		{"two pi", 2 * math.Pi},
		{"negative four pi", -4 * math.Pi},
		{"eight pi", 8 * math.Pi},
		{"large", 20},
		{"large negative", -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FastExp(tt.x)
			want := math.Exp(tt.x)
			if relErr(got, want) > 1e-12 {
				t.Errorf("FastExp(%v) = %v, want %v (rel err %v)", tt.x, got, want, relErr(got, want))
			}
		})
	}
}

func TestFastExpExactCases(t *testing.T) {
	if got := FastExp(0); got != 1 {
		t.Errorf("FastExp(0) = %v, want exactly 1", got)
	}
	if relErr(FastExp(1), 2.718281828459045) > 1e-12 {
		t.Errorf("FastExp(1) = %v, want e", FastExp(1))
	}
}

func TestFastExpSweep(t *testing.T) {
	for x := -25.0; x <= 25.0; x += 0.37 {
		got := FastExp(x)
		want := math.Exp(x)
		if relErr(got, want) > 1e-12 {
			t.Fatalf("FastExp(%v) = %v, want %v (rel err %v)", x, got, want, relErr(got, want))
		}
	}
}

// relErr returns |got-want| / |want|, or the absolute error when want is
// very small.
func relErr(got, want float64) float64 {
	d := math.Abs(got - want)
	if math.Abs(want) < 1e-300 {
		return d
	}
	return d / math.Abs(want)
}

func BenchmarkFastExp(b *testing.B) {
	x := 1.78
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = FastExp(x)
	}
	_ = sink
}

func BenchmarkMathExp(b *testing.B) {
	x := 1.78
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = math.Exp(x)
	}
	_ = sink
}
