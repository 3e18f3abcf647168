package approx

import (
	"math"
	"testing"
)

func TestFastSqrt(t *testing.T) {
	tests := []struct {
		name string
		x    float64
	}{
		{"one", 1},
		{"four", 4},
		{"quarter", 0.25},
		{"pi", math.Pi},
		{"million", 1e6},
		{"tiny", 1e-300},
		{"huge", 1e300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FastSqrt(tt.x)
			want := math.Sqrt(tt.x)
			if relErr(got, want) > 1e-12 {
				t.Errorf("FastSqrt(%v) = %v, want %v", tt.x, got, want)
			}
		})
	}
}

func TestFastSqrtSpecial(t *testing.T) {
	if got := FastSqrt(0); got != 0 {
		t.Errorf("FastSqrt(0) = %v, want 0", got)
	}
	if got := FastSqrt(-1); !math.IsNaN(got) {
		t.Errorf("FastSqrt(-1) = %v, want NaN", got)
	}
	if got := FastSqrt(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("FastSqrt(+Inf) = %v, want +Inf", got)
	}
	if got := FastSqrt(math.NaN()); !math.IsNaN(got) {
		t.Errorf("FastSqrt(NaN) = %v, want NaN", got)
	}
}

func TestFastSqrtSweep(t *testing.T) {
	for x := 1e-3; x < 1e9; x *= 2.7 {
		got := FastSqrt(x)
		want := math.Sqrt(x)
		if relErr(got, want) > 1e-12 {
			t.Fatalf("FastSqrt(%v) = %v, want %v", x, got, want)
		}
	}
}

func BenchmarkFastSqrt(b *testing.B) {
	x := 3.141592653589793
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = FastSqrt(x)
	}
	_ = sink
}

func BenchmarkMathSqrt(b *testing.B) {
	x := 3.141592653589793
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = math.Sqrt(x)
	}
	_ = sink
}
