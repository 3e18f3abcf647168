package approx

import (
	"math"
	"testing"
)

func TestFastLog(t *testing.T) {
	// Inputs spanning several binades above and below 1.
	tests := []struct {
		name string
		x    float64
	}{
		{"above one", 5.155388558913315},
		{"thousands", 1963.561314768797},
		{"ten thousands", 18138.072812963892},
		{"small", 0.005506141006060214},
		{"below one", 0.8485974262673789},
		{"near half", 0.5895235440367635},
		{"tens", 16.565388066382837},
		{"two", 2},
		{"half", 0.5},
		{"huge", 1e300},
		{"tiny", 1e-300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FastLog(tt.x)
			want := math.Log(tt.x)
			if relErr(got, want) > 1e-12 {
				t.Errorf("FastLog(%v) = %v, want %v (rel err %v)", tt.x, got, want, relErr(got, want))
			}
		})
	}
}

func TestFastLogUnit(t *testing.T) {
	if got := FastLog(1); math.Abs(got) > 1e-12 {
		t.Errorf("FastLog(1) = %v, want 0", got)
	}
	if relErr(FastLog(math.E), 1) > 1e-12 {
		t.Errorf("FastLog(e) = %v, want 1", FastLog(math.E))
	}
}

func TestFastLogExpRoundTrip(t *testing.T) {
	for x := -20.0; x <= 20.0; x += 0.41 {
		got := FastLog(FastExp(x))
		if math.Abs(got-x) > 1e-11*math.Max(1, math.Abs(x)) {
			t.Fatalf("FastLog(FastExp(%v)) = %v", x, got)
		}
	}
}

func BenchmarkFastLog(b *testing.B) {
	x := 16.565388066382837
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = FastLog(x)
	}
	_ = sink
}

func BenchmarkMathLog(b *testing.B) {
	x := 16.565388066382837
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = math.Log(x)
	}
	_ = sink
}
