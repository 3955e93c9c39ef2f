package kdtree

import (
	"math"
	"testing"
)

const floatTol = 1e-12

func TestSquaredEuclidean(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"same point", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"unit offset one axis", []float64{0, 0, 0}, []float64{1, 0, 0}, 1},
		{"3-4-5 triangle", []float64{0, 0}, []float64{3, 4}, 25},
		{"negative coords", []float64{-1, -1, -1}, []float64{1, 1, 1}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SquaredEuclidean(tt.a, tt.b); math.Abs(got-tt.want) > floatTol {
				t.Errorf("SquaredEuclidean(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Euclidean(tt.a, tt.b); math.Abs(got-math.Sqrt(tt.want)) > floatTol {
				t.Errorf("Euclidean(%v, %v) = %v, want %v", tt.a, tt.b, got, math.Sqrt(tt.want))
			}
		})
	}
}

func TestMinImageDelta(t *testing.T) {
	tests := []struct {
		name   string
		d      float64
		period float64
		want   float64
	}{
		{"zero", 0, 1, 0},
		{"small positive", 0.2, 1, 0.2},
		{"small negative", -0.2, 1, -0.2},
		{"wraps forward", 0.98, 1, -0.02},
		{"wraps backward", -0.98, 1, 0.02},
		{"exactly half period", 0.5, 1, -0.5},
		{"exactly minus half period", -0.5, 1, -0.5},
		{"full period", 1.0, 1, 0},
		{"beyond period", 1.3, 1, 0.3},
		{"non-unit period", 7.5, 10, -2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinImageDelta(tt.d, tt.period)
			if math.Abs(got-tt.want) > floatTol {
				t.Errorf("MinImageDelta(%v, %v) = %v, want %v", tt.d, tt.period, got, tt.want)
			}
		})
	}
}

func TestMinImageDelta_Range(t *testing.T) {
	// Folded deltas always land in [-p/2, p/2).
	period := 3.7
	for d := -2 * period; d <= 2*period; d += period / 50 {
		got := MinImageDelta(d, period)
		if got < -period/2 || got >= period/2 {
			t.Errorf("MinImageDelta(%v, %v) = %v, outside [-p/2, p/2)", d, period, got)
		}
	}
}

func TestPeriodic_WrapAround(t *testing.T) {
	// Two points on opposite sides of a unit box boundary are close via
	// the wrap, not far via the direct path.
	periods := []float64{1, 1, 1}
	a := []float64{0.01, 0.5, 0.5}
	b := []float64{0.99, 0.5, 0.5}

	got := Periodic(a, b, periods)
	if math.Abs(got-0.02) > floatTol {
		t.Errorf("Periodic = %v, want 0.02", got)
	}
	if got2 := SquaredPeriodic(a, b, periods); math.Abs(got2-0.0004) > floatTol {
		t.Errorf("SquaredPeriodic = %v, want 0.0004", got2)
	}
}

func TestPeriodic_MatchesEuclideanForNearbyPoints(t *testing.T) {
	// Well inside the box the periodic metric reduces to Euclidean.
	periods := []float64{10, 10, 10}
	a := []float64{4, 5, 6}
	b := []float64{4.5, 5.5, 5.5}

	if p, e := Periodic(a, b, periods), Euclidean(a, b); math.Abs(p-e) > floatTol {
		t.Errorf("Periodic = %v, Euclidean = %v, want equal", p, e)
	}
}

func TestPeriodic_Symmetric(t *testing.T) {
	periods := []float64{1, 2, 5}
	a := []float64{0.9, 1.9, 0.1}
	b := []float64{0.05, 0.1, 4.8}

	if ab, ba := Periodic(a, b, periods), Periodic(b, a, periods); math.Abs(ab-ba) > floatTol {
		t.Errorf("Periodic(a,b) = %v, Periodic(b,a) = %v, want equal", ab, ba)
	}
}
