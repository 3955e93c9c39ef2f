package kdtree

import "math"

// SquaredEuclidean returns the squared Euclidean distance between a and b.
// Used as the "reduced" distance inside the tree search: it orders points
// the same way as Euclidean distance while skipping the sqrt.
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Euclidean returns the Euclidean (L2) distance between a and b.
func Euclidean(a, b []float64) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// MinImageDelta folds a raw coordinate difference d into the range
// [-period/2, period/2), the shortest signed displacement between two
// coordinates on a circle of the given period. The intermediate mod is
// normalized into [0, period) first, so a delta landing exactly on the
// half-period boundary always folds to -period/2.
func MinImageDelta(d, period float64) float64 {
	m := math.Mod(d+period/2, period)
	if m < 0 {
		m += period
	}
	return m - period/2
}

// SquaredPeriodic returns the squared minimum-image distance between a
// and b under the given per-axis periods. Both points are assumed to be
// pre-normalized into [0, period) per axis (see Box).
func SquaredPeriodic(a, b, periods []float64) float64 {
	var sum float64
	for i := range a {
		d := MinImageDelta(a[i]-b[i], periods[i])
		sum += d * d
	}
	return sum
}

// Periodic returns the minimum-image (wrapped) Euclidean distance between
// a and b under the given per-axis periods.
func Periodic(a, b, periods []float64) float64 {
	return math.Sqrt(SquaredPeriodic(a, b, periods))
}
