package kdtree

import (
	"fmt"
	"math"
)

// Box describes an axis-aligned periodic domain: along axis i space wraps
// with period Periods[i]. Every stored and queried coordinate must lie in
// [0, period) on each axis; this is a strict precondition checked at the
// construction and query boundaries, not corrected by wrapping.
type Box struct {
	periods []float64
}

// NewBox creates a periodic box with the given per-axis periods. Every
// period must be positive and finite; otherwise fails with
// ErrInvalidConfig.
func NewBox(periods ...float64) (*Box, error) {
	if len(periods) == 0 {
		return nil, fmt.Errorf("kdtree: box has no axes: %w", ErrInvalidConfig)
	}
	for i, p := range periods {
		if !(p > 0) || math.IsInf(p, 1) {
			return nil, fmt.Errorf("kdtree: period %v on axis %d must be positive and finite: %w",
				p, i, ErrInvalidConfig)
		}
	}
	b := &Box{periods: make([]float64, len(periods))}
	copy(b.periods, periods)
	return b, nil
}

// UnitBox returns a box with period 1 on each of dims axes.
func UnitBox(dims int) *Box {
	periods := make([]float64, dims)
	for i := range periods {
		periods[i] = 1
	}
	return &Box{periods: periods}
}

// Dims returns the number of axes.
func (b *Box) Dims() int { return len(b.periods) }

// Period returns the wrap period along axis i.
func (b *Box) Period(i int) float64 { return b.periods[i] }

// checkPoint verifies that every coordinate of p lies in [0, period).
// A coordinate equal to the period is out of domain; exactly 0 is fine.
func (b *Box) checkPoint(p []float64) error {
	for i, v := range p {
		if v < 0 || v >= b.periods[i] {
			return fmt.Errorf("coordinate %v on axis %d outside [0, %v): %w",
				v, i, b.periods[i], ErrOutOfDomain)
		}
	}
	return nil
}
