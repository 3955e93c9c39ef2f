package kdtree

import (
	"fmt"
	"math"
)

// PointSet is an immutable, contiguous collection of fixed-dimension
// points. Coordinates are stored flat in row-major order, so point i is
// data[i*dims : (i+1)*dims]. A PointSet is never mutated after
// construction; any number of trees may be built over the same set.
type PointSet struct {
	data []float64 // flat row-major point data (n * dims)
	n    int
	dims int
}

// NewPointSet copies points into a new PointSet. Every row must have the
// same dimensionality and every coordinate must be finite; violations
// fail with ErrInvalidInput. An empty input fails with ErrInvalidInput.
func NewPointSet(points [][]float64) (*PointSet, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("kdtree: point set is empty: %w", ErrInvalidInput)
	}
	dims := len(points[0])
	if dims == 0 {
		return nil, fmt.Errorf("kdtree: zero-dimensional points: %w", ErrInvalidInput)
	}

	data := make([]float64, len(points)*dims)
	for i, row := range points {
		if len(row) != dims {
			return nil, fmt.Errorf("kdtree: point %d has %d coordinates, want %d: %w",
				i, len(row), dims, ErrInvalidInput)
		}
		copy(data[i*dims:], row)
	}

	return newPointSetOwned(data, len(points), dims)
}

// NewPointSetFlat copies flat row-major data (n points of dims
// coordinates each) into a new PointSet. len(data) must equal n*dims.
func NewPointSetFlat(data []float64, n, dims int) (*PointSet, error) {
	if n <= 0 || dims <= 0 {
		return nil, fmt.Errorf("kdtree: point set is empty: %w", ErrInvalidInput)
	}
	if len(data) != n*dims {
		return nil, fmt.Errorf("kdtree: data length %d does not match n*dims = %d: %w",
			len(data), n*dims, ErrInvalidInput)
	}

	dataCopy := make([]float64, len(data))
	copy(dataCopy, data)
	return newPointSetOwned(dataCopy, n, dims)
}

// newPointSetOwned takes ownership of data and validates coordinates.
func newPointSetOwned(data []float64, n, dims int) (*PointSet, error) {
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("kdtree: point %d has non-finite coordinate %v on axis %d: %w",
				i/dims, v, i%dims, ErrInvalidInput)
		}
	}
	return &PointSet{data: data, n: n, dims: dims}, nil
}

// Len returns the number of points in the set.
func (ps *PointSet) Len() int { return ps.n }

// Dims returns the dimensionality of each point.
func (ps *PointSet) Dims() int { return ps.dims }

// At returns the coordinates of point i as a read-only view into the
// set's storage. The caller must not modify the returned slice.
func (ps *PointSet) At(i int) []float64 {
	return ps.data[i*ps.dims : (i+1)*ps.dims]
}

// Data returns the flat row-major coordinate storage. Read-only.
func (ps *PointSet) Data() []float64 { return ps.data }
