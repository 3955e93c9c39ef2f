package kdtree

import (
	"fmt"
	"math"
)

// MaxPoints is the largest point set a Tree can index. Node ranges and
// child handles are stored as int32.
const MaxPoints = 1<<31 - 1

// DefaultLeafSize is a reasonable leaf size for 3-D workloads.
const DefaultLeafSize = 32

// nodeData is one node in the flat node arena. Leaves have left == -1
// and cover the tree-order index range [idxStart, idxEnd); split nodes
// additionally carry the split axis and value, and their children cover
// disjoint contiguous sub-ranges.
type nodeData struct {
	idxStart, idxEnd int32
	left, right      int32 // -1 for leaves
	splitDim         int32
	splitVal         float64
}

func (nd *nodeData) isLeaf() bool { return nd.left < 0 }

// Tree is a balanced-ish k-d tree over an immutable PointSet, built once
// and queried many times. Nodes live in a flat arena indexed by int32
// handles; point order inside the tree is tracked by a permutation array
// mapping tree-order positions back to original PointSet indices.
//
// A Tree is immutable after Build returns and is safe for unlimited
// concurrent queries.
type Tree struct {
	ps       *PointSet
	box      *Box // nil when non-periodic
	leafSize int
	idx      []int32    // permutation: tree-order position -> original index
	nodes    []nodeData // node arena; root is nodes[0]
}

// Build constructs a Tree over ps with the given leaf size and optional
// periodic box (nil means plain Euclidean space).
//
// Split policy: at each range the axis with the greatest coordinate
// spread is chosen (lowest axis index wins ties), the split value is the
// midpoint of that spread, and the range is partitioned in place with
// coordinates <= split value going left. A range whose spread is zero on
// every axis, or whose midpoint rounds onto the range maximum, becomes a
// leaf regardless of leaf size, which guarantees termination on
// duplicate points. Construction is deterministic: the same point order,
// leaf size and box always produce the same tree.
//
// Fails with ErrInvalidConfig if leafSize < 1 or the box dimensionality
// does not match ps, with ErrCapacityExceeded if ps.Len() > MaxPoints,
// and with ErrOutOfDomain if the box is periodic and any stored
// coordinate falls outside [0, period) on its axis.
func Build(ps *PointSet, leafSize int, box *Box) (*Tree, error) {
	if ps == nil || ps.n == 0 {
		return nil, fmt.Errorf("kdtree: build over empty point set: %w", ErrInvalidInput)
	}
	if leafSize < 1 {
		return nil, fmt.Errorf("kdtree: leaf size must be >= 1, got %d: %w", leafSize, ErrInvalidConfig)
	}
	if ps.n > MaxPoints {
		return nil, fmt.Errorf("kdtree: %d points exceeds MaxPoints = %d: %w", ps.n, MaxPoints, ErrCapacityExceeded)
	}
	if box != nil {
		if box.Dims() != ps.dims {
			return nil, fmt.Errorf("kdtree: box has %d axes, points have %d: %w",
				box.Dims(), ps.dims, ErrInvalidConfig)
		}
		for i := 0; i < ps.n; i++ {
			if err := box.checkPoint(ps.At(i)); err != nil {
				return nil, fmt.Errorf("kdtree: point %d: %w", i, err)
			}
		}
	}

	idx := make([]int32, ps.n)
	for i := range idx {
		idx[i] = int32(i)
	}

	t := &Tree{
		ps:       ps,
		box:      box,
		leafSize: leafSize,
		idx:      idx,
		// A leaf per leafSize points plus the internal nodes above them.
		nodes: make([]nodeData, 0, 2*(ps.n/leafSize+1)),
	}
	t.buildRange(0, int32(ps.n))
	return t, nil
}

// BuildPoints is a convenience wrapper that constructs the PointSet and
// the Tree in one call.
func BuildPoints(points [][]float64, leafSize int, box *Box) (*Tree, error) {
	ps, err := NewPointSet(points)
	if err != nil {
		return nil, err
	}
	return Build(ps, leafSize, box)
}

// buildRange builds the subtree over idx[lo:hi] and returns its node handle.
func (t *Tree) buildRange(lo, hi int32) int32 {
	id := int32(len(t.nodes))
	t.nodes = append(t.nodes, nodeData{idxStart: lo, idxEnd: hi, left: -1, right: -1})

	if hi-lo <= int32(t.leafSize) {
		return id
	}

	dim, minVal, spread := t.widestAxis(lo, hi)
	if spread == 0 {
		// All points in the range are identical on every axis.
		return id
	}

	splitVal := minVal + spread/2
	mid := t.partition(lo, hi, dim, splitVal)
	if mid == lo || mid == hi {
		// Rounding drove the midpoint onto the range boundary; an empty
		// side would recurse forever, so close the range as a leaf.
		return id
	}

	left := t.buildRange(lo, mid)
	right := t.buildRange(mid, hi)
	t.nodes[id].left = left
	t.nodes[id].right = right
	t.nodes[id].splitDim = int32(dim)
	t.nodes[id].splitVal = splitVal
	return id
}

// widestAxis returns the axis with the greatest coordinate spread over
// idx[lo:hi], together with the minimum and the spread on that axis.
// Ties go to the lowest axis index.
func (t *Tree) widestAxis(lo, hi int32) (dim int, minVal, spread float64) {
	dims := t.ps.dims
	data := t.ps.data

	maxSpread := -1.0
	for d := 0; d < dims; d++ {
		lo2, hi2 := math.Inf(1), math.Inf(-1)
		for i := lo; i < hi; i++ {
			v := data[int(t.idx[i])*dims+d]
			if v < lo2 {
				lo2 = v
			}
			if v > hi2 {
				hi2 = v
			}
		}
		if s := hi2 - lo2; s > maxSpread {
			maxSpread = s
			dim = d
			minVal = lo2
		}
	}
	return dim, minVal, maxSpread
}

// partition reorders idx[lo:hi] in place so every point with coordinate
// <= splitVal on dim comes before every point with coordinate > splitVal,
// and returns the boundary position.
func (t *Tree) partition(lo, hi int32, dim int, splitVal float64) int32 {
	dims := t.ps.dims
	data := t.ps.data

	i, j := lo, hi
	for i < j {
		if data[int(t.idx[i])*dims+dim] <= splitVal {
			i++
		} else {
			j--
			t.idx[i], t.idx[j] = t.idx[j], t.idx[i]
		}
	}
	return i
}

// NumPoints returns the number of indexed points.
func (t *Tree) NumPoints() int { return t.ps.n }

// Dims returns the dimensionality of the indexed points.
func (t *Tree) Dims() int { return t.ps.dims }

// NumNodes returns the total number of nodes (split + leaf) in the tree.
func (t *Tree) NumNodes() int { return len(t.nodes) }

// LeafSize returns the leaf size the tree was built with.
func (t *Tree) LeafSize() int { return t.leafSize }

// Box returns the periodic box the tree was built with, or nil.
func (t *Tree) Box() *Box { return t.box }

// Points returns the PointSet the tree indexes.
func (t *Tree) Points() *PointSet { return t.ps }
