package kdtree

import (
	"fmt"
	"math"
)

// Neighbor is a nearest-neighbor query result: the index of the closest
// point in the original PointSet and its distance from the query under
// the tree's active metric (Euclidean, or minimum-image when the tree
// was built with a periodic box).
type Neighbor struct {
	Index    int
	Distance float64
}

// Nearest returns the point closest to q. When two points are
// equidistant the first one encountered during traversal wins, so
// repeated queries always return the same index.
//
// Fails with ErrInvalidInput if q has the wrong dimensionality or a
// non-finite coordinate, with ErrOutOfDomain if the tree is periodic
// and q falls outside [0, period) on any axis, and with ErrEmptyTree
// when called on a nil or zero-value tree.
func (t *Tree) Nearest(q []float64) (Neighbor, error) {
	if t == nil || t.ps == nil || t.ps.n == 0 {
		return Neighbor{}, fmt.Errorf("kdtree: query against empty tree: %w", ErrEmptyTree)
	}
	if len(q) != t.ps.dims {
		return Neighbor{}, fmt.Errorf("kdtree: query has %d coordinates, want %d: %w",
			len(q), t.ps.dims, ErrInvalidInput)
	}
	for i, v := range q {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Neighbor{}, fmt.Errorf("kdtree: query has non-finite coordinate %v on axis %d: %w",
				v, i, ErrInvalidInput)
		}
	}
	if t.box != nil {
		if err := t.box.checkPoint(q); err != nil {
			return Neighbor{}, fmt.Errorf("kdtree: query: %w", err)
		}
	}

	s := nnState{best: -1, bestDist2: math.Inf(1)}
	t.searchNode(0, q, &s)
	return Neighbor{Index: int(s.best), Distance: math.Sqrt(s.bestDist2)}, nil
}

// nnState carries the running best candidate through a traversal.
type nnState struct {
	best      int32
	bestDist2 float64
}

// searchNode is the branch-and-bound descent. The near child (the one on
// the query's side of the splitting plane in real space) is visited
// first; the far child is visited only if its squared lower bound on the
// split axis undercuts the current best. Under a periodic box the far
// child is reachable two ways: directly through the splitting plane
// (cost >= |off|), or around the wrap, which always exits through the
// box face on the query's side of the axis (the zero face when the far
// child is the high side, the period face when it is the low side) and
// so costs at least the query's distance to that face. The bound is the
// lesser of the two.
func (t *Tree) searchNode(id int32, q []float64, s *nnState) {
	nd := &t.nodes[id]

	if nd.isLeaf() {
		t.scanLeaf(nd, q, s)
		return
	}

	off := q[nd.splitDim] - nd.splitVal
	near, far := nd.left, nd.right
	if off > 0 {
		near, far = far, near
	}

	t.searchNode(near, q, s)

	planeDist := math.Abs(off)
	if t.box != nil {
		faceDist := q[nd.splitDim]
		if off > 0 {
			faceDist = t.box.periods[nd.splitDim] - faceDist
		}
		if faceDist < planeDist {
			planeDist = faceDist
		}
	}
	if planeDist*planeDist < s.bestDist2 {
		t.searchNode(far, q, s)
	}
}

// scanLeaf checks every point in a leaf against the current best.
// Strict < keeps the earliest equidistant candidate.
func (t *Tree) scanLeaf(nd *nodeData, q []float64, s *nnState) {
	dims := t.ps.dims
	data := t.ps.data

	for i := nd.idxStart; i < nd.idxEnd; i++ {
		ptIdx := t.idx[i]
		pt := data[int(ptIdx)*dims : (int(ptIdx)+1)*dims]

		var d2 float64
		if t.box != nil {
			d2 = SquaredPeriodic(q, pt, t.box.periods)
		} else {
			d2 = SquaredEuclidean(q, pt)
		}
		if d2 < s.bestDist2 {
			s.bestDist2 = d2
			s.best = ptIdx
		}
	}
}
