// Package kdtree implements an exact nearest-neighbor index for
// low-dimensional point sets, with optional periodic boundary conditions
// (a toroidal, wrap-around metric on an axis-aligned box).
//
// The tree is built once over an immutable PointSet and then queried any
// number of times. Construction uses a greatest-spread axis heuristic with
// midpoint splits; queries use branch-and-bound descent with a pruning
// bound that stays correct under the minimum-image (wrapped) metric.
//
// Basic usage:
//
//	ps, err := kdtree.NewPointSet(points)
//	tree, err := kdtree.Build(ps, 32, nil)
//	nb, err := tree.Nearest([]float64{0.1, 0.2, 0.3})
//	// nb.Index is the position of the nearest point in the input,
//	// nb.Distance its Euclidean distance from the query.
//
// For periodic boundary conditions on a unit box:
//
//	box, err := kdtree.NewBox(1, 1, 1)
//	tree, err := kdtree.Build(ps, 32, box)
//
// Under a periodic box every stored and queried coordinate must lie in
// [0, period) on each axis; out-of-range coordinates are rejected with
// ErrOutOfDomain, never silently wrapped.
//
// A built tree is immutable and safe for unlimited concurrent queries.
// NearestBatchParallel fans a query batch out across goroutines while
// preserving input order.
package kdtree
