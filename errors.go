package kdtree

import "errors"

// Sentinel errors returned by construction and query operations. All
// failures are detected synchronously at the call that introduces the bad
// state and wrap one of these, so callers can classify with errors.Is.
var (
	// ErrInvalidInput indicates malformed point data: zero points, a
	// ragged or wrong-dimension row, or a non-finite coordinate.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates a bad build parameter: leaf size < 1 or
	// a non-positive box period.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrOutOfDomain indicates a coordinate outside [0, period) on a
	// periodic axis. Out-of-domain input is rejected, never wrapped.
	ErrOutOfDomain = errors.New("coordinate out of periodic domain")

	// ErrEmptyTree indicates a query against a tree holding no points.
	ErrEmptyTree = errors.New("empty tree")

	// ErrCapacityExceeded indicates a point set larger than MaxPoints.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)
