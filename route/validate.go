// Package route - input validation for the Solve boundary.
//
// Everything contradictory or out of range is rejected here, before any
// algorithmic work begins (fail fast, no partial results). The helpers below
// the planner assume validated input and never raise for well-formed calls.
package route

import "github.com/katalvlaran/waypath/geom"

// validateSolveInput verifies the point set and the Options, returning the
// point count n on success.
//
// Checks, in order:
//  1. n ≥ 2 (ErrEmptyPointSet for n==0, ErrInsufficientPoints for n==1).
//  2. Every coordinate finite (ErrNonFiniteCoordinate).
//  3. Options internally consistent: known Algorithm and StartPolicy,
//     Eps ≥ 0, TwoOptMaxIters ≥ 0.
//  4. StartIndex/EndIndex each NoIndex or within [0..n-1].
//
// Complexity: O(n) time, O(1) space.
func validateSolveInput(pts []geom.Point, opts Options) (int, error) {
	n := len(pts)
	if n == 0 {
		return 0, ErrEmptyPointSet
	}
	if n < 2 {
		return 0, ErrInsufficientPoints
	}

	var i int
	for i = 0; i < n; i++ {
		if !geom.IsFinite(pts[i]) {
			return 0, ErrNonFiniteCoordinate
		}
	}

	if err := validateOptionsStandalone(opts); err != nil {
		return 0, err
	}

	if err := validateOptionalIndex(opts.StartIndex, n); err != nil {
		return 0, err
	}
	if err := validateOptionalIndex(opts.EndIndex, n); err != nil {
		return 0, err
	}

	return n, nil
}

// validateOptionsStandalone checks internal consistency of Options without
// referencing the point set.
//
// Complexity: O(1).
func validateOptionsStandalone(opts Options) error {
	switch opts.Algo {
	case NearestNeighborOnly, NearestNeighborTwoOpt:
		// ok
	default:
		return ErrUnsupportedAlgorithm
	}

	switch opts.StartPolicy {
	case First, Last, Northernmost, Southernmost, Easternmost, Westernmost, ClosestToCentroid:
		// ok
	default:
		return ErrUnknownStartPolicy
	}

	if opts.Eps < 0 {
		return ErrBadEps
	}
	if opts.TwoOptMaxIters < 0 {
		return ErrBadMaxIters
	}

	return nil
}

// validateOptionalIndex accepts NoIndex or any value within [0..n-1].
//
// Complexity: O(1).
func validateOptionalIndex(idx, n int) error {
	if idx == NoIndex {
		return nil
	}
	if idx < 0 || idx >= n {
		return ErrIndexOutOfRange
	}

	return nil
}
