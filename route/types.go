// Package route - core types, sentinel errors, and configuration.
//
// Options is the typed replacement for a string-keyed settings lookup: every
// knob is declared once, validated once at the Solve boundary, and passed
// explicitly. No ambient state is read anywhere in this package.
package route

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the solver. All configuration-shaped failures
// wrap ErrInvalidConfiguration so callers can match either the specific
// sentinel or the whole category via errors.Is.
var (
	// ErrEmptyPointSet indicates that zero points were supplied where at
	// least one is required (SelectStart).
	ErrEmptyPointSet = errors.New("route: empty point set")

	// ErrInsufficientPoints indicates that Solve received fewer than two
	// points; path construction is undefined below that.
	ErrInsufficientPoints = errors.New("route: at least two points required")

	// ErrInvalidConfiguration is the category sentinel for contradictory or
	// out-of-range Options.
	ErrInvalidConfiguration = errors.New("route: invalid configuration")

	// ErrIndexOutOfRange indicates a StartIndex or EndIndex outside [0..n-1].
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidConfiguration)

	// ErrUnsupportedAlgorithm indicates an Algorithm value this package does not know.
	ErrUnsupportedAlgorithm = fmt.Errorf("%w: unsupported algorithm", ErrInvalidConfiguration)

	// ErrUnknownStartPolicy indicates a StartPolicy value this package does not know.
	ErrUnknownStartPolicy = fmt.Errorf("%w: unknown start policy", ErrInvalidConfiguration)

	// ErrBadEps indicates a negative acceptance tolerance, which would invert
	// the 2-opt acceptance rule Δ < -Eps.
	ErrBadEps = fmt.Errorf("%w: Eps must be non-negative", ErrInvalidConfiguration)

	// ErrBadMaxIters indicates a negative accepted-move cap (0 means unlimited).
	ErrBadMaxIters = fmt.Errorf("%w: TwoOptMaxIters must be non-negative", ErrInvalidConfiguration)

	// ErrNonFiniteCoordinate indicates a NaN or ±Inf coordinate in the input.
	ErrNonFiniteCoordinate = fmt.Errorf("%w: non-finite coordinate", ErrInvalidConfiguration)
)

// Algorithm selects the solver pipeline.
type Algorithm int

const (
	// NearestNeighborOnly builds a greedy tour and returns it as-is.
	NearestNeighborOnly Algorithm = iota

	// NearestNeighborTwoOpt builds a greedy tour and refines it with
	// first-improvement 2-opt local search until a local optimum.
	NearestNeighborTwoOpt
)

// StartPolicy names the rule used to pick a start index when the caller does
// not supply one. Ties are always broken by the lowest index.
type StartPolicy int

const (
	// First picks index 0.
	First StartPolicy = iota

	// Last picks index n-1.
	Last

	// Northernmost picks the index with maximal Y.
	Northernmost

	// Southernmost picks the index with minimal Y.
	Southernmost

	// Easternmost picks the index with maximal X.
	Easternmost

	// Westernmost picks the index with minimal X.
	Westernmost

	// ClosestToCentroid picks the index nearest to the arithmetic mean of
	// all coordinates.
	ClosestToCentroid
)

// NoIndex marks StartIndex/EndIndex as unset.
const NoIndex = -1

// Options configures a single Solve call.
//
//	Algo               - solver pipeline (default NearestNeighborTwoOpt).
//	StartPolicy        - start-selection rule, used only when StartIndex is unset.
//	StartIndex         - explicit start index, or NoIndex to derive from StartPolicy.
//	EndIndex           - explicit terminal index, or NoIndex for none. When set,
//	                     CloseLoop is ignored; EndIndex equal to the start is
//	                     treated as a closed-loop request.
//	CloseLoop          - add the return edge from the last visited point back to
//	                     the start when computing the total distance.
//	AppendClosingPoint - with CloseLoop, also append the start index at the end
//	                     of the returned order (explicit closed representation).
//	Eps                - 2-opt acceptance tolerance: a reversal is adopted only
//	                     when Δ < -Eps. Must be ≥ 0; 0 means any strict improvement.
//	TwoOptMaxIters     - cap on accepted 2-opt moves; 0 means run to convergence.
type Options struct {
	Algo               Algorithm
	StartPolicy        StartPolicy
	StartIndex         int
	EndIndex           int
	CloseLoop          bool
	AppendClosingPoint bool
	Eps                float64
	TwoOptMaxIters     int
}

// DefaultOptions returns Options with the canonical defaults:
// NearestNeighborTwoOpt, First start policy, no explicit endpoints,
// open path, strict improvement acceptance, convergence-bounded 2-opt.
func DefaultOptions() Options {
	return Options{
		Algo:               NearestNeighborTwoOpt,
		StartPolicy:        First,
		StartIndex:         NoIndex,
		EndIndex:           NoIndex,
		CloseLoop:          false,
		AppendClosingPoint: false,
		Eps:                0,
		TwoOptMaxIters:     0,
	}
}

// Result holds the outcome of a Solve call.
type Result struct {
	// Order is the visiting sequence of point indices. Ignoring an optional
	// trailing repeat of the start (AppendClosingPoint), it is a permutation
	// of 0..n-1.
	Order []int

	// TotalDistance is the sum of Euclidean segment lengths implied by Order
	// (plus the return edge under CloseLoop), stabilized to 1e-9.
	TotalDistance float64
}
