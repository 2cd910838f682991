// Package route - the constrained path planner, single validated entry point.
//
// Solve resolves the full request shape into a Result under three regimes:
//
//  1. Open path: pick a start (explicit index or policy), build greedily,
//     optionally refine with 2-opt, report the open-path length.
//  2. Closed loop: as (1), with the return edge from the last visited point
//     back to the start added to the total. The start index is appended to
//     the order only when Options.AppendClosingPoint is set.
//  3. Fixed start and end: the interior indices are built greedily starting
//     from the interior point nearest to the start, optionally refined with
//     the interior-only 2-opt (both endpoints held), and assembled as
//     [start] + interior + [end].
//
// A fixed end equal to the start is a closed-loop request and is handled by
// regime 2. Every failure is detected up front; see validate.go.
package route

import "github.com/katalvlaran/waypath/geom"

// Solve computes a visiting order over pts according to opts.
//
// The returned order (ignoring a trailing loop-closing repeat of the start)
// is a permutation of 0..len(pts)-1; the total distance is non-negative,
// finite for finite inputs, and stabilized to 1e-9.
//
// Errors: ErrEmptyPointSet, ErrInsufficientPoints, and the
// ErrInvalidConfiguration family (see types.go). Solve is deterministic:
// identical inputs always produce the identical Result.
//
// Complexity: O(n²) for NearestNeighbor, O(iter·n²) more for the 2-opt
// refinement; all buffers are freshly allocated per call, so independent
// calls may run concurrently.
func Solve(pts []geom.Point, opts Options) (Result, error) {
	if _, err := validateSolveInput(pts, opts); err != nil {
		return Result{}, err
	}

	// Resolve the start anchor: explicit index wins over policy.
	start := opts.StartIndex
	if start == NoIndex {
		var err error
		if start, err = SelectStart(pts, opts.StartPolicy); err != nil {
			return Result{}, err
		}
	}

	// A fixed end identical to the start means "return to where you began":
	// fold it into the closed-loop regime.
	end := opts.EndIndex
	closeLoop := opts.CloseLoop
	if end != NoIndex && end == start {
		end = NoIndex
		closeLoop = true
	}

	if end != NoIndex {
		return solveFixedEnd(pts, start, end, opts)
	}

	return solveOpen(pts, start, closeLoop, opts)
}

// solveOpen handles regimes 1 and 2: greedy construction over all indices,
// optional 2-opt refinement, and the optional return edge.
func solveOpen(pts []geom.Point, start int, closeLoop bool, opts Options) (Result, error) {
	order, err := NearestNeighbor(pts, start)
	if err != nil {
		return Result{}, err
	}

	if opts.Algo == NearestNeighborTwoOpt {
		if order, _, err = TwoOpt(pts, order, opts); err != nil {
			return Result{}, err
		}
	}

	if closeLoop {
		total := loopLength(pts, order)
		if opts.AppendClosingPoint {
			order = CloseOrder(order)
		}

		return Result{Order: order, TotalDistance: round1e9(total)}, nil
	}

	return Result{Order: order, TotalDistance: round1e9(PathLength(pts, order))}, nil
}

// solveFixedEnd handles regime 3: both anchors supplied and distinct.
// The interior is ordered independently of the anchors, then the path is
// assembled as [start] + interior + [end] and refined with both ends held.
func solveFixedEnd(pts []geom.Point, start, end int, opts Options) (Result, error) {
	n := len(pts)

	// Partition the remaining indices into the interior set (ascending, so
	// all downstream tie-breaks stay lowest-index-first).
	interior := make([]int, 0, n-2)
	var i int
	for i = 0; i < n; i++ {
		if i != start && i != end {
			interior = append(interior, i)
		}
	}

	// Two anchors and nothing between them.
	if len(interior) == 0 {
		order := []int{start, end}

		return Result{Order: order, TotalDistance: round1e9(PathLength(pts, order))}, nil
	}

	// Greedy interior construction seeded from the point nearest to start.
	mid := nearestNeighborSubset(pts, interior, pts[start])

	order := make([]int, 0, n)
	order = append(order, start)
	order = append(order, mid...)
	order = append(order, end)

	if opts.Algo == NearestNeighborTwoOpt {
		var err error
		if order, _, err = TwoOptInterior(pts, order, opts); err != nil {
			return Result{}, err
		}
	}

	return Result{Order: order, TotalDistance: round1e9(PathLength(pts, order))}, nil
}
