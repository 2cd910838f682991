// Package route - first-improvement 2-opt local search.
//
// A 2-opt move removes two edges of the path and reconnects the pieces the
// other way, implemented as the reversal of the sub-segment between the cut
// positions. Each candidate is evaluated in O(1) from the four boundary
// points; a full reversal is paid only on accepted moves.
//
// Contracts:
//   - Position 0 (the fixed start) is never disturbed.
//   - TwoOptInterior additionally never disturbs the final position, for
//     paths whose trailing endpoint is fixed.
//   - First-improvement policy: adopt the first strictly shortening reversal
//     found, then restart the scan; stop when a full pass yields none.
//   - Orders shorter than 4 are returned unchanged (no reversal can shorten
//     a 3-node-or-fewer path).
//
// Complexity: O(n²) candidate checks per pass, O(iter·n²) to convergence in
// the worst case; deliberately bounded to small point sets by the callers.
package route

import "github.com/katalvlaran/waypath/geom"

// TwoOpt improves an open path by 2-opt reversals over positions [1, len-1].
// It returns a fresh order of the same length and index multiset, and the
// stabilized total length of that order; the length never exceeds the input's.
//
// Errors:
//   - ErrBadEps        if opts.Eps < 0.
//   - ErrBadMaxIters   if opts.TwoOptMaxIters < 0.
//   - ErrIndexOutOfRange if order references an index outside pts.
//
// Complexity: O(iter·n²) time, O(n) space.
func TwoOpt(pts []geom.Point, order []int, opts Options) ([]int, float64, error) {
	return twoOpt(pts, order, opts, false)
}

// TwoOptInterior is the constrained variant for paths with a fixed trailing
// endpoint: reversals are confined to the open interior [1, len-2], so both
// the leading and the trailing position survive untouched.
//
// Same contract and errors as TwoOpt.
func TwoOptInterior(pts []geom.Point, order []int, opts Options) ([]int, float64, error) {
	return twoOpt(pts, order, opts, true)
}

// twoOpt is the shared engine behind TwoOpt and TwoOptInterior.
func twoOpt(pts []geom.Point, order []int, opts Options, lockTail bool) ([]int, float64, error) {
	if opts.Eps < 0 {
		return nil, 0, ErrBadEps
	}
	if opts.TwoOptMaxIters < 0 {
		return nil, 0, ErrBadMaxIters
	}
	for _, v := range order {
		if v < 0 || v >= len(pts) {
			return nil, 0, ErrIndexOutOfRange
		}
	}

	// Work on a copy; the input order stays untouched.
	cur := make([]int, len(order))
	copy(cur, order)

	if len(cur) < 4 {
		return cur, round1e9(PathLength(pts, cur)), nil
	}

	// hi is the last movable position: len-1 for an open tail, len-2 when the
	// trailing endpoint is fixed.
	hi := len(cur) - 1
	if lockTail {
		hi--
	}
	last := len(cur) - 1

	var (
		accepted int     // accepted-move counter for the TwoOptMaxIters cap
		i, j     int     // candidate cut positions, 1 ≤ i < j ≤ hi
		delta    float64 // length change of the candidate reversal
	)
	for {
		improved := false

		for i = 1; i <= hi-1; i++ {
			for j = i + 1; j <= hi; j++ {
				// Reversing cur[i..j] replaces edge (cur[i-1],cur[i]) with
				// (cur[i-1],cur[j]) and, when j is not the path tail, edge
				// (cur[j],cur[j+1]) with (cur[i],cur[j+1]).
				delta = geom.Dist(pts[cur[i-1]], pts[cur[j]]) -
					geom.Dist(pts[cur[i-1]], pts[cur[i]])
				if j < last {
					delta += geom.Dist(pts[cur[i]], pts[cur[j+1]]) -
						geom.Dist(pts[cur[j]], pts[cur[j+1]])
				}
				if delta >= -opts.Eps {
					continue // not strictly improving
				}

				reverseSegmentInPlace(cur, i, j)
				accepted++
				improved = true

				if opts.TwoOptMaxIters > 0 && accepted >= opts.TwoOptMaxIters {
					return cur, round1e9(PathLength(pts, cur)), nil
				}

				// First-improvement: restart the scan from the beginning.
				break
			}
			if improved {
				break
			}
		}

		if !improved {
			break // local optimum under the 2-opt neighborhood
		}
	}

	return cur, round1e9(PathLength(pts, cur)), nil
}
