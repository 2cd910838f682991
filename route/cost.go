// Package route - path cost evaluation.
//
// PathLength is a total function: it assumes indices are in range and never
// returns an error. Solve validates points and orders before anything here
// runs; an out-of-range index reaching this file is a planner bug, not a
// recoverable runtime condition.
package route

import (
	"math"

	"github.com/katalvlaran/waypath/geom"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting which order wins.
const roundScale = 1e9

// PathLength returns the total Euclidean length of the open path that visits
// pts in the given index order: Σ Dist(pts[order[i]], pts[order[i+1]]).
// An order of length < 2 has length 0.
//
// It does not check that order is a permutation; that is Solve's job.
//
// Complexity: O(len(order)) time, O(1) space.
func PathLength(pts []geom.Point, order []int) float64 {
	if len(order) < 2 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < len(order)-1; i++ {
		sum += geom.Dist(pts[order[i]], pts[order[i+1]])
	}

	return sum
}

// loopLength returns the closed-loop length of order over pts: the open-path
// length plus the return edge from the last visited index back to the first.
//
// Complexity: O(len(order)).
func loopLength(pts []geom.Point, order []int) float64 {
	if len(order) < 2 {
		return 0
	}

	return PathLength(pts, order) + geom.Dist(pts[order[len(order)-1]], pts[order[0]])
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
