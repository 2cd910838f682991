// Package route - start-point selection.
//
// SelectStart resolves a StartPolicy into a concrete index. All policies are
// single O(n) scans; extremum policies break exact ties by keeping the first
// (lowest-index) occurrence, which makes every policy deterministic.
package route

import "github.com/katalvlaran/waypath/geom"

// SelectStart picks one index from pts according to policy.
//
// Errors:
//   - ErrEmptyPointSet      if pts is empty.
//   - ErrUnknownStartPolicy if policy is not one of the named policies.
//
// Complexity: O(n) time, O(1) space (ClosestToCentroid makes two passes).
func SelectStart(pts []geom.Point, policy StartPolicy) (int, error) {
	n := len(pts)
	if n == 0 {
		return 0, ErrEmptyPointSet
	}

	switch policy {
	case First:
		return 0, nil

	case Last:
		return n - 1, nil

	case Northernmost:
		return argExtreme(pts, func(p geom.Point) float64 { return p.Y }, true), nil

	case Southernmost:
		return argExtreme(pts, func(p geom.Point) float64 { return p.Y }, false), nil

	case Easternmost:
		return argExtreme(pts, func(p geom.Point) float64 { return p.X }, true), nil

	case Westernmost:
		return argExtreme(pts, func(p geom.Point) float64 { return p.X }, false), nil

	case ClosestToCentroid:
		return argNearest(pts, geom.Centroid(pts)), nil

	default:
		return 0, ErrUnknownStartPolicy
	}
}

// argExtreme returns the lowest index maximizing (max=true) or minimizing
// (max=false) key over pts. pts must be non-empty.
//
// Complexity: O(n).
func argExtreme(pts []geom.Point, key func(geom.Point) float64, max bool) int {
	var (
		best    = 0
		bestKey = key(pts[0])
		i       int
		k       float64
	)
	for i = 1; i < len(pts); i++ {
		k = key(pts[i])
		// Strict comparison keeps the first occurrence on exact ties.
		if (max && k > bestKey) || (!max && k < bestKey) {
			best = i
			bestKey = k
		}
	}

	return best
}

// argNearest returns the lowest index of the point in pts closest to target.
// pts must be non-empty.
//
// Complexity: O(n).
func argNearest(pts []geom.Point, target geom.Point) int {
	var (
		best     = 0
		bestDist = geom.Dist(pts[0], target)
		i        int
		d        float64
	)
	for i = 1; i < len(pts); i++ {
		d = geom.Dist(pts[i], target)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}

	return best
}
