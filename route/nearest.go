// Package route - greedy nearest-neighbor construction.
//
// The constructor scans every unvisited index on each step (O(n²) total).
// That is deliberate: point counts in this domain are small (tens to low
// thousands) and a spatial index would not pay for itself. Exact distance
// ties always go to the lowest index, so construction is deterministic.
package route

import "github.com/katalvlaran/waypath/geom"

// NearestNeighbor builds an open path over all indices of pts by greedy
// nearest-unvisited-neighbor expansion from start. The result has length
// len(pts), begins with start, and contains every index exactly once.
//
// Errors:
//   - ErrEmptyPointSet   if pts is empty.
//   - ErrIndexOutOfRange if start is outside [0..len(pts)-1].
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(pts []geom.Point, start int) ([]int, error) {
	n := len(pts)
	if n == 0 {
		return nil, ErrEmptyPointSet
	}
	if start < 0 || start >= n {
		return nil, ErrIndexOutOfRange
	}

	// Degenerate single-point set: nothing to scan.
	if n == 1 {
		return []int{start}, nil
	}

	order := make([]int, 0, n)
	visited := make([]bool, n)
	order = append(order, start)
	visited[start] = true

	var (
		tail     = start // index of the current path tail
		best     int     // candidate index of the nearest unvisited point
		bestDist float64 // distance from tail to best
		i, j     int
		d        float64
	)
	for i = 1; i < n; i++ {
		best = -1
		// Ascending scan; strict < keeps the lowest index on exact ties.
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d = geom.Dist(pts[tail], pts[j])
			if best == -1 || d < bestDist {
				best = j
				bestDist = d
			}
		}
		order = append(order, best)
		visited[best] = true
		tail = best
	}

	return order, nil
}

// nearestNeighborSubset builds an open path over exactly the indices in
// members (a subset of pts indices, ascending, each distinct) by the same
// greedy expansion, starting from the member nearest to anchor.
//
// Used by the fixed start/end regime: anchor is the fixed start point and
// members are the interior indices. members must be non-empty.
//
// Complexity: O(m²) time, O(m) space for m = len(members).
func nearestNeighborSubset(pts []geom.Point, members []int, anchor geom.Point) []int {
	m := len(members)
	order := make([]int, 0, m)
	visited := make([]bool, m) // parallel to members

	// Seed with the member nearest to the anchor (lowest index on ties;
	// members are ascending, so the first strict minimum wins).
	var (
		seed     = 0
		seedDist = geom.Dist(pts[members[0]], anchor)
		i, j     int
		d        float64
	)
	for i = 1; i < m; i++ {
		d = geom.Dist(pts[members[i]], anchor)
		if d < seedDist {
			seed = i
			seedDist = d
		}
	}
	order = append(order, members[seed])
	visited[seed] = true

	var (
		tail     = members[seed]
		best     int
		bestDist float64
	)
	for i = 1; i < m; i++ {
		best = -1
		for j = 0; j < m; j++ {
			if visited[j] {
				continue
			}
			d = geom.Dist(pts[tail], pts[members[j]])
			if best == -1 || d < bestDist {
				best = j
				bestDist = d
			}
		}
		order = append(order, members[best])
		visited[best] = true
		tail = members[best]
	}

	return order
}
