package geom

import "math"

// Point is an immutable pair of planar coordinates.
// The solver never interprets units; callers must project geographic
// coordinates into a single consistent planar system beforehand.
type Point struct {
	X float64 // horizontal coordinate (east-west)
	Y float64 // vertical coordinate (north-south)
}

// Dist returns the Euclidean distance between a and b:
// sqrt((b.X-a.X)² + (b.Y-a.Y)²).
//
// Total for finite inputs; never negative; no allocations.
//
// Complexity: O(1).
func Dist(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Centroid returns the arithmetic mean of all coordinates in pts.
// The zero Point is returned for an empty slice; callers that care about
// the empty case must check length themselves (the route package does).
//
// Complexity: O(n) time, O(1) space.
func Centroid(pts []Point) Point {
	n := len(pts)
	if n == 0 {
		return Point{}
	}

	var (
		sx float64 // running sum of X
		sy float64 // running sum of Y
		i  int
	)
	for i = 0; i < n; i++ {
		sx += pts[i].X
		sy += pts[i].Y
	}

	return Point{X: sx / float64(n), Y: sy / float64(n)}
}

// IsFinite reports whether both coordinates of p are finite (no NaN, no ±Inf).
//
// Complexity: O(1).
func IsFinite(p Point) bool {
	if math.IsNaN(p.X) || math.IsInf(p.X, 0) {
		return false
	}
	if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		return false
	}

	return true
}
