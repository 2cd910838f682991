// Package route_test provides lightweight helpers shared across *_test.go
// files in this package: deterministic geometry generators and small
// assertion utilities. Helpers stay stdlib-only; testify is used directly by
// the test files that prefer assertion style.
package route_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/waypath/geom"
)

// -----------------------------------------------------------------------------
// Canonical fixtures - single source of truth for geometry used in many tests
// -----------------------------------------------------------------------------

// unitSquare returns the four corners of the unit square in CCW index order.
// NN from index 0 walks the boundary: [0 1 2 3], open length 3, loop length 4.
func unitSquare() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

// crossedFive returns the five-point fixture for the fixed start/end regime:
// four far corners plus the centre.
func crossedFive() []geom.Point {
	return []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 5, Y: 5},
	}
}

// rippledCircle places n points on a circle with a small deterministic radius
// ripple, avoiding exact distance ties. The boundary walk is the optimal tour,
// which gives 2-opt real crossings to remove from a greedy construction.
func rippledCircle(n int) []geom.Point {
	pts := make([]geom.Point, n)
	var (
		i  int
		th float64
		r  float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 1 + 0.02*float64((i*5)%7) // deterministic ripple, no RNG
		pts[i] = geom.Point{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}

	return pts
}

// scatter returns n deterministic pseudo-random points in [0,100)², using a
// small LCG so the fixture is identical on every platform and run.
func scatter(n int) []geom.Point {
	pts := make([]geom.Point, n)
	var (
		state uint64 = 0x9e3779b97f4a7c15
		i     int
	)
	next := func() float64 {
		state = state*6364136223846793005 + 1442695040888963407

		return float64(state>>11) / float64(1<<53) * 100
	}
	for i = 0; i < n; i++ {
		pts[i] = geom.Point{X: next(), Y: next()}
	}

	return pts
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// mustEqualInts asserts exact equality of two integer slices.
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("order mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustErrIs asserts that err matches target via errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want error %v, got %v", target, err)
	}
}

// mustFloatClose asserts |got-want| ≤ abs.
func mustFloatClose(t *testing.T, got, want, abs float64) {
	t.Helper()
	if math.Abs(got-want) > abs {
		t.Fatalf("float mismatch: got=%.12f want=%.12f (abs=%.1e)", got, want, abs)
	}
}

// mustPermutation asserts that order is a permutation of 0..n-1, ignoring a
// trailing loop-closing repeat of the first element if present.
func mustPermutation(t *testing.T, order []int, n int) {
	t.Helper()
	open := order
	if len(open) == n+1 && open[0] == open[n] {
		open = open[:n]
	}
	if len(open) != n {
		t.Fatalf("order length %d, want %d (order=%v)", len(open), n, order)
	}
	seen := make([]bool, n)
	for _, v := range open {
		if v < 0 || v >= n || seen[v] {
			t.Fatalf("order is not a permutation of 0..%d: %v", n-1, order)
		}
		seen[v] = true
	}
}
