// Package route_test verifies start-point selection: every policy, the
// lowest-index tie-break, and the empty-input sentinel.
package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/route"
)

func TestSelectStart_AllPolicies(t *testing.T) {
	// Asymmetric triangle from the acceptance fixture: extremes are unique.
	pts := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 5}, {X: 5, Y: 0}}

	cases := []struct {
		name   string
		policy route.StartPolicy
		want   int
	}{
		{"first", route.First, 0},
		{"last", route.Last, 2},
		{"northernmost", route.Northernmost, 1},
		{"southernmost", route.Southernmost, 0},
		{"easternmost", route.Easternmost, 2},
		{"westernmost", route.Westernmost, 0},
		// Centroid is (5/3, 5/3); the origin is nearest (d≈2.36 vs ≈3.73).
		{"closest_to_centroid", route.ClosestToCentroid, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := route.SelectStart(pts, tc.policy)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSelectStart_TiesGoToLowestIndex(t *testing.T) {
	// Two points share the maximal Y; the first one must win.
	pts := []geom.Point{{X: 3, Y: 7}, {X: -1, Y: 7}, {X: 0, Y: 0}}

	got, err := route.SelectStart(pts, route.Northernmost)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	// Duplicate coordinates are legal and distinguished by index.
	dup := []geom.Point{{X: 2, Y: 2}, {X: 2, Y: 2}}
	got, err = route.SelectStart(dup, route.ClosestToCentroid)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestSelectStart_Errors(t *testing.T) {
	_, err := route.SelectStart(nil, route.First)
	assert.ErrorIs(t, err, route.ErrEmptyPointSet)

	_, err = route.SelectStart(unitSquare(), route.StartPolicy(99))
	assert.ErrorIs(t, err, route.ErrUnknownStartPolicy)
	assert.ErrorIs(t, err, route.ErrInvalidConfiguration, "specific sentinel wraps the category")
}
