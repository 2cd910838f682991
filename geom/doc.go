// Package geom provides the planar primitives shared by the waypath solvers:
// an immutable 2-D Point, Euclidean distance, and the centroid of a point set.
//
// Design:
//   - Pure, allocation-free functions: Dist is called O(n²) times per solve,
//     so it must not touch the heap.
//   - No validation inside the hot path: the route package validates inputs
//     once at its boundary; everything here is total over finite coordinates.
//   - Points are value types; identity is positional (a point is referenced
//     by its index into the caller's slice, never by coordinate equality).
package geom
