// Package route solves the constrained shortest-path-through-points problem:
// given an unordered set of planar points, produce a visiting order that
// approximately minimizes total Euclidean travel distance, optionally pinned
// to a chosen start, a fixed terminal point, or a closed-loop return.
//
// Pipeline (all deterministic):
//
//   - SelectStart        — pick a start index by policy (first, last, compass
//     extremes, closest-to-centroid); ties go to the lowest index.
//   - NearestNeighbor    — greedy construction: repeatedly travel to the
//     closest unvisited point. O(n²) time, O(n) space.
//   - TwoOpt             — first-improvement 2-opt local search: reverse a
//     sub-segment whenever that strictly shortens the path, restart the scan
//     after every accepted move, stop at a local optimum. O(iter·n²) checks.
//   - Solve              — the single validated entry point dispatching the
//     open, closed-loop, and fixed start/end regimes.
//
// Guarantees:
//
//   - The returned order (ignoring an optional trailing loop-closing repeat
//     of the start) is a permutation of 0..n-1.
//   - Total distance is ≥ 0, finite for finite inputs, and never increased
//     by the 2-opt stage; a converged order is a fixed point of TwoOpt.
//   - No logging, no panics on user input — only sentinel errors (types.go),
//     all raised eagerly in Solve before any algorithmic work.
//   - No internal time limits or goroutines: a solve runs to convergence and
//     holds no state between calls, so independent calls are safe to run
//     concurrently. Callers with deadlines must wrap the call themselves.
//
// Exact TSP optimality is a non-goal: 2-opt stops at a local optimum, which
// is the intended trade for small point sets (tens to low thousands).
// Coordinates must already be projected to one planar unit system; this
// package never interprets units or geography.
package route
