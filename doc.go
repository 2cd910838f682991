// Package waypath turns an unordered set of planar points into an efficient
// visiting order — optionally pinned to a chosen start, a fixed final stop,
// or a closed-loop return to where you began.
//
// 🚀 What is waypath?
//
//	A small, deterministic, zero-dependency solver library:
//		• geom/  — planar primitives: Point, Euclidean distance, centroid
//		• route/ — the solver: start-policy selection, greedy nearest-neighbor
//		           construction, first-improvement 2-opt refinement, and the
//		           constrained planner tying them together
//
// ✨ Why choose waypath?
//
//   - Predictable – every stage is deterministic; exact ties always go to
//     the lowest index, so identical inputs yield identical routes
//   - Honest contracts – typed Options validated once, strict sentinel
//     errors, no logging, no ambient state, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//
// The solver is heuristic by design: nearest-neighbor plus 2-opt lands close
// to the optimum on the small point sets this targets (tens to low
// thousands), without the exponential cost of exact TSP.
//
// Quick ASCII example:
//
//	    3───2          a fixed start at 0 and a closed loop yield
//	    │   │          the boundary walk 0→1→2→3→0 of length 4
//	    0───1
//
// Dive into route/doc.go for the algorithm inventory and complexity notes,
// and examples/ for runnable scenarios.
//
//	go get github.com/katalvlaran/waypath
package waypath
