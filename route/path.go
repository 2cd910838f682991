// Package route - order utilities shared by the construction and improvement
// stages. Everything here operates purely on index sequences; no distances.
package route

// ValidatePermutation checks that order is a permutation of {0..n-1} of
// length n. A single O(n) boolean marker slice is the only allocation.
//
// Returns ErrIndexOutOfRange for out-of-range or duplicate entries and for a
// length mismatch.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(order []int, n int) error {
	if n <= 0 || len(order) != n {
		return ErrIndexOutOfRange
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = order[i]
		if v < 0 || v >= n {
			return ErrIndexOutOfRange
		}
		if seen[v] {
			return ErrIndexOutOfRange
		}
		seen[v] = true
	}

	return nil
}

// CopyOrder returns an independent copy of order (nil in, nil out).
//
// Complexity: O(n).
func CopyOrder(order []int) []int {
	if order == nil {
		return nil
	}
	out := make([]int, len(order))
	copy(out, order)

	return out
}

// CloseOrder returns a fresh copy of order with its first index appended at
// the end: the explicit closed-loop representation. An empty order is
// returned as an empty slice.
//
// Complexity: O(n).
func CloseOrder(order []int) []int {
	if len(order) == 0 {
		return []int{}
	}
	out := make([]int, len(order)+1)
	copy(out, order)
	out[len(order)] = order[0]

	return out
}

// reverseSegmentInPlace reverses the inclusive segment order[i..j] in place.
// Callers guarantee 0 ≤ i < j < len(order).
//
// Complexity: O(j-i) time, O(1) space.
func reverseSegmentInPlace(order []int, i, j int) {
	for i < j {
		order[i], order[j] = order[j], order[i]
		i++
		j--
	}
}
