package search

import (
	"sort"
)

// Rank returns a copy of solutions ordered by descending Score. The sort is
// stable: equal scores keep their input (discovery) order. The input slice is
// not modified; Melody slices are shared, not copied.
//
// Complexity: O(S log S).
func Rank(solutions []Solution) []Solution {
	out := make([]Solution, len(solutions))
	copy(out, solutions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}

// Top returns at most n leading entries of a ranked slice.
func Top(ranked []Solution, n int) []Solution {
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}

	return ranked[:n]
}
