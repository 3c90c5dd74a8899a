// Package binarysearch implements binary search over sorted slices, in
// three flavors: a plain Searcher over pre-sorted data, a Tracked searcher
// that keeps comparison statistics, and a Keyed searcher that orders and
// probes by a projected key.
//
// 🚀 What is binary search?
//
//	Binary search locates a target in a sorted slice by repeatedly halving
//	the candidate range: compare the middle element, then discard the half
//	that cannot contain the target.  Each probe removes half the
//	candidates, so a million elements cost at most ~20 comparisons.
//
// ✨ Key features:
//   - Searcher: iterative and recursive search over validated sorted data
//   - Tracked: auto-sorts its copy, counts searches and comparisons,
//     and resolves first/last occurrence among duplicates
//   - Keyed: search any element type by a projected cmp.Ordered key
//   - TimedSearch: per-probe wall-clock measurement
//
// ⚙️ Usage:
//
//	import "github.com/LiamTaghizadeh/algorithems/binarysearch"
//
//	s, err := binarysearch.New([]int{1, 3, 5, 7, 9})
//	if err != nil {
//	  // handle ErrUnsorted
//	}
//	idx := s.Search(7)        // 3
//	ok := s.Contains(4)       // false
//
// Performance:
//
//   - Time:   O(log n) per search
//   - Memory: O(n) for the searcher's private copy
//
// See example_test.go for runnable scenarios.
package binarysearch
