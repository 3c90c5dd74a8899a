// Package bubblesort implements the classic adjacent-swap comparison sort
// in three control-flow variants, with per-call statistics and an optional
// key projector for sorting arbitrary element types.
//
// 🚀 What is bubble sort?
//
//	Bubble sort repeatedly sweeps the slice left to right, comparing each
//	adjacent pair and swapping it when out of order.  After pass k the k
//	largest elements sit in their final positions.  It is the canonical
//	teaching sort:
//	  • every comparison and swap is easy to observe and count
//	  • the early-exit optimization is easy to reason about
//	  • equal elements never swap, so the sort is stable
//
// ✨ Key features:
//   - Sort: the unconditional full-pass schedule, always O(n²) comparisons
//   - SortOptimized: stops after the first swap-free pass
//   - SortRecursive: one pass, then recurse on the unsorted prefix
//   - Stats: comparison count, swap count and elapsed time per call
//   - NewKeyed: order any element type by a projected cmp.Ordered key
//   - Visualizer: record a snapshot of the slice after every swap
//
// ⚙️ Usage:
//
//	import "github.com/LiamTaghizadeh/algorithems/bubblesort"
//
//	s, err := bubblesort.New[int](bubblesort.WithOrder(bubblesort.Descending))
//	if err != nil {
//	  // handle ErrUnknownOrder
//	}
//	sorted := s.Sort([]int{3, 1, 4, 2}) // input is never mutated
//	st := s.Stats()                     // comparisons, swaps, elapsed
//
// Performance:
//
//   - Time:   O(n²) comparisons (SortOptimized: O(n) on sorted input)
//   - Memory: O(n) for the working copy; Visualizer adds O(n·swaps)
//
// See example_test.go for runnable scenarios.
package bubblesort
