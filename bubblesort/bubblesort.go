package bubblesort

import (
	"cmp"
	"time"
)

// Sorter — adjacent-swap comparison sort
//
// Description:
//
//	A Sorter arranges a copy of the input slice by repeatedly comparing
//	adjacent pairs of projected keys and swapping pairs that violate the
//	configured Order.  Three control-flow variants are offered; all three
//	produce the same final arrangement and differ only in how many
//	comparisons they spend getting there.
//
// Algorithm Outline (full-pass):
//  1. Copy the input; n = len(copy).
//  2. For i = 0..n-1:
//     For j = 0..n-i-2:
//     count one comparison of key(copy[j]) vs key(copy[j+1]);
//     swap (and count it) when the pair violates the order.
//  3. Return the copy.
//
// Variants:
//   - Sort          — always runs the full schedule above.
//   - SortOptimized — aborts after the first pass with zero swaps.
//   - SortRecursive — one pass bubbles the extreme element to the end,
//     then the same procedure recurses on the prefix while swaps occur.
//
// The comparison predicate is strict (> for Ascending, < for Descending),
// so equal keys never swap and the sort is stable.
//
// Complexity:
//
//	Time   = O(n²) comparisons, Ω(n) for SortOptimized on sorted input
//	Memory = O(n) for the working copy
//
// A Sorter keeps per-call counters (see Stats); it is not safe for
// concurrent use without external synchronization.
type Sorter[T any, K cmp.Ordered] struct {
	key   func(T) K
	order Order

	comparisons int
	swaps       int
	elapsed     time.Duration
}

// New returns a Sorter over an ordered element type, using the identity
// key projector. Defaults to Ascending; override via WithOrder.
//
// Example:
//
//	s, err := bubblesort.New[int]()
//	sorted := s.Sort([]int{3, 1, 4, 2})
func New[T cmp.Ordered](opts ...Option) (*Sorter[T, T], error) {
	return NewKeyed[T, T](func(v T) T { return v }, opts...)
}

// NewKeyed returns a Sorter that orders elements of any type T by the
// cmp.Ordered key extracted by key. A nil key yields ErrNilKeyFunc; an
// Order outside {Ascending, Descending} yields ErrUnknownOrder.
//
// Example:
//
//	s, err := bubblesort.NewKeyed[Student, float64](
//	  func(st Student) float64 { return st.Grade },
//	)
func NewKeyed[T any, K cmp.Ordered](key func(T) K, opts ...Option) (*Sorter[T, K], error) {
	if key == nil {
		return nil, ErrNilKeyFunc
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.order != Ascending && o.order != Descending {
		return nil, ErrUnknownOrder
	}

	return &Sorter[T, K]{key: key, order: o.order}, nil
}

// Order reports the direction this Sorter arranges toward.
func (s *Sorter[T, K]) Order() Order { return s.order }

// Sort runs the unconditional full-pass variant on a copy of arr and
// returns the sorted copy. The input slice is never mutated.
// Complexity: exactly n·(n-1)/2 comparisons for len(arr)=n.
func (s *Sorter[T, K]) Sort(arr []T) []T {
	out := cloneSlice(arr)
	start := time.Now()
	s.Reset()

	n := len(out)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			s.comparisons++
			if s.outOfOrder(out[j], out[j+1]) {
				out[j], out[j+1] = out[j+1], out[j]
				s.swaps++
			}
		}
	}

	s.elapsed = time.Since(start)

	return out
}

// SortOptimized runs the early-exit variant: identical inner loop, but a
// pass that completes without a single swap terminates the sort (the
// remaining suffix is already in order). Its comparison count never
// exceeds Sort's for the same input, with equality only when the input is
// sorted in the reverse of the requested order.
func (s *Sorter[T, K]) SortOptimized(arr []T) []T {
	out := cloneSlice(arr)
	start := time.Now()
	s.Reset()

	n := len(out)
	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			s.comparisons++
			if s.outOfOrder(out[j], out[j+1]) {
				out[j], out[j+1] = out[j+1], out[j]
				s.swaps++
				swapped = true
			}
		}
		// A swap-free pass proves the slice is sorted.
		if !swapped {
			break
		}
	}

	s.elapsed = time.Since(start)

	return out
}

// SortRecursive runs the recursive variant: one pass bubbles the extreme
// element into the last position, then the procedure recurses on the
// prefix excluding it, but only while a pass still performed a swap.
// The final arrangement is identical to Sort's. Recursion depth ≤ n.
func (s *Sorter[T, K]) SortRecursive(arr []T) []T {
	out := cloneSlice(arr)
	start := time.Now()
	s.Reset()

	s.recurse(out, len(out))

	s.elapsed = time.Since(start)

	return out
}

// recurse performs one bubbling pass over out[:n] and recurses on the
// prefix of length n-1 while the pass swapped anything.
func (s *Sorter[T, K]) recurse(out []T, n int) {
	if n <= 1 {
		return
	}

	swapped := false
	for j := 0; j < n-1; j++ {
		s.comparisons++
		if s.outOfOrder(out[j], out[j+1]) {
			out[j], out[j+1] = out[j+1], out[j]
			s.swaps++
			swapped = true
		}
	}

	if swapped {
		s.recurse(out, n-1)
	}
}

// Stats returns {comparisons, swaps, elapsed} from the most recently
// completed sort call.
func (s *Sorter[T, K]) Stats() Stats {
	return Stats{
		Comparisons: s.comparisons,
		Swaps:       s.swaps,
		Elapsed:     s.elapsed,
	}
}

// Reset zeroes all counters. Every sort call does this implicitly, so the
// figures read via Stats are always per-run, never cumulative.
func (s *Sorter[T, K]) Reset() {
	s.comparisons = 0
	s.swaps = 0
	s.elapsed = 0
}

// outOfOrder reports whether the adjacent pair (a, b) violates s.order.
// The predicate is strict: equal keys are never reported, which keeps the
// sort stable.
func (s *Sorter[T, K]) outOfOrder(a, b T) bool {
	if s.order == Ascending {
		return s.key(a) > s.key(b)
	}

	return s.key(a) < s.key(b)
}

// cloneSlice returns an independent copy of arr (nil-safe).
func cloneSlice[T any](arr []T) []T {
	out := make([]T, len(arr))
	copy(out, arr)

	return out
}
