package binarysearch

import (
	"cmp"
	"sort"
)

// Tracked — binary search with probe accounting
//
// Description:
//
//	A Tracked searcher accepts data in any order, sorts a private copy
//	ascending, and counts every search and every middle-element probe it
//	performs.  The counters accumulate across calls so that the average
//	cost per search is observable via Stats.
//
// It also resolves duplicates: FirstIndex and LastIndex walk outward from
// a located match to the boundary of the equal run.
//
// Complexity:
//
//	Time   = O(n log n) once at construction, O(log n) per search
//	Memory = O(n) for the private copy
type Tracked[T cmp.Ordered] struct {
	data []T

	searches    int
	comparisons int
}

// NewTracked returns a Tracked searcher over a sorted private copy of data.
// Input order does not matter; the copy is sorted at construction.
func NewTracked[T cmp.Ordered](data []T) *Tracked[T] {
	out := make([]T, len(data))
	copy(out, data)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return &Tracked[T]{data: out}
}

// Len reports the number of elements held by the searcher.
func (t *Tracked[T]) Len() int { return len(t.data) }

// Data returns the searcher's sorted elements as an independent copy.
func (t *Tracked[T]) Data() []T {
	out := make([]T, len(t.data))
	copy(out, t.data)

	return out
}

// Search performs a counted binary search for target and returns its
// index, or NotFound. With duplicates, any matching index may be returned.
func (t *Tracked[T]) Search(target T) int {
	t.searches++

	left, right := 0, len(t.data)-1
	for left <= right {
		t.comparisons++
		mid := left + (right-left)/2
		switch {
		case t.data[mid] == target:
			return mid
		case t.data[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return NotFound
}

// Contains reports whether target is present. Counts as one search.
func (t *Tracked[T]) Contains(target T) bool {
	return t.Search(target) != NotFound
}

// FirstIndex returns the index of the first occurrence of target,
// or NotFound. Counts as one search.
func (t *Tracked[T]) FirstIndex(target T) int {
	idx := t.Search(target)
	if idx == NotFound {
		return NotFound
	}

	for idx > 0 && t.data[idx-1] == target {
		idx--
	}

	return idx
}

// LastIndex returns the index of the last occurrence of target,
// or NotFound. Counts as one search.
func (t *Tracked[T]) LastIndex(target T) int {
	idx := t.Search(target)
	if idx == NotFound {
		return NotFound
	}

	for idx < len(t.data)-1 && t.data[idx+1] == target {
		idx++
	}

	return idx
}

// Stats returns the accumulated search and probe totals.
func (t *Tracked[T]) Stats() Stats {
	return Stats{
		Searches:    t.searches,
		Comparisons: t.comparisons,
	}
}

// Reset zeroes the accumulated counters.
func (t *Tracked[T]) Reset() {
	t.searches = 0
	t.comparisons = 0
}
