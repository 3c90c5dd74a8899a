package binarysearch

import (
	"cmp"
	"time"
)

// Searcher — binary search over validated sorted data
//
// Description:
//
//	A Searcher owns a private copy of an ascending slice and answers
//	membership queries by range halving.
//
// Algorithm Outline:
//  1. left = 0, right = n-1.
//  2. While left ≤ right:
//     mid = (left+right)/2 (overflow-safe form: left + (right-left)/2);
//     equal → return mid; data[mid] < target → left = mid+1;
//     otherwise right = mid-1.
//  3. Exhausted range → NotFound.
//
// With duplicate elements any matching index may be returned; use
// Tracked.FirstIndex / Tracked.LastIndex to resolve a specific occurrence.
//
// Complexity:
//
//	Time   = O(log n) per search
//	Memory = O(n) for the private copy
type Searcher[T cmp.Ordered] struct {
	data []T
}

// New returns a Searcher over data, which must already be in ascending
// order; otherwise ErrUnsorted is returned. The slice is copied, so later
// mutation of the caller's slice does not affect the searcher.
//
// Example:
//
//	s, err := binarysearch.New([]int{1, 3, 5, 7, 9})
//	idx := s.Search(5) // 2
func New[T cmp.Ordered](data []T) (*Searcher[T], error) {
	for i := 1; i < len(data); i++ {
		if data[i-1] > data[i] {
			return nil, ErrUnsorted
		}
	}

	out := make([]T, len(data))
	copy(out, data)

	return &Searcher[T]{data: out}, nil
}

// Len reports the number of elements held by the searcher.
func (s *Searcher[T]) Len() int { return len(s.data) }

// Search performs an iterative binary search for target and returns its
// index, or NotFound when absent.
func (s *Searcher[T]) Search(target T) int {
	left, right := 0, len(s.data)-1
	for left <= right {
		mid := left + (right-left)/2
		switch {
		case s.data[mid] == target:
			return mid
		case s.data[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return NotFound
}

// SearchRecursive performs the same lookup as Search by recursive range
// halving. Recursion depth is at most ⌈log₂ n⌉+1.
func (s *Searcher[T]) SearchRecursive(target T) int {
	return s.searchBetween(target, 0, len(s.data)-1)
}

// searchBetween narrows [left, right] by one probe per level.
func (s *Searcher[T]) searchBetween(target T, left, right int) int {
	if left > right {
		return NotFound
	}

	mid := left + (right-left)/2
	switch {
	case s.data[mid] == target:
		return mid
	case s.data[mid] < target:
		return s.searchBetween(target, mid+1, right)
	default:
		return s.searchBetween(target, left, mid-1)
	}
}

// Contains reports whether target is present.
func (s *Searcher[T]) Contains(target T) bool {
	return s.Search(target) != NotFound
}

// TimedSearch runs Search under a wall clock and returns the index,
// the elapsed time and the data size together.
func (s *Searcher[T]) TimedSearch(target T) TimedResult {
	start := time.Now()
	idx := s.Search(target)

	return TimedResult{
		Index:    idx,
		Elapsed:  time.Since(start),
		DataSize: len(s.data),
	}
}

// TimedSearchAll runs TimedSearch for every target in turn, preserving order.
func (s *Searcher[T]) TimedSearchAll(targets []T) []TimedResult {
	out := make([]TimedResult, 0, len(targets))
	for _, target := range targets {
		out = append(out, s.TimedSearch(target))
	}

	return out
}
