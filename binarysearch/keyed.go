package binarysearch

import (
	"cmp"
	"sort"
)

// Keyed — binary search by projected key
//
// Description:
//
//	A Keyed searcher orders elements of any type T by the cmp.Ordered key
//	extracted by a projector, the same way the bubblesort package keys its
//	sorter.  Construction stable-sorts a private copy by key; SearchKey
//	then probes by key value, so lookups don't need a full element.
//
// With duplicate keys any matching index may be returned.
//
// Complexity:
//
//	Time   = O(n log n) once at construction, O(log n) per search
//	Memory = O(n) for the private copy
type Keyed[T any, K cmp.Ordered] struct {
	data []T
	key  func(T) K
}

// NewKeyed returns a Keyed searcher over a private copy of data sorted by
// the projected key. A nil key yields ErrNilKeyFunc.
//
// Example:
//
//	s, err := binarysearch.NewKeyed[Student, float64](
//	  roster, func(st Student) float64 { return st.Grade },
//	)
//	idx := s.SearchKey(92.3)
func NewKeyed[T any, K cmp.Ordered](data []T, key func(T) K) (*Keyed[T, K], error) {
	if key == nil {
		return nil, ErrNilKeyFunc
	}

	out := make([]T, len(data))
	copy(out, data)
	sort.SliceStable(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })

	return &Keyed[T, K]{data: out, key: key}, nil
}

// Len reports the number of elements held by the searcher.
func (k *Keyed[T, K]) Len() int { return len(k.data) }

// At returns the element stored at idx in key order.
func (k *Keyed[T, K]) At(idx int) T { return k.data[idx] }

// SearchKey performs a binary search for the element whose projected key
// equals target and returns its index in key order, or NotFound.
func (k *Keyed[T, K]) SearchKey(target K) int {
	left, right := 0, len(k.data)-1
	for left <= right {
		mid := left + (right-left)/2
		midKey := k.key(k.data[mid])
		switch {
		case midKey == target:
			return mid
		case midKey < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return NotFound
}

// ContainsKey reports whether any element projects to target.
func (k *Keyed[T, K]) ContainsKey(target K) bool {
	return k.SearchKey(target) != NotFound
}
