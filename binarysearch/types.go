// Package binarysearch defines sentinel errors, statistics and result
// types for the binarysearch subpackage of
// github.com/LiamTaghizadeh/algorithems.
package binarysearch

import (
	"errors"
	"time"
)

// NotFound is the index reported when the target is absent.
const NotFound = -1

// Sentinel errors for searcher construction.
var (
	// ErrUnsorted is returned when New receives data that is not in
	// ascending order.
	ErrUnsorted = errors.New("binarysearch: data must be sorted in ascending order")

	// ErrNilKeyFunc is returned when NewKeyed receives a nil key projector.
	ErrNilKeyFunc = errors.New("binarysearch: key function must not be nil")
)

// Stats aggregates the probe bookkeeping of a Tracked searcher.
// Unlike sort statistics, these accumulate across searches so that the
// average cost per search is observable.
type Stats struct {
	// Searches is the total number of Search calls.
	Searches int
	// Comparisons is the total number of middle-element probes.
	Comparisons int
}

// AvgComparisons reports the mean number of probes per search,
// or 0 when no searches ran yet.
func (s Stats) AvgComparisons() float64 {
	if s.Searches == 0 {
		return 0
	}

	return float64(s.Comparisons) / float64(s.Searches)
}

// TimedResult carries the outcome of a single timed search.
type TimedResult struct {
	// Index is the located position, or NotFound.
	Index int
	// Elapsed is the wall-clock duration of the search.
	Elapsed time.Duration
	// DataSize is the length of the searched slice.
	DataSize int
}
