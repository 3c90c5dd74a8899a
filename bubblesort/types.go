// Package bubblesort defines orders, options, run statistics and
// sentinel errors for the bubblesort subpackage of
// github.com/LiamTaghizadeh/algorithems.
package bubblesort

import (
	"errors"
	"time"
)

// Sentinel errors for sorter construction.
var (
	// ErrUnknownOrder is returned when an Order outside {Ascending, Descending} is supplied.
	ErrUnknownOrder = errors.New("bubblesort: unknown sort order")

	// ErrNilKeyFunc is returned when NewKeyed receives a nil key projector.
	ErrNilKeyFunc = errors.New("bubblesort: key function must not be nil")
)

// Order selects the direction of the final arrangement.
type Order int

const (
	// Ascending arranges elements from smallest key to largest.
	Ascending Order = iota
	// Descending arranges elements from largest key to smallest.
	Descending
)

// String returns the human-readable name of the order.
func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// Stats reports the bookkeeping of the most recently completed sort call.
// Counters are overwritten, not accumulated: every Sort / SortOptimized /
// SortRecursive invocation zeroes them before counting.
type Stats struct {
	// Comparisons is the number of adjacent-pair key comparisons performed.
	Comparisons int
	// Swaps is the number of element exchanges performed.
	Swaps int
	// Elapsed is the wall-clock duration of the call.
	Elapsed time.Duration
}

// Option configures a Sorter via functional arguments.
type Option func(*options)

// options holds the resolved configuration; fields are unexported so the
// public API consumes ...Option only.
type options struct {
	order Order
}

// defaultOptions returns the zero-value behavior: Ascending order.
func defaultOptions() options {
	return options{order: Ascending}
}

// WithOrder sets the sort direction. Values outside {Ascending, Descending}
// surface as ErrUnknownOrder from the constructor.
func WithOrder(o Order) Option {
	return func(opts *options) { opts.order = o }
}
