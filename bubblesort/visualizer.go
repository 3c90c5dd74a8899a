package bubblesort

import "cmp"

// Visualizer — step-recording bubble sort
//
// Description:
//
//	A Visualizer runs the full-pass, ascending, identity-keyed bubble sort
//	over a copy of the input and captures a snapshot of the whole working
//	slice at every mutation point: once before sorting begins and once
//	after each individual swap (not after each pass).  The resulting log
//	is the raw material for an animation or a step-by-step printout.
//
// Invariants:
//   - Steps()[0] equals the input slice.
//   - The last step equals the fully sorted output.
//   - len(Steps()) = 1 + total number of swaps performed.
//
// The step log is replaced, not appended to, on each SortWithSteps call.
// Memory: O(n·swaps) for the snapshots.
type Visualizer[T cmp.Ordered] struct {
	steps [][]T
}

// NewVisualizer returns an empty Visualizer.
func NewVisualizer[T cmp.Ordered]() *Visualizer[T] {
	return &Visualizer[T]{}
}

// SortWithSteps sorts a copy of arr ascending while recording snapshots,
// and returns the sorted copy. The input slice is never mutated.
func (v *Visualizer[T]) SortWithSteps(arr []T) []T {
	out := cloneSlice(arr)
	v.steps = [][]T{cloneSlice(out)}

	n := len(out)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if out[j] > out[j+1] {
				out[j], out[j+1] = out[j+1], out[j]
				v.steps = append(v.steps, cloneSlice(out))
			}
		}
	}

	return out
}

// Steps returns the step log of the most recent SortWithSteps call: the
// initial state followed by one snapshot per swap. Each snapshot is an
// independent copy, safe for the caller to retain or mutate.
func (v *Visualizer[T]) Steps() [][]T {
	return v.steps
}
