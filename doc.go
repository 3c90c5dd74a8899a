// Package algorithems is a teaching playground for classic comparison
// algorithms — sorting a slice one adjacent swap at a time, and finding
// a value in it by halving the search range.
//
// 🚀 What is algorithems?
//
//	A small, beginner-friendly library that brings together:
//		• Bubble sort: full-pass, early-exit and recursive variants
//		• Run statistics: comparison / swap counters and wall-clock timing
//		• Key projectors: sort any element type by an extracted key
//		• Step recording: capture every intermediate state for visualization
//		• Binary search: iterative, recursive, tracked and key-projected
//
// ✨ Why choose algorithems?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest bookkeeping – every comparison and swap is counted
//   - Pure Go – generics over cmp.Ordered, no cgo, no hidden deps
//   - Copy semantics – your input slice is never mutated
//
// Under the hood, everything is organized under two subpackages:
//
//	bubblesort/   — Sorter (three variants + stats) and the step-recording Visualizer
//	binarysearch/ — Searcher, Tracked (with counters) and Keyed searchers
//
// Quick ASCII example:
//
//	    [3 1 4 2]
//	     └─swap─┐
//	    [1 3 4 2] → [1 3 2 4] → [1 2 3 4]
//
//	three swaps carry every element to its place.
//
// Dive into examples/ for runnable walkthroughs of each variant.
//
//	go get github.com/LiamTaghizadeh/algorithems
package algorithems
