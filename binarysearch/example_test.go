package binarysearch_test

import (
	"fmt"

	"github.com/LiamTaghizadeh/algorithems/binarysearch"
)

// //////////////////////////////////////////////////////////////////////////////
// Example: basic lookup
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Probe a sorted slice of odd numbers for a present and an absent
//	target.  Each probe halves the candidate range, so ten elements cost
//	at most four comparisons.
//
// Complexity: O(log n) per search
func ExampleSearcher_Search() {
	s, err := binarysearch.New([]int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("index of 7:", s.Search(7))
	fmt.Println("index of 10:", s.Search(10))
	fmt.Println("contains 13:", s.Contains(13))

	// Output:
	// index of 7: 3
	// index of 10: -1
	// contains 13: true
}

// //////////////////////////////////////////////////////////////////////////////
// Example: duplicate runs with probe accounting
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A Tracked searcher sorts its copy at construction, then resolves the
//	boundaries of a duplicate run and reports how many probes the
//	searches cost on average.
func ExampleTracked_FirstIndex() {
	tr := binarysearch.NewTracked([]int{6, 2, 4, 2, 5, 2, 1, 4, 3})
	fmt.Println("sorted:", tr.Data())

	fmt.Println("first 2 at:", tr.FirstIndex(2))
	fmt.Println("last 2 at:", tr.LastIndex(2))

	st := tr.Stats()
	fmt.Printf("searches=%d avg_comparisons=%.1f\n", st.Searches, st.AvgComparisons())

	// Output:
	// sorted: [1 2 2 2 3 4 4 5 6]
	// first 2 at: 1
	// last 2 at: 3
	// searches=2 avg_comparisons=2.0
}

// //////////////////////////////////////////////////////////////////////////////
// Example: key-projected lookup over custom objects
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Search a roster by age without constructing a full element: the
//	projector extracts the key both when sorting the copy and when
//	probing.
func ExampleNewKeyed() {
	type Person struct {
		Name string
		Age  int
	}

	roster := []Person{
		{"Alice", 25},
		{"Bob", 30},
		{"Charlie", 20},
		{"Diana", 35},
	}

	s, err := binarysearch.NewKeyed(roster, func(p Person) int { return p.Age })
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	if idx := s.SearchKey(30); idx != binarysearch.NotFound {
		fmt.Println("age 30:", s.At(idx).Name)
	}
	fmt.Println("age 40 present:", s.ContainsKey(40))

	// Output:
	// age 30: Bob
	// age 40 present: false
}
