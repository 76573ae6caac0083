package search_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/search"
)

// ExampleBinary prints every probe of a binary search on a sorted copy.
func ExampleBinary() {
	for s := range search.Binary([]int{9, 1, 7, 3, 5}, 7) {
		if idx, ok := s.Found(); ok {
			fmt.Printf("found at %d after %d comparisons\n", idx, s.Comparisons)
			continue
		}
		fmt.Printf("probe %d (value %d)\n", s.Current, s.Array[s.Current])
	}
	// Output:
	// probe 2 (value 5)
	// probe 3 (value 7)
	// found at 3 after 2 comparisons
}
