// Package sorting provides step generators for eleven classic sorting
// algorithms.
//
// Every generator takes a defensive copy of its input and returns an
// iter.Seq[Snapshot] that narrates the run frame by frame: one frame per
// comparison, one per swap, and progress frames for writes. The final frame
// holds the ascending array with every position marked sorted. An empty input
// produces exactly that final frame.
package sorting

import (
	"fmt"
	"iter"
	"math/rand"
)

// MaxRandomValue bounds the values produced by RandomValues.
const MaxRandomValue = 100

// generators maps each Algorithm to its constructor.
var generators = map[Algorithm]func([]int) iter.Seq[Snapshot]{
	BubbleSort:    Bubble,
	SelectionSort: Selection,
	InsertionSort: Insertion,
	MergeSort:     Merge,
	QuickSort:     Quick,
	HeapSort:      Heap,
	ShellSort:     Shell,
	CocktailSort:  Cocktail,
	CountingSort:  Counting,
	RadixSort:     Radix,
	BucketSort:    Bucket,
}

// Algorithms returns every supported algorithm in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{
		BubbleSort, SelectionSort, InsertionSort, MergeSort, QuickSort, HeapSort,
		ShellSort, CocktailSort, CountingSort, RadixSort, BucketSort,
	}
}

// Generate returns the step generator for name over values.
// It returns ErrUnknownAlgorithm if name is not registered.
func Generate(name Algorithm, values []int) (iter.Seq[Snapshot], error) {
	gen, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return gen(values), nil
}

// Tally drains seq and counts its comparison and swap frames.
func Tally(seq iter.Seq[Snapshot]) Stats {
	var st Stats
	for s := range seq {
		st.Steps++
		if s.IsComparison() {
			st.Comparisons++
		}
		if s.IsSwap() {
			st.Swaps++
		}
		st.Final = s
	}

	return st
}

// RandomValues returns n values drawn uniformly from [1, MaxRandomValue].
func RandomValues(n int, rng *rand.Rand) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(MaxRandomValue) + 1
	}

	return out
}
