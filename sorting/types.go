// Package sorting defines snapshot types, algorithm names and sentinel errors
// for the sort step generators.
package sorting

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned by Generate and ParseAlgorithm for a name
// that does not match any registered sort.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// Algorithm names a sort step generator. The values double as catalog keys.
type Algorithm string

const (
	BubbleSort    Algorithm = "bubble-sort"
	SelectionSort Algorithm = "selection-sort"
	InsertionSort Algorithm = "insertion-sort"
	MergeSort     Algorithm = "merge-sort"
	QuickSort     Algorithm = "quick-sort"
	HeapSort      Algorithm = "heap-sort"
	ShellSort     Algorithm = "shell-sort"
	CocktailSort  Algorithm = "cocktail-sort"
	CountingSort  Algorithm = "counting-sort"
	RadixSort     Algorithm = "radix-sort"
	BucketSort    Algorithm = "bucket-sort"
)

// Snapshot is one frame of a sort run.
//
// Array is a private copy of the working buffer at the moment of the frame.
// Comparing and Swapped name the positions touched by the operation this frame
// shows; at most one of them is non-empty. Sorted lists positions known to
// hold their final value and never shrinks during a run. All index slices are
// ascending, duplicate-free and non-nil.
type Snapshot struct {
	Array     []int `json:"array"`
	Comparing []int `json:"comparingIndices"`
	Swapped   []int `json:"swappedIndices"`
	Sorted    []int `json:"sortedIndices"`
}

// IsComparison reports whether the frame shows a comparison (or a read, for
// the distribution sorts).
func (s Snapshot) IsComparison() bool { return len(s.Comparing) > 0 }

// IsSwap reports whether the frame shows a swap.
func (s Snapshot) IsSwap() bool { return len(s.Swapped) > 0 }

// Stats summarizes a complete run; see Tally.
type Stats struct {
	Steps       int      // snapshots produced
	Comparisons int      // snapshots with a non-empty Comparing set
	Swaps       int      // snapshots with a non-empty Swapped set
	Final       Snapshot // last snapshot of the run
}

// ParseAlgorithm resolves a user supplied name. Both the canonical form
// ("quick-sort") and the short form ("quick") are accepted, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if !strings.HasSuffix(key, "-sort") {
		key += "-sort"
	}
	a := Algorithm(key)
	if _, ok := generators[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return a, nil
}
