// Package search defines snapshot types, algorithm names and sentinel errors
// for the search step generators.
package search

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned by Generate and ParseAlgorithm for an
// unregistered name.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// NotFound is the resolved FoundIndex of an unsuccessful search.
const NotFound = -1

// Algorithm names a search step generator. The values double as catalog keys.
type Algorithm string

const (
	LinearSearch        Algorithm = "linear-search"
	BinarySearch        Algorithm = "binary-search"
	JumpSearch          Algorithm = "jump-search"
	InterpolationSearch Algorithm = "interpolation-search"
	ExponentialSearch   Algorithm = "exponential-search"
	TernarySearch       Algorithm = "ternary-search"
)

// Snapshot is one frame of a search run.
//
// Array is the array being searched: the input itself for linear search, an
// ascending copy of it for every other algorithm. Current is the index probed
// in this frame, or -1. Searched lists the distinct indices probed so far in
// first-probe order. FoundIndex is nil until the search resolves, then either
// the index of the target in Array or NotFound; the resolving frame is the
// last one. Comparisons counts element probes and never decreases.
type Snapshot struct {
	Array       []int `json:"array"`
	Target      int   `json:"target"`
	Current     int   `json:"currentIndex"`
	Searched    []int `json:"searchedIndices"`
	FoundIndex  *int  `json:"foundIndex"`
	Comparisons int   `json:"comparisons"`
}

// Found returns the resolved index and true once the search has resolved.
// The index is NotFound for an unsuccessful search.
func (s Snapshot) Found() (int, bool) {
	if s.FoundIndex == nil {
		return 0, false
	}

	return *s.FoundIndex, true
}

// ParseAlgorithm resolves a user supplied name, accepting both "binary" and
// "binary-search", case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if !strings.HasSuffix(key, "-search") {
		key += "-search"
	}
	a := Algorithm(key)
	if _, ok := generators[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return a, nil
}
