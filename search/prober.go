package search

import (
	"slices"
)

// prober owns the array of one run and turns probes into frames.
// probe and resolve return false once the consumer has stopped ranging.
type prober struct {
	a           []int
	target      int
	searched    []int
	seen        map[int]bool
	comparisons int
	yield       func(Snapshot) bool
}

// newProber copies values, sorting the copy when ordered is true.
func newProber(values []int, target int, ordered bool, yield func(Snapshot) bool) *prober {
	a := make([]int, len(values))
	copy(a, values)
	if ordered {
		slices.Sort(a)
	}

	return &prober{
		a:        a,
		target:   target,
		searched: []int{},
		seen:     make(map[int]bool),
		yield:    yield,
	}
}

// probe compares a[i] with the target and emits an unresolved frame.
func (p *prober) probe(i int) bool {
	p.comparisons++
	if !p.seen[i] {
		p.seen[i] = true
		p.searched = append(p.searched, i)
	}

	return p.emit(i, nil)
}

// hit reports whether a[i] equals the target.
func (p *prober) hit(i int) bool { return p.a[i] == p.target }

// resolve emits the terminal frame. idx is the found position or NotFound.
func (p *prober) resolve(idx int) {
	found := idx
	p.emit(idx, &found)
}

func (p *prober) emit(current int, found *int) bool {
	return p.yield(Snapshot{
		Array:       slices.Clone(p.a),
		Target:      p.target,
		Current:     current,
		Searched:    slices.Clone(p.searched),
		FoundIndex:  found,
		Comparisons: p.comparisons,
	})
}
