// Package search provides step generators for six array search algorithms.
//
// Linear search scans the input as given. Binary, jump, interpolation,
// exponential and ternary search first sort their own copy ascending and
// search that copy, so a reported index refers to the sorted order, not to
// the caller's array. Every element probe produces one frame; the run ends
// with a frame whose FoundIndex is the match or NotFound.
//
// Complexity (probes):
//
//   - Linear:        O(n)
//   - Binary:        O(log n)
//   - Jump:          O(√n)
//   - Interpolation: O(log log n) on uniform data, O(n) worst case
//   - Exponential:   O(log i) where i is the target position
//   - Ternary:       O(log₃ n) iterations, up to two probes each
package search

import (
	"fmt"
	"iter"
	"math"
	"math/bits"
)

var generators = map[Algorithm]func([]int, int) iter.Seq[Snapshot]{
	LinearSearch:        Linear,
	BinarySearch:        Binary,
	JumpSearch:          Jump,
	InterpolationSearch: Interpolation,
	ExponentialSearch:   Exponential,
	TernarySearch:       Ternary,
}

// Algorithms returns every supported algorithm in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{
		LinearSearch, BinarySearch, JumpSearch,
		InterpolationSearch, ExponentialSearch, TernarySearch,
	}
}

// Generate returns the step generator for name.
// It returns ErrUnknownAlgorithm if name is not registered.
func Generate(name Algorithm, values []int, target int) (iter.Seq[Snapshot], error) {
	gen, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return gen(values, target), nil
}

// Linear probes every index from left to right.
func Linear(values []int, target int) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		p := newProber(values, target, false, yield)
		for i := range p.a {
			if !p.probe(i) {
				return
			}
			if p.hit(i) {
				p.resolve(i)
				return
			}
		}
		p.resolve(NotFound)
	}
}

// Binary halves the sorted candidate range [left, right] around its midpoint.
func Binary(values []int, target int) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		p := newProber(values, target, true, yield)
		if idx, ok := bisect(p, 0, len(p.a)-1); ok {
			p.resolve(idx)
		}
	}
}

// bisect runs binary search over [left, right]. It returns the resolved
// index (or NotFound) and false if the consumer stopped.
func bisect(p *prober, left, right int) (int, bool) {
	for left <= right {
		mid := left + (right-left)/2
		if !p.probe(mid) {
			return 0, false
		}
		switch {
		case p.hit(mid):
			return mid, true
		case p.a[mid] < p.target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return NotFound, true
}

// Jump probes the last element of successive ⌊√n⌋-sized blocks until one is
// not smaller than the target, then scans that block linearly.
func Jump(values []int, target int) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		p := newProber(values, target, true, yield)
		n := len(p.a)
		if n == 0 {
			p.resolve(NotFound)
			return
		}
		size := max(int(math.Sqrt(float64(n))), 1)

		// 1) jump between block ends
		prev, end := 0, min(size, n)-1
		for {
			if !p.probe(end) {
				return
			}
			if p.hit(end) {
				p.resolve(end)
				return
			}
			if p.a[end] > p.target {
				break
			}
			prev = end + 1
			if prev >= n {
				p.resolve(NotFound)
				return
			}
			end = min(end+size, n-1)
		}

		// 2) scan the block before its (already probed) end
		for i := prev; i < end; i++ {
			if !p.probe(i) {
				return
			}
			if p.hit(i) {
				p.resolve(i)
				return
			}
			if p.a[i] > p.target {
				break
			}
		}
		p.resolve(NotFound)
	}
}

// Interpolation estimates the target position from the values at the range
// ends. When both ends hold the same value the estimate would divide by
// zero, so the midpoint is probed instead.
func Interpolation(values []int, target int) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		p := newProber(values, target, true, yield)
		left, right := 0, len(p.a)-1
		for left <= right && target >= p.a[left] && target <= p.a[right] {
			pos := estimate(p.a, left, right, target)
			if !p.probe(pos) {
				return
			}
			switch {
			case p.hit(pos):
				p.resolve(pos)
				return
			case p.a[pos] < target:
				left = pos + 1
			default:
				right = pos - 1
			}
		}
		p.resolve(NotFound)
	}
}

// estimate returns left + (right-left)·(target-a[left]) / (a[right]-a[left]).
// It requires a[left] ≤ target ≤ a[right]; both differences are then
// non-negative and fit in uint64, and the 128-bit product divided by the
// span never exceeds right-left.
func estimate(a []int, left, right, target int) int {
	span := uint64(a[right]) - uint64(a[left])
	if span == 0 {
		return left + (right-left)/2
	}
	hi, lo := bits.Mul64(uint64(right-left), uint64(target)-uint64(a[left]))
	q, _ := bits.Div64(hi, lo, span)

	return left + int(min(q, uint64(right-left)))
}

// Exponential probes index 0, then indices 1, 2, 4, … until one exceeds the
// target or runs past the end, and finishes with binary search between the
// last two doubled indices.
func Exponential(values []int, target int) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		p := newProber(values, target, true, yield)
		n := len(p.a)
		if n == 0 {
			p.resolve(NotFound)
			return
		}
		if !p.probe(0) {
			return
		}
		switch {
		case p.hit(0):
			p.resolve(0)
			return
		case p.a[0] > target:
			p.resolve(NotFound)
			return
		}

		// 1) find the range by doubling
		i, bound := 1, n-1
		for i < n {
			if !p.probe(i) {
				return
			}
			if p.hit(i) {
				p.resolve(i)
				return
			}
			if p.a[i] > target {
				bound = i - 1
				break
			}
			i *= 2
		}

		// 2) binary search inside it, skipping the probed ends
		if idx, ok := bisect(p, i/2+1, bound); ok {
			p.resolve(idx)
		}
	}
}

// Ternary splits the range at two points one third apart and discards the
// thirds that cannot hold the target.
func Ternary(values []int, target int) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		p := newProber(values, target, true, yield)
		left, right := 0, len(p.a)-1
		for left <= right {
			third := (right - left) / 3
			mid1, mid2 := left+third, right-third

			if !p.probe(mid1) {
				return
			}
			if p.hit(mid1) {
				p.resolve(mid1)
				return
			}
			if mid2 != mid1 {
				if !p.probe(mid2) {
					return
				}
				if p.hit(mid2) {
					p.resolve(mid2)
					return
				}
			}

			switch {
			case target < p.a[mid1]:
				right = mid1 - 1
			case target > p.a[mid2]:
				left = mid2 + 1
			default:
				left, right = mid1+1, mid2-1
			}
		}
		p.resolve(NotFound)
	}
}
