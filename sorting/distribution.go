package sorting

import (
	"iter"
	"maps"
	"math"
	"slices"
)

// MaxCountingSpan is the widest value range Counting tallies in a dense
// array. Wider ranges are tallied per distinct value instead; the frames are
// the same either way.
const MaxCountingSpan = 1 << 16

// Counting tallies occurrences of every value in [min, max] and rewrites the
// array from the tallies. Each read of the input produces a frame showing the
// read position; each write produces a frame and marks its position final.
//
// Complexity: O(n + k) time and O(k) memory, k = max - min + 1. When k
// exceeds MaxCountingSpan the tally is kept per distinct value, O(n log n).
func Counting(values []int) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		t := newTracer(values, yield)
		if len(t.a) == 0 {
			t.finish()
			return
		}
		lo, hi := slices.Min(t.a), slices.Max(t.a)

		var tally func(v int)
		var rebuild func(emit func(v int) bool) bool
		if span := uint64(hi) - uint64(lo); span < MaxCountingSpan {
			count := make([]int, span+1)
			tally = func(v int) { count[uint64(v)-uint64(lo)]++ }
			rebuild = func(emit func(v int) bool) bool {
				for offset, c := range count {
					for ; c > 0; c-- {
						if !emit(int(uint64(lo) + uint64(offset))) {
							return false
						}
					}
				}
				return true
			}
		} else {
			count := make(map[int]int)
			tally = func(v int) { count[v]++ }
			rebuild = func(emit func(v int) bool) bool {
				for _, v := range slices.Sorted(maps.Keys(count)) {
					for c := count[v]; c > 0; c-- {
						if !emit(v) {
							return false
						}
					}
				}
				return true
			}
		}

		// 1) count occurrences
		for i, v := range t.a {
			if !t.read(i) {
				return
			}
			tally(v)
		}

		// 2) rebuild in order
		idx := 0
		ok := rebuild(func(v int) bool {
			t.markSorted(idx)
			if !t.write(idx, v) {
				return false
			}
			idx++
			return true
		})
		if ok {
			t.finish()
		}
	}
}

// Radix is least-significant-digit radix sort in base 10. Digits are taken
// from the unsigned distance of each value to the minimum (or to zero when
// nothing is negative), which preserves order across the whole int range.
// Positions become final only during the last digit pass.
//
// Complexity: O(d·n) with d the number of decimal digits of the largest key.
func Radix(values []int) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		t := newTracer(values, yield)
		if len(t.a) == 0 {
			t.finish()
			return
		}
		base := min(slices.Min(t.a), 0)
		key := func(v int) uint64 { return uint64(v) - uint64(base) }
		passes := digits(key(slices.Max(t.a)))

		exp := uint64(1)
		for pass := 0; pass < passes; pass++ {
			var buckets [10][]int

			// 1) distribute by the current digit
			for i, v := range t.a {
				if !t.read(i) {
					return
				}
				d := (key(v) / exp) % 10
				buckets[d] = append(buckets[d], v)
			}

			// 2) collect back in bucket order
			last := pass == passes-1
			idx := 0
			for _, bucket := range buckets {
				for _, v := range bucket {
					if last {
						t.markSorted(idx)
					}
					if !t.write(idx, v) {
						return
					}
					idx++
				}
			}
			if !last {
				exp *= 10
			}
		}
		t.finish()
	}
}

// digits returns the number of decimal digits of v (1 for 0).
func digits(v uint64) int {
	d := 1
	for v >= 10 {
		v /= 10
		d++
	}

	return d
}

// Bucket distributes values into ⌊√n⌋ equal-width buckets over [min, max],
// sorts each bucket, and concatenates them. When every value is equal all of
// them land in the first bucket.
//
// Complexity: O(n + k) for uniform input, O(n log n) worst case.
func Bucket(values []int) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		t := newTracer(values, yield)
		n := len(t.a)
		if n == 0 {
			t.finish()
			return
		}
		lo, hi := slices.Min(t.a), slices.Max(t.a)
		count := int(math.Sqrt(float64(n)))
		buckets := make([][]int, count)
		width := (float64(hi) - float64(lo)) / float64(count)

		// 1) distribute
		for i, v := range t.a {
			if !t.read(i) {
				return
			}
			b := 0
			if width > 0 {
				b = min(int((float64(v)-float64(lo))/width), count-1)
			}
			buckets[b] = append(buckets[b], v)
		}

		// 2) sort each bucket and collect
		idx := 0
		for _, bucket := range buckets {
			slices.Sort(bucket)
			for _, v := range bucket {
				t.markSorted(idx)
				if !t.write(idx, v) {
					return
				}
				idx++
			}
		}
		t.finish()
	}
}
