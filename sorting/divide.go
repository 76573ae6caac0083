package sorting

import "iter"

// span is a pending range on the explicit work stacks that replace recursion
// in Merge and Quick.
type span struct {
	low, high int
	merge     bool // Merge only: children done, merge this range next
}

// Merge is top-down merge sort driven by an explicit stack. Ranges are
// merged in the same post-order as the recursive formulation. Merging writes
// values back by assignment, so no frame ever reports a swap. Positions become
// final only during the last merge over the whole array.
//
// Complexity: O(n log n) comparisons, O(n) auxiliary memory.
func Merge(values []int) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		t := newTracer(values, yield)
		n := len(t.a)
		stack := []span{{low: 0, high: n - 1}}
		for len(stack) > 0 {
			s := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if s.low >= s.high {
				continue
			}
			mid := (s.low + s.high) / 2
			if s.merge {
				if !mergeRange(t, s.low, mid, s.high, s.low == 0 && s.high == n-1) {
					return
				}
				continue
			}
			// pushed in reverse: left half runs first, then right, then the merge
			stack = append(stack,
				span{low: s.low, high: s.high, merge: true},
				span{low: mid + 1, high: s.high},
				span{low: s.low, high: mid},
			)
		}
		t.finish()
	}
}

// mergeRange merges the sorted runs [left, mid] and [mid+1, right].
// When final is true every written position is marked sorted.
func mergeRange(t *tracer, left, mid, right int, final bool) bool {
	lhs := append([]int(nil), t.a[left:mid+1]...)
	rhs := append([]int(nil), t.a[mid+1:right+1]...)
	i, j, k := 0, 0, left

	for i < len(lhs) && j < len(rhs) {
		if !t.compare(left+i, mid+1+j) {
			return false
		}
		v := rhs[j]
		if lhs[i] <= rhs[j] {
			v = lhs[i]
			i++
		} else {
			j++
		}
		if final {
			t.markSorted(k)
		}
		if !t.write(k, v) {
			return false
		}
		k++
	}

	// drain whichever run is left; a single frame shows the block copy
	for ; i < len(lhs); i++ {
		t.a[k] = lhs[i]
		if final {
			t.markSorted(k)
		}
		k++
	}
	for ; j < len(rhs); j++ {
		t.a[k] = rhs[j]
		if final {
			t.markSorted(k)
		}
		k++
	}

	return t.progress()
}

// Quick is quicksort with Lomuto partitioning around the last element. The
// recursion is flattened onto a stack of (low, high) ranges; the left range is
// always processed before the right one. Each pivot is marked sorted as soon
// as its partition completes.
//
// Complexity: O(n log n) expected, O(n²) on already sorted input.
func Quick(values []int) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		t := newTracer(values, yield)
		stack := []span{{low: 0, high: len(t.a) - 1}}
		for len(stack) > 0 {
			s := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			switch {
			case s.low > s.high:
				continue
			case s.low == s.high:
				t.markSorted(s.low)
				continue
			}

			p, ok := partition(t, s.low, s.high)
			if !ok {
				return
			}
			t.markSorted(p)
			stack = append(stack, span{low: p + 1, high: s.high}, span{low: s.low, high: p - 1})
		}
		t.finish()
	}
}

// partition applies Lomuto's scheme to [low, high] and returns the pivot's
// final index.
func partition(t *tracer, low, high int) (int, bool) {
	pivot := t.a[high]
	i := low - 1
	for j := low; j < high; j++ {
		if !t.compare(j, high) {
			return 0, false
		}
		if t.a[j] < pivot {
			i++
			if !t.swap(i, j) {
				return 0, false
			}
		}
	}
	if !t.swap(i+1, high) {
		return 0, false
	}

	return i + 1, true
}

// Heap builds a max-heap in place, then repeatedly swaps the root to the end
// of the shrinking heap and restores the heap property. Every child
// comparison made while sifting down produces a frame.
//
// Complexity: O(n log n) comparisons and swaps, O(1) auxiliary memory.
func Heap(values []int) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		t := newTracer(values, yield)
		n := len(t.a)

		// 1) heapify
		for i := n/2 - 1; i >= 0; i-- {
			if !siftDown(t, n, i) {
				return
			}
		}

		// 2) extract max into the sorted suffix
		for end := n - 1; end > 0; end-- {
			if !t.swap(0, end) {
				return
			}
			t.markSorted(end)
			if !siftDown(t, end, 0) {
				return
			}
		}
		t.finish()
	}
}

// siftDown moves a[i] down the heap of the first size elements until both
// children are smaller or equal.
func siftDown(t *tracer, size, i int) bool {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < size {
			if !t.compare(largest, left) {
				return false
			}
			if t.a[left] > t.a[largest] {
				largest = left
			}
		}
		if right < size {
			if !t.compare(largest, right) {
				return false
			}
			if t.a[right] > t.a[largest] {
				largest = right
			}
		}
		if largest == i {
			return true
		}
		if !t.swap(i, largest) {
			return false
		}
		i = largest
	}
}
