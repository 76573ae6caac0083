package sorting

import "iter"

// Bubble repeatedly compares adjacent pairs and swaps those out of order.
// After pass i the last i+1 positions are final.
//
// Complexity: O(n²) comparisons, at most n(n-1)/2 swaps.
func Bubble(values []int) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		t := newTracer(values, yield)
		n := len(t.a)
		for i := 0; i < n; i++ {
			for j := 0; j < n-i-1; j++ {
				if !t.compare(j, j+1) {
					return
				}
				if t.a[j] > t.a[j+1] {
					if !t.swap(j, j+1) {
						return
					}
				}
			}
			t.markSorted(n - 1 - i)
		}
		t.finish()
	}
}

// Selection scans the unsorted suffix for its minimum and swaps it into
// place. A swap frame is only produced when the minimum is not already in
// position; otherwise a progress frame shows the grown prefix.
//
// Complexity: O(n²) comparisons, at most n-1 swaps.
func Selection(values []int) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		t := newTracer(values, yield)
		n := len(t.a)
		for i := 0; i < n-1; i++ {
			minIdx := i
			for j := i + 1; j < n; j++ {
				if !t.compare(minIdx, j) {
					return
				}
				if t.a[j] < t.a[minIdx] {
					minIdx = j
				}
			}
			t.markSorted(i)
			if minIdx != i {
				if !t.swap(i, minIdx) {
					return
				}
			} else if !t.progress() {
				return
			}
		}
		t.finish()
	}
}

// Insertion grows a sorted prefix by walking each new element left with
// adjacent swaps until it meets a smaller-or-equal neighbour. Every frame is
// a permutation of the input.
//
// Complexity: O(n²) comparisons and swaps; O(n) on sorted input.
func Insertion(values []int) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		t := newTracer(values, yield)
		n := len(t.a)
		if n > 0 {
			t.markSorted(0)
		}
		for i := 1; i < n; i++ {
			for j := i - 1; j >= 0; j-- {
				if !t.compare(j, j+1) {
					return
				}
				if t.a[j] <= t.a[j+1] {
					break
				}
				if !t.swap(j, j+1) {
					return
				}
			}
			t.markSorted(i)
			if !t.progress() {
				return
			}
		}
		t.finish()
	}
}

// Cocktail is a bidirectional bubble sort: a forward pass settles the
// largest remaining value at the right end, a backward pass the smallest at
// the left end. It stops early once a pass makes no swap.
func Cocktail(values []int) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		t := newTracer(values, yield)
		start, end := 0, len(t.a)-1
		swapped := true
		for swapped && start < end {
			swapped = false

			// forward pass
			for i := start; i < end; i++ {
				if !t.compare(i, i+1) {
					return
				}
				if t.a[i] > t.a[i+1] {
					if !t.swap(i, i+1) {
						return
					}
					swapped = true
				}
			}
			t.markSorted(end)
			if !swapped {
				break
			}
			end--
			swapped = false

			// backward pass
			for i := end; i > start; i-- {
				if !t.compare(i-1, i) {
					return
				}
				if t.a[i-1] > t.a[i] {
					if !t.swap(i-1, i) {
						return
					}
					swapped = true
				}
			}
			t.markSorted(start)
			start++
		}
		t.finish()
	}
}

// Shell runs gapped insertion sort with the gap sequence n/2, n/4, …, 1.
// Elements move by gapped swaps, so frames stay permutations of the input.
func Shell(values []int) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		t := newTracer(values, yield)
		n := len(t.a)
		for gap := n / 2; gap > 0; gap /= 2 {
			for i := gap; i < n; i++ {
				for j := i; j >= gap; j -= gap {
					if !t.compare(j-gap, j) {
						return
					}
					if t.a[j-gap] <= t.a[j] {
						break
					}
					if !t.swap(j-gap, j) {
						return
					}
				}
			}
		}
		t.finish()
	}
}
