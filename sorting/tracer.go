package sorting

import "slices"

// tracer owns the working buffer of one run and turns every operation on it
// into a snapshot handed to yield. Each operation method returns false once
// the consumer has stopped ranging; generators must return immediately then.
type tracer struct {
	a       []int
	sorted  []bool
	nSorted int
	yield   func(Snapshot) bool
}

// newTracer takes the defensive copy of values that the run will mutate.
func newTracer(values []int, yield func(Snapshot) bool) *tracer {
	a := make([]int, len(values))
	copy(a, values)

	return &tracer{
		a:      a,
		sorted: make([]bool, len(values)),
		yield:  yield,
	}
}

// compare emits a frame showing positions i and j being compared.
func (t *tracer) compare(i, j int) bool {
	return t.emit(indexSet(i, j), []int{})
}

// read emits a frame showing position i being inspected. Distribution sorts
// use it where comparison sorts would compare.
func (t *tracer) read(i int) bool {
	return t.emit([]int{i}, []int{})
}

// swap exchanges positions i and j and emits a frame showing the swap.
func (t *tracer) swap(i, j int) bool {
	t.a[i], t.a[j] = t.a[j], t.a[i]
	return t.emit([]int{}, indexSet(i, j))
}

// write stores v at position i and emits a plain progress frame.
func (t *tracer) write(i, v int) bool {
	t.a[i] = v
	return t.progress()
}

// progress emits a frame with no comparison or swap, used to show writes and
// growth of the sorted set.
func (t *tracer) progress() bool {
	return t.emit([]int{}, []int{})
}

// markSorted records positions as final. It does not emit; the next frame
// carries the change.
func (t *tracer) markSorted(idx ...int) {
	for _, i := range idx {
		if i >= 0 && i < len(t.sorted) && !t.sorted[i] {
			t.sorted[i] = true
			t.nSorted++
		}
	}
}

// markRange records positions [from, to] as final.
func (t *tracer) markRange(from, to int) {
	for i := from; i <= to; i++ {
		t.markSorted(i)
	}
}

// finish marks every position sorted and emits the terminal frame.
func (t *tracer) finish() {
	t.markRange(0, len(t.a)-1)
	t.progress()
}

func (t *tracer) emit(comparing, swapped []int) bool {
	sorted := make([]int, 0, t.nSorted)
	for i, ok := range t.sorted {
		if ok {
			sorted = append(sorted, i)
		}
	}

	return t.yield(Snapshot{
		Array:     slices.Clone(t.a),
		Comparing: comparing,
		Swapped:   swapped,
		Sorted:    sorted,
	})
}

// indexSet returns {i, j} in ascending order, collapsing i == j.
func indexSet(i, j int) []int {
	switch {
	case i == j:
		return []int{i}
	case i < j:
		return []int{i, j}
	default:
		return []int{j, i}
	}
}
