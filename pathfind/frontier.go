package pathfind

import "container/heap"

// entry is a frontier item. from is the cell that pushed it; the link is
// committed as a parent only when at is expanded for the first time.
type entry struct {
	at, from Point
	prio     int
	seq      int
}

// frontier abstracts the container that orders expansions.
type frontier interface {
	push(e entry)
	pop() entry
	len() int
}

// fifo is the BFS queue.
type fifo struct {
	items []entry
	head  int
}

func (q *fifo) push(e entry) { q.items = append(q.items, e) }
func (q *fifo) len() int     { return len(q.items) - q.head }

func (q *fifo) pop() entry {
	e := q.items[q.head]
	q.head++

	return e
}

// lifo is the DFS stack.
type lifo []entry

func (s *lifo) push(e entry) { *s = append(*s, e) }
func (s *lifo) len() int     { return len(*s) }

func (s *lifo) pop() entry {
	old := *s
	e := old[len(old)-1]
	*s = old[:len(old)-1]

	return e
}

// minQueue pops the lowest prio first and breaks ties by push order.
// Stale entries are left in place and skipped on pop by the caller
// (lazy decrease-key).
type minQueue struct {
	pq  entryPQ
	seq int
}

func (q *minQueue) push(e entry) {
	e.seq = q.seq
	q.seq++
	heap.Push(&q.pq, e)
}

func (q *minQueue) pop() entry { return heap.Pop(&q.pq).(entry) }
func (q *minQueue) len() int   { return q.pq.Len() }

// entryPQ implements heap.Interface over entries.
type entryPQ []entry

func (pq entryPQ) Len() int { return len(pq) }

func (pq entryPQ) Less(i, j int) bool {
	if pq[i].prio != pq[j].prio {
		return pq[i].prio < pq[j].prio
	}

	return pq[i].seq < pq[j].seq
}

func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ) Push(x any) { *pq = append(*pq, x.(entry)) }

func (pq *entryPQ) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
