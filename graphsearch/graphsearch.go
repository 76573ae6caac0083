// Package graphsearch provides step generators for breadth-first search,
// depth-first search and Dijkstra's algorithm on a small undirected,
// weighted graph given as node and edge lists.
//
// Neighbours are visited in edge-list order. BFS and DFS ignore weights and
// report hop depth in Node.Distance; Dijkstra reports path cost. Each run
// ends with a terminal frame that marks the path nodes and the edges used
// by the path, or reports PathFound=false.
//
// Complexity: BFS and DFS O(V + E), Dijkstra O((V + E) log V) with a binary
// heap and lazy decrease-key. Every frame copies the node and edge lists.
package graphsearch

import (
	"container/heap"
	"fmt"
	"iter"
	"slices"
)

var generators = map[Algorithm]func(*Graph, int, int) (iter.Seq[State], error){
	BFSAlgorithm:      BFS,
	DFSAlgorithm:      DFS,
	DijkstraAlgorithm: Dijkstra,
}

// Algorithms returns every supported algorithm in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{BFSAlgorithm, DFSAlgorithm, DijkstraAlgorithm}
}

// Generate returns the step generator for name searching from start to end.
func Generate(name Algorithm, g *Graph, start, end int) (iter.Seq[State], error) {
	gen, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return gen(g, start, end)
}

// BFS marks nodes when they are queued. Each dequeue yields an exploring
// frame focused on the node, then an expanded frame once its neighbours are
// queued.
func BFS(g *Graph, start, end int) (iter.Seq[State], error) {
	if err := validate(g, start, end); err != nil {
		return nil, err
	}

	return func(yield func(State) bool) {
		w := newWalker(g, yield)
		s, e := g.index[start], g.index[end]
		w.seen[s], w.dist[s] = true, 0
		queue := []int{s}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if !w.emit(cur) {
				return
			}
			if cur == e {
				w.finish(e)
				return
			}
			for _, a := range g.adj[cur] {
				if w.seen[a.to] {
					continue
				}
				w.seen[a.to] = true
				w.link(a.to, cur, a.edge)
				w.dist[a.to] = w.dist[cur] + 1
				queue = append(queue, a.to)
			}
			if !w.emit(None) {
				return
			}
		}
		w.finish(e)
	}, nil
}

// frame is a DFS stack item. The parent link is committed on pop.
type frame struct {
	node, from, edge int
	depth            int64
}

// DFS pushes unvisited neighbours in reverse edge order, so the first
// neighbour in edge order is explored first. Nodes are marked when popped.
func DFS(g *Graph, start, end int) (iter.Seq[State], error) {
	if err := validate(g, start, end); err != nil {
		return nil, err
	}

	return func(yield func(State) bool) {
		w := newWalker(g, yield)
		s, e := g.index[start], g.index[end]
		stack := []frame{{node: s, from: None, edge: None}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if w.seen[f.node] {
				continue
			}
			w.seen[f.node] = true
			w.link(f.node, f.from, f.edge)
			w.dist[f.node] = f.depth

			if !w.emit(f.node) {
				return
			}
			if f.node == e {
				w.finish(e)
				return
			}
			adj := g.adj[f.node]
			for i := len(adj) - 1; i >= 0; i-- {
				if a := adj[i]; !w.seen[a.to] {
					stack = append(stack, frame{node: a.to, from: f.node, edge: a.edge, depth: f.depth + 1})
				}
			}
		}
		w.finish(e)
	}, nil
}

// Dijkstra settles nodes in order of path cost, breaking ties by push order.
// Parents are updated on every improving relaxation.
func Dijkstra(g *Graph, start, end int) (iter.Seq[State], error) {
	if err := validate(g, start, end); err != nil {
		return nil, err
	}

	return func(yield func(State) bool) {
		w := newWalker(g, yield)
		s, e := g.index[start], g.index[end]
		w.dist[s] = 0
		pq := &costQueue{}
		pq.push(s, 0)
		for pq.Len() > 0 {
			item := heap.Pop(pq).(costItem)
			cur := item.node
			if w.seen[cur] {
				continue
			}
			w.seen[cur] = true

			if !w.emit(cur) {
				return
			}
			if cur == e {
				w.finish(e)
				return
			}
			for _, a := range g.adj[cur] {
				wt := g.edges[a.edge].Weight
				if wt > Infinity-w.dist[cur] {
					continue
				}
				if nd := w.dist[cur] + wt; nd < w.dist[a.to] {
					w.dist[a.to] = nd
					w.link(a.to, cur, a.edge)
					pq.push(a.to, nd)
				}
			}
		}
		w.finish(e)
	}, nil
}

func validate(g *Graph, start, end int) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.Has(start) {
		return fmt.Errorf("%w: start %d", ErrNodeNotFound, start)
	}
	if !g.Has(end) {
		return fmt.Errorf("%w: end %d", ErrNodeNotFound, end)
	}

	return nil
}

// walker holds per-run state indexed by node position.
type walker struct {
	g          *Graph
	seen       []bool
	dist       []int64
	parent     []int
	parentEdge []int
	yield      func(State) bool
}

func newWalker(g *Graph, yield func(State) bool) *walker {
	n := len(g.nodes)
	w := &walker{
		g:          g,
		seen:       make([]bool, n),
		dist:       make([]int64, n),
		parent:     make([]int, n),
		parentEdge: make([]int, n),
		yield:      yield,
	}
	for i := range n {
		w.dist[i], w.parent[i], w.parentEdge[i] = Infinity, None, None
	}

	return w
}

func (w *walker) link(node, from, edge int) {
	w.parent[node], w.parentEdge[node] = from, edge
}

// emit yields a progress frame focused on the node at position cur, or on
// nothing when cur is None.
func (w *walker) emit(cur int) bool {
	return w.yield(w.snapshot(cur, nil, nil, false))
}

// finish yields the terminal frame for the end node at position e.
func (w *walker) finish(e int) {
	if !w.seen[e] {
		w.yield(w.snapshot(None, nil, nil, true))
		return
	}

	// walk parents back to the start
	var nodes, edges []int
	for at := e; at != None; at = w.parent[at] {
		nodes = append(nodes, at)
		if w.parentEdge[at] != None {
			edges = append(edges, w.parentEdge[at])
		}
	}
	slices.Reverse(nodes)
	w.yield(w.snapshot(None, nodes, edges, true))
}

func (w *walker) snapshot(cur int, pathNodes, pathEdges []int, done bool) State {
	onPath := make(map[int]bool, len(pathNodes))
	path := make([]int, 0, len(pathNodes))
	for _, p := range pathNodes {
		onPath[p] = true
		path = append(path, w.g.nodes[p].ID)
	}

	nodes := w.g.Nodes()
	for i := range nodes {
		nodes[i].Visited = w.seen[i]
		nodes[i].Exploring = i == cur
		nodes[i].IsPath = onPath[i]
		nodes[i].Distance = w.dist[i]
	}
	edges := w.g.Edges()
	for _, i := range pathEdges {
		edges[i].Active = true
	}

	current := None
	if cur != None {
		current = w.g.nodes[cur].ID
	}

	return State{
		Nodes:     nodes,
		Edges:     edges,
		Current:   current,
		Path:      path,
		Done:      done,
		PathFound: done && len(pathNodes) > 0,
	}
}

// costItem is a Dijkstra queue entry; seq orders equal costs by push time.
type costItem struct {
	node int
	cost int64
	seq  int
}

// costQueue is a min-heap of costItem.
type costQueue struct {
	items []costItem
	seq   int
}

func (q *costQueue) push(node int, cost int64) {
	heap.Push(q, costItem{node: node, cost: cost, seq: q.seq})
	q.seq++
}

func (q *costQueue) Len() int { return len(q.items) }

func (q *costQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}

	return a.seq < b.seq
}

func (q *costQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *costQueue) Push(x any) { q.items = append(q.items, x.(costItem)) }

func (q *costQueue) Pop() any {
	n := len(q.items)
	it := q.items[n-1]
	q.items = q.items[:n-1]

	return it
}
