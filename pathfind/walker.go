package pathfind

import (
	"iter"
	"maps"
	"slices"
)

// walker holds the mutable state of one pathfinding run.
type walker struct {
	g       *Grid
	opts    Options
	visited PointSet
	pending map[Point]int   // live frontier entries per cell
	parent  map[Point]Point // committed on first expansion
	cost    map[Point]int   // best known path cost (Dijkstra, A*)
	score   map[Point]int   // f-score (A*)

	comparisons int
	iterations  int
	yield       func(State) bool
}

func newWalker(g *Grid, opts []Option, yield func(State) bool) *walker {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &walker{
		g:       g,
		opts:    cfg,
		visited: make(PointSet),
		pending: make(map[Point]int),
		parent:  make(map[Point]Point),
		yield:   yield,
	}
}

// neighbors yields the open in-bounds cells adjacent to p in expansion order.
func (w *walker) neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, d := range w.opts.Conn.offsets() {
			n := Point{p.Row + d[0], p.Col + d[1]}
			if w.g.IsWall(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

func (w *walker) push(f frontier, at, from Point, prio int) {
	w.pending[at]++
	f.push(entry{at: at, from: from, prio: prio})
}

// run drives the shared expansion loop:
//  1. pop the next entry, skipping cells already expanded
//  2. commit its parent and emit an expansion frame
//  3. stop with a found frame at the end cell
//  4. let relax push neighbors, then emit a heartbeat frame when due
//
// An exhausted frontier ends with a not-found frame.
func (w *walker) run(f frontier, startPrio int, relax func(f frontier, cur Point)) {
	if w.g == nil {
		w.yield(State{
			Grid:      [][]Cell{},
			Visited:   PointSet{},
			Exploring: PointSet{},
			Path:      []Point{},
			Done:      true,
		})
		return
	}

	w.push(f, w.g.Start, w.g.Start, startPrio)
	for f.len() > 0 {
		e := f.pop()
		w.pending[e.at]--
		if w.visited.Has(e.at) {
			continue
		}
		w.visited[e.at] = struct{}{}
		w.parent[e.at] = e.from
		w.iterations++

		cur := e.at
		if !w.emit(&cur, w.pathTo(cur), false, false) {
			return
		}
		if cur == w.g.End {
			w.emit(nil, w.pathTo(cur), true, true)
			return
		}

		relax(f, cur)

		if hb := w.opts.Heartbeat; hb > 0 && w.iterations%hb == 0 {
			if !w.emit(nil, []Point{}, false, false) {
				return
			}
		}
	}
	w.emit(nil, []Point{}, true, false)
}

// pathTo walks committed parents from p back to the start.
func (w *walker) pathTo(p Point) []Point {
	path := []Point{p}
	for p != w.g.Start {
		p = w.parent[p]
		path = append(path, p)
	}
	slices.Reverse(path)

	return path
}

// frontierSet returns the queued cells that have not been expanded yet.
func (w *walker) frontierSet() PointSet {
	out := make(PointSet)
	for p, n := range w.pending {
		if n > 0 && !w.visited.Has(p) {
			out[p] = struct{}{}
		}
	}

	return out
}

func (w *walker) emit(current *Point, path []Point, done, found bool) bool {
	exploring := PointSet{}
	if !done {
		exploring = w.frontierSet()
	}
	onPath := make(PointSet, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	cells := w.g.Cells()
	for r := range cells {
		for c := range cells[r] {
			p := Point{r, c}
			cell := &cells[r][c]
			cell.IsVisited = w.visited.Has(p)
			cell.IsExplored = exploring.Has(p)
			cell.IsPath = onPath.Has(p)
			if v, ok := w.cost[p]; ok {
				cell.Distance = &v
			}
			if v, ok := w.score[p]; ok {
				cell.Heuristic = &v
			}
		}
	}

	var cur *Point
	if current != nil {
		p := *current
		cur = &p
	}

	return w.yield(State{
		Grid:        cells,
		Visited:     maps.Clone(w.visited),
		Exploring:   exploring,
		Path:        slices.Clone(path),
		Current:     cur,
		Comparisons: w.comparisons,
		Iterations:  w.iterations,
		Done:        done,
		PathFound:   found,
	})
}
