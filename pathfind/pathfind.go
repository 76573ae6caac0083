// Package pathfind provides step generators for shortest-path search on a
// 2D grid maze: breadth-first search, depth-first search, Dijkstra and A*.
//
// Every generator expands one cell per expansion frame and finishes with a
// terminal frame (Done=true) telling whether the end was reached. Parents
// are recorded when a cell is expanded for the first time, so the path shown
// on a frame is always a chain of adjacent open cells starting at Start.
//
// Moves cost 1 in every direction. BFS, Dijkstra and A* therefore return
// shortest paths; DFS returns some path. With Conn8, A* switches from the
// Manhattan to the Chebyshev heuristic to stay admissible.
//
// Complexity for an R×C grid with N = R·C:
//
//   - BFS, DFS:     O(N) expansions, at most one frontier entry per neighbour push
//   - Dijkstra, A*: O(N log N) with a binary heap and lazy decrease-key
//   - Each frame copies the grid, O(N) time and memory per frame
package pathfind

import (
	"fmt"
	"iter"
)

var generators = map[Algorithm]func(*Grid, ...Option) iter.Seq[State]{
	BFSAlgorithm:      BFS,
	DFSAlgorithm:      DFS,
	DijkstraAlgorithm: Dijkstra,
	AStarAlgorithm:    AStar,
}

// Algorithms returns every supported algorithm in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{BFSAlgorithm, DFSAlgorithm, DijkstraAlgorithm, AStarAlgorithm}
}

// Generate returns the step generator for name over g.
// It returns ErrUnknownAlgorithm for an unregistered name and ErrEmptyGrid
// for a nil grid.
func Generate(name Algorithm, g *Grid, opts ...Option) (iter.Seq[State], error) {
	gen, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	if g == nil {
		return nil, ErrEmptyGrid
	}

	return gen(g, opts...), nil
}

// BFS expands cells in first-in first-out order. Every open, unexpanded
// neighbour is queued and counted as one comparison.
func BFS(g *Grid, opts ...Option) iter.Seq[State] {
	return func(yield func(State) bool) {
		w := newWalker(g, opts, yield)
		w.run(&fifo{}, 0, w.relaxUnweighted)
	}
}

// DFS expands cells in last-in first-out order, so the most recently queued
// neighbour (up, for Conn4) is explored first.
func DFS(g *Grid, opts ...Option) iter.Seq[State] {
	return func(yield func(State) bool) {
		w := newWalker(g, opts, yield)
		w.run(&lifo{}, 0, w.relaxUnweighted)
	}
}

func (w *walker) relaxUnweighted(f frontier, cur Point) {
	for n := range w.neighbors(cur) {
		if w.visited.Has(n) {
			continue
		}
		w.comparisons++
		w.push(f, n, cur, 0)
	}
}

// Dijkstra expands cells in order of path cost and fills Cell.Distance.
// A comparison is counted for every improved distance.
func Dijkstra(g *Grid, opts ...Option) iter.Seq[State] {
	return func(yield func(State) bool) {
		w := newWalker(g, opts, yield)
		w.cost = make(map[Point]int)
		if g != nil {
			w.cost[g.Start] = 0
		}
		w.run(&minQueue{}, 0, func(f frontier, cur Point) {
			next := w.cost[cur] + 1
			for n := range w.neighbors(cur) {
				if old, ok := w.cost[n]; ok && old <= next {
					continue
				}
				w.comparisons++
				w.cost[n] = next
				w.push(f, n, cur, next)
			}
		})
	}
}

// AStar expands cells in order of f = g + h and fills Cell.Distance with g
// and Cell.Heuristic with f. Every open neighbour examined counts as one
// comparison.
func AStar(g *Grid, opts ...Option) iter.Seq[State] {
	return func(yield func(State) bool) {
		w := newWalker(g, opts, yield)
		w.cost = make(map[Point]int)
		w.score = make(map[Point]int)
		if g == nil {
			w.run(&minQueue{}, 0, nil)
			return
		}
		h := w.heuristic(g.End)
		w.cost[g.Start] = 0
		w.score[g.Start] = h(g.Start)

		w.run(&minQueue{}, h(g.Start), func(f frontier, cur Point) {
			tentative := w.cost[cur] + 1
			for n := range w.neighbors(cur) {
				w.comparisons++
				if old, ok := w.cost[n]; ok && old <= tentative {
					continue
				}
				w.cost[n] = tentative
				w.score[n] = tentative + h(n)
				if !w.visited.Has(n) {
					w.push(f, n, cur, w.score[n])
				}
			}
		})
	}
}

// heuristic returns the distance estimate to end matching the connectivity.
func (w *walker) heuristic(end Point) func(Point) int {
	if w.opts.Conn == Conn8 {
		return func(p Point) int { return max(abs(p.Row-end.Row), abs(p.Col-end.Col)) }
	}

	return func(p Point) int { return abs(p.Row-end.Row) + abs(p.Col-end.Col) }
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
