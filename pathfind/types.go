// Package pathfind defines grid types, options and sentinel errors for the
// grid pathfinding step generators.
package pathfind

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors for grid construction and algorithm lookup.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("pathfind: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pathfind: all rows must have the same length")
	// ErrNoStart indicates no cell is marked as start.
	ErrNoStart = errors.New("pathfind: grid has no start cell")
	// ErrNoEnd indicates no cell is marked as end.
	ErrNoEnd = errors.New("pathfind: grid has no end cell")
	// ErrMultipleStart indicates more than one start cell.
	ErrMultipleStart = errors.New("pathfind: grid has more than one start cell")
	// ErrMultipleEnd indicates more than one end cell.
	ErrMultipleEnd = errors.New("pathfind: grid has more than one end cell")
	// ErrBlockedEndpoint indicates the start or end cell is a wall.
	ErrBlockedEndpoint = errors.New("pathfind: start and end cells must not be walls")
	// ErrBadGlyph indicates ParseGrid met a character outside the grid alphabet.
	ErrBadGlyph = errors.New("pathfind: unknown grid glyph")
	// ErrUnknownAlgorithm is returned by Generate for an unregistered name.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")
	// ErrUnknownMaze is returned by Maze for an unregistered maze kind.
	ErrUnknownMaze = errors.New("pathfind: unknown maze kind")
)

// Algorithm names a grid pathfinding step generator.
type Algorithm string

const (
	BFSAlgorithm      Algorithm = "bfs"
	DFSAlgorithm      Algorithm = "dfs"
	DijkstraAlgorithm Algorithm = "dijkstra"
	AStarAlgorithm    Algorithm = "astar"
)

// ParseAlgorithm resolves a user supplied name case-insensitively.
// "a-star" and "a*" are accepted for AStarAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "a-star", "a*":
		key = string(AStarAlgorithm)
	}
	a := Algorithm(key)
	if _, ok := generators[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return a, nil
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 visits neighbors right, down, left, up.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals after the orthogonal neighbors.
	Conn8
)

// offsets returns (dRow, dCol) pairs in expansion order.
func (c Connectivity) offsets() [][2]int {
	orthogonal := [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	if c != Conn8 {
		return orthogonal
	}

	return append(orthogonal, [2]int{1, 1}, [2]int{1, -1}, [2]int{-1, -1}, [2]int{-1, 1})
}

// Point addresses a grid cell.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders p as "row,col".
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.Row, p.Col) }

// PointSet is an unordered set of cells.
// It marshals to a JSON array of "row,col" strings in row-major order.
type PointSet map[Point]struct{}

// Has reports whether p is in the set.
func (s PointSet) Has(p Point) bool {
	_, ok := s[p]

	return ok
}

// Sorted returns the members in row-major order.
func (s PointSet) Sorted() []Point {
	out := make([]Point, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Point) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}

		return a.Col - b.Col
	})

	return out
}

// MarshalJSON implements json.Marshaler.
func (s PointSet) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(s))
	for _, p := range s.Sorted() {
		keys = append(keys, p.String())
	}

	return json.Marshal(keys)
}

// Cell is one grid square as seen in a snapshot.
//
// Distance is the best known path cost from the start (Dijkstra and A*);
// Heuristic is the A* f-score. Both are nil where nothing is known.
type Cell struct {
	Row        int  `json:"row"`
	Col        int  `json:"col"`
	IsWall     bool `json:"isWall"`
	IsPath     bool `json:"isPath"`
	IsVisited  bool `json:"isVisited"`
	IsExplored bool `json:"isExplored"`
	IsStart    bool `json:"isStart"`
	IsEnd      bool `json:"isEnd"`
	Distance   *int `json:"distance,omitempty"`
	Heuristic  *int `json:"heuristic,omitempty"`
}

// State is one frame of a pathfinding run.
//
// Visited holds the expanded cells. Exploring holds the frontier: cells
// queued but not yet expanded. Path runs from the start to Current on an
// expansion frame and from the start to the end on a successful terminal
// frame; it is empty otherwise. Done marks the terminal frame, which is
// always the last one; PathFound tells whether the end was reached.
type State struct {
	Grid        [][]Cell `json:"grid"`
	Visited     PointSet `json:"visited"`
	Exploring   PointSet `json:"exploring"`
	Path        []Point  `json:"path"`
	Current     *Point   `json:"current,omitempty"`
	Comparisons int      `json:"comparisons"`
	Iterations  int      `json:"iterations"`
	Done        bool     `json:"done"`
	PathFound   bool     `json:"pathFound"`
}

// DefaultHeartbeat is the default number of expansions between heartbeat frames.
const DefaultHeartbeat = 5

// Option configures a pathfinding run via functional arguments.
type Option func(*Options)

// Options holds the tunables of a run.
type Options struct {
	// Heartbeat emits an extra frame, without a current cell, after every
	// Heartbeat expansions. Zero disables heartbeat frames.
	Heartbeat int
	// Conn chooses 4- or 8-directional movement. Every move costs 1.
	Conn Connectivity
}

// DefaultOptions returns Options with Heartbeat=DefaultHeartbeat and Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		Heartbeat: DefaultHeartbeat,
		Conn:      Conn4,
	}
}

// WithHeartbeat sets the heartbeat interval. Values below 1 disable it.
func WithHeartbeat(n int) Option {
	return func(o *Options) {
		o.Heartbeat = max(n, 0)
	}
}

// WithConnectivity selects Conn4 or Conn8 movement.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}
