// Package graphsearch defines node, edge and snapshot types plus sentinel
// errors for the abstract graph search step generators.
package graphsearch

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for graph construction and search.
var (
	// ErrNilGraph is returned if a nil *Graph is passed.
	ErrNilGraph = errors.New("graphsearch: graph is nil")
	// ErrDuplicateNode indicates two nodes share an ID.
	ErrDuplicateNode = errors.New("graphsearch: duplicate node ID")
	// ErrDanglingEdge indicates an edge endpoint that is not a node.
	ErrDanglingEdge = errors.New("graphsearch: edge references unknown node")
	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("graphsearch: negative edge weight")
	// ErrNodeNotFound indicates a start or end ID absent from the graph.
	ErrNodeNotFound = errors.New("graphsearch: node not found")
	// ErrBadSize indicates a generator was asked for fewer than one node.
	ErrBadSize = errors.New("graphsearch: node count must be positive")
	// ErrUnknownAlgorithm is returned by Generate for an unregistered name.
	ErrUnknownAlgorithm = errors.New("graphsearch: unknown algorithm")
	// ErrUnknownKind is returned by Build for an unregistered graph shape.
	ErrUnknownKind = errors.New("graphsearch: unknown graph kind")
)

// Infinity is the Distance of a node whose distance is not known.
const Infinity int64 = math.MaxInt64

// None is the Current value of a frame that focuses no node.
const None = -1

// Algorithm names a graph search step generator.
type Algorithm string

const (
	BFSAlgorithm      Algorithm = "bfs"
	DFSAlgorithm      Algorithm = "dfs"
	DijkstraAlgorithm Algorithm = "dijkstra"
)

// ParseAlgorithm resolves a user supplied name case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := generators[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return a, nil
}

// Node is a vertex with a fixed drawing position.
// Visited, IsPath, Exploring and Distance describe search progress and are
// ignored on input.
type Node struct {
	ID        int     `json:"id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Visited   bool    `json:"visited"`
	IsPath    bool    `json:"isPath"`
	Exploring bool    `json:"exploring"`
	Distance  int64   `json:"distance"`
}

// Edge is an undirected weighted connection. Active marks an edge of the
// reported path and is ignored on input.
type Edge struct {
	From   int   `json:"from"`
	To     int   `json:"to"`
	Weight int64 `json:"weight"`
	Active bool  `json:"active"`
}

// State is one frame of a graph search.
//
// Current is the ID of the node being expanded, or None. Path lists node IDs
// from start to end and is only filled on a successful terminal frame.
// Done marks the terminal frame; PathFound tells whether end was reached.
type State struct {
	Nodes     []Node `json:"nodes"`
	Edges     []Edge `json:"edges"`
	Current   int    `json:"current"`
	Path      []int  `json:"path"`
	Done      bool   `json:"done"`
	PathFound bool   `json:"pathFound"`
}
