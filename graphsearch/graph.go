package graphsearch

import (
	"fmt"
	"math"
	"math/rand"
)

// arc is one direction of an undirected edge in the adjacency list.
type arc struct {
	to   int // node position
	edge int // edge position
}

// Graph is an immutable validated node/edge list with adjacency in edge order.
type Graph struct {
	nodes []Node
	edges []Edge
	index map[int]int // node ID -> position
	adj   [][]arc
}

// NewGraph validates nodes and edges and builds a Graph from copies of them.
// Search flags are cleared and distances reset to Infinity.
// Returns ErrDuplicateNode, ErrDanglingEdge or ErrNegativeWeight.
// Complexity: O(V + E).
func NewGraph(nodes []Node, edges []Edge) (*Graph, error) {
	g := &Graph{
		nodes: make([]Node, len(nodes)),
		edges: make([]Edge, len(edges)),
		index: make(map[int]int, len(nodes)),
		adj:   make([][]arc, len(nodes)),
	}
	for i, n := range nodes {
		if _, dup := g.index[n.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNode, n.ID)
		}
		g.index[n.ID] = i
		g.nodes[i] = Node{ID: n.ID, X: n.X, Y: n.Y, Distance: Infinity}
	}
	for i, e := range edges {
		from, ok1 := g.index[e.From]
		to, ok2 := g.index[e.To]
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: edge %d (%d-%d)", ErrDanglingEdge, i, e.From, e.To)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d (%d-%d) has weight %d", ErrNegativeWeight, i, e.From, e.To, e.Weight)
		}
		g.edges[i] = Edge{From: e.From, To: e.To, Weight: e.Weight}
		g.adj[from] = append(g.adj[from], arc{to: to, edge: i})
		if from != to {
			g.adj[to] = append(g.adj[to], arc{to: from, edge: i})
		}
	}

	return g, nil
}

// Nodes returns a copy of the node list.
func (g *Graph) Nodes() []Node { return append([]Node(nil), g.nodes...) }

// Edges returns a copy of the edge list.
func (g *Graph) Edges() []Edge { return append([]Edge(nil), g.edges...) }

// Has reports whether a node with the given ID exists.
func (g *Graph) Has(id int) bool {
	_, ok := g.index[id]

	return ok
}

// Layout constants shared by the generators.
const (
	centerX   = 400.0
	centerY   = 250.0
	radius    = 180.0
	treeTop   = 100.0
	levelGap  = 150.0
	treeWidth = 800.0
	maxWeight = 10
)

// Kind names a generated graph shape.
type Kind string

const (
	KindRandom   Kind = "random"
	KindComplete Kind = "complete"
	KindTree     Kind = "tree"
)

// Build generates a graph of the given kind with n nodes.
func Build(kind Kind, n int, rng *rand.Rand) (*Graph, error) {
	switch kind {
	case KindRandom:
		return RandomGraph(n, rng)
	case KindComplete:
		return CompleteGraph(n, rng)
	case KindTree:
		return TreeGraph(n, rng)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// RandomGraph places n nodes on a circle and connects ⌊1.5·n⌋ distinct
// random pairs, capped at n(n-1)/2. Weights are uniform in [1, 10].
func RandomGraph(n int, rng *rand.Rand) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, n)
	}
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

	count := min(n*3/2, len(pairs))
	edges := make([]Edge, 0, count)
	for _, p := range pairs[:count] {
		edges = append(edges, Edge{From: p[0], To: p[1], Weight: weight(rng)})
	}

	return NewGraph(circle(n), edges)
}

// CompleteGraph places n nodes on a circle and connects every pair.
func CompleteGraph(n int, rng *rand.Rand) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, n)
	}
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{From: i, To: j, Weight: weight(rng)})
		}
	}

	return NewGraph(circle(n), edges)
}

// TreeGraph builds a binary tree in heap order: node i hangs below node
// (i-1)/2. Level L holds up to 2^L nodes spread evenly across the width.
func TreeGraph(n int, rng *rand.Rand) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, n)
	}
	nodes := make([]Node, n)
	edges := make([]Edge, 0, n-1)
	for i := 0; i < n; i++ {
		level, first := 0, 0
		for first+(1<<level) <= i {
			first += 1 << level
			level++
		}
		spacing := treeWidth / float64(int(1)<<level+1)
		nodes[i] = Node{
			ID: i,
			X:  spacing * float64(i-first+1),
			Y:  treeTop + float64(level)*levelGap,
		}
		if i > 0 {
			edges = append(edges, Edge{From: (i - 1) / 2, To: i, Weight: weight(rng)})
		}
	}

	return NewGraph(nodes, edges)
}

func circle(n int) []Node {
	nodes := make([]Node, n)
	for i := range nodes {
		angle := float64(i) / float64(n) * 2 * math.Pi
		nodes[i] = Node{
			ID: i,
			X:  centerX + radius*math.Cos(angle),
			Y:  centerY + radius*math.Sin(angle),
		}
	}

	return nodes
}

func weight(rng *rand.Rand) int64 { return int64(rng.Intn(maxWeight) + 1) }
