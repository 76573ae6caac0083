package pathfind_test

import (
	"iter"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/pathfind"
	"github.com/katalvlaran/stepviz/step"
)

func frames(t *testing.T, name pathfind.Algorithm, g *pathfind.Grid, opts ...pathfind.Option) []pathfind.State {
	t.Helper()
	seq, err := pathfind.Generate(name, g, opts...)
	require.NoError(t, err)

	var out []pathfind.State
	for s := range seq {
		out = append(out, s)
	}
	require.NotEmpty(t, out)

	return out
}

func mustParse(t *testing.T, text string) *pathfind.Grid {
	t.Helper()
	g, err := pathfind.ParseGrid(text)
	require.NoError(t, err)

	return g
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// requireValidPath checks that path is a wall-free chain of adjacent cells
// from start to end.
func requireValidPath(t *testing.T, g *pathfind.Grid, path []pathfind.Point, diagonal bool) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, g.Start, path[0])
	assert.Equal(t, g.End, path[len(path)-1])
	for i, p := range path {
		require.False(t, g.IsWall(p), "path crosses wall at %v", p)
		if i == 0 {
			continue
		}
		dr, dc := abs(p.Row-path[i-1].Row), abs(p.Col-path[i-1].Col)
		if diagonal {
			require.True(t, max(dr, dc) == 1, "non-adjacent step %v -> %v", path[i-1], p)
		} else {
			require.Equal(t, 1, dr+dc, "non-adjacent step %v -> %v", path[i-1], p)
		}
	}
}

func TestBFS_Corridor(t *testing.T) {
	got := frames(t, pathfind.BFSAlgorithm, mustParse(t, "S.E"))
	require.Len(t, got, 4)

	assert.Equal(t, &pathfind.Point{Row: 0, Col: 0}, got[0].Current)
	assert.Equal(t, []pathfind.Point{{0, 0}, {0, 1}}, got[1].Path)

	last := got[3]
	assert.True(t, last.Done)
	assert.True(t, last.PathFound)
	assert.Nil(t, last.Current)
	assert.Equal(t, []pathfind.Point{{0, 0}, {0, 1}, {0, 2}}, last.Path)
	assert.Equal(t, 2, last.Comparisons)
	assert.Equal(t, 3, last.Iterations)
	assert.Empty(t, last.Exploring)
	assert.True(t, last.Grid[0][1].IsPath)
}

func TestAllAlgorithms_NoPathTerminalFrame(t *testing.T) {
	g := mustParse(t, "S#E")
	for _, name := range pathfind.Algorithms() {
		got := frames(t, name, g)
		require.Len(t, got, 2, "%s", name)

		last := got[1]
		assert.True(t, last.Done, "%s", name)
		assert.False(t, last.PathFound, "%s", name)
		assert.NotNil(t, last.Path)
		assert.Empty(t, last.Path)
		for i, s := range got[:1] {
			assert.False(t, s.Done, "%s frame %d", name, i)
		}
	}
}

func TestHeartbeatFrames(t *testing.T) {
	g, err := pathfind.EmptyGrid(1, 10)
	require.NoError(t, err)

	// 10 expansions, one heartbeat after the 5th, one terminal frame
	assert.Len(t, frames(t, pathfind.BFSAlgorithm, g), 12)
	assert.Len(t, frames(t, pathfind.BFSAlgorithm, g, pathfind.WithHeartbeat(0)), 11)
	assert.Len(t, frames(t, pathfind.BFSAlgorithm, g, pathfind.WithHeartbeat(2)), 15)

	for _, s := range frames(t, pathfind.BFSAlgorithm, g) {
		if s.Current == nil && !s.Done {
			assert.Empty(t, s.Path, "heartbeat frames carry no path")
		}
	}
}

func TestShortestPaths_OpenGrid(t *testing.T) {
	g, err := pathfind.EmptyGrid(6, 8)
	require.NoError(t, err)

	for _, name := range []pathfind.Algorithm{pathfind.BFSAlgorithm, pathfind.DijkstraAlgorithm, pathfind.AStarAlgorithm} {
		last, ok := step.Last(mustGenerate(t, name, g))
		require.True(t, ok)
		require.True(t, last.PathFound, "%s", name)
		assert.Len(t, last.Path, 6+8-1, "%s: Manhattan-optimal", name)
		requireValidPath(t, g, last.Path, false)
	}

	for _, name := range []pathfind.Algorithm{pathfind.BFSAlgorithm, pathfind.AStarAlgorithm} {
		last, _ := step.Last(mustGenerate(t, name, g, pathfind.WithConnectivity(pathfind.Conn8)))
		require.True(t, last.PathFound)
		assert.Len(t, last.Path, 8, "%s: Chebyshev-optimal", name)
		requireValidPath(t, g, last.Path, true)
	}
}

func mustGenerate(t *testing.T, name pathfind.Algorithm, g *pathfind.Grid, opts ...pathfind.Option) iter.Seq[pathfind.State] {
	t.Helper()
	seq, err := pathfind.Generate(name, g, opts...)
	require.NoError(t, err)

	return seq
}

// TestRandomMazes_AlgorithmsAgree checks reachability agreement, path
// validity and optimality against BFS over many random mazes.
func TestRandomMazes_AlgorithmsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 30; round++ {
		g, err := pathfind.RandomMaze(8, 11, pathfind.DefaultDensity, rng)
		require.NoError(t, err)

		ref, _ := step.Last(pathfind.BFS(g))
		for _, name := range pathfind.Algorithms() {
			last, _ := step.Last(mustGenerate(t, name, g))
			require.True(t, last.Done)
			require.Equal(t, ref.PathFound, last.PathFound, "%s round %d\n%s", name, round, g)
			if !last.PathFound {
				continue
			}
			requireValidPath(t, g, last.Path, false)
			if name != pathfind.DFSAlgorithm {
				assert.Len(t, last.Path, len(ref.Path), "%s round %d", name, round)
			}
		}
	}
}

func TestFrameInvariants(t *testing.T) {
	g, err := pathfind.RandomMaze(7, 7, 0.2, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for _, name := range pathfind.Algorithms() {
		got := frames(t, name, g)
		prevVisited, prevCmp := 0, 0
		for i, s := range got {
			assert.Equal(t, s.Iterations, len(s.Visited), "%s frame %d", name, i)
			assert.GreaterOrEqual(t, len(s.Visited), prevVisited)
			assert.GreaterOrEqual(t, s.Comparisons, prevCmp)
			prevVisited, prevCmp = len(s.Visited), s.Comparisons

			for p := range s.Exploring {
				assert.False(t, s.Visited.Has(p), "%s: frontier cell %v already expanded", name, p)
			}
			if s.Current != nil {
				assert.Equal(t, *s.Current, s.Path[len(s.Path)-1])
				assert.True(t, s.Grid[s.Current.Row][s.Current.Col].IsVisited)
			}
		}
		assert.True(t, got[len(got)-1].Done)
	}
}

func TestDijkstra_FillsDistances(t *testing.T) {
	last, _ := step.Last(pathfind.Dijkstra(mustParse(t, "S.E")))
	require.NotNil(t, last.Grid[0][2].Distance)
	assert.Equal(t, 2, *last.Grid[0][2].Distance)
	assert.Equal(t, 0, *last.Grid[0][0].Distance)
	assert.Nil(t, last.Grid[0][0].Heuristic)
}

func TestAStar_FillsScores(t *testing.T) {
	c := step.NewCursor(pathfind.AStar(mustParse(t, "S.E")))
	defer c.Stop()

	first, ok := c.Next()
	require.True(t, ok)
	require.NotNil(t, first.Grid[0][0].Heuristic)
	assert.Equal(t, 2, *first.Grid[0][0].Heuristic)
	assert.Nil(t, first.Grid[0][2].Heuristic)
}

func TestFramesAreIndependent(t *testing.T) {
	g, err := pathfind.EmptyGrid(3, 3)
	require.NoError(t, err)
	got := frames(t, pathfind.BFSAlgorithm, g)
	require.Greater(t, len(got), 2)

	got[0].Grid[2][2].IsWall = true
	got[0].Visited[pathfind.Point{Row: 2, Col: 2}] = struct{}{}
	got[0].Path[0] = pathfind.Point{Row: 9, Col: 9}

	assert.False(t, got[1].Grid[2][2].IsWall)
	assert.False(t, got[1].Visited.Has(pathfind.Point{Row: 2, Col: 2}))
	assert.Equal(t, g.Start, got[1].Path[0])
	assert.False(t, g.IsWall(pathfind.Point{Row: 2, Col: 2}))
}

func TestStopOnBreak(t *testing.T) {
	g, err := pathfind.EmptyGrid(10, 10)
	require.NoError(t, err)

	n := 0
	for range pathfind.Dijkstra(g) {
		n++
		if n == 4 {
			break
		}
	}
	assert.Equal(t, 4, n)
}

func TestRecursiveDivisionMaze_AlwaysSolvable(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		for _, dims := range [][2]int{{10, 10}, {15, 21}, {2, 2}, {1, 9}} {
			g, err := pathfind.RecursiveDivisionMaze(dims[0], dims[1], rand.New(rand.NewSource(seed)))
			require.NoError(t, err)

			last, _ := step.Last(pathfind.BFS(g))
			require.True(t, last.PathFound, "seed %d %v\n%s", seed, dims, g)
		}
	}
}

func TestGenerate_Errors(t *testing.T) {
	g, err := pathfind.EmptyGrid(2, 2)
	require.NoError(t, err)

	_, err = pathfind.Generate("greedy", g)
	assert.ErrorIs(t, err, pathfind.ErrUnknownAlgorithm)

	_, err = pathfind.Generate(pathfind.BFSAlgorithm, nil)
	assert.ErrorIs(t, err, pathfind.ErrEmptyGrid)
}

func TestNilGrid_SingleTerminalFrame(t *testing.T) {
	n := step.Count(pathfind.AStar(nil))
	assert.Equal(t, 1, n)
}

func TestParseAlgorithm(t *testing.T) {
	a, err := pathfind.ParseAlgorithm("A-Star")
	require.NoError(t, err)
	assert.Equal(t, pathfind.AStarAlgorithm, a)

	_, err = pathfind.ParseAlgorithm("greedy")
	assert.ErrorIs(t, err, pathfind.ErrUnknownAlgorithm)
}
