package pathfind_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/pathfind"
)

func TestParseGrid(t *testing.T) {
	g, err := pathfind.ParseGrid(`
		S..#
		.#..
		..#E
	`)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows)
	assert.Equal(t, 4, g.Cols)
	assert.Equal(t, pathfind.Point{Row: 0, Col: 0}, g.Start)
	assert.Equal(t, pathfind.Point{Row: 2, Col: 3}, g.End)
	assert.True(t, g.IsWall(pathfind.Point{Row: 1, Col: 1}))
	assert.True(t, g.IsWall(pathfind.Point{Row: -1, Col: 0}), "out of bounds counts as wall")
	assert.Equal(t, "S..#\n.#..\n..#E\n", g.String())
}

func TestParseGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", pathfind.ErrEmptyGrid},
		{"ragged", "S.\n.E.", pathfind.ErrNonRectangular},
		{"no start", "..E", pathfind.ErrNoStart},
		{"no end", "S..", pathfind.ErrNoEnd},
		{"two starts", "S.E\nS..", pathfind.ErrMultipleStart},
		{"two ends", "S.E\n..E", pathfind.ErrMultipleEnd},
		{"bad glyph", "S.x.E", pathfind.ErrBadGlyph},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pathfind.ParseGrid(tc.text)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewGrid_BlockedEndpoint(t *testing.T) {
	_, err := pathfind.NewGrid([][]pathfind.Cell{
		{{IsStart: true, IsWall: true}, {IsEnd: true}},
	})
	assert.ErrorIs(t, err, pathfind.ErrBlockedEndpoint)
}

func TestNewGrid_DeepCopiesInput(t *testing.T) {
	cells := [][]pathfind.Cell{{{IsStart: true}, {}, {IsEnd: true}}}
	g, err := pathfind.NewGrid(cells)
	require.NoError(t, err)

	cells[0][1].IsWall = true
	assert.False(t, g.IsWall(pathfind.Point{Row: 0, Col: 1}))
}

func TestRandomMaze_RoundTripsThroughText(t *testing.T) {
	g, err := pathfind.RandomMaze(9, 13, 0.4, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.False(t, g.IsWall(g.Start))
	assert.False(t, g.IsWall(g.End))

	back, err := pathfind.ParseGrid(g.String())
	require.NoError(t, err)
	assert.Equal(t, g.String(), back.String())
	assert.Equal(t, g.Cells(), back.Cells())
}

func TestEmptyGrid_BadSize(t *testing.T) {
	_, err := pathfind.EmptyGrid(0, 5)
	assert.ErrorIs(t, err, pathfind.ErrEmptyGrid)
}

func TestPointSet_MarshalJSON(t *testing.T) {
	s := pathfind.PointSet{
		{Row: 1, Col: 0}: {},
		{Row: 0, Col: 2}: {},
		{Row: 0, Col: 1}: {},
	}
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["0,1","0,2","1,0"]`, string(b))
}

func TestMaze_Kinds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, kind := range []pathfind.MazeKind{pathfind.MazeRandom, pathfind.MazeDivision, pathfind.MazeEmpty} {
		g, err := pathfind.Maze(kind, 7, 9, pathfind.DefaultDensity, rng)
		require.NoError(t, err, kind)
		assert.Equal(t, 7, g.Rows)
		assert.Equal(t, 9, g.Cols)
	}

	_, err := pathfind.Maze("spiral", 7, 9, 0, rng)
	assert.ErrorIs(t, err, pathfind.ErrUnknownMaze)
}
