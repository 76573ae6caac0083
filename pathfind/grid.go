package pathfind

import (
	"fmt"
	"math/rand"
	"strings"
)

// Grid glyphs understood by ParseGrid and produced by Grid.String.
const (
	GlyphOpen  = '.'
	GlyphWall  = '#'
	GlyphStart = 'S'
	GlyphEnd   = 'E'
)

// DefaultDensity is the wall probability used by RandomMaze callers that
// have no preference.
const DefaultDensity = 0.3

// Grid is an immutable rectangular maze with exactly one start and one end.
// Build it with NewGrid, ParseGrid, EmptyGrid, RandomMaze or
// RecursiveDivisionMaze.
type Grid struct {
	Rows, Cols int
	Start, End Point
	walls      [][]bool
}

// NewGrid validates cells and builds a Grid from them.
// Only the IsWall, IsStart and IsEnd flags are read; the input is deep-copied.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrNoStart, ErrNoEnd,
// ErrMultipleStart, ErrMultipleEnd or ErrBlockedEndpoint.
// Complexity: O(R×C).
func NewGrid(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	g := &Grid{Rows: rows, Cols: cols, walls: make([][]bool, rows)}

	starts, ends := 0, 0
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		g.walls[r] = make([]bool, cols)
		for c, cell := range row {
			g.walls[r][c] = cell.IsWall
			if cell.IsStart {
				starts++
				g.Start = Point{r, c}
			}
			if cell.IsEnd {
				ends++
				g.End = Point{r, c}
			}
		}
	}

	switch {
	case starts == 0:
		return nil, ErrNoStart
	case ends == 0:
		return nil, ErrNoEnd
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStart, starts)
	case ends > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleEnd, ends)
	case g.IsWall(g.Start) || g.IsWall(g.End):
		return nil, ErrBlockedEndpoint
	}

	return g, nil
}

// ParseGrid reads a grid drawn with the glyphs S, E, # and '.', one row per
// line. Blank lines and surrounding whitespace are ignored.
func ParseGrid(text string) (*Grid, error) {
	var cells [][]Cell
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r := len(cells)
		row := make([]Cell, 0, len(line))
		for c, ch := range []rune(line) {
			cell := Cell{Row: r, Col: c}
			switch ch {
			case GlyphOpen:
			case GlyphWall:
				cell.IsWall = true
			case GlyphStart:
				cell.IsStart = true
			case GlyphEnd:
				cell.IsEnd = true
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrBadGlyph, ch, r, c)
			}
			row = append(row, cell)
		}
		cells = append(cells, row)
	}

	return NewGrid(cells)
}

// EmptyGrid returns a wall-free rows×cols grid with the start in the top-left
// corner and the end in the bottom-right corner.
func EmptyGrid(rows, cols int) (*Grid, error) {
	return buildGrid(rows, cols, func(int, int) bool { return false })
}

// RandomMaze walls each cell independently with probability density.
// Start and end corners are always open; a path is not guaranteed.
func RandomMaze(rows, cols int, density float64, rng *rand.Rand) (*Grid, error) {
	return buildGrid(rows, cols, func(int, int) bool { return rng.Float64() < density })
}

// MazeKind names a generated maze layout.
type MazeKind string

const (
	MazeRandom   MazeKind = "random"
	MazeDivision MazeKind = "division"
	MazeEmpty    MazeKind = "empty"
)

// Maze generates a rows×cols grid of the given kind. Density only applies to
// MazeRandom.
func Maze(kind MazeKind, rows, cols int, density float64, rng *rand.Rand) (*Grid, error) {
	switch kind {
	case MazeRandom:
		return RandomMaze(rows, cols, density, rng)
	case MazeDivision:
		return RecursiveDivisionMaze(rows, cols, rng)
	case MazeEmpty:
		return EmptyGrid(rows, cols)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMaze, kind)
}

// region is an inclusive rectangle of open cells awaiting division.
type region struct {
	top, left, bottom, right int
}

// RecursiveDivisionMaze splits the grid with walls on odd rows and columns,
// leaving one gap on an even coordinate in each wall. Gaps can never be
// covered by a later wall, so every open cell stays reachable from the start.
func RecursiveDivisionMaze(rows, cols int, rng *rand.Rand) (*Grid, error) {
	g, err := EmptyGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	// explicit work stack instead of recursion
	stack := []region{{0, 0, rows - 1, cols - 1}}
	for len(stack) > 0 {
		reg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		h, w := reg.bottom-reg.top, reg.right-reg.left
		canSplitRows, canSplitCols := h/2 > 0, w/2 > 0
		if !canSplitRows && !canSplitCols {
			continue
		}
		horizontal := canSplitRows
		switch {
		case canSplitRows && canSplitCols && w > h:
			horizontal = false
		case canSplitRows && canSplitCols && w == h:
			horizontal = rng.Intn(2) == 0
		}

		if horizontal {
			wall := reg.top + 1 + 2*rng.Intn(h/2)
			gap := reg.left + 2*rng.Intn(w/2+1)
			for c := reg.left; c <= reg.right; c++ {
				g.walls[wall][c] = c != gap
			}
			stack = append(stack,
				region{reg.top, reg.left, wall - 1, reg.right},
				region{wall + 1, reg.left, reg.bottom, reg.right})
		} else {
			wall := reg.left + 1 + 2*rng.Intn(w/2)
			gap := reg.top + 2*rng.Intn(h/2+1)
			for r := reg.top; r <= reg.bottom; r++ {
				g.walls[r][wall] = r != gap
			}
			stack = append(stack,
				region{reg.top, reg.left, reg.bottom, wall - 1},
				region{reg.top, wall + 1, reg.bottom, reg.right})
		}
	}
	g.walls[g.Start.Row][g.Start.Col] = false
	g.walls[g.End.Row][g.End.Col] = false

	return g, nil
}

func buildGrid(rows, cols int, wall func(r, c int) bool) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, rows, cols)
	}
	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		Start: Point{0, 0},
		End:   Point{rows - 1, cols - 1},
		walls: make([][]bool, rows),
	}
	for r := range g.walls {
		g.walls[r] = make([]bool, cols)
		for c := range g.walls[r] {
			g.walls[r][c] = wall(r, c)
		}
	}
	g.walls[g.Start.Row][g.Start.Col] = false
	g.walls[g.End.Row][g.End.Col] = false

	return g, nil
}

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// IsWall reports whether p is a wall. Out-of-bounds points count as walls.
func (g *Grid) IsWall(p Point) bool {
	return !g.InBounds(p) || g.walls[p.Row][p.Col]
}

// Cells returns a fresh copy of the grid with only the static flags set.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.Rows)
	for r := range out {
		out[r] = make([]Cell, g.Cols)
		for c := range out[r] {
			p := Point{r, c}
			out[r][c] = Cell{
				Row:     r,
				Col:     c,
				IsWall:  g.walls[r][c],
				IsStart: p == g.Start,
				IsEnd:   p == g.End,
			}
		}
	}

	return out
}

// String draws the grid with the ParseGrid glyphs. A cell that is both start
// and end is drawn as the start.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			p := Point{r, c}
			switch {
			case p == g.Start:
				b.WriteRune(GlyphStart)
			case p == g.End:
				b.WriteRune(GlyphEnd)
			case g.walls[r][c]:
				b.WriteRune(GlyphWall)
			default:
				b.WriteRune(GlyphOpen)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
