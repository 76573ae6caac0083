// Package render draws snapshots as terminal text.
//
// Markers carry the meaning in every mode, so plain output stays readable
// in logs and pipes; colors only reinforce them.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/stepviz/graphsearch"
	"github.com/katalvlaran/stepviz/pathfind"
	"github.com/katalvlaran/stepviz/search"
	"github.com/katalvlaran/stepviz/sorting"
)

// Palette.
const (
	colorCompare  = "#facc15"
	colorSwap     = "#f87171"
	colorDone     = "#4ade80"
	colorFrontier = "#60a5fa"
	colorPath     = "#c084fc"
	colorMuted    = "#6b7280"
)

// Renderer turns snapshots into text for one color profile.
type Renderer struct {
	profile termenv.Profile
}

// New returns a Renderer for a color mode: "always", "never" or "auto".
// Auto inspects stdout.
func New(mode string) *Renderer {
	switch mode {
	case "never":
		return Plain()
	case "always":
		return &Renderer{profile: termenv.ANSI256}
	default:
		return &Renderer{profile: termenv.ColorProfile()}
	}
}

// Plain returns a Renderer that never emits escape sequences.
func Plain() *Renderer { return &Renderer{profile: termenv.Ascii} }

// Colored reports whether output carries escape sequences.
func (r *Renderer) Colored() bool { return r.profile != termenv.Ascii }

func (r *Renderer) paint(s, hex string) string {
	if !r.Colored() {
		return s
	}

	return termenv.String(s).Foreground(r.profile.Color(hex)).String()
}

// Sort draws one line: [v] marks a compared value, <v> a swapped one.
// Sorted positions are green.
func (r *Renderer) Sort(s sorting.Snapshot) string {
	comparing := indexSet(s.Comparing)
	swapped := indexSet(s.Swapped)
	sorted := indexSet(s.Sorted)

	tokens := make([]string, len(s.Array))
	for i, v := range s.Array {
		text := strconv.Itoa(v)
		switch {
		case swapped[i]:
			tokens[i] = r.paint("<"+text+">", colorSwap)
		case comparing[i]:
			tokens[i] = r.paint("["+text+"]", colorCompare)
		case sorted[i]:
			tokens[i] = r.paint(text, colorDone)
		default:
			tokens[i] = text
		}
	}

	return strings.Join(tokens, " ")
}

// Search draws the array with the probe in brackets and a status suffix.
// A found element is wrapped in braces; probed elements are muted.
func (r *Renderer) Search(s search.Snapshot) string {
	searched := indexSet(s.Searched)
	found, resolved := s.Found()

	tokens := make([]string, len(s.Array))
	for i, v := range s.Array {
		text := strconv.Itoa(v)
		switch {
		case resolved && i == found:
			tokens[i] = r.paint("{"+text+"}", colorDone)
		case i == s.Current:
			tokens[i] = r.paint("["+text+"]", colorCompare)
		case searched[i]:
			tokens[i] = r.paint(text, colorMuted)
		default:
			tokens[i] = text
		}
	}

	status := fmt.Sprintf("target %d, comparisons %d", s.Target, s.Comparisons)
	switch {
	case resolved && found == search.NotFound:
		status += ", not found"
	case resolved:
		status += fmt.Sprintf(", found at %d", found)
	}

	return strings.Join(tokens, " ") + " | " + status
}

// Grid glyphs beyond the ParseGrid set.
const (
	glyphPath     = '*'
	glyphCurrent  = '@'
	glyphFrontier = '+'
	glyphVisited  = 'o'
)

// Grid draws the maze row by row followed by a status line.
func (r *Renderer) Grid(s pathfind.State) string {
	var b strings.Builder
	onPath := make(map[pathfind.Point]bool, len(s.Path))
	for _, p := range s.Path {
		onPath[p] = true
	}

	for _, row := range s.Grid {
		for _, c := range row {
			p := pathfind.Point{Row: c.Row, Col: c.Col}
			switch {
			case c.IsStart:
				b.WriteString(r.paint(string(pathfind.GlyphStart), colorDone))
			case c.IsEnd:
				b.WriteString(r.paint(string(pathfind.GlyphEnd), colorSwap))
			case s.Current != nil && *s.Current == p:
				b.WriteString(r.paint(string(glyphCurrent), colorCompare))
			case onPath[p] || c.IsPath:
				b.WriteString(r.paint(string(glyphPath), colorPath))
			case s.Exploring.Has(p):
				b.WriteString(r.paint(string(glyphFrontier), colorFrontier))
			case s.Visited.Has(p):
				b.WriteString(r.paint(string(glyphVisited), colorMuted))
			case c.IsWall:
				b.WriteRune(pathfind.GlyphWall)
			default:
				b.WriteRune(pathfind.GlyphOpen)
			}
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "iterations %d, comparisons %d", s.Iterations, s.Comparisons)
	if s.Done {
		if s.PathFound {
			fmt.Fprintf(&b, ", path length %d", len(s.Path))
		} else {
			b.WriteString(", no path")
		}
	}

	return b.String()
}

// Graph draws one token per node and a status line.
// [n] is the current node, {n} a path node and (n) a frontier node; known
// distances follow a colon.
func (r *Renderer) Graph(s graphsearch.State) string {
	tokens := make([]string, len(s.Nodes))
	for i, n := range s.Nodes {
		text := strconv.Itoa(n.ID)
		if n.Distance != graphsearch.Infinity {
			text += ":" + strconv.FormatInt(n.Distance, 10)
		}
		switch {
		case n.ID == s.Current:
			tokens[i] = r.paint("["+text+"]", colorCompare)
		case n.IsPath:
			tokens[i] = r.paint("{"+text+"}", colorPath)
		case n.Exploring:
			tokens[i] = r.paint("("+text+")", colorFrontier)
		case n.Visited:
			tokens[i] = r.paint(text, colorDone)
		default:
			tokens[i] = r.paint(text, colorMuted)
		}
	}

	line := "nodes " + strings.Join(tokens, " ")
	if !s.Done {
		return line
	}
	if !s.PathFound {
		return line + "\nno path"
	}
	hops := make([]string, len(s.Path))
	for i, id := range s.Path {
		hops[i] = strconv.Itoa(id)
	}

	return line + "\npath " + strings.Join(hops, "-")
}

// Frames returns a render callback that writes each drawn frame to w.
// Colored output clears the screen first so frames replace each other;
// plain output separates frames with a blank line.
func Frames[S any](r *Renderer, w io.Writer, draw func(S) string) func(S) error {
	out := termenv.NewOutput(w, termenv.WithProfile(r.profile))
	first := true

	return func(s S) error {
		switch {
		case r.Colored():
			out.ClearScreen()
		case !first:
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		first = false
		_, err := fmt.Fprintln(w, draw(s))

		return err
	}
}

// NDJSON returns a render callback that writes each frame as one JSON line.
func NDJSON[S any](w io.Writer) func(S) error {
	enc := json.NewEncoder(w)

	return func(s S) error { return enc.Encode(s) }
}

func indexSet(idx []int) map[int]bool {
	set := make(map[int]bool, len(idx))
	for _, i := range idx {
		set[i] = true
	}

	return set
}
