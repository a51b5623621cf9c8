// Package cells measures codepoints in terminal cells for rendering.
package cells

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Step is the cell span occupied by one codepoint of a line.
type Step struct {
	Index int // codepoint index within the line
	Cell  int // first cell
	Width int
}

// RuneWidth returns the cell width of r when drawn at visual column col.
//
// Tabs advance to the next multiple of tabWidth. Zero-width codepoints
// report 0 and are drawn attached to the previous cell.
func RuneWidth(r rune, col, tabWidth int) int {
	if r == '\t' {
		return tabAdvance(col, tabWidth)
	}
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		if fallback := uniseg.StringWidth(string(r)); fallback > 0 {
			return fallback
		}
		return 0
	}
	return w
}

// StringWidth returns the cell width of s.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// Layout returns one Step per codepoint of line.
func Layout(line []rune, tabWidth int) []Step {
	if len(line) == 0 {
		return nil
	}
	out := make([]Step, 0, len(line))
	col := 0
	for i, r := range line {
		w := RuneWidth(r, col, tabWidth)
		out = append(out, Step{Index: i, Cell: col, Width: w})
		col += w
	}
	return out
}

// CellOf returns the first cell of codepoint index i in line. Indexes past
// the end map to the cell after the last codepoint.
func CellOf(steps []Step, i int) int {
	if i < 0 || len(steps) == 0 {
		return 0
	}
	if i >= len(steps) {
		last := steps[len(steps)-1]
		return last.Cell + last.Width
	}
	return steps[i].Cell
}

func tabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	if col < 0 {
		col = 0
	}
	return tabWidth - col%tabWidth
}
