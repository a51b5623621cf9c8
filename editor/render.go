package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/textinput/internal/cells"
	"github.com/iw2rmb/textinput/model"
)

type textLine struct {
	start int // codepoint offset of the first rune
	runes []rune
}

func splitTextLines(text []rune) []textLine {
	lines := []textLine{{start: 0}}
	for i, r := range text {
		if r == '\n' {
			lines = append(lines, textLine{start: i + 1})
			continue
		}
		last := &lines[len(lines)-1]
		last.runes = append(last.runes, r)
	}
	return lines
}

// caretLocation returns the row of the extent, that row's runes, and the
// extent's column within the row.
func caretLocation(tm *model.Model) (row int, line []rune, col int) {
	lines := splitTextLines(tm.Runes())
	ext := tm.Extent()
	for i := len(lines) - 1; i >= 0; i-- {
		if ext >= lines[i].start {
			return i, lines[i].runes, ext - lines[i].start
		}
	}
	return 0, lines[0].runes, 0
}

func cellOfCaret(line []rune, col, tabWidth int) int {
	return cells.CellOf(cells.Layout(line, tabWidth), col)
}

func (m *Model) lineCount() int {
	tm := m.textModel()
	if tm == nil {
		return 1
	}
	return len(splitTextLines(tm.Runes()))
}

func (m *Model) gutterWidth(lines int) int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(lines) + 1
}

// contentWidth returns the text area width in cells, or 0 when unbounded.
func (m *Model) contentWidth() int {
	if m.viewport.Width <= 0 {
		return 0
	}
	w := m.viewport.Width - m.gutterWidth(m.lineCount())
	if w < 1 {
		return 1
	}
	return w
}

func (m *Model) renderContent() string {
	tm := m.textModel()
	if tm == nil {
		return m.cfg.Style.Placeholder.Render(m.cfg.Placeholder)
	}

	lines := splitTextLines(tm.Runes())
	sel := tm.Selection()
	caret := tm.Extent()
	caretRow, _, _ := caretLocation(tm)
	digits := gutterDigits(len(lines))

	left := maxInt(m.xOffset, 0)
	right := int(^uint(0) >> 1)
	if w := m.contentWidth(); w > 0 {
		right = left + w
	}

	out := make([]string, 0, len(lines))
	for row, line := range lines {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == caretRow {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		steps := cells.Layout(line.runes, m.cfg.TabWidth)
		for i, st := range steps {
			if st.Cell < left || st.Cell+st.Width > right {
				continue
			}
			r := line.runes[i]
			glyph := string(r)
			if r == '\t' {
				glyph = strings.Repeat(" ", st.Width)
			}
			off := line.start + i
			switch {
			case m.focused && off == caret:
				sb.WriteString(m.cfg.Style.Cursor.Render(glyph))
			case off >= sel.Start() && off < sel.End():
				sb.WriteString(m.cfg.Style.Selection.Render(glyph))
			default:
				sb.WriteString(m.cfg.Style.Text.Render(glyph))
			}
		}

		// Caret at end of line is drawn as a 1-cell placeholder space.
		if m.focused && caret == line.start+len(line.runes) {
			if cell := cells.CellOf(steps, len(line.runes)); cell >= left && cell < right {
				sb.WriteString(m.cfg.Style.Cursor.Render(" "))
			}
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func gutterDigits(lines int) int {
	if lines < 1 {
		lines = 1
	}
	d := 0
	for lines > 0 {
		d++
		lines /= 10
	}
	return d
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
