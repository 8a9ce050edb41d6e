// Package layout converts buffer lines into screen cells.
package layout

import (
	"github.com/dshills/recoilless/internal/renderer/core"
)

// LineLayout represents the visual layout of a single buffer line.
type LineLayout struct {
	// Cells holds the visual cells after tab expansion. Wide runes are
	// followed by a continuation cell.
	Cells []core.Cell

	// BufferCols maps a rune index to its visual column. It has one
	// extra entry for the position just past the last rune.
	BufferCols []int

	// Width is the total visual width in columns.
	Width int
}

// VisualColumn converts a rune index to a visual column. Indices beyond
// the line are extrapolated one column per rune.
func (l *LineLayout) VisualColumn(col int) int {
	if col <= 0 || len(l.BufferCols) == 0 {
		return max(col, 0)
	}
	if col >= len(l.BufferCols) {
		return l.Width + col - (len(l.BufferCols) - 1)
	}
	return l.BufferCols[col]
}

// Engine lays out lines with a fixed tab width.
type Engine struct {
	tabWidth int
}

// NewEngine creates a layout engine. Tab widths below 1 use 4.
func NewEngine(tabWidth int) *Engine {
	if tabWidth < 1 {
		tabWidth = 4
	}
	return &Engine{tabWidth: tabWidth}
}

// TabWidth returns the tab width.
func (e *Engine) TabWidth() int {
	return e.tabWidth
}

// NextTabStop returns the next tab stop column after the given column.
func (e *Engine) NextTabStop(col int) int {
	return col + e.tabWidth - (col % e.tabWidth)
}

// Layout lays out text with the given style. Control characters other
// than tab are shown as '?'.
func (e *Engine) Layout(text string, style core.Style) *LineLayout {
	l := &LineLayout{
		Cells:      make([]core.Cell, 0, len(text)),
		BufferCols: make([]int, 0, len(text)+1),
	}
	col := 0
	for _, r := range text {
		l.BufferCols = append(l.BufferCols, col)
		switch {
		case r == '\t':
			next := e.NextTabStop(col)
			for ; col < next; col++ {
				l.Cells = append(l.Cells, core.Cell{Rune: ' ', Width: 1, Style: style})
			}
		case r < ' ' || r == 0x7F:
			l.Cells = append(l.Cells, core.Cell{Rune: '?', Width: 1, Style: style})
			col++
		default:
			w := core.RuneWidth(r)
			if w == 0 {
				// Combining marks have no cell of their own.
				continue
			}
			l.Cells = append(l.Cells, core.Cell{Rune: r, Width: w, Style: style})
			for i := 1; i < w; i++ {
				l.Cells = append(l.Cells, core.ContinuationCell())
			}
			col += w
		}
	}
	l.BufferCols = append(l.BufferCols, col)
	l.Width = col
	return l
}
