// Package statusline projects the editor state onto the one-line status
// display.
package statusline

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/recoilless/internal/editor"
	"github.com/dshills/recoilless/internal/renderer/backend"
	"github.com/dshills/recoilless/internal/renderer/core"
)

// Separators used in the status text.
const (
	CursorSeparator = ":"
	Separator       = " | "
)

// Project returns the status text for st:
//
//	{line}:{column} | {mode} | {file type} | {file size} | {last command}
//
// Line and column are shown 1-indexed. The result depends only on st.
func Project(st editor.State) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(st.Line + 1))
	sb.WriteString(CursorSeparator)
	sb.WriteString(strconv.Itoa(st.Column + 1))
	for _, field := range []string{st.Mode.DisplayName(), st.FileType, st.FileSize, st.LastCommand} {
		sb.WriteString(Separator)
		sb.WriteString(field)
	}
	return sb.String()
}

// StatusLine draws projected status text on one screen row.
type StatusLine struct {
	style core.Style
	width int
}

// New creates a status line using the default style.
func New() *StatusLine {
	return &StatusLine{style: core.DefaultStyle()}
}

// SetStyle sets the style of the status row.
func (s *StatusLine) SetStyle(style core.Style) {
	s.style = style
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Height returns the number of rows the status line uses.
func (s *StatusLine) Height() int {
	return 1
}

// Render draws the status for st on row, starting at column x. The text
// is left aligned and truncated to the status line width.
func (s *StatusLine) Render(b backend.Backend, x, row int, st editor.State) {
	text := runewidth.Truncate(Project(st), s.width, "")

	for i := 0; i < s.width; i++ {
		b.SetCell(x+i, row, core.Cell{Rune: ' ', Width: 1, Style: s.style})
	}
	col := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.SetCell(x+col, row, core.Cell{Rune: r, Width: w, Style: s.style})
		for i := 1; i < w; i++ {
			b.SetCell(x+col+i, row, core.ContinuationCell())
		}
		col += w
	}
}
