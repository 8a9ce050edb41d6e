package renderer

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/recoilless/internal/input/mode"
	"github.com/dshills/recoilless/internal/renderer/backend"
	"github.com/dshills/recoilless/internal/renderer/core"
	"github.com/dshills/recoilless/internal/renderer/layout"
	"github.com/dshills/recoilless/internal/renderer/viewport"
)

// Border runes.
const (
	borderTopLeft     = '╭'
	borderTopRight    = '╮'
	borderBottomLeft  = '╰'
	borderBottomRight = '╯'
	borderHorizontal  = '─'
	borderVertical    = '│'
)

// minGutterDigits is the narrowest line-number column.
const minGutterDigits = 3

// View draws a bordered, scrolling window onto a document.
type View struct {
	// Position within the terminal
	x, y          int
	width, height int

	opts   Options
	styles Styles

	viewport *viewport.Viewport
	layout   *layout.Engine

	gutterWidth int
}

// NewView creates a view with zero size. Call SetBounds before Render.
func NewView(opts Options) *View {
	return &View{
		opts:     opts,
		styles:   DefaultStyles(),
		viewport: viewport.NewViewport(1, 1),
		layout:   layout.NewEngine(opts.TabWidth),
	}
}

// SetBounds sets the screen area of the view, border included.
func (v *View) SetBounds(x, y, width, height int) {
	v.x, v.y = x, y
	v.width, v.height = width, height
}

// SetStyles replaces the styles.
func (v *View) SetStyles(s Styles) {
	v.styles = s
}

// Viewport returns the scroll state.
func (v *View) Viewport() *viewport.Viewport {
	return v.viewport
}

// GutterWidth returns the gutter width of the last render.
func (v *View) GutterWidth() int {
	return v.gutterWidth
}

// Render draws the view and returns the screen position of the cursor.
// visible is false when the view is too small to show any text. A block
// cursor is drawn into the frame as a reversed cell.
func (v *View) Render(b backend.Backend, doc Document, cursor mode.CursorStyle) (cursorX, cursorY int, visible bool) {
	if v.width < 3 || v.height < 3 {
		return 0, 0, false
	}
	v.renderBorder(b)

	// Content area inside the border.
	left, top := v.x+1, v.y+1
	width, height := v.width-2, v.height-2

	v.gutterWidth = v.calculateGutterWidth(doc.LineCount(), width)
	textWidth := width - v.gutterWidth
	if textWidth < 1 {
		return 0, 0, false
	}
	v.viewport.Resize(textWidth, height)

	line, col := doc.Cursor()
	cursorLayout := v.layout.Layout(doc.Line(line), v.styles.Text)
	cursorCol := cursorLayout.VisualColumn(col)
	v.viewport.ScrollToReveal(line, cursorCol)

	start, end, selecting := doc.Selection()
	firstLine, _ := v.viewport.VisibleLineRange()
	leftCol := v.viewport.LeftColumn()

	for row := 0; row < height; row++ {
		n := firstLine + row
		if n >= doc.LineCount() {
			break
		}
		if v.gutterWidth > 0 {
			v.renderGutter(b, left, top+row, n)
		}

		ll := v.layout.Layout(doc.Line(n), v.styles.Text)
		selFrom, selTo := -1, -1
		if selecting && n >= start.Line && n <= end.Line {
			selFrom, selTo = 0, ll.Width+1
			if n == start.Line {
				selFrom = ll.VisualColumn(start.Column)
			}
			if n == end.Line {
				selTo = ll.VisualColumn(end.Column)
			}
		}

		for x := 0; x < textWidth; x++ {
			vc := leftCol + x
			cell := core.Cell{Rune: ' ', Width: 1, Style: v.styles.Text}
			if vc < len(ll.Cells) {
				cell = ll.Cells[vc]
			}
			if vc >= selFrom && vc < selTo {
				cell.Style = v.styles.Selection
			}
			b.SetCell(left+v.gutterWidth+x, top+row, cell)
		}
	}

	row, sc := v.viewport.BufferToScreen(line, cursorCol)
	cursorX, cursorY = left+v.gutterWidth+sc, top+row
	if cursor == mode.CursorBlock {
		cell := core.Cell{Rune: ' ', Width: 1}
		if cursorCol < len(cursorLayout.Cells) {
			cell = cursorLayout.Cells[cursorCol]
		}
		cell.Style = v.styles.Text.Reverse()
		b.SetCell(cursorX, cursorY, cell)
	}
	return cursorX, cursorY, true
}

func (v *View) renderBorder(b backend.Backend) {
	right, bottom := v.x+v.width-1, v.y+v.height-1

	for x := v.x + 1; x < right; x++ {
		b.SetCell(x, v.y, core.NewStyledCell(borderHorizontal, v.styles.Border))
		b.SetCell(x, bottom, core.NewStyledCell(borderHorizontal, v.styles.Border))
	}
	for y := v.y + 1; y < bottom; y++ {
		b.SetCell(v.x, y, core.NewStyledCell(borderVertical, v.styles.Border))
		b.SetCell(right, y, core.NewStyledCell(borderVertical, v.styles.Border))
	}
	b.SetCell(v.x, v.y, core.NewStyledCell(borderTopLeft, v.styles.Border))
	b.SetCell(right, v.y, core.NewStyledCell(borderTopRight, v.styles.Border))
	b.SetCell(v.x, bottom, core.NewStyledCell(borderBottomLeft, v.styles.Border))
	b.SetCell(right, bottom, core.NewStyledCell(borderBottomRight, v.styles.Border))

	title := runewidth.Truncate(v.opts.Title, v.width-2, "…")
	x := v.x + 1
	for _, r := range title {
		w := core.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.SetCell(x, v.y, core.NewStyledCell(r, v.styles.Title))
		for i := 1; i < w; i++ {
			b.SetCell(x+i, v.y, core.ContinuationCell())
		}
		x += w
	}
}

// renderGutter draws the right-aligned line number followed by a space.
func (v *View) renderGutter(b backend.Backend, x, y, line int) {
	num := strconv.Itoa(line + 1)
	pad := v.gutterWidth - 1 - len(num)
	for i := 0; i < v.gutterWidth; i++ {
		r := ' '
		if i >= pad && i-pad < len(num) {
			r = rune(num[i-pad])
		}
		b.SetCell(x+i, y, core.Cell{Rune: r, Width: 1, Style: v.styles.Gutter})
	}
}

// calculateGutterWidth returns the gutter width for lineCount lines,
// leaving at least one text column.
func (v *View) calculateGutterWidth(lineCount, width int) int {
	if !v.opts.LineNumbers {
		return 0
	}
	digits := max(len(strconv.Itoa(lineCount)), minGutterDigits)
	if digits+1 >= width {
		return 0
	}
	return digits + 1
}
