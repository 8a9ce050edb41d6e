package renderer

import (
	"github.com/dshills/recoilless/internal/editor"
	"github.com/dshills/recoilless/internal/engine/buffer"
	"github.com/dshills/recoilless/internal/input/mode"
	"github.com/dshills/recoilless/internal/renderer/backend"
	"github.com/dshills/recoilless/internal/renderer/core"
	"github.com/dshills/recoilless/internal/renderer/statusline"
)

// Document provides the buffer content, cursor and selection to draw.
type Document interface {
	// Line returns the text of line i (0-indexed).
	Line(i int) string

	// LineCount returns the number of lines.
	LineCount() int

	// Cursor returns the cursor line and rune column.
	Cursor() (line, col int)

	// Selection returns the ordered selection bounds when one is active.
	Selection() (start, end buffer.Point, ok bool)
}

// Options configures the renderer.
type Options struct {
	// LineNumbers shows the line-number gutter.
	LineNumbers bool
	// TabWidth is the tab stop width in cells.
	TabWidth int
	// Title is drawn in the top border, usually the file path.
	Title string
}

// Styles holds the styles of the screen elements.
type Styles struct {
	Border     core.Style
	Title      core.Style
	Gutter     core.Style
	Text       core.Style
	Selection  core.Style
	Status     core.Style
	InsertMode core.Color
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Border:     core.DefaultStyle(),
		Title:      core.DefaultStyle().Bold(),
		Gutter:     core.DefaultStyle().WithForeground(core.ColorGray),
		Text:       core.DefaultStyle(),
		Selection:  core.DefaultStyle().Reverse(),
		Status:     core.DefaultStyle(),
		InsertMode: core.ColorLightCyan,
	}
}

// Renderer draws the whole screen onto a backend.
type Renderer struct {
	backend backend.Backend
	view    *View
	status  *statusline.StatusLine
	styles  Styles
	width   int
	height  int
}

// New creates a renderer sized to the backend.
func New(b backend.Backend, opts Options) *Renderer {
	r := &Renderer{
		backend: b,
		view:    NewView(opts),
		status:  statusline.New(),
	}
	r.SetStyles(DefaultStyles())
	r.Resize()
	return r
}

// SetStyles replaces the styles.
func (r *Renderer) SetStyles(s Styles) {
	r.styles = s
	r.view.SetStyles(s)
	r.status.SetStyle(s.Status)
}

// View returns the text view.
func (r *Renderer) View() *View {
	return r.view
}

// Resize re-reads the backend size. Call it after a resize event.
func (r *Renderer) Resize() {
	r.width, r.height = r.backend.Size()
	r.status.Resize(r.width)
	r.view.SetBounds(0, 0, r.width, max(r.height-r.status.Height(), 0))
}

// Render draws doc and the status line for st, positions the cursor and
// flushes the frame.
func (r *Renderer) Render(doc Document, st editor.State) {
	r.backend.Clear()

	cursor := st.Mode.CursorStyle()
	cx, cy, visible := r.view.Render(r.backend, doc, cursor)
	if r.height > 0 {
		r.status.Render(r.backend, 0, r.height-1, st)
	}

	switch {
	case !visible:
		r.backend.SetCursorStyle(backend.CursorHidden, core.ColorDefault)
		r.backend.HideCursor()
	case cursor == mode.CursorBar:
		r.backend.SetCursorStyle(backend.CursorBar, r.styles.InsertMode)
		r.backend.ShowCursor(cx, cy)
	default:
		// The block cursor is already in the frame.
		r.backend.SetCursorStyle(backend.CursorHidden, core.ColorDefault)
		r.backend.HideCursor()
	}

	r.backend.Show()
}
