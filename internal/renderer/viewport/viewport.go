// Package viewport tracks which part of the buffer is on screen.
package viewport

// MarginConfig holds scroll margin configuration.
type MarginConfig struct {
	Top    int // Lines to keep above cursor
	Bottom int // Lines to keep below cursor
	Left   int // Columns to keep left of cursor
	Right  int // Columns to keep right of cursor
}

// DefaultMargins returns a few lines and columns of context.
func DefaultMargins() MarginConfig {
	return MarginConfig{Top: 2, Bottom: 2, Left: 5, Right: 5}
}

// Viewport represents the visible portion of the buffer.
type Viewport struct {
	// Position in buffer (first visible line and cell column)
	topLine    int
	leftColumn int

	// Size in screen cells
	width  int
	height int

	margins MarginConfig
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Width returns the viewport width.
func (v *Viewport) Width() int { return v.width }

// Height returns the viewport height.
func (v *Viewport) Height() int { return v.height }

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int { return v.topLine }

// LeftColumn returns the first visible cell column.
func (v *Viewport) LeftColumn() int { return v.leftColumn }

// Resize changes the viewport size.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// SetMargins sets the scroll margins.
func (v *Viewport) SetMargins(m MarginConfig) {
	v.margins = m
}

// effectiveMargins shrinks the margins so that they leave at least one
// row and column for the cursor.
func (v *Viewport) effectiveMargins() MarginConfig {
	m := v.margins
	if m.Top+m.Bottom >= v.height {
		m.Top, m.Bottom = (v.height-1)/2, (v.height-1)/2
	}
	if m.Left+m.Right >= v.width {
		m.Left, m.Right = (v.width-1)/2, (v.width-1)/2
	}
	return m
}

// VisibleLineRange returns the first visible line and one past the last.
func (v *Viewport) VisibleLineRange() (start, end int) {
	return v.topLine, v.topLine + v.height
}

// IsPositionVisible reports whether a line and cell column are on screen.
func (v *Viewport) IsPositionVisible(line, col int) bool {
	return line >= v.topLine && line < v.topLine+v.height &&
		col >= v.leftColumn && col < v.leftColumn+v.width
}

// BufferToScreen converts a line and cell column to a screen offset
// relative to the viewport origin.
func (v *Viewport) BufferToScreen(line, col int) (row, screenCol int) {
	return line - v.topLine, col - v.leftColumn
}

// ScrollToReveal scrolls minimally to reveal a position, keeping the
// margins around it. Returns true if scrolling occurred.
func (v *Viewport) ScrollToReveal(line, col int) bool {
	m := v.effectiveMargins()
	top, left := v.topLine, v.leftColumn

	switch {
	case line < top+m.Top:
		top = max(line-m.Top, 0)
	case line > top+v.height-1-m.Bottom:
		top = line - v.height + 1 + m.Bottom
	}

	switch {
	case col < left+m.Left:
		left = max(col-m.Left, 0)
	case col > left+v.width-1-m.Right:
		left = col - v.width + 1 + m.Right
	}

	moved := top != v.topLine || left != v.leftColumn
	v.topLine, v.leftColumn = top, left
	return moved
}
