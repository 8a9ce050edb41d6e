package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewViewportClampsSize(t *testing.T) {
	v := NewViewport(0, -3)
	assert.Equal(t, 1, v.Width())
	assert.Equal(t, 1, v.Height())
}

func TestScrollToRevealNoMargins(t *testing.T) {
	v := NewViewport(10, 5)

	assert.False(t, v.ScrollToReveal(4, 9))
	assert.Equal(t, 0, v.TopLine())

	assert.True(t, v.ScrollToReveal(5, 0))
	assert.Equal(t, 1, v.TopLine())

	assert.True(t, v.ScrollToReveal(20, 0))
	assert.Equal(t, 16, v.TopLine())
	start, end := v.VisibleLineRange()
	assert.Equal(t, 16, start)
	assert.Equal(t, 21, end)

	assert.True(t, v.ScrollToReveal(3, 0))
	assert.Equal(t, 3, v.TopLine())

	assert.True(t, v.ScrollToReveal(3, 12))
	assert.Equal(t, 3, v.LeftColumn())
	assert.True(t, v.IsPositionVisible(3, 12))
	assert.False(t, v.IsPositionVisible(3, 2))

	row, col := v.BufferToScreen(4, 5)
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)
}

func TestScrollToRevealWithMargins(t *testing.T) {
	v := NewViewport(20, 10)
	v.SetMargins(DefaultMargins())

	v.ScrollToReveal(8, 0)
	assert.Equal(t, 1, v.TopLine())

	v.ScrollToReveal(2, 0)
	assert.Equal(t, 0, v.TopLine())

	v.ScrollToReveal(0, 16)
	assert.Equal(t, 2, v.LeftColumn())
}

func TestMarginsShrinkOnSmallViewports(t *testing.T) {
	v := NewViewport(3, 3)
	v.SetMargins(MarginConfig{Top: 5, Bottom: 5, Left: 5, Right: 5})

	v.ScrollToReveal(10, 10)
	assert.True(t, v.IsPositionVisible(10, 10))
}
