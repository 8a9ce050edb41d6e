package buffer

import (
	"unicode"

	"github.com/dshills/recoilless/internal/input"
)

// MoveCursor moves the cursor by unit in direction. Returns false when the
// pair is not a valid motion or the cursor did not move.
func (b *Buffer) MoveCursor(u input.Unit, d input.Direction) bool {
	from := b.cursor
	to, ok := b.target(u, d)
	if !ok {
		return false
	}
	b.setCursor(to)
	return b.cursor != from
}

func (b *Buffer) target(u input.Unit, d input.Direction) (Point, bool) {
	c := b.cursor
	switch u {
	case input.UnitChar:
		switch d {
		case input.DirForward:
			return b.charForward(c), true
		case input.DirBack:
			return b.charBack(c), true
		}
	case input.UnitWord:
		switch d {
		case input.DirForward:
			return b.wordForward(c), true
		case input.DirBack:
			return b.wordBack(c), true
		}
	case input.UnitLine:
		switch d {
		case input.DirForward:
			return Point{Line: c.Line + 1, Column: c.Column}, true
		case input.DirBack:
			return Point{Line: c.Line - 1, Column: c.Column}, true
		case input.DirHead:
			return Point{Line: c.Line}, true
		case input.DirEnd:
			return Point{Line: c.Line, Column: len(b.lines[c.Line])}, true
		}
	case input.UnitParagraph:
		switch d {
		case input.DirForward:
			return b.paragraphForward(c), true
		case input.DirBack:
			return b.paragraphBack(c), true
		}
	case input.UnitDocument:
		switch d {
		case input.DirTop:
			return Point{}, true
		case input.DirBottom:
			return b.lastPoint(), true
		}
	}
	return Point{}, false
}

func (b *Buffer) charForward(c Point) Point {
	if c.Column < len(b.lines[c.Line]) {
		return Point{Line: c.Line, Column: c.Column + 1}
	}
	if c.Line+1 < len(b.lines) {
		return Point{Line: c.Line + 1}
	}
	return c
}

func (b *Buffer) charBack(c Point) Point {
	if c.Column > 0 {
		return Point{Line: c.Line, Column: c.Column - 1}
	}
	if c.Line > 0 {
		return Point{Line: c.Line - 1, Column: len(b.lines[c.Line-1])}
	}
	return c
}

type charClass uint8

const (
	classSpace charClass = iota
	classWord
	classPunct
)

func classify(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	default:
		return classPunct
	}
}

// wordForward returns the start of the next word. A line end counts as a
// word boundary; at the end of the buffer it returns the last position.
func (b *Buffer) wordForward(c Point) Point {
	line := b.lines[c.Line]
	if c.Column >= len(line) {
		if c.Line+1 >= len(b.lines) {
			return c
		}
		next := Point{Line: c.Line + 1}
		if len(b.lines[next.Line]) > 0 && classify(b.lines[next.Line][0]) == classSpace {
			return b.skipSpace(next)
		}
		return next
	}

	col := c.Column
	cls := classify(line[col])
	if cls != classSpace {
		for col < len(line) && classify(line[col]) == cls {
			col++
		}
	}
	for col < len(line) && classify(line[col]) == classSpace {
		col++
	}
	return Point{Line: c.Line, Column: col}
}

func (b *Buffer) skipSpace(p Point) Point {
	line := b.lines[p.Line]
	for p.Column < len(line) && classify(line[p.Column]) == classSpace {
		p.Column++
	}
	return p
}

// wordBack returns the start of the word before the cursor.
func (b *Buffer) wordBack(c Point) Point {
	if c.Column == 0 {
		if c.Line == 0 {
			return c
		}
		return Point{Line: c.Line - 1, Column: len(b.lines[c.Line-1])}
	}

	line := b.lines[c.Line]
	col := c.Column
	for col > 0 && classify(line[col-1]) == classSpace {
		col--
	}
	if col == 0 {
		return Point{Line: c.Line}
	}
	cls := classify(line[col-1])
	for col > 0 && classify(line[col-1]) == cls {
		col--
	}
	return Point{Line: c.Line, Column: col}
}

func (b *Buffer) isBlank(i int) bool {
	for _, r := range b.lines[i] {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// paragraphForward returns the first line of the next paragraph, or the
// end of the buffer when there is none.
func (b *Buffer) paragraphForward(c Point) Point {
	i := c.Line
	for i < len(b.lines) && !b.isBlank(i) {
		i++
	}
	for i < len(b.lines) && b.isBlank(i) {
		i++
	}
	if i >= len(b.lines) {
		return b.lastPoint()
	}
	return Point{Line: i}
}

// paragraphBack returns the first line of the paragraph before the
// cursor, or the start of the buffer.
func (b *Buffer) paragraphBack(c Point) Point {
	i := c.Line
	if c.Column == 0 || b.isBlank(i) {
		i--
	}
	for i >= 0 && b.isBlank(i) {
		i--
	}
	for i > 0 && !b.isBlank(i-1) {
		i--
	}
	if i < 0 {
		return Point{}
	}
	return Point{Line: i}
}
