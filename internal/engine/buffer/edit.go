package buffer

import (
	"strings"

	"github.com/dshills/recoilless/internal/input"
	"github.com/dshills/recoilless/internal/input/key"
)

// InsertChar inserts r at the cursor, replacing the selection if any.
func (b *Buffer) InsertChar(r rune) {
	b.record("insert")
	b.deleteSelection()
	b.insertText(string(r))
}

// InsertString inserts s at the cursor, replacing the selection if any.
func (b *Buffer) InsertString(s string) {
	if s == "" {
		return
	}
	b.record("insert")
	b.deleteSelection()
	b.insertText(s)
}

// InsertNewline opens an empty line next to the cursor line and moves the
// cursor to its start.
func (b *Buffer) InsertNewline(where Relative) {
	b.record("newline")
	at := b.cursor.Line
	if where == Below {
		at++
	}
	lines := make([][]rune, 0, len(b.lines)+1)
	lines = append(lines, b.lines[:at]...)
	lines = append(lines, []rune{})
	lines = append(lines, b.lines[at:]...)
	b.lines = lines
	b.cursor = Point{Line: at}
}

// SplitLine breaks the line at the cursor, replacing the selection if any.
func (b *Buffer) SplitLine() {
	b.record("split")
	b.deleteSelection()
	b.insertText("\n")
}

// DeleteNextChar deletes the character under the cursor, joining the next
// line when the cursor is at a line end.
func (b *Buffer) DeleteNextChar() bool {
	if _, _, ok := b.Selection(); ok {
		return b.deleteSelectionRecorded()
	}
	end := b.charForward(b.cursor)
	if end == b.cursor {
		return false
	}
	b.record("delete")
	b.deleteRange(b.cursor, end)
	return true
}

// DeleteCharBefore deletes the character before the cursor, joining with
// the previous line at a line start.
func (b *Buffer) DeleteCharBefore() bool {
	if _, _, ok := b.Selection(); ok {
		return b.deleteSelectionRecorded()
	}
	start := b.charBack(b.cursor)
	if start == b.cursor {
		return false
	}
	b.record("backspace")
	b.deleteRange(start, b.cursor)
	return true
}

func (b *Buffer) deleteSelectionRecorded() bool {
	start, end, _ := b.Selection()
	if start == end {
		b.anchor = nil
		return false
	}
	b.record("delete")
	b.deleteSelection()
	return true
}

// DeleteNextWord deletes from the cursor to the start of the next word
// and yanks the removed text.
func (b *Buffer) DeleteNextWord() (bool, error) {
	end := b.wordForward(b.cursor)
	if end == b.cursor {
		return false, nil
	}
	b.record("delete word")
	return true, b.yank.Set(b.deleteRange(b.cursor, end))
}

// DeleteWordBefore deletes from the start of the previous word to the
// cursor and yanks the removed text.
func (b *Buffer) DeleteWordBefore() (bool, error) {
	start := b.wordBack(b.cursor)
	if start == b.cursor {
		return false, nil
	}
	b.record("delete word")
	return true, b.yank.Set(b.deleteRange(start, b.cursor))
}

// DeleteToLineEnd deletes from the cursor to the end of the line and yanks
// the removed text. At a line end it joins the next line instead.
func (b *Buffer) DeleteToLineEnd() (bool, error) {
	line := b.lines[b.cursor.Line]
	if b.cursor.Column >= len(line) {
		return b.DeleteNextChar(), nil
	}
	b.record("delete to end")
	end := Point{Line: b.cursor.Line, Column: len(line)}
	return true, b.yank.Set(b.deleteRange(b.cursor, end))
}

// DeleteToLineStart deletes from the start of the line to the cursor and
// yanks the removed text.
func (b *Buffer) DeleteToLineStart() (bool, error) {
	if b.cursor.Column == 0 {
		return b.DeleteCharBefore(), nil
	}
	b.record("delete to start")
	return true, b.yank.Set(b.deleteRange(Point{Line: b.cursor.Line}, b.cursor))
}

func (b *Buffer) insertTab() {
	if b.hardTab {
		b.InsertChar('\t')
		return
	}
	n := b.tabWidth - b.cursor.Column%b.tabWidth
	b.InsertString(strings.Repeat(" ", n))
}

// Input applies a text-input key, as typed in Insert mode. Returns true
// when the buffer content changed.
func (b *Buffer) Input(ev key.Event) (bool, error) {
	if ev.IsRune() {
		switch {
		case !ev.Modifiers.HasCtrl() && !ev.Modifiers.HasAlt():
			b.InsertChar(ev.Rune)
			return true, nil
		case ev.Modifiers.HasCtrl() && !ev.Modifiers.HasAlt():
			return b.ctrlInput(ev.Rune)
		case ev.Modifiers.HasAlt() && !ev.Modifiers.HasCtrl():
			return b.altInput(ev.Rune)
		}
		return false, nil
	}

	switch ev.Key {
	case key.KeyEnter:
		b.SplitLine()
		return true, nil
	case key.KeyTab:
		b.insertTab()
		return true, nil
	case key.KeyBackspace:
		if ev.Modifiers.HasCtrl() || ev.Modifiers.HasAlt() {
			return b.DeleteWordBefore()
		}
		return b.DeleteCharBefore(), nil
	case key.KeyDelete:
		if ev.Modifiers.HasCtrl() || ev.Modifiers.HasAlt() {
			return b.DeleteNextWord()
		}
		return b.DeleteNextChar(), nil
	case key.KeyLeft:
		b.moveInput(input.UnitChar, input.DirBack, ev)
	case key.KeyRight:
		b.moveInput(input.UnitChar, input.DirForward, ev)
	case key.KeyUp:
		b.moveInput(input.UnitLine, input.DirBack, ev)
	case key.KeyDown:
		b.moveInput(input.UnitLine, input.DirForward, ev)
	case key.KeyHome:
		b.moveInput(input.UnitLine, input.DirHead, ev)
	case key.KeyEnd:
		b.moveInput(input.UnitLine, input.DirEnd, ev)
	}
	return false, nil
}

// moveInput moves the cursor for a navigation key. Ctrl on Left and Right
// moves by word.
func (b *Buffer) moveInput(u input.Unit, d input.Direction, ev key.Event) {
	if u == input.UnitChar && ev.Modifiers.HasCtrl() {
		u = input.UnitWord
	}
	b.CancelSelection()
	b.MoveCursor(u, d)
}

func (b *Buffer) ctrlInput(r rune) (bool, error) {
	switch r {
	case 'h':
		return b.DeleteCharBefore(), nil
	case 'd':
		return b.DeleteNextChar(), nil
	case 'm':
		b.SplitLine()
		return true, nil
	case 'k':
		return b.DeleteToLineEnd()
	case 'j':
		return b.DeleteToLineStart()
	case 'y':
		return b.Paste()
	case 'x':
		return b.Cut()
	case 'c':
		return false, b.Copy()
	case 'u':
		return b.Undo(), nil
	case 'r':
		return b.Redo(), nil
	case 'f':
		b.moveInput(input.UnitChar, input.DirForward, key.Event{})
	case 'b':
		b.moveInput(input.UnitChar, input.DirBack, key.Event{})
	case 'p':
		b.moveInput(input.UnitLine, input.DirBack, key.Event{})
	case 'n':
		b.moveInput(input.UnitLine, input.DirForward, key.Event{})
	case 'e':
		b.moveInput(input.UnitLine, input.DirEnd, key.Event{})
	}
	return false, nil
}

func (b *Buffer) altInput(r rune) (bool, error) {
	switch r {
	case 'f':
		b.moveInput(input.UnitWord, input.DirForward, key.Event{})
	case 'b':
		b.moveInput(input.UnitWord, input.DirBack, key.Event{})
	case 'd':
		return b.DeleteNextWord()
	case 'h':
		return b.DeleteWordBefore()
	case '<':
		b.moveInput(input.UnitDocument, input.DirTop, key.Event{})
	case '>':
		b.moveInput(input.UnitDocument, input.DirBottom, key.Event{})
	}
	return false, nil
}
