package buffer

import "strings"

// StartSelection anchors a selection at the cursor. The selection spans
// from the anchor to the cursor as the cursor moves.
func (b *Buffer) StartSelection() {
	p := b.cursor
	b.anchor = &p
}

// SelectAll selects the whole buffer, leaving the cursor at the end.
func (b *Buffer) SelectAll() {
	b.anchor = &Point{}
	b.cursor = b.lastPoint()
}

// CancelSelection drops the selection, if any.
func (b *Buffer) CancelSelection() {
	b.anchor = nil
}

// HasSelection reports whether a selection is active.
func (b *Buffer) HasSelection() bool {
	return b.anchor != nil
}

// Selection returns the ordered selection bounds.
func (b *Buffer) Selection() (start, end Point, ok bool) {
	if b.anchor == nil {
		return Point{}, Point{}, false
	}
	start, end = ordered(*b.anchor, b.cursor)
	return start, end, true
}

// textBetween returns the text from start up to end.
func (b *Buffer) textBetween(start, end Point) string {
	if start.Line == end.Line {
		return string(b.lines[start.Line][start.Column:end.Column])
	}
	var sb strings.Builder
	sb.WriteString(string(b.lines[start.Line][start.Column:]))
	for i := start.Line + 1; i < end.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[i]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[end.Line][:end.Column]))
	return sb.String()
}

// deleteRange removes the text from start up to end and returns it.
// The cursor moves to start.
func (b *Buffer) deleteRange(start, end Point) string {
	removed := b.textBetween(start, end)

	head := b.lines[start.Line][:start.Column]
	tail := b.lines[end.Line][end.Column:]
	joined := make([]rune, 0, len(head)+len(tail))
	joined = append(joined, head...)
	joined = append(joined, tail...)

	lines := make([][]rune, 0, len(b.lines)-(end.Line-start.Line))
	lines = append(lines, b.lines[:start.Line]...)
	lines = append(lines, joined)
	lines = append(lines, b.lines[end.Line+1:]...)
	b.lines = lines

	b.cursor = start
	return removed
}

// insertText inserts s at the cursor and leaves the cursor after it.
func (b *Buffer) insertText(s string) {
	parts := strings.Split(s, "\n")
	line := b.lines[b.cursor.Line]
	head := append([]rune{}, line[:b.cursor.Column]...)
	tail := append([]rune{}, line[b.cursor.Column:]...)

	if len(parts) == 1 {
		ins := []rune(parts[0])
		b.lines[b.cursor.Line] = append(append(head, ins...), tail...)
		b.cursor.Column += len(ins)
		return
	}

	newLines := make([][]rune, len(parts))
	newLines[0] = append(head, []rune(parts[0])...)
	for i := 1; i < len(parts)-1; i++ {
		newLines[i] = []rune(parts[i])
	}
	last := []rune(parts[len(parts)-1])
	newLines[len(parts)-1] = append(append([]rune{}, last...), tail...)

	lines := make([][]rune, 0, len(b.lines)+len(parts)-1)
	lines = append(lines, b.lines[:b.cursor.Line]...)
	lines = append(lines, newLines...)
	lines = append(lines, b.lines[b.cursor.Line+1:]...)
	b.lines = lines

	b.cursor = Point{Line: b.cursor.Line + len(parts) - 1, Column: len(last)}
}

// deleteSelection removes the selected text, if any, and returns it.
func (b *Buffer) deleteSelection() (string, bool) {
	start, end, ok := b.Selection()
	b.anchor = nil
	if !ok || start == end {
		return "", false
	}
	return b.deleteRange(start, end), true
}

// Cut moves the selected text into the yank register. Returns false when
// nothing is selected.
func (b *Buffer) Cut() (bool, error) {
	start, end, ok := b.Selection()
	if !ok || start == end {
		return false, nil
	}
	b.record("cut")
	text, _ := b.deleteSelection()
	return true, b.yank.Set(text)
}

// Copy puts the selected text into the yank register.
func (b *Buffer) Copy() error {
	start, end, ok := b.Selection()
	if !ok || start == end {
		return nil
	}
	return b.yank.Set(b.textBetween(start, end))
}

// Paste inserts the yank register at the cursor, replacing the selection
// if one is active. Returns false when the register is empty.
func (b *Buffer) Paste() (bool, error) {
	text, err := b.yank.Get()
	if err != nil {
		return false, err
	}
	if text == "" {
		return false, nil
	}
	b.record("paste")
	b.deleteSelection()
	b.insertText(text)
	return true, nil
}
