// Package buffer provides the line-based text buffer the editor edits.
//
// The buffer owns the text, the cursor, an optional selection anchor, the
// yank register used by cut and paste, and the undo history. Columns count
// runes, not bytes.
//
// Basic usage:
//
//	buf := buffer.NewFromString("Hello, World!")
//
//	buf.MoveCursor(input.UnitWord, input.DirForward)
//	buf.DeleteNextWord()
//	buf.Undo()
//
// Line content is kept exactly as read, apart from the line feeds that
// separate lines. A single trailing line feed is not turned into an extra
// empty line, so a file read and written back unchanged is byte-identical.
//
// A Buffer is not safe for concurrent use; the editor loop owns it.
package buffer
