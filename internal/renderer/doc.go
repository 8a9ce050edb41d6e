// Package renderer draws the editor screen.
//
// The screen is a rounded border titled with the file path around the
// buffer text, with the status line on the last row:
//
//	╭─/home/me/notes.txt──────────╮
//	│  1 first line               │
//	│  2 second line              │
//	╰─────────────────────────────╯
//	2:7 | Ovr | Text File | 24 Bytes Saved | | JUMP-LINE-END
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│           Renderer (Facade)             │
//	├─────────────────────────────────────────┤
//	│  View     │ Layout    │ StatusLine      │
//	│  Viewport │ Tabs/Wide │                 │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ NullBackend (tests) │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.Options{LineNumbers: true, TabWidth: 4})
//	r.Render(buf, state)
package renderer
