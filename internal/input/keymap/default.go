package keymap

import (
	"github.com/dshills/recoilless/internal/input"
	"github.com/dshills/recoilless/internal/input/key"
	"github.com/dshills/recoilless/internal/input/mode"
)

// Binding categories used by the key reference.
const (
	CategoryModes    = "Modes"
	CategoryMovement = "Movement"
	CategoryEditing  = "Editing"
	CategoryEditor   = "Editor"
)

// Shorthands for Binding.Ignore.
const (
	anyMods   = key.ModAll
	anyShift  = key.ModShift
	exactMods = key.ModNone
)

// LoadDefaults loads the default keymaps into the registry.
func LoadDefaults(r *Registry) error {
	for _, km := range []*Keymap{DefaultCommandKeymap(), DefaultInsertKeymap()} {
		if err := r.Register(km); err != nil {
			return err
		}
	}
	return nil
}

// DefaultCommandKeymap returns the Command-mode bindings in match order.
// Bindings with fewer constrained modifiers must follow the more specific
// ones that share their key, e.g. Backspace after Ctrl+Alt+Backspace.
func DefaultCommandKeymap() *Keymap {
	return &Keymap{
		Name:     "default-command",
		Mode:     mode.Command,
		Source:   "default",
		Bindings: commandBindings(),
	}
}

// DefaultInsertKeymap returns the Insert-mode bindings. Keys not listed
// here are forwarded to the buffer.
func DefaultInsertKeymap() *Keymap {
	return &Keymap{
		Name:   "default-insert",
		Mode:   mode.Insert,
		Source: "default",
		Bindings: []Binding{
			{Keys: "Esc", Ignore: anyMods, Action: input.ModeChange("mode.command", mode.Command),
				Description: "Switch to command mode", Category: CategoryModes},
			{Keys: "Ctrl+A", Ignore: anyShift, Action: input.Simple("editor.selectAll", input.KindSelectAll),
				Description: "Select all", Category: CategoryEditing},
		},
	}
}

func commandBindings() []Binding {
	var (
		left  = input.Move("cursor.left", input.UnitChar, input.DirBack, "")
		down  = input.Move("cursor.down", input.UnitLine, input.DirForward, "")
		up    = input.Move("cursor.up", input.UnitLine, input.DirBack, "")
		right = input.Move("cursor.right", input.UnitChar, input.DirForward, "")
	)
	withLabel := func(a input.Action, label string) input.Action {
		a.Label = label
		return a
	}
	thenInsert := func(a input.Action, name string) input.Action {
		a.Name = name
		a.ThenInsert = true
		return a
	}

	lineStart := input.Move("cursor.lineStart", input.UnitLine, input.DirHead, "| JUMP-LINE-START")
	lineEnd := input.Move("cursor.lineEnd", input.UnitLine, input.DirEnd, "| JUMP-LINE-END")

	return []Binding{
		// Modes
		{Keys: "Esc", Ignore: exactMods, Action: input.ModeChange("mode.command", mode.Command),
			Description: "Stay in command mode", Category: CategoryModes},
		{Keys: "i", Ignore: anyMods, Action: input.ModeChange("mode.insert", mode.Insert),
			Description: "Switch to insert mode", Category: CategoryModes},

		// Editor
		{Keys: "End", Ignore: anyMods, Action: input.Simple("editor.quit", input.KindTerminate),
			Description: "Exit program", Category: CategoryEditor},
		{Keys: "Ctrl+Alt+Backspace", Ignore: anyShift, Action: input.Simple("editor.quit", input.KindTerminate),
			Description: "Exit program", Category: CategoryEditor},
		{Keys: "Ctrl+S", Ignore: anyShift, Action: input.PersistAction("file.save", input.Save),
			Description: "Save file", Category: CategoryEditor},
		{Keys: "Ctrl+Alt+S", Ignore: anyShift, Action: input.PersistAction("file.saveAndQuit", input.SaveAndExit),
			Description: "Save file and exit program", Category: CategoryEditor},
		{Keys: "Ctrl+A", Ignore: anyShift, Action: input.Simple("editor.selectAll", input.KindSelectAll),
			Description: "Select all", Category: CategoryEditor},

		// Movement
		{Keys: "h", Ignore: anyMods, Action: withLabel(left, "| h"),
			Description: "Move left", Category: CategoryMovement},
		{Keys: "j", Ignore: anyShift, Action: withLabel(down, "| j"),
			Description: "Move down", Category: CategoryMovement},
		{Keys: "k", Ignore: anyMods, Action: withLabel(up, "| k"),
			Description: "Move up", Category: CategoryMovement},
		{Keys: "l", Ignore: anyShift, Action: withLabel(right, "| l"),
			Description: "Move right", Category: CategoryMovement},
		{Keys: "Left", Ignore: anyMods, Action: left, Description: "Move left", Category: CategoryMovement},
		{Keys: "Down", Ignore: anyMods, Action: down, Description: "Move down", Category: CategoryMovement},
		{Keys: "Up", Ignore: anyMods, Action: up, Description: "Move up", Category: CategoryMovement},
		{Keys: "Right", Ignore: anyMods, Action: right, Description: "Move right", Category: CategoryMovement},
		{Keys: "Space", Ignore: anyMods, Action: withLabel(right, "| >"),
			Description: "Move forward", Category: CategoryMovement},
		{Keys: "Backspace", Ignore: anyMods, Action: withLabel(left, "| <"),
			Description: "Move back", Category: CategoryMovement},

		{Keys: "Ctrl+Alt+C", Ignore: anyShift, Action: input.Mutate("edit.deleteChar", input.MutDeleteChar, "| DEL-CHAR"),
			Description: "Delete character", Category: CategoryEditing},

		{Keys: "Ctrl+W", Ignore: anyShift, Action: input.Move("cursor.wordForward", input.UnitWord, input.DirForward, "| WORD-FOR"),
			Description: "Move forward by word", Category: CategoryMovement},
		{Keys: "Alt+W", Ignore: anyShift, Action: input.Move("cursor.wordBackward", input.UnitWord, input.DirBack, "| WORD-BACK"),
			Description: "Move backward by word", Category: CategoryMovement},
		{Keys: "Ctrl+Alt+W", Ignore: anyShift, Action: input.Mutate("edit.deleteWord", input.MutDeleteWord, "| DEL-WORD"),
			Description: "Delete word", Category: CategoryEditing},

		{Keys: "Ctrl+L", Ignore: anyShift, Action: input.Move("cursor.lineDown", input.UnitLine, input.DirForward, "| LINE-FOR"),
			Description: "Move forward by line", Category: CategoryMovement},
		{Keys: "Alt+L", Ignore: anyShift, Action: input.Move("cursor.lineUp", input.UnitLine, input.DirBack, "| LINE-BACK"),
			Description: "Move backward by line", Category: CategoryMovement},
		{Keys: "Ctrl+Alt+L", Ignore: anyShift, Action: input.Mutate("edit.deleteLine", input.MutDeleteLine, "| DEL-LINE"),
			Description: "Delete line", Category: CategoryEditing},

		{Keys: "Ctrl+N", Ignore: anyShift, Action: input.Mutate("edit.newLineBelow", input.MutNewlineBelow, "| NEW-LINE-DOWN"),
			Description: "Make a new line below current line", Category: CategoryEditing},
		{Keys: "Alt+N", Ignore: anyShift, Action: input.Mutate("edit.newLineAbove", input.MutNewlineAbove, "| NEW-LINE-UP"),
			Description: "Make a new line above current line", Category: CategoryEditing},

		{Keys: "Ctrl+E", Ignore: exactMods, Action: lineStart,
			Description: "Jump to start of line", Category: CategoryMovement},
		{Keys: "Alt+E", Ignore: exactMods, Action: lineEnd,
			Description: "Jump to end of line", Category: CategoryMovement},
		{Keys: "Ctrl+Shift+E", Ignore: exactMods, Action: thenInsert(lineStart, "cursor.lineStartInsert"),
			Description: "Jump to start of line and insert", Category: CategoryMovement},
		{Keys: "Alt+Shift+E", Ignore: exactMods, Action: thenInsert(lineEnd, "cursor.lineEndInsert"),
			Description: "Jump to end of line and insert", Category: CategoryMovement},

		{Keys: "Ctrl+P", Ignore: anyShift, Action: input.Move("cursor.paragraphForward", input.UnitParagraph, input.DirForward, "| JUMP-PAR-FOR"),
			Description: "Jump forward by paragraph", Category: CategoryMovement},
		{Keys: "Alt+P", Ignore: anyShift, Action: input.Move("cursor.paragraphBackward", input.UnitParagraph, input.DirBack, "| JUMP-PAR-BACK"),
			Description: "Jump back by paragraph", Category: CategoryMovement},
		{Keys: "Ctrl+Alt+P", Ignore: anyShift, Action: input.Mutate("edit.deleteParagraph", input.MutDeleteParagraph, "| DEL-PAR-FOR"),
			Description: "Delete to end of paragraph", Category: CategoryEditing},

		{Keys: "Ctrl+J", Ignore: anyShift, Action: input.Move("cursor.fileStart", input.UnitDocument, input.DirTop, "| JUMP-FILE-START"),
			Description: "Jump to start of file", Category: CategoryMovement},
		{Keys: "Alt+J", Ignore: anyShift, Action: input.Move("cursor.fileEnd", input.UnitDocument, input.DirBottom, "| JUMP-FILE-END"),
			Description: "Jump to end of file", Category: CategoryMovement},

		{Keys: "u", Ignore: anyMods, Action: input.HistoryAction("edit.undo", input.Undo, "| UNDO"),
			Description: "Undo", Category: CategoryEditing},
		{Keys: "r", Ignore: anyMods, Action: input.HistoryAction("edit.redo", input.Redo, "| REDO"),
			Description: "Redo", Category: CategoryEditing},
		{Keys: "p", Ignore: anyMods, Action: input.Mutate("edit.paste", input.MutPaste, "| PASTE"),
			Description: "Paste", Category: CategoryEditing},
	}
}

// extraActions are valid override targets that no default key uses.
func extraActions() []input.Action {
	return []input.Action{
		input.Simple("selection.cancel", input.KindCancelSelection),
		input.Mutate("edit.cut", input.MutCut, "| CUT"),
	}
}

// Actions returns every action a binding may name, keyed by Action.Name.
// When several default bindings share a name, the first one's label wins.
func Actions() map[string]input.Action {
	out := make(map[string]input.Action)
	add := func(a input.Action) {
		if _, ok := out[a.Name]; !ok {
			out[a.Name] = a
		}
	}
	for _, km := range []*Keymap{DefaultCommandKeymap(), DefaultInsertKeymap()} {
		for _, b := range km.Bindings {
			add(b.Action)
		}
	}
	for _, a := range extraActions() {
		add(a)
	}
	return out
}
