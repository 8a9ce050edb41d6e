package input

import (
	"fmt"

	"github.com/dshills/recoilless/internal/input/key"
	"github.com/dshills/recoilless/internal/input/mode"
)

// Kind is the variant tag of an Action.
type Kind uint8

const (
	// KindUnhandled is a Command-mode key with no binding.
	KindUnhandled Kind = iota
	// KindModeChange switches to Action.Mode.
	KindModeChange
	// KindMotion moves the cursor by Action.Motion.
	KindMotion
	// KindMutation changes buffer content via Action.Mutation.
	KindMutation
	// KindHistory undoes or redoes.
	KindHistory
	// KindBufferEdit forwards Action.Event to the buffer as text input.
	KindBufferEdit
	// KindPersist saves the buffer.
	KindPersist
	// KindTerminate ends the session without saving.
	KindTerminate
	// KindSelectAll selects the whole buffer.
	KindSelectAll
	// KindCancelSelection drops the active selection.
	KindCancelSelection
)

var kindNames = [...]string{
	KindUnhandled:       "unhandled",
	KindModeChange:      "mode",
	KindMotion:          "motion",
	KindMutation:        "mutation",
	KindHistory:         "history",
	KindBufferEdit:      "edit",
	KindPersist:         "persist",
	KindTerminate:       "terminate",
	KindSelectAll:       "selectAll",
	KindCancelSelection: "cancelSelection",
}

// String returns a string representation of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Unit is the granularity of a cursor motion.
type Unit uint8

const (
	// UnitChar moves by character, wrapping across line ends.
	UnitChar Unit = iota
	// UnitWord moves by word.
	UnitWord
	// UnitLine moves between lines, or to the start or end of one.
	UnitLine
	// UnitParagraph moves by paragraph.
	UnitParagraph
	// UnitDocument moves to the document boundaries.
	UnitDocument
)

// String returns a string representation of the unit.
func (u Unit) String() string {
	switch u {
	case UnitChar:
		return "char"
	case UnitWord:
		return "word"
	case UnitLine:
		return "line"
	case UnitParagraph:
		return "paragraph"
	case UnitDocument:
		return "document"
	default:
		return "unknown"
	}
}

// Direction represents a motion direction.
type Direction uint8

const (
	// DirForward moves toward the end of the buffer. For UnitLine it moves down.
	DirForward Direction = iota
	// DirBack moves toward the start of the buffer. For UnitLine it moves up.
	DirBack
	// DirTop moves to the first line.
	DirTop
	// DirBottom moves to the last line.
	DirBottom
	// DirHead moves to the start of the line.
	DirHead
	// DirEnd moves to the end of the line.
	DirEnd
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirForward:
		return "forward"
	case DirBack:
		return "back"
	case DirTop:
		return "top"
	case DirBottom:
		return "bottom"
	case DirHead:
		return "head"
	case DirEnd:
		return "end"
	default:
		return "none"
	}
}

// Motion is a cursor movement.
type Motion struct {
	Unit      Unit
	Direction Direction
}

// String returns "unit/direction".
func (m Motion) String() string {
	return m.Unit.String() + "/" + m.Direction.String()
}

// Mutation identifies a content-changing buffer operation.
type Mutation uint8

const (
	// MutDeleteChar deletes the character under the cursor.
	MutDeleteChar Mutation = iota
	// MutDeleteWord deletes from the cursor to the start of the next word.
	MutDeleteWord
	// MutDeleteLine clears the current line from its start to its end.
	MutDeleteLine
	// MutDeleteParagraph deletes from the cursor to the next paragraph boundary.
	MutDeleteParagraph
	// MutNewlineBelow opens an empty line below the cursor line.
	MutNewlineBelow
	// MutNewlineAbove opens an empty line above the cursor line.
	MutNewlineAbove
	// MutCut moves the selection into the yank register.
	MutCut
	// MutPaste inserts the yank register at the cursor.
	MutPaste
)

// String returns a string representation of the mutation.
func (m Mutation) String() string {
	switch m {
	case MutDeleteChar:
		return "deleteChar"
	case MutDeleteWord:
		return "deleteWord"
	case MutDeleteLine:
		return "deleteLine"
	case MutDeleteParagraph:
		return "deleteParagraph"
	case MutNewlineBelow:
		return "newlineBelow"
	case MutNewlineAbove:
		return "newlineAbove"
	case MutCut:
		return "cut"
	case MutPaste:
		return "paste"
	default:
		return "unknown"
	}
}

// HistoryOp is undo or redo.
type HistoryOp uint8

const (
	// Undo reverts the last change.
	Undo HistoryOp = iota
	// Redo reapplies the last undone change.
	Redo
)

// PersistOp is save or save-and-exit.
type PersistOp uint8

const (
	// Save writes the buffer when it is modified.
	Save PersistOp = iota
	// SaveAndExit always writes the buffer, then ends the session.
	SaveAndExit
)

// Action is one resolved editing operation. Only the fields relevant to
// Kind are meaningful.
type Action struct {
	// Name is the command identifier (e.g., "cursor.wordForward").
	Name string

	// Kind selects which of the fields below apply.
	Kind Kind

	// Mode is the target of KindModeChange.
	Mode mode.Mode

	// Motion applies to KindMotion.
	Motion Motion

	// ThenInsert switches to Insert mode after a motion.
	ThenInsert bool

	// Mutation applies to KindMutation.
	Mutation Mutation

	// History applies to KindHistory.
	History HistoryOp

	// Persist applies to KindPersist.
	Persist PersistOp

	// Event is the raw key for KindBufferEdit and KindUnhandled.
	Event key.Event

	// Label replaces the last-command label when non-empty.
	Label string
}

// WithEvent returns a copy of the action carrying ev.
func (a Action) WithEvent(ev key.Event) Action {
	a.Event = ev
	return a
}

// Modifies reports whether executing the action marks the buffer modified.
func (a Action) Modifies() bool {
	return a.Kind == KindMutation || a.Kind == KindBufferEdit
}

// CancelsSelection reports whether the active selection is dropped before
// the action runs. Paste, undo and redo keep it.
func (a Action) CancelsSelection() bool {
	return a.Kind == KindMotion
}

// Constructors used by binding tables.

// ModeChange returns an action switching to m.
func ModeChange(name string, m mode.Mode) Action {
	return Action{Name: name, Kind: KindModeChange, Mode: m}
}

// Move returns a cursor motion action.
func Move(name string, u Unit, d Direction, label string) Action {
	return Action{Name: name, Kind: KindMotion, Motion: Motion{Unit: u, Direction: d}, Label: label}
}

// Mutate returns a mutation action.
func Mutate(name string, m Mutation, label string) Action {
	return Action{Name: name, Kind: KindMutation, Mutation: m, Label: label}
}

// HistoryAction returns an undo or redo action.
func HistoryAction(name string, op HistoryOp, label string) Action {
	return Action{Name: name, Kind: KindHistory, History: op, Label: label}
}

// PersistAction returns a save action.
func PersistAction(name string, op PersistOp) Action {
	return Action{Name: name, Kind: KindPersist, Persist: op}
}

// Simple returns an action of a kind that carries no operands.
func Simple(name string, k Kind) Action {
	return Action{Name: name, Kind: k}
}

// BufferEdit returns the default Insert-mode action for ev.
func BufferEdit(ev key.Event) Action {
	return Action{Name: "buffer.input", Kind: KindBufferEdit, Event: ev}
}

// Unhandled returns the default Command-mode action for ev.
func Unhandled(ev key.Event) Action {
	return Action{Name: "unhandled", Kind: KindUnhandled, Event: ev}
}
