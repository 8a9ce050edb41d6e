package mode

import "fmt"

// Mode is the active editing mode. The zero value is Command.
type Mode uint8

const (
	// Command interprets keys as editing commands.
	Command Mode = iota

	// Insert forwards keys to the buffer as text.
	Insert
)

// Standard mode names.
const (
	NameCommand = "command"
	NameInsert  = "insert"
)

// Name returns the unique mode identifier.
func (m Mode) Name() string {
	switch m {
	case Command:
		return NameCommand
	case Insert:
		return NameInsert
	default:
		return fmt.Sprintf("mode(%d)", m)
	}
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return m.Name()
}

// DisplayName returns the short name shown in the status line.
func (m Mode) DisplayName() string {
	if m == Insert {
		return "Ins"
	}
	return "Ovr"
}

// CursorStyle returns the cursor style hint for this mode.
func (m Mode) CursorStyle() CursorStyle {
	if m == Insert {
		return CursorBar
	}
	return CursorBlock
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m == Command || m == Insert
}

// FromName returns the mode with the given name.
func FromName(name string) (Mode, error) {
	switch name {
	case NameCommand, "ovr":
		return Command, nil
	case NameInsert, "ins":
		return Insert, nil
	default:
		return Command, fmt.Errorf("unknown mode: %s", name)
	}
}

// All returns every mode in display order.
func All() []Mode {
	return []Mode{Command, Insert}
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (command mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	default:
		return "unknown"
	}
}
