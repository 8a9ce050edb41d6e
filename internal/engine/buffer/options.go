package buffer

// DefaultTabWidth is the soft tab width used when none is configured.
const DefaultTabWidth = 4

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithTabWidth sets the buffer's tab width. Non-positive widths are ignored.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}

// WithHardTab makes Tab insert a tab character instead of spaces.
func WithHardTab(hard bool) Option {
	return func(b *Buffer) {
		b.hardTab = hard
	}
}

// WithRegister sets the yank register used by cut, paste and deletes.
func WithRegister(r Register) Option {
	return func(b *Buffer) {
		if r != nil {
			b.yank = r
		}
	}
}

// WithMaxUndo bounds the undo history.
func WithMaxUndo(n int) Option {
	return func(b *Buffer) {
		b.maxUndo = n
	}
}
