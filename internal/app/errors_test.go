package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/recoilless/internal/dispatcher"
	"github.com/dshills/recoilless/internal/persist"
)

func TestOperationError_Error(t *testing.T) {
	base := errors.New("disk full")

	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{"op only", &OperationError{Op: "save"}, "save"},
		{"with target", &OperationError{Op: "save", Target: "/tmp/a"}, "save /tmp/a"},
		{"with cause", NewOperationError("save", "/tmp/a", base), "save /tmp/a: disk full"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestOperationError_Unwrap(t *testing.T) {
	base := errors.New("boom")
	err := NewOperationError("open", "x", base)

	assert.ErrorIs(t, err, base)
	assert.Nil(t, (*OperationError)(nil).Unwrap())
}

func TestComponentError(t *testing.T) {
	base := errors.New("no tty")

	err := NewComponentError("backend", "init", base)
	assert.Equal(t, "backend: init failed: no tty", err.Error())
	assert.ErrorIs(t, err, base)

	assert.Equal(t, "keymap: load failed", NewComponentError("keymap", "load", nil).Error())
}

func TestRecoveredPanicError(t *testing.T) {
	err := NewRecoveredPanicError("bad", "stack")
	assert.Equal(t, "recovered from panic: bad", err.Error())
	assert.Equal(t, "stack", err.Stack)
}

func TestWrapError(t *testing.T) {
	base := errors.New("base")

	err := WrapError(base, "loading %s", "config")
	assert.EqualError(t, err, "loading config: base")
	assert.ErrorIs(t, err, base)

	assert.NoError(t, WrapError(nil, "unused"))
}

func TestIsFatal(t *testing.T) {
	write := &persist.WriteError{Path: "/tmp/a", Err: errors.New("read-only")}
	meta := &persist.MetadataError{Path: "/tmp/a", Err: errors.New("gone")}

	assert.True(t, IsFatal(write))
	assert.True(t, IsFatal(&dispatcher.ActionError{Action: "file.save", Err: write}))
	assert.True(t, IsFatal(fmt.Errorf("saving: %w", meta)))
	assert.True(t, IsFatal(&dispatcher.ActionError{Action: "edit.paste", Err: &dispatcher.BufferError{Op: "paste", Err: errors.New("clipboard")}}))
	assert.False(t, IsFatal(&dispatcher.ActionError{Action: "bogus", Err: dispatcher.ErrInvalidAction}))
	assert.False(t, IsFatal(&dispatcher.ActionError{Action: "cursor.left", Err: dispatcher.ErrPanic}))

	assert.Equal(t, "save", fatalOp(write))
	assert.Equal(t, "edit", fatalOp(&dispatcher.BufferError{Op: "cut", Err: errors.New("x")}))
	assert.False(t, IsFatal(nil))
}
