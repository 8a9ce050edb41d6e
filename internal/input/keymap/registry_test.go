package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/recoilless/internal/input"
	"github.com/dshills/recoilless/internal/input/key"
	"github.com/dshills/recoilless/internal/input/mode"
)

func TestResolveCommandMode(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		keys  string
		name  string
		kind  input.Kind
		label string
	}{
		{"i", "mode.insert", input.KindModeChange, ""},
		{"Esc", "mode.command", input.KindModeChange, ""},
		{"End", "editor.quit", input.KindTerminate, ""},
		{"Ctrl+Alt+Backspace", "editor.quit", input.KindTerminate, ""},
		{"Ctrl+S", "file.save", input.KindPersist, ""},
		{"Ctrl+Alt+S", "file.saveAndQuit", input.KindPersist, ""},
		{"Ctrl+A", "editor.selectAll", input.KindSelectAll, ""},
		{"h", "cursor.left", input.KindMotion, "| h"},
		{"j", "cursor.down", input.KindMotion, "| j"},
		{"k", "cursor.up", input.KindMotion, "| k"},
		{"l", "cursor.right", input.KindMotion, "| l"},
		{"Left", "cursor.left", input.KindMotion, ""},
		{"Down", "cursor.down", input.KindMotion, ""},
		{"Up", "cursor.up", input.KindMotion, ""},
		{"Right", "cursor.right", input.KindMotion, ""},
		{"Space", "cursor.right", input.KindMotion, "| >"},
		{"Backspace", "cursor.left", input.KindMotion, "| <"},
		{"Ctrl+W", "cursor.wordForward", input.KindMotion, "| WORD-FOR"},
		{"Alt+W", "cursor.wordBackward", input.KindMotion, "| WORD-BACK"},
		{"Ctrl+Alt+W", "edit.deleteWord", input.KindMutation, "| DEL-WORD"},
		{"Ctrl+Alt+C", "edit.deleteChar", input.KindMutation, "| DEL-CHAR"},
		{"Ctrl+L", "cursor.lineDown", input.KindMotion, "| LINE-FOR"},
		{"Alt+L", "cursor.lineUp", input.KindMotion, "| LINE-BACK"},
		{"Ctrl+Alt+L", "edit.deleteLine", input.KindMutation, "| DEL-LINE"},
		{"Ctrl+N", "edit.newLineBelow", input.KindMutation, "| NEW-LINE-DOWN"},
		{"Alt+N", "edit.newLineAbove", input.KindMutation, "| NEW-LINE-UP"},
		{"Ctrl+E", "cursor.lineStart", input.KindMotion, "| JUMP-LINE-START"},
		{"Alt+E", "cursor.lineEnd", input.KindMotion, "| JUMP-LINE-END"},
		{"Ctrl+Shift+E", "cursor.lineStartInsert", input.KindMotion, "| JUMP-LINE-START"},
		{"Alt+Shift+E", "cursor.lineEndInsert", input.KindMotion, "| JUMP-LINE-END"},
		{"Ctrl+P", "cursor.paragraphForward", input.KindMotion, "| JUMP-PAR-FOR"},
		{"Alt+P", "cursor.paragraphBackward", input.KindMotion, "| JUMP-PAR-BACK"},
		{"Ctrl+Alt+P", "edit.deleteParagraph", input.KindMutation, "| DEL-PAR-FOR"},
		{"Ctrl+J", "cursor.fileStart", input.KindMotion, "| JUMP-FILE-START"},
		{"Alt+J", "cursor.fileEnd", input.KindMotion, "| JUMP-FILE-END"},
		{"u", "edit.undo", input.KindHistory, "| UNDO"},
		{"r", "edit.redo", input.KindHistory, "| REDO"},
		{"p", "edit.paste", input.KindMutation, "| PASTE"},
	}

	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			ev := key.MustParse(tt.keys)
			a := r.Resolve(mode.Command, ev)
			assert.Equal(t, tt.name, a.Name)
			assert.Equal(t, tt.kind, a.Kind)
			assert.Equal(t, tt.label, a.Label)
			assert.Equal(t, ev, a.Event)
		})
	}
}

func TestResolveCommandModeOperands(t *testing.T) {
	r := NewDefaultRegistry()

	save := r.Resolve(mode.Command, key.MustParse("Ctrl+S"))
	assert.Equal(t, input.Save, save.Persist)
	saveQuit := r.Resolve(mode.Command, key.MustParse("Ctrl+Alt+S"))
	assert.Equal(t, input.SaveAndExit, saveQuit.Persist)

	assert.Equal(t, mode.Insert, r.Resolve(mode.Command, key.MustParse("i")).Mode)

	word := r.Resolve(mode.Command, key.MustParse("Alt+W"))
	assert.Equal(t, input.Motion{Unit: input.UnitWord, Direction: input.DirBack}, word.Motion)

	top := r.Resolve(mode.Command, key.MustParse("Ctrl+J"))
	assert.Equal(t, input.Motion{Unit: input.UnitDocument, Direction: input.DirTop}, top.Motion)

	startInsert := r.Resolve(mode.Command, key.MustParse("Ctrl+Shift+E"))
	assert.True(t, startInsert.ThenInsert)
	assert.Equal(t, input.Motion{Unit: input.UnitLine, Direction: input.DirHead}, startInsert.Motion)
	assert.False(t, r.Resolve(mode.Command, key.MustParse("Ctrl+E")).ThenInsert)

	assert.Equal(t, input.Redo, r.Resolve(mode.Command, key.MustParse("r")).History)
	assert.Equal(t, input.MutNewlineAbove, r.Resolve(mode.Command, key.MustParse("Alt+N")).Mutation)
}

func TestResolveWildcardModifiers(t *testing.T) {
	r := NewDefaultRegistry()

	// Plain-letter bindings that ignore modifiers.
	assert.Equal(t, "mode.insert", r.Resolve(mode.Command, key.NewRuneEvent('i', key.ModCtrl|key.ModAlt)).Name)
	assert.Equal(t, "edit.undo", r.Resolve(mode.Command, key.NewRuneEvent('u', key.ModAlt)).Name)
	assert.Equal(t, "editor.quit", r.Resolve(mode.Command, key.NewSpecialEvent(key.KeyEnd, key.ModCtrl)).Name)

	// Ctrl+Alt+Backspace wins over the Backspace motion.
	assert.Equal(t, "editor.quit", r.Resolve(mode.Command, key.NewSpecialEvent(key.KeyBackspace, key.ModCtrl|key.ModAlt|key.ModShift)).Name)
	assert.Equal(t, "cursor.left", r.Resolve(mode.Command, key.NewSpecialEvent(key.KeyBackspace, key.ModCtrl)).Name)

	// Shift is ignored for Ctrl+S but Ctrl+E requires it released.
	assert.Equal(t, "file.save", r.Resolve(mode.Command, key.NewRuneEvent('s', key.ModCtrl|key.ModShift)).Name)
	assert.Equal(t, input.KindUnhandled, r.Resolve(mode.Command, key.NewRuneEvent('e', key.ModCtrl|key.ModAlt)).Kind)
}

func TestResolveUnboundKeys(t *testing.T) {
	r := NewDefaultRegistry()

	ev := key.NewRuneEvent('z', key.ModNone)
	cmd := r.Resolve(mode.Command, ev)
	assert.Equal(t, input.KindUnhandled, cmd.Kind)
	assert.Equal(t, ev, cmd.Event)
	assert.Empty(t, cmd.Label)

	// j with Ctrl+Alt matches neither j nor Ctrl+J nor Alt+J.
	assert.Equal(t, input.KindUnhandled, r.Resolve(mode.Command, key.NewRuneEvent('j', key.ModCtrl|key.ModAlt)).Kind)

	for _, spec := range []string{"i", "u", "p", "Ctrl+S", "Enter", "End"} {
		ev := key.MustParse(spec)
		a := r.Resolve(mode.Insert, ev)
		assert.Equal(t, input.KindBufferEdit, a.Kind, spec)
		assert.Equal(t, ev, a.Event, spec)
		assert.True(t, a.Modifies(), spec)
	}
}

func TestResolveInsertMode(t *testing.T) {
	r := NewDefaultRegistry()

	esc := r.Resolve(mode.Insert, key.NewSpecialEvent(key.KeyEscape, key.ModNone))
	assert.Equal(t, input.KindModeChange, esc.Kind)
	assert.Equal(t, mode.Command, esc.Mode)

	escAlt := r.Resolve(mode.Insert, key.NewSpecialEvent(key.KeyEscape, key.ModAlt))
	assert.Equal(t, input.KindModeChange, escAlt.Kind)

	assert.Equal(t, input.KindSelectAll, r.Resolve(mode.Insert, key.MustParse("Ctrl+A")).Kind)
}

func TestModeRoundTripRestoresCommandTable(t *testing.T) {
	r := NewDefaultRegistry()
	m := mode.NewManager()
	before := r.Bindings(m.Current())

	m.EnterInsert()
	assert.NotEqual(t, before, r.Bindings(m.Current()))
	m.EnterCommand()

	assert.Equal(t, before, r.Bindings(m.Current()))
}

func TestRegisterOverrideTakesPrecedence(t *testing.T) {
	r := NewDefaultRegistry()

	override := NewKeymap("user-command", mode.Command).
		AddBinding(NewBinding("u", input.Simple("editor.quit", input.KindTerminate)))
	require.NoError(t, r.RegisterOverride(override))

	assert.Equal(t, input.KindTerminate, r.Resolve(mode.Command, key.MustParse("u")).Kind)
	assert.Equal(t, "edit.redo", r.Resolve(mode.Command, key.MustParse("r")).Name)

	kms := r.Keymaps(mode.Command)
	require.Len(t, kms, 2)
	assert.Equal(t, "user-command", kms[0].Name)

	// Re-registering replaces rather than duplicates.
	require.NoError(t, r.RegisterOverride(override))
	assert.Len(t, r.Keymaps(mode.Command), 2)

	r.Unregister("user-command")
	assert.Equal(t, "edit.undo", r.Resolve(mode.Command, key.MustParse("u")).Name)
	assert.Nil(t, r.Get("user-command"))
	assert.NotNil(t, r.Get("default-command"))
}

func TestRegisterRejectsInvalid(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(nil))
	assert.Error(t, r.Register(NewKeymap("bad", mode.Mode(9))))

	bad := NewKeymap("bad", mode.Command).AddBinding(NewBinding("Ctrl+", input.Simple("x", input.KindTerminate)))
	assert.Error(t, r.Register(bad))
	assert.Empty(t, r.Bindings(mode.Command))
}

func TestActionsVocabulary(t *testing.T) {
	actions := Actions()

	for _, name := range []string{"edit.undo", "cursor.lineStartInsert", "selection.cancel", "edit.cut", "mode.command"} {
		_, ok := actions[name]
		assert.True(t, ok, name)
	}
	assert.Equal(t, "| h", actions["cursor.left"].Label)
	assert.Equal(t, input.KindCancelSelection, actions["selection.cancel"].Kind)
}
