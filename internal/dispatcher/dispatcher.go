package dispatcher

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dshills/recoilless/internal/editor"
	"github.com/dshills/recoilless/internal/engine/buffer"
	"github.com/dshills/recoilless/internal/input"
	"github.com/dshills/recoilless/internal/input/key"
	"github.com/dshills/recoilless/internal/input/mode"
	"github.com/dshills/recoilless/internal/persist"
)

// Buffer is the text buffer the dispatcher edits.
type Buffer interface {
	Cursor() (line, col int)
	MoveCursor(u input.Unit, d input.Direction) bool
	InsertNewline(where buffer.Relative)
	DeleteNextChar() bool
	DeleteNextWord() (bool, error)
	DeleteToLineEnd() (bool, error)
	StartSelection()
	SelectAll()
	CancelSelection()
	Cut() (bool, error)
	Paste() (bool, error)
	Undo() bool
	Redo() bool
	Input(ev key.Event) (bool, error)
	Lines() []string
}

// Result is the outcome of a dispatch.
type Result struct {
	// State is the editor state after the action.
	State editor.State

	// Quit is set when the session should end.
	Quit bool
}

// Dispatcher executes actions.
type Dispatcher struct {
	buf    Buffer
	modes  *mode.Manager
	gate   *persist.Gate
	config Config

	metrics *Metrics
	log     logrus.FieldLogger
}

// New creates a dispatcher over buf, modes and gate.
func New(buf Buffer, modes *mode.Manager, gate *persist.Gate, config Config) *Dispatcher {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	d := &Dispatcher{
		buf:    buf,
		modes:  modes,
		gate:   gate,
		config: config,
		log:    discard,
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// SetLogger sets the logger for dispatch events.
func (d *Dispatcher) SetLogger(l logrus.FieldLogger) {
	if l != nil {
		d.log = l
	}
}

// Metrics returns the metrics collector, or nil if metrics are disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Dispatch executes a on the buffer and returns the state that follows st.
// On error the returned state is the one reached before the failure.
func (d *Dispatcher) Dispatch(st editor.State, a input.Action) (res Result, err error) {
	start := time.Now()

	if d.config.RecoverFromPanic {
		defer func() {
			if r := recover(); r != nil {
				buf := make([]byte, 4096)
				n := runtime.Stack(buf, false)
				d.log.WithFields(logrus.Fields{
					"action": a.Name,
					"panic":  r,
					"stack":  string(buf[:n]),
				}).Error("action panicked")
				if d.metrics != nil {
					d.metrics.RecordPanic(a)
				}
				res = Result{State: d.sync(st)}
				err = &ActionError{Action: a.Name, Err: fmt.Errorf("%w: %v", ErrPanic, r)}
			}
		}()
	}

	res, err = d.execute(st, a)
	res.State = d.sync(res.State)

	elapsed := time.Since(start)
	if d.metrics != nil {
		d.metrics.RecordDispatch(a, elapsed, err != nil)
	}

	entry := d.log.WithFields(logrus.Fields{
		"action": a.Name,
		"kind":   a.Kind.String(),
	})
	if d.config.SlowThreshold > 0 && elapsed > d.config.SlowThreshold {
		entry.WithField("elapsed", elapsed).Warn("slow dispatch")
	}
	if err != nil {
		entry.WithError(err).Error("dispatch failed")
		return res, &ActionError{Action: a.Name, Err: err}
	}
	entry.Debug("dispatched")
	return res, nil
}

// sync copies the cursor and mode into st.
func (d *Dispatcher) sync(st editor.State) editor.State {
	st = st.WithCursor(d.buf.Cursor())
	st.Mode = d.modes.Current()
	return st
}

func (d *Dispatcher) execute(st editor.State, a input.Action) (Result, error) {
	if a.CancelsSelection() {
		d.buf.CancelSelection()
	}

	switch a.Kind {
	case input.KindUnhandled:
		return Result{State: st}, nil

	case input.KindModeChange:
		d.modes.Switch(a.Mode)

	case input.KindMotion:
		d.buf.MoveCursor(a.Motion.Unit, a.Motion.Direction)
		if a.ThenInsert {
			d.modes.EnterInsert()
		}

	case input.KindMutation:
		changed, err := d.mutate(a.Mutation)
		if err != nil {
			st.Modified = st.Modified || changed
			return Result{State: st}, &BufferError{Op: a.Mutation.String(), Err: err}
		}

	case input.KindHistory:
		switch a.History {
		case input.Undo:
			d.buf.Undo()
		case input.Redo:
			d.buf.Redo()
		default:
			return Result{State: st}, fmt.Errorf("%w: history op %d", ErrInvalidAction, a.History)
		}

	case input.KindBufferEdit:
		changed, err := d.buf.Input(a.Event)
		if err != nil {
			st.Modified = st.Modified || changed
			return Result{State: st}, &BufferError{Op: "input " + a.Event.String(), Err: err}
		}

	case input.KindPersist:
		return d.persist(st, a)

	case input.KindTerminate:
		return Result{State: st.WithLabel(a.Label), Quit: true}, nil

	case input.KindSelectAll:
		d.buf.SelectAll()

	case input.KindCancelSelection:
		d.buf.CancelSelection()

	default:
		return Result{State: st}, fmt.Errorf("%w: kind %s", ErrInvalidAction, a.Kind)
	}

	if a.Modifies() {
		st.Modified = true
	}
	return Result{State: st.WithLabel(a.Label)}, nil
}

// mutate applies m and reports whether the buffer content changed. The
// content can change even when err is non-nil.
func (d *Dispatcher) mutate(m input.Mutation) (changed bool, err error) {
	switch m {
	case input.MutDeleteChar:
		changed = d.buf.DeleteNextChar()
	case input.MutDeleteWord:
		changed, err = d.buf.DeleteNextWord()
	case input.MutDeleteLine:
		d.buf.MoveCursor(input.UnitLine, input.DirHead)
		changed, err = d.buf.DeleteToLineEnd()
	case input.MutDeleteParagraph:
		d.buf.StartSelection()
		d.buf.MoveCursor(input.UnitParagraph, input.DirForward)
		changed, err = d.buf.Cut()
		d.buf.CancelSelection()
	case input.MutNewlineBelow:
		d.buf.InsertNewline(buffer.Below)
		changed = true
	case input.MutNewlineAbove:
		d.buf.InsertNewline(buffer.Above)
		changed = true
	case input.MutCut:
		changed, err = d.buf.Cut()
	case input.MutPaste:
		changed, err = d.buf.Paste()
	default:
		return false, fmt.Errorf("%w: mutation %s", ErrInvalidAction, m)
	}
	return changed, err
}

func (d *Dispatcher) persist(st editor.State, a input.Action) (Result, error) {
	if d.gate == nil {
		return Result{State: st}, fmt.Errorf("%w: no persistence gate", ErrInvalidAction)
	}

	switch a.Persist {
	case input.Save:
		next, err := d.gate.Save(st, d.buf)
		return Result{State: next.WithLabel(a.Label)}, err
	case input.SaveAndExit:
		next, err := d.gate.SaveAndExit(st, d.buf)
		if err != nil {
			return Result{State: next}, err
		}
		return Result{State: next.WithLabel(a.Label), Quit: true}, nil
	default:
		return Result{State: st}, fmt.Errorf("%w: persist op %d", ErrInvalidAction, a.Persist)
	}
}
