// Package persist decides when buffer content is written back to its file.
package persist

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dshills/recoilless/internal/editor"
)

// Source supplies the lines to save.
type Source interface {
	Lines() []string
}

// Gate writes buffers to disk and keeps the modified flag and size label
// of the editor state in step with the file.
type Gate struct {
	log  logrus.FieldLogger
	perm os.FileMode
}

// Option configures a Gate.
type Option func(*Gate)

// WithLogger sets the logger used for save events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Gate) {
		if l != nil {
			g.log = l
		}
	}
}

// WithPerm sets the permissions used when the file has to be created.
func WithPerm(perm os.FileMode) Option {
	return func(g *Gate) {
		g.perm = perm
	}
}

// New creates a Gate.
func New(opts ...Option) *Gate {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	g := &Gate{log: discard, perm: 0o644}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Save writes src to st.FilePath when st is modified. An unmodified state
// is returned unchanged without touching the file.
func (g *Gate) Save(st editor.State, src Source) (editor.State, error) {
	if !st.Modified {
		g.log.WithField("path", st.FilePath).Debug("save skipped, buffer unmodified")
		return st, nil
	}
	return g.write(st, src)
}

// SaveAndExit writes src to st.FilePath whether or not st is modified.
// The caller ends the session afterwards.
func (g *Gate) SaveAndExit(st editor.State, src Source) (editor.State, error) {
	return g.write(st, src)
}

func (g *Gate) write(st editor.State, src Source) (editor.State, error) {
	f, err := os.OpenFile(st.FilePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, g.perm)
	if err != nil {
		return st, &WriteError{Path: st.FilePath, Err: err}
	}

	n, err := WriteLines(f, src.Lines())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return st, &WriteError{Path: st.FilePath, Err: err}
	}

	label, err := SizeLabel(st.FilePath)
	if err != nil {
		return st, err
	}

	g.log.WithFields(logrus.Fields{
		"path":  st.FilePath,
		"bytes": n,
	}).Info("buffer saved")

	st.Modified = false
	st.FileSize = label
	return st, nil
}

// WriteLines writes each line followed by a single line feed, including
// the last one. It returns the number of bytes written.
func WriteLines(w io.Writer, lines []string) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, line := range lines {
		c, err := bw.WriteString(line)
		n += int64(c)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// SizeLabel returns the size label for the file at path.
func SizeLabel(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &MetadataError{Path: path, Err: err}
	}
	return FormatSize(info.Size()), nil
}

// FormatSize formats a byte count as shown in the status line.
func FormatSize(n int64) string {
	return fmt.Sprintf("%d Bytes Saved", n)
}
