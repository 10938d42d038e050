package output

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// LineWriter is a buffered line sink. Call Flush when done.
type LineWriter struct {
	w     *bufio.Writer
	lines int
}

// NewLineWriter returns a LineWriter appending to w.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: bufio.NewWriter(w)}
}

// WriteLine appends line and a newline.
func (lw *LineWriter) WriteLine(line string) error {
	if _, err := lw.w.WriteString(line); err != nil {
		return err
	}
	if err := lw.w.WriteByte('\n'); err != nil {
		return err
	}
	lw.lines++
	return nil
}

// Lines returns the number of lines written so far.
func (lw *LineWriter) Lines() int { return lw.lines }

// Flush writes any buffered data to the underlying writer.
func (lw *LineWriter) Flush() error {
	return lw.w.Flush()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsOutputPiped reports whether stdout is redirected away from a terminal.
func IsOutputPiped() bool {
	return !IsTerminal(os.Stdout)
}
