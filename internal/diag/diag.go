// Package diag provides the diagnostic stream writer shared by the CLIs.
//
// Diagnostics are plain lines on a writer separate from the dump sink.
// When the writer is a terminal, error and warning lines are colored for
// readability; when piped, text passes through untouched so diagnostic
// output stays machine-stable.
package diag

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Writer colors recognizable diagnostic lines on TTY output. It
// implements io.Writer so libraries can stay color-unaware.
type Writer struct {
	w        io.Writer
	colorize bool
}

// NewWriter wraps w. Color is enabled only when w is a terminal and the
// color library has not been globally disabled (NO_COLOR).
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, colorize: isTerminal(w)}
}

// isTerminal reports whether w is a TTY-backed file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

var (
	errorLine = color.New(color.FgRed)
	warnLine  = color.New(color.FgYellow)
)

// Write forwards p line by line, coloring lines that start with a known
// diagnostic prefix.
func (d *Writer) Write(p []byte) (int, error) {
	if !d.colorize {
		return d.w.Write(p)
	}

	written := 0
	rest := p
	for len(rest) > 0 {
		idx := bytes.IndexByte(rest, '\n')
		var line []byte
		if idx < 0 {
			line, rest = rest, nil
		} else {
			line, rest = rest[:idx+1], rest[idx+1:]
		}
		n, err := d.writeLine(line)
		// Color escape sequences inflate the underlying count; cap at
		// the line length so the count never exceeds bytes taken from p.
		if n > len(line) {
			n = len(line)
		}
		written += n
		if err != nil {
			return written, err
		}
	}
	return len(p), nil
}

func (d *Writer) writeLine(line []byte) (int, error) {
	text := string(line)
	switch {
	case strings.HasPrefix(text, "Error"):
		return errorLine.Fprint(d.w, text)
	case strings.HasPrefix(text, "Warning") || strings.HasPrefix(text, "Unknown"):
		return warnLine.Fprint(d.w, text)
	default:
		return io.WriteString(d.w, text)
	}
}
