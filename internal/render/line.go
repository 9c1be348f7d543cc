package render

import (
	"bufio"
	"fmt"
	"io"
)

// LineWriter redraws a single output line per frame. In place mode it
// rewinds with a carriage return so the line updates where it stands;
// otherwise every frame gets its own line, which suits pipes and status
// bars that read line by line.
type LineWriter struct {
	w       *bufio.Writer
	inPlace bool
	started bool
}

// NewLineWriter wraps w. When inPlace is true frames overwrite each
// other on one terminal line.
func NewLineWriter(w io.Writer, inPlace bool) *LineWriter {
	return &LineWriter{w: bufio.NewWriter(w), inPlace: inPlace}
}

// Write draws one frame and flushes it out.
func (l *LineWriter) Write(frame string) error {
	if l.inPlace {
		if l.started {
			if _, err := l.w.WriteString("\r"); err != nil {
				return fmt.Errorf("writing frame: %w", err)
			}
		}
		l.started = true
		if _, err := l.w.WriteString(frame); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
		return l.w.Flush()
	}
	if _, err := fmt.Fprintln(l.w, frame); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return l.w.Flush()
}

// Finish ends an in-place line with a newline so the shell prompt does
// not land on top of the last frame.
func (l *LineWriter) Finish() error {
	if !l.inPlace || !l.started {
		return nil
	}
	if _, err := l.w.WriteString("\n"); err != nil {
		return fmt.Errorf("finishing frame line: %w", err)
	}
	return l.w.Flush()
}
