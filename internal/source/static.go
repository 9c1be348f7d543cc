package source

import (
	"fmt"
	"io"
	"os"
)

// Static is a source whose content never changes after construction:
// a string literal, a file read whole, or stdin read to EOF.
type Static struct {
	content Content
}

// NewString returns a static source around a literal.
func NewString(s string) *Static {
	return &Static{content: Content{Running: s}}
}

// NewFile reads path into memory and serves it as static content.
func NewFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &Static{content: Content{Running: string(data)}}, nil
}

// NewStdin reads standard input to EOF and serves it as static content.
func NewStdin() (*Static, error) {
	return NewReader(os.Stdin)
}

// NewReader reads r to EOF and serves it as static content.
func NewReader(r io.Reader) (*Static, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return &Static{content: Content{Running: string(data)}}, nil
}

// Initial returns the captured content.
func (s *Static) Initial() (Content, error) {
	return s.content, nil
}

// Poll never reports a change.
func (s *Static) Poll() (Content, bool, error) {
	return Content{}, false, nil
}
