package app

import (
	"github.com/dshills/runtext/internal/scroll"
	"github.com/dshills/runtext/internal/source"
)

// FragmentOptions are the resolved display settings for one fragment,
// global defaults already merged with per-fragment overrides.
type FragmentOptions struct {
	Width     int
	Separator string
	Repeat    bool
	Right     bool
	Rules     []scroll.Rule

	// Prefix and Suffix come from configuration and wrap the window on
	// every frame, in addition to whatever the source supplies. Tooltip
	// is a fixed tooltip overriding whatever the source renders.
	Prefix  string
	Suffix  string
	Tooltip string
}

// Fragment pairs a source with its window and iterator. A changed poll
// rebuilds the window and restarts the scroll from the beginning; an
// unchanged poll keeps the current position.
type Fragment struct {
	src  source.Source
	opts FragmentOptions

	win  *scroll.Window
	iter *scroll.Iter

	srcPrefix string
	srcSuffix string
}

// NewFragment fetches the source's initial content and builds the
// first window.
func NewFragment(src source.Source, opts FragmentOptions) (*Fragment, error) {
	f := &Fragment{src: src, opts: opts}
	content, err := src.Initial()
	if err != nil {
		return nil, err
	}
	if err := f.rebuild(content); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Fragment) rebuild(c source.Content) error {
	win, err := scroll.New(c.Running, f.opts.Separator, f.opts.Width, f.opts.Repeat, f.opts.Rules)
	if err != nil {
		return err
	}
	f.win = win
	if f.opts.Right {
		f.iter = win.IterBack()
	} else {
		f.iter = win.Iter()
	}
	f.srcPrefix = c.Prefix
	f.srcSuffix = c.Suffix
	return nil
}

// Tick polls the source, rebuilds on change, and returns the next
// decorated frame. A poll or rebuild error leaves the old window in
// place; the caller may keep stepping it.
func (f *Fragment) Tick() (string, error) {
	c, changed, err := f.src.Poll()
	if err != nil {
		return "", err
	}
	if changed {
		if err := f.rebuild(c); err != nil {
			return "", err
		}
	}
	return f.Step(), nil
}

// Step advances the scroll one frame without polling the source.
func (f *Fragment) Step() string {
	var frame string
	if f.opts.Right {
		frame = f.iter.NextBack()
	} else {
		frame = f.iter.Next()
	}
	return f.opts.Prefix + f.srcPrefix + frame + f.srcSuffix + f.opts.Suffix
}

// Seek repositions the iterator at a logical offset, the resume path
// for one-shot runs.
func (f *Fragment) Seek(pos int) {
	f.iter = f.win.IterAt(pos)
}

// Pos returns the logical offset to persist for a later resume.
func (f *Fragment) Pos() int {
	return f.iter.Pos()
}

// CycleText returns the window's cycle text, the identity a persisted
// position is valid against.
func (f *Fragment) CycleText() string {
	return f.win.CycleText()
}

// Tooltip returns the configured fixed tooltip, or the source's own
// when none is configured.
func (f *Fragment) Tooltip() string {
	if f.opts.Tooltip != "" {
		return f.opts.Tooltip
	}
	if t, ok := f.src.(interface{ Tooltip() string }); ok {
		return t.Tooltip()
	}
	return ""
}

// Close releases source resources when the source holds any.
func (f *Fragment) Close() {
	if c, ok := f.src.(interface{ Close() }); ok {
		c.Close()
	}
}
