package scroll

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Errors reported by Window construction. After construction the engine
// is error-free: every step over a valid Window succeeds.
var (
	ErrZeroWidth    = errors.New("window width must be at least 1")
	ErrEmptyContent = errors.New("repeating window requires non-empty content")
	ErrEmptyPattern = errors.New("replacement rule pattern must not be empty")
)

// Window owns the backing text of a marquee and the boundary maps that
// keep atomic runs whole. A Window is immutable once built; rebuild it
// wholesale when the upstream content changes. Any number of iterators
// may read the same Window concurrently.
type Window struct {
	text  string
	left  runBounds
	right runBounds

	width int
	fits  bool
	units int // logical units in one full cycle (content + separator)
	cycle int // byte length of one full cycle
	total int // logical units in the whole backing text
}

// New builds a Window over content. The rules transform content and
// separator alike; the separator is appended once to mark the join point
// of a wrapped cycle. Width counts logical units and must be at least 1.
//
// When repeat is false and the transformed content already fits the
// width, the Window is static: the backing text is the content verbatim,
// without separator, and every frame returns it unchanged. Otherwise the
// backing text replicates the content-plus-separator cycle far enough
// that a window starting anywhere in the first cycle reads as one
// contiguous slice.
func New(content, separator string, width int, repeat bool, rules []Rule) (*Window, error) {
	if width < 1 {
		return nil, ErrZeroWidth
	}
	if repeat && content == "" {
		return nil, ErrEmptyContent
	}

	ctext, cleft, cright, err := applyReplacements(content, rules)
	if err != nil {
		return nil, err
	}
	cunits := countUnits(ctext, cleft)

	if !repeat && width >= cunits {
		return &Window{
			text:  ctext,
			left:  cleft,
			right: cright,
			width: width,
			fits:  true,
			units: cunits,
			cycle: len(ctext),
			total: cunits,
		}, nil
	}

	// The separator is transformed independently, so a rule never
	// matches across the content/separator join.
	stext, sleft, _, err := applyReplacements(separator, rules)
	if err != nil {
		return nil, err
	}

	cycleText := ctext + stext
	cycleLeft := make(runBounds, len(cleft)+len(sleft))
	for s, n := range cleft {
		cycleLeft[s] = n
	}
	for s, n := range sleft {
		cycleLeft[len(ctext)+s] = n
	}
	units := cunits + countUnits(stext, sleft)
	if units == 0 {
		// Rules can delete non-empty content down to nothing.
		return nil, ErrEmptyContent
	}

	// Any window starting within the first cycle must be contiguous, so
	// the backing text needs units+width-1 logical units: q extra whole
	// copies plus an r-unit prefix. Walking by units keeps the tail on a
	// run boundary, so a run is included whole or not at all.
	q := (width - 1) / units
	r := (width - 1) % units
	tail := advanceUnits(cycleText, cycleLeft, 0, r)

	var b strings.Builder
	b.Grow(len(cycleText)*(q+1) + tail)
	for i := 0; i <= q; i++ {
		b.WriteString(cycleText)
	}
	b.WriteString(cycleText[:tail])

	left := make(runBounds, len(cycleLeft)*(q+2))
	right := make(runBounds, len(cycleLeft)*(q+2))
	for c := 0; c <= q; c++ {
		base := c * len(cycleText)
		for s, n := range cycleLeft {
			left[base+s] = n
			right[base+s+n] = n
		}
	}
	base := (q + 1) * len(cycleText)
	for s, n := range cycleLeft {
		if s+n <= tail {
			left[base+s] = n
			right[base+s+n] = n
		}
	}

	return &Window{
		text:  b.String(),
		left:  left,
		right: right,
		width: width,
		units: units,
		cycle: len(cycleText),
		total: units + width - 1,
	}, nil
}

// Text returns the backing text.
func (w *Window) Text() string {
	return w.text
}

// CycleText returns one full cycle of the backing text: the transformed
// content plus separator in repeating mode, the transformed content in
// fits mode. Two Windows built from the same inputs have equal cycle
// text, which makes it the persisted identity for resume checks.
func (w *Window) CycleText() string {
	return w.text[:w.cycle]
}

// CycleLen returns the number of logical units in one full cycle.
func (w *Window) CycleLen() int {
	return w.units
}

// Width returns the window width in logical units.
func (w *Window) Width() int {
	return w.width
}

// Fits reports whether the content fits the width statically, with no
// scrolling required.
func (w *Window) Fits() bool {
	return w.fits
}

// advance returns the byte offset n logical units forward of off,
// clamped to the end of the backing text.
func (w *Window) advance(off, n int) int {
	return advanceUnits(w.text, w.left, off, n)
}

// countUnits counts logical units: one per rune, one per atomic run.
func countUnits(text string, left runBounds) int {
	units := 0
	for off := 0; off < len(text); units++ {
		if n, ok := left[off]; ok {
			off += n
		} else {
			_, size := utf8.DecodeRuneInString(text[off:])
			off += size
		}
	}
	return units
}

// advanceUnits walks n logical units forward of off and returns the
// resulting byte offset. The result is always a character boundary and
// never falls inside an atomic run.
func advanceUnits(text string, left runBounds, off, n int) int {
	for ; n > 0 && off < len(text); n-- {
		if l, ok := left[off]; ok {
			off += l
		} else {
			_, size := utf8.DecodeRuneInString(text[off:])
			off += size
		}
	}
	return off
}
