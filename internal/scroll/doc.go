// Package scroll implements the cyclic windowing engine behind a text
// marquee. Given content, a set of literal replacement rules, a separator
// and a window width, it produces the ordered (and reverse-ordered)
// sequence of fixed-width snippets that animate a smooth scroll.
//
// The engine works in logical units: one unit is a single rune, or one
// whole atomic run. An atomic run is the byte span left behind by a
// replacement rule; runs are never split across a window boundary, so a
// multi-character escape sequence always appears whole or not at all.
//
// A Window owns an immutable backing text. When the content does not fit
// the requested width (or repeat is forced), the backing text replicates
// the content-plus-separator cycle far enough that every window is one
// contiguous slice, with no wraparound arithmetic at read time. Iterators
// over a Window mutate only themselves; any number of them may read the
// same Window concurrently.
//
// Basic usage:
//
//	w, err := scroll.New("I am a running text", "|", 12, false, nil)
//	if err != nil {
//	    // zero width, empty repeated content, or an empty rule pattern
//	}
//	it := w.Iter()
//	for i := 0; i < 40; i++ {
//	    fmt.Println(it.Next())
//	}
//
// Construction is the only operation that can fail. Once a Window exists,
// every cursor step and every frame read succeeds.
package scroll
