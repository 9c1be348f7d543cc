package scroll

// Iter emits successive fixed-width frames of a Window, forward or
// backward, wrapping seamlessly at the cycle boundary. It pairs two
// cursors kept exactly width logical units apart, plus the static reset
// anchors a wrapped cycle restarts from. An Iter mutates only itself;
// create one per render session.
type Iter struct {
	w     *Window
	left  cursor
	right cursor

	initLeft  int // byte offset a wrapped backward cycle restarts from
	initRight int // right edge of the frame at logical offset zero

	pos int // logical offset of the frame the next Next call yields
}

// Iter returns an iterator anchored at the start of the cycle.
func (w *Window) Iter() *Iter {
	return w.IterAt(0)
}

// IterAt returns an iterator resumed at the given logical offset, taken
// modulo the cycle length. Offsets count logical units, so a resumed
// position is always a character or run boundary.
func (w *Window) IterAt(pos int) *Iter {
	it := &Iter{w: w, left: cursor{w: w}, right: cursor{w: w}}
	if w.fits {
		return it
	}
	it.initRight = w.advance(0, w.width)
	it.initLeft = w.advance(0, w.total-w.width)

	pos = ((pos % w.units) + w.units) % w.units
	l := w.advance(0, pos)
	it.left.moveTo(l)
	it.right.moveTo(w.advance(l, w.width))
	it.pos = pos
	return it
}

// IterBack returns an iterator anchored at the end of the cycle, the
// starting point for right-scrolling text. Iterating it backward yields
// the exact reverse of the forward sequence from Iter.
func (w *Window) IterBack() *Iter {
	it := w.IterAt(0)
	if w.fits {
		return it
	}
	it.left.moveTo(it.initLeft)
	it.right.moveTo(len(w.text))
	it.pos = w.units - 1
	return it
}

// Next steps both cursors forward once and returns the frame between
// their pre-step offsets. When the right cursor has run past the buffer
// end, both cursors first reset to the start anchors, realizing the
// cyclic wrap inside a single call. Every frame is exactly width logical
// units wide.
func (it *Iter) Next() string {
	if it.w.fits {
		return it.w.text
	}
	if it.right.exhausted {
		it.left.moveTo(0)
		it.right.moveTo(it.initRight)
		it.pos = 0
	}
	l := it.left.stepForward()
	r := it.right.stepForward()
	it.pos = (it.pos + 1) % it.w.units
	return it.w.text[l:r]
}

// NextBack is the mirror of Next: it steps both cursors backward and
// resets to the end anchors when the left cursor has run past offset
// zero.
func (it *Iter) NextBack() string {
	if it.w.fits {
		return it.w.text
	}
	if it.left.exhausted {
		it.left.moveTo(it.initLeft)
		it.right.moveTo(len(it.w.text))
		it.pos = it.w.units - 1
	}
	r := it.right.stepBackward()
	l := it.left.stepBackward()
	it.pos = (it.pos - 1 + it.w.units) % it.w.units
	return it.w.text[l:r]
}

// Range returns the current [left, right) byte offsets into the backing
// text without advancing.
func (it *Iter) Range() (int, int) {
	if it.w.fits {
		return 0, len(it.w.text)
	}
	return it.left.off, it.right.off
}

// Get returns the current frame without advancing.
func (it *Iter) Get() string {
	l, r := it.Range()
	return it.w.text[l:r]
}

// Pos returns the logical offset of the frame the next Next call would
// yield. It is the value to persist for resuming iteration in a later
// session.
func (it *Iter) Pos() int {
	if it.w.fits {
		return 0
	}
	return it.pos
}
