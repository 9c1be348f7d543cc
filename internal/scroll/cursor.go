package scroll

import "unicode/utf8"

// cursor is a directional, boundary-aware walker over a Window's backing
// text. Forward steps consult the left boundary map so a whole atomic
// run advances as one unit; backward steps consult the right map. Steps
// return the pre-step offset, which is what a window edge reads.
type cursor struct {
	w         *Window
	off       int
	exhausted bool
}

// stepForward advances one logical unit and returns the offset before
// the step. At the end of the backing text it sets the exhausted flag
// and stays put.
func (c *cursor) stepForward() int {
	pre := c.off
	if c.off >= len(c.w.text) {
		c.exhausted = true
		return pre
	}
	if n, ok := c.w.left[c.off]; ok {
		c.off += n
	} else {
		_, size := utf8.DecodeRuneInString(c.w.text[c.off:])
		c.off += size
	}
	c.exhausted = false
	return pre
}

// stepBackward retreats one logical unit and returns the offset before
// the step. At offset zero it sets the exhausted flag and stays put.
func (c *cursor) stepBackward() int {
	pre := c.off
	if c.off <= 0 {
		c.exhausted = true
		return pre
	}
	if n, ok := c.w.right[c.off]; ok {
		c.off -= n
	} else {
		_, size := utf8.DecodeLastRuneInString(c.w.text[:c.off])
		c.off -= size
	}
	c.exhausted = false
	return pre
}

// moveTo repositions the cursor and clears exhaustion. The offset must
// be a unit boundary of the backing text.
func (c *cursor) moveTo(off int) {
	c.off = off
	c.exhausted = false
}
