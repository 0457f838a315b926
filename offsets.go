package stringr

import "unicode/utf8"

// runeCursor converts between byte offsets and rune counts within one
// subject string by scanning forward. Conversions must be requested in
// ascending order; an earlier offset restarts the scan from the beginning,
// so sorted span lists convert in a single pass over the subject.
type runeCursor struct {
	s       string
	bytePos int // current byte position
	runePos int // number of runes before bytePos
}

// runesBefore returns the number of runes in s before byte offset off.
func (c *runeCursor) runesBefore(off int) int {
	if off < c.bytePos {
		c.bytePos, c.runePos = 0, 0
	}
	for c.bytePos < off {
		_, size := utf8.DecodeRuneInString(c.s[c.bytePos:])
		if size == 0 {
			break
		}
		c.bytePos += size
		c.runePos++
	}
	return c.runePos
}

// byteAtRune returns the byte offset after the first n runes of s, clamped
// to len(s).
func (c *runeCursor) byteAtRune(n int) int {
	if n < c.runePos {
		c.bytePos, c.runePos = 0, 0
	}
	for c.runePos < n && c.bytePos < len(c.s) {
		_, size := utf8.DecodeRuneInString(c.s[c.bytePos:])
		c.bytePos += size
		c.runePos++
	}
	return c.bytePos
}

// spanFromLoc converts a half-open byte-offset pair into a 1-based
// inclusive rune Span. Zero-width locations become End == Start-1 spans.
func spanFromLoc(c *runeCursor, loc [2]int) Span {
	start := c.runesBefore(loc[0]) + 1
	end := c.runesBefore(loc[1])
	return Span{Start: start, End: end}
}
