package stringr

// Sentinel coordinates for the open string boundaries.
const (
	StartOfString = 0  // before the first character
	EndOfString   = -1 // after the last character
)

// Span is a contiguous region of a subject string, in 1-based inclusive
// character (rune) offsets. Start may be the StartOfString sentinel and End
// the EndOfString sentinel. A zero-width span (an anchor match) has
// End == Start-1.
type Span struct {
	Start int
	End   int
}

// ZeroWidth reports whether the span covers no characters.
func (s Span) ZeroWidth() bool {
	return s.End == s.Start-1
}

// Len returns the number of characters the span covers, or 0 when End does
// not name a character at or after Start. Spans ending in EndOfString have
// no finite length and report 0.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	start := s.Start
	if start < 1 {
		start = 1
	}
	return s.End - start + 1
}

// InvertMatch returns the gaps complementary to matches: the region before
// the first match, then the region between each pair of adjacent matches.
// The output has the same length as the input. It is built from two
// independently shifted coordinate columns paired index-wise:
//
//	start column: 0, matches[0].End+1, ..., matches[n-2].End+1
//	end column:   matches[0].Start-1, ..., matches[n-2].Start-1, -1
//
// so the first gap starts at StartOfString and the last gap always ends at
// EndOfString, discarding the finite boundary a per-gap computation would
// produce for the final row. With a single match the result is exactly
// [{StartOfString, EndOfString}].
//
// matches must be sorted ascending by Start and non-overlapping. The
// precondition is not validated; a violated precondition yields a
// nonsensical but well-formed result. The input is not mutated.
func InvertMatch(matches []Span) []Span {
	gaps := make([]Span, len(matches))
	n := len(matches)
	for i := range gaps {
		if i == 0 {
			gaps[i].Start = StartOfString
		} else {
			gaps[i].Start = matches[i-1].End + 1
		}
		if i == n-1 {
			gaps[i].End = EndOfString
		} else {
			gaps[i].End = matches[i].Start - 1
		}
	}
	return gaps
}
