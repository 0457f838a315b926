package stringr

// Substring extracts the text each span covers in s, resolving the
// StartOfString and EndOfString sentinels to the string boundaries. Empty
// spans (End before Start) yield "". Spans are expected in ascending order
// so the subject is scanned once; out-of-order spans still resolve
// correctly at the cost of a rescan.
func Substring(s string, spans []Span) []string {
	out := make([]string, len(spans))
	cur := runeCursor{s: s}
	for i, sp := range spans {
		start := sp.Start
		if start < 1 {
			start = 1
		}
		lo := cur.byteAtRune(start - 1)
		var hi int
		if sp.End == EndOfString {
			hi = len(s)
		} else {
			hi = cur.byteAtRune(sp.End)
		}
		if hi < lo {
			hi = lo
		}
		out[i] = s[lo:hi]
	}
	return out
}
