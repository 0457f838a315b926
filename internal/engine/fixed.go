package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/charlievieth/strcase"
)

// FixedEngine does literal substring search. Case-sensitive search uses
// strings.Index; case-insensitive search uses strcase, which applies
// Unicode simple case folding without allocating a lowered copy of the
// subject.
type FixedEngine struct {
	pattern    string
	ignoreCase bool
	runeCount  int // rune length of pattern, for sizing folded matches
}

// NewFixed creates a FixedEngine for a single literal pattern.
func NewFixed(pattern string, ignoreCase bool) *FixedEngine {
	return &FixedEngine{
		pattern:    pattern,
		ignoreCase: ignoreCase,
		runeCount:  utf8.RuneCountInString(pattern),
	}
}

func (e *FixedEngine) Match(s string) bool {
	if e.ignoreCase {
		return strcase.Index(s, e.pattern) >= 0
	}
	return strings.Contains(s, e.pattern)
}

func (e *FixedEngine) Find(s string) ([2]int, bool) {
	pos, n := e.index(s)
	if pos < 0 {
		return [2]int{}, false
	}
	return [2]int{pos, pos + n}, true
}

func (e *FixedEngine) FindAll(s string) [][2]int {
	var locs [][2]int
	start := 0
	for start <= len(s) {
		pos, n := e.index(s[start:])
		if pos < 0 {
			break
		}
		pos += start
		locs = append(locs, [2]int{pos, pos + n})
		start = pos + n
		if n == 0 {
			start++ // avoid infinite loop on empty pattern
		}
	}
	return locs
}

// index returns the byte offset of the first occurrence in s and the byte
// length of the matched text, or (-1, 0) when there is none.
func (e *FixedEngine) index(s string) (int, int) {
	if !e.ignoreCase {
		i := strings.Index(s, e.pattern)
		if i < 0 {
			return -1, 0
		}
		return i, len(e.pattern)
	}

	i := strcase.Index(s, e.pattern)
	if i < 0 {
		return -1, 0
	}
	// Simple folding maps runes one-to-one, so the match covers exactly as
	// many runes as the pattern; its byte length can still differ.
	n := 0
	rest := s[i:]
	for j := 0; j < e.runeCount && n < len(rest); j++ {
		_, size := utf8.DecodeRuneInString(rest[n:])
		n += size
	}
	return i, n
}
