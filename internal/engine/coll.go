package engine

import (
	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

// CollEngine does locale-aware search via x/text's collation-based
// matcher: occurrences are found under the collation rules of a language
// tag rather than by byte equality, so canonically equivalent text
// matches regardless of its normalization form.
type CollEngine struct {
	pat *search.Pattern
}

// NewColl compiles pattern for searching under the collation rules of tag.
// The pattern must be non-empty; the stringr dispatch layer enforces that.
func NewColl(pattern string, tag language.Tag) *CollEngine {
	return &CollEngine{pat: search.New(tag).CompileString(pattern)}
}

func (e *CollEngine) Match(s string) bool {
	start, _ := e.pat.IndexString(s)
	return start >= 0
}

func (e *CollEngine) Find(s string) ([2]int, bool) {
	start, end := e.pat.IndexString(s)
	if start < 0 {
		return [2]int{}, false
	}
	return [2]int{start, end}, true
}

func (e *CollEngine) FindAll(s string) [][2]int {
	var locs [][2]int
	off := 0
	for off <= len(s) {
		start, end := e.pat.IndexString(s[off:])
		if start < 0 {
			break
		}
		locs = append(locs, [2]int{off + start, off + end})
		if end > start {
			off += end
		} else {
			off += end + 1 // zero-width result, force progress
		}
	}
	return locs
}
