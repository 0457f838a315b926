package stringr

import (
	"fmt"

	"github.com/Isaac1989/stringr/internal/engine"
)

// Matcher is a compiled pattern ready to search subject strings. A Matcher
// holds no subject state and is safe for concurrent use.
type Matcher struct {
	pat Pattern
	eng engine.Engine
}

// Compile builds the search engine for a pattern.
// Selection logic:
//   - Fixed    -> literal substring search (strcase when case-insensitive)
//   - Regex    -> RE2 (stdlib regexp)
//   - PCRE     -> PCRE2 via pure Go port
//   - Coll     -> collation search (x/text)
//   - Boundary -> UAX #29 / UAX #14 segmentation (uniseg)
func Compile(p Pattern) (*Matcher, error) {
	eng, err := newEngine(p)
	if err != nil {
		return nil, err
	}
	return &Matcher{pat: p, eng: eng}, nil
}

// MustCompile is like Compile but panics on error. It simplifies package
// variables holding matchers for known-good patterns.
func MustCompile(p Pattern) *Matcher {
	m, err := Compile(p)
	if err != nil {
		panic("stringr: Compile(" + p.String() + "): " + err.Error())
	}
	return m
}

func newEngine(p Pattern) (engine.Engine, error) {
	switch p.kind {
	case kindFixed:
		if p.text == "" {
			return nil, fmt.Errorf("stringr: empty fixed pattern")
		}
		return engine.NewFixed(p.text, p.ignoreCase), nil
	case kindRegex:
		e, err := engine.NewRegex(p.text, p.ignoreCase)
		if err != nil {
			return nil, fmt.Errorf("stringr: compile %s: %w", p, err)
		}
		return e, nil
	case kindPCRE:
		e, err := engine.NewPCRE(p.text, p.ignoreCase)
		if err != nil {
			return nil, fmt.Errorf("stringr: compile %s: %w", p, err)
		}
		return e, nil
	case kindColl:
		if p.text == "" {
			return nil, fmt.Errorf("stringr: empty collation pattern")
		}
		return engine.NewColl(p.text, p.lang), nil
	case kindBoundary:
		// BoundaryKind constants mirror engine.Boundary order.
		e, err := engine.NewBoundary(engine.Boundary(p.boundary))
		if err != nil {
			return nil, fmt.Errorf("stringr: compile %s: %w", p, err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("stringr: unknown pattern kind %d", p.kind)
	}
}

// Pattern returns the pattern the matcher was compiled from.
func (m *Matcher) Pattern() Pattern {
	return m.pat
}

// Locate returns the span of the first occurrence of the pattern in s.
func (m *Matcher) Locate(s string) (Span, bool) {
	loc, ok := m.eng.Find(s)
	if !ok {
		return Span{}, false
	}
	cur := runeCursor{s: s}
	return spanFromLoc(&cur, loc), true
}

// LocateAll returns the spans of every non-overlapping occurrence of the
// pattern in s, in ascending order. It returns nil when there is none.
func (m *Matcher) LocateAll(s string) []Span {
	locs := m.eng.FindAll(s)
	if len(locs) == 0 {
		return nil
	}
	spans := make([]Span, len(locs))
	cur := runeCursor{s: s}
	for i, loc := range locs {
		spans[i] = spanFromLoc(&cur, loc)
	}
	return spans
}

// Detect reports whether the pattern occurs in s.
func (m *Matcher) Detect(s string) bool {
	return m.eng.Match(s)
}

// Count returns the number of non-overlapping occurrences of the pattern
// in s.
func (m *Matcher) Count(s string) int {
	return len(m.eng.FindAll(s))
}

// Extract returns the text of the first occurrence of the pattern in s.
func (m *Matcher) Extract(s string) (string, bool) {
	loc, ok := m.eng.Find(s)
	if !ok {
		return "", false
	}
	return s[loc[0]:loc[1]], true
}

// ExtractAll returns the text of every occurrence of the pattern in s.
func (m *Matcher) ExtractAll(s string) []string {
	locs := m.eng.FindAll(s)
	if len(locs) == 0 {
		return nil
	}
	out := make([]string, len(locs))
	for i, loc := range locs {
		out[i] = s[loc[0]:loc[1]]
	}
	return out
}

// Close releases engine resources. Only PCRE matchers hold any; calling
// Close on other matchers is a no-op. Do not close matchers obtained
// through the package-level convenience functions, which share a cache.
func (m *Matcher) Close() {
	if c, ok := m.eng.(interface{ Close() }); ok {
		c.Close()
	}
}
