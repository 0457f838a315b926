// Package stringr provides string-search helpers: locate the first or all
// occurrences of a pattern within a subject string, invert a set of match
// spans into the complementary gap spans, and extract substrings by span.
//
// A Pattern carries a kind tag that selects the search engine: fixed
// substring search, RE2 regular expressions, PCRE2 regular expressions,
// locale-aware collation search, or character/word/sentence/line boundary
// iteration. The matching engines themselves are external libraries; this
// package is the dispatch and result-shaping layer on top of them.
//
// All span coordinates are 1-based inclusive character (rune) offsets, with
// the sentinels StartOfString and EndOfString denoting the open string
// boundaries.
package stringr

import (
	"fmt"

	"golang.org/x/text/language"
)

// patternKind tags which search engine a Pattern selects.
type patternKind int

const (
	kindFixed patternKind = iota
	kindRegex
	kindPCRE
	kindColl
	kindBoundary
)

var kindNames = [...]string{
	kindFixed:    "fixed",
	kindRegex:    "regex",
	kindPCRE:     "pcre",
	kindColl:     "coll",
	kindBoundary: "boundary",
}

// BoundaryKind selects which text boundaries a Boundary pattern iterates.
type BoundaryKind int

const (
	Character BoundaryKind = iota // grapheme clusters
	Word                         // UAX #29 word segments
	Sentence                     // UAX #29 sentence segments
	LineBreak                    // UAX #14 line segments
)

// Pattern describes what to search for: a pattern kind tag plus the pattern
// text and options. Construct one with Fixed, Regex, PCRE, Coll or Boundary.
// The zero Pattern is a fixed pattern with empty text and does not compile.
type Pattern struct {
	kind       patternKind
	text       string
	ignoreCase bool
	lang       language.Tag
	boundary   BoundaryKind
}

// Option configures a Pattern.
type Option func(*Pattern)

// IgnoreCase enables case-insensitive matching. Fixed patterns use Unicode
// simple case folding; Regex and PCRE patterns set the engine's caseless
// flag. Coll and Boundary patterns ignore the option.
var IgnoreCase Option = func(p *Pattern) { p.ignoreCase = true }

// Fixed returns a pattern that matches text as a literal substring.
func Fixed(text string, opts ...Option) Pattern {
	return newPattern(Pattern{kind: kindFixed, text: text}, opts)
}

// Regex returns a pattern that matches the RE2 regular expression expr.
func Regex(expr string, opts ...Option) Pattern {
	return newPattern(Pattern{kind: kindRegex, text: expr}, opts)
}

// PCRE returns a pattern that matches the PCRE2 regular expression expr.
// Use it when the pattern needs lookaround, backreferences or other
// features RE2 does not support.
func PCRE(expr string, opts ...Option) Pattern {
	return newPattern(Pattern{kind: kindPCRE, text: expr}, opts)
}

// Coll returns a pattern that matches text under the collation rules of the
// given language tag, so that canonically equivalent strings compare equal.
func Coll(text string, tag language.Tag, opts ...Option) Pattern {
	return newPattern(Pattern{kind: kindColl, text: text, lang: tag}, opts)
}

// Boundary returns a pattern whose matches are the segments between
// consecutive text boundaries of kind b. It has no pattern text; every
// segment of the subject is a match.
func Boundary(b BoundaryKind) Pattern {
	return Pattern{kind: kindBoundary, boundary: b}
}

func newPattern(p Pattern, opts []Option) Pattern {
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

var boundaryNames = [...]string{
	Character: "character",
	Word:      "word",
	Sentence:  "sentence",
	LineBreak: "line_break",
}

// String renders the pattern in constructor form, e.g. regex("[0-9]+").
func (p Pattern) String() string {
	if p.kind == kindBoundary {
		if p.boundary >= 0 && int(p.boundary) < len(boundaryNames) {
			return "boundary(" + boundaryNames[p.boundary] + ")"
		}
		return fmt.Sprintf("boundary(%d)", p.boundary)
	}
	return fmt.Sprintf("%s(%q)", kindNames[p.kind], p.text)
}

// key is the cache identity of a pattern: kind plus everything that affects
// compilation.
func (p Pattern) key() string {
	return fmt.Sprintf("%d\x00%t\x00%s\x00%d\x00%s", p.kind, p.ignoreCase, p.lang, p.boundary, p.text)
}
