package engine

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// Boundary selects which segmentation a BoundaryEngine iterates.
type Boundary int

const (
	Character Boundary = iota // grapheme clusters
	Word                      // UAX #29 word segments
	Sentence                  // UAX #29 sentence segments
	LineBreak                 // UAX #14 line segments
)

// BoundaryEngine treats every segment between two consecutive text
// boundaries as a match. There is no pattern text: the subject itself
// determines the matches, and word segmentation reports whitespace and
// punctuation runs as segments of their own.
type BoundaryEngine struct {
	kind Boundary
}

// NewBoundary creates a BoundaryEngine for the given boundary kind.
func NewBoundary(kind Boundary) (*BoundaryEngine, error) {
	switch kind {
	case Character, Word, Sentence, LineBreak:
		return &BoundaryEngine{kind: kind}, nil
	}
	return nil, fmt.Errorf("unknown boundary kind %d", kind)
}

// Match reports whether the subject has at least one segment, which is the
// case exactly when it is non-empty.
func (e *BoundaryEngine) Match(s string) bool {
	return s != ""
}

func (e *BoundaryEngine) Find(s string) ([2]int, bool) {
	if s == "" {
		return [2]int{}, false
	}
	seg, _, _ := e.next(s, -1)
	return [2]int{0, len(seg)}, true
}

func (e *BoundaryEngine) FindAll(s string) [][2]int {
	var locs [][2]int
	off := 0
	state := -1
	for s != "" {
		var seg string
		seg, s, state = e.next(s, state)
		if seg == "" {
			break
		}
		locs = append(locs, [2]int{off, off + len(seg)})
		off += len(seg)
	}
	return locs
}

// next returns the first segment of s and the remainder, threading the
// segmenter state between calls.
func (e *BoundaryEngine) next(s string, state int) (string, string, int) {
	switch e.kind {
	case Word:
		return uniseg.FirstWordInString(s, state)
	case Sentence:
		return uniseg.FirstSentenceInString(s, state)
	case LineBreak:
		seg, rest, _, newState := uniseg.FirstLineSegmentInString(s, state)
		return seg, rest, newState
	default:
		seg, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		return seg, rest, newState
	}
}
