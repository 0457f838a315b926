// Package engine implements the search engines the stringr pattern kinds
// dispatch to. Engines work in byte offsets over a single subject string;
// the stringr package converts results to character coordinates.
package engine

// Engine finds pattern occurrences in a subject string. All offsets are
// byte offsets, half-open [start, end). A zero-width occurrence has
// start == end.
type Engine interface {
	// Find returns the first occurrence.
	Find(s string) ([2]int, bool)

	// FindAll returns every non-overlapping occurrence in ascending order.
	FindAll(s string) [][2]int

	// Match reports whether at least one occurrence exists. This is faster
	// than Find when only existence matters.
	Match(s string) bool
}

// toLocs converts regexp-style index pairs into offset pairs.
func toLocs(idx [][]int) [][2]int {
	if len(idx) == 0 {
		return nil
	}
	locs := make([][2]int, len(idx))
	for i, loc := range idx {
		locs[i] = [2]int{loc[0], loc[1]}
	}
	return locs
}
