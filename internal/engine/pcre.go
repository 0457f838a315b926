package engine

import "go.elara.ws/pcre"

// PCREEngine matches using PCRE2-compatible regexes via the pure Go pcre
// package. Supports lookahead, lookbehind, backreferences, atomic groups,
// and all PCRE2 features.
type PCREEngine struct {
	re *pcre.Regexp
}

// NewPCRE creates a PCREEngine from a PCRE2 pattern string.
func NewPCRE(pattern string, ignoreCase bool) (*PCREEngine, error) {
	var opts pcre.CompileOption
	if ignoreCase {
		opts |= pcre.Caseless
	}
	re, err := pcre.CompileOpts(pattern, opts)
	if err != nil {
		return nil, err
	}
	return &PCREEngine{re: re}, nil
}

func (e *PCREEngine) Match(s string) bool {
	return e.re.Match([]byte(s))
}

func (e *PCREEngine) Find(s string) ([2]int, bool) {
	locs := e.re.FindAllIndex([]byte(s), 1)
	if len(locs) == 0 {
		return [2]int{}, false
	}
	return [2]int{locs[0][0], locs[0][1]}, true
}

func (e *PCREEngine) FindAll(s string) [][2]int {
	return toLocs(e.re.FindAllIndex([]byte(s), -1))
}

// Close releases the compiled PCRE regex resources.
func (e *PCREEngine) Close() {
	if e.re != nil {
		e.re.Close()
	}
}
