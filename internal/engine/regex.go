package engine

import "regexp"

// RegexEngine uses Go's RE2 regexp engine.
type RegexEngine struct {
	re *regexp.Regexp
}

// NewRegex creates a RegexEngine for the given pattern.
func NewRegex(pattern string, ignoreCase bool) (*RegexEngine, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &RegexEngine{re: re}, nil
}

func (e *RegexEngine) Match(s string) bool {
	return e.re.MatchString(s)
}

func (e *RegexEngine) Find(s string) ([2]int, bool) {
	loc := e.re.FindStringIndex(s)
	if loc == nil {
		return [2]int{}, false
	}
	return [2]int{loc[0], loc[1]}, true
}

func (e *RegexEngine) FindAll(s string) [][2]int {
	return toLocs(e.re.FindAllStringIndex(s, -1))
}
