package stringr

// Package-level convenience functions. Each compiles the pattern through a
// shared LRU cache, so calling them in a loop with the same pattern does
// not recompile it. For tight loops over many subjects, compile once with
// Compile and use the Matcher methods directly.

// Locate returns the span of the first occurrence of p in s.
func Locate(s string, p Pattern) (Span, bool, error) {
	m, err := cachedCompile(p)
	if err != nil {
		return Span{}, false, err
	}
	span, ok := m.Locate(s)
	return span, ok, nil
}

// LocateAll returns the spans of every occurrence of p in s.
func LocateAll(s string, p Pattern) ([]Span, error) {
	m, err := cachedCompile(p)
	if err != nil {
		return nil, err
	}
	return m.LocateAll(s), nil
}

// Detect reports whether p occurs in s.
func Detect(s string, p Pattern) (bool, error) {
	m, err := cachedCompile(p)
	if err != nil {
		return false, err
	}
	return m.Detect(s), nil
}

// Count returns the number of non-overlapping occurrences of p in s.
func Count(s string, p Pattern) (int, error) {
	m, err := cachedCompile(p)
	if err != nil {
		return 0, err
	}
	return m.Count(s), nil
}

// Extract returns the text of the first occurrence of p in s.
func Extract(s string, p Pattern) (string, bool, error) {
	m, err := cachedCompile(p)
	if err != nil {
		return "", false, err
	}
	text, ok := m.Extract(s)
	return text, ok, nil
}

// ExtractAll returns the text of every occurrence of p in s.
func ExtractAll(s string, p Pattern) ([]string, error) {
	m, err := cachedCompile(p)
	if err != nil {
		return nil, err
	}
	return m.ExtractAll(s), nil
}
