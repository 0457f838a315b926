package engine

import (
	"testing"

	"golang.org/x/text/language"
)

func TestFixedEngine_FindAll(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		ignoreCase bool
		subject    string
		want       [][2]int
	}{
		{
			name:    "single match",
			pattern: "world",
			subject: "hello world",
			want:    [][2]int{{6, 11}},
		},
		{
			name:    "adjacent matches",
			pattern: "ab",
			subject: "ababab",
			want:    [][2]int{{0, 2}, {2, 4}, {4, 6}},
		},
		{
			name:    "no overlap",
			pattern: "aa",
			subject: "aaa",
			want:    [][2]int{{0, 2}},
		},
		{
			name:    "no match",
			pattern: "xyz",
			subject: "hello world",
			want:    nil,
		},
		{
			name:    "empty subject",
			pattern: "a",
			subject: "",
			want:    nil,
		},
		{
			name:       "case insensitive ascii",
			pattern:    "hello",
			ignoreCase: true,
			subject:    "Hello hello HELLO",
			want:       [][2]int{{0, 5}, {6, 11}, {12, 17}},
		},
		{
			name:       "case insensitive multibyte",
			pattern:    "ärger",
			ignoreCase: true,
			subject:    "Ärger ärger",
			want:       [][2]int{{0, 6}, {7, 13}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewFixed(tt.pattern, tt.ignoreCase)
			got := e.FindAll(tt.subject)
			assertLocs(t, got, tt.want)

			wantMatch := len(tt.want) > 0
			if e.Match(tt.subject) != wantMatch {
				t.Errorf("Match() = %v, want %v", !wantMatch, wantMatch)
			}
		})
	}
}

func TestFixedEngine_Find(t *testing.T) {
	e := NewFixed("o", false)
	loc, ok := e.Find("foo")
	if !ok {
		t.Fatal("Find() found nothing")
	}
	if loc != [2]int{1, 2} {
		t.Errorf("Find() = %v, want [1,2]", loc)
	}

	if _, ok := e.Find("bar"); ok {
		t.Error("Find() reported a match in a subject without one")
	}
}

func TestRegexEngine_FindAll(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		ignoreCase bool
		subject    string
		want       [][2]int
	}{
		{
			name:    "digit runs",
			pattern: "[0-9]+",
			subject: "a1b22c333",
			want:    [][2]int{{1, 2}, {3, 5}, {6, 9}},
		},
		{
			name:    "anchor start is zero width",
			pattern: "^",
			subject: "abc",
			want:    [][2]int{{0, 0}},
		},
		{
			name:    "anchor end is zero width",
			pattern: "$",
			subject: "abc",
			want:    [][2]int{{3, 3}},
		},
		{
			name:       "case insensitive",
			pattern:    "go+",
			ignoreCase: true,
			subject:    "GO Goo go",
			want:       [][2]int{{0, 2}, {3, 6}, {7, 9}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewRegex(tt.pattern, tt.ignoreCase)
			if err != nil {
				t.Fatalf("NewRegex() error: %v", err)
			}
			assertLocs(t, e.FindAll(tt.subject), tt.want)
		})
	}
}

func TestRegexEngine_BadPattern(t *testing.T) {
	if _, err := NewRegex("[", false); err == nil {
		t.Error("expected error for unterminated character class")
	}
}

func TestPCREEngine_FindAll(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		ignoreCase bool
		subject    string
		want       [][2]int
	}{
		{
			name:    "lookahead",
			pattern: `foo(?=bar)`,
			subject: "foobar foobaz",
			want:    [][2]int{{0, 3}},
		},
		{
			name:    "lookbehind",
			pattern: `(?<=\$)\d+`,
			subject: "$15 and 20",
			want:    [][2]int{{1, 3}},
		},
		{
			name:       "caseless",
			pattern:    "abc",
			ignoreCase: true,
			subject:    "ABC abc",
			want:       [][2]int{{0, 3}, {4, 7}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewPCRE(tt.pattern, tt.ignoreCase)
			if err != nil {
				t.Fatalf("NewPCRE() error: %v", err)
			}
			defer e.Close()
			assertLocs(t, e.FindAll(tt.subject), tt.want)
		})
	}
}

func TestPCREEngine_Find(t *testing.T) {
	e, err := NewPCRE(`\d+`, false)
	if err != nil {
		t.Fatal(err)
	}
	defer e.Close()

	loc, ok := e.Find("ab 123 cd 456")
	if !ok {
		t.Fatal("Find() found nothing")
	}
	if loc != [2]int{3, 6} {
		t.Errorf("Find() = %v, want [3,6]", loc)
	}
}

func TestCollEngine_FindAll(t *testing.T) {
	e := NewColl("ab", language.Und)
	got := e.FindAll("ab ab xab")
	want := [][2]int{{0, 2}, {3, 5}, {7, 9}}
	assertLocs(t, got, want)
}

func TestCollEngine_CanonicalEquivalence(t *testing.T) {
	// Composed pattern, decomposed subject: the collation weighter
	// normalizes both, so they match.
	e := NewColl("\u00e9", language.Und)
	loc, ok := e.Find("cafe\u0301")
	if !ok {
		t.Fatal("Find() did not match decomposed form")
	}
	if loc[0] != 3 {
		t.Errorf("Find() start = %d, want 3", loc[0])
	}
	if !e.Match("cafe\u0301") {
		t.Error("Match() = false, want true")
	}
}

func TestBoundaryEngine_FindAll(t *testing.T) {
	tests := []struct {
		name    string
		kind    Boundary
		subject string
		want    [][2]int
	}{
		{
			name:    "graphemes ascii",
			kind:    Character,
			subject: "abc",
			want:    [][2]int{{0, 1}, {1, 2}, {2, 3}},
		},
		{
			name:    "grapheme with combining mark",
			kind:    Character,
			subject: "e\u0301x", // e + combining acute, then x
			want:    [][2]int{{0, 3}, {3, 4}},
		},
		{
			name:    "words include separator runs",
			kind:    Word,
			subject: "Hello world",
			want:    [][2]int{{0, 5}, {5, 6}, {6, 11}},
		},
		{
			name:    "empty subject",
			kind:    Word,
			subject: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewBoundary(tt.kind)
			if err != nil {
				t.Fatalf("NewBoundary() error: %v", err)
			}
			assertLocs(t, e.FindAll(tt.subject), tt.want)
		})
	}
}

func TestBoundaryEngine_Sentences(t *testing.T) {
	e, err := NewBoundary(Sentence)
	if err != nil {
		t.Fatal(err)
	}
	locs := e.FindAll("One two. Three four.")
	if len(locs) != 2 {
		t.Fatalf("got %d sentences, want 2: %v", len(locs), locs)
	}
	if locs[0][0] != 0 || locs[1][1] != 20 {
		t.Errorf("sentence spans = %v, want cover of [0,20)", locs)
	}
}

func TestBoundaryEngine_SegmentsTile(t *testing.T) {
	// Segments must tile the subject: back to back, no gaps.
	subjects := []string{"Hello, Go world!", "a", "né föo"}
	for _, kind := range []Boundary{Character, Word, Sentence, LineBreak} {
		for _, s := range subjects {
			e, err := NewBoundary(kind)
			if err != nil {
				t.Fatal(err)
			}
			prev := 0
			for _, loc := range e.FindAll(s) {
				if loc[0] != prev {
					t.Errorf("kind %d subject %q: segment starts at %d, want %d", kind, s, loc[0], prev)
				}
				prev = loc[1]
			}
			if prev != len(s) {
				t.Errorf("kind %d subject %q: segments end at %d, want %d", kind, s, prev, len(s))
			}
		}
	}
}

func TestBoundaryEngine_UnknownKind(t *testing.T) {
	if _, err := NewBoundary(Boundary(42)); err == nil {
		t.Error("expected error for unknown boundary kind")
	}
}

func assertLocs(t *testing.T, got, want [][2]int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d locations %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("location[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
