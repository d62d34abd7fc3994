package vig2p

import (
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ba", "ba"},
		{"mẹ", "mɛ˨˩"},
		{"nghe", "ŋɛ"},
		{"không", "kʰoŋ"},
		{"", ""},
		{"   ", ""},
		// runs of whitespace collapse to a single space
		{"xin  chào", "sin cao˨"},
		{"xin chào", "sin cao˨"},
		{"  xin chào  ", "sin cao˨"},
		// hyphenated words keep their syllable structure
		{"việt-nam", "viêt̚˨˩-nam"},
		// stray hyphens produce no empty segments
		{"-ba--mẹ-", "ba-mɛ˨˩"},
		// uppercase input is folded before parsing
		{"KHÔNG", "kʰoŋ"},
	}
	for _, tt := range tests {
		if got := Convert(tt.in); got != tt.want {
			t.Errorf("Convert(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Decomposed input (combining tone marks) must convert identically to
// precomposed input.
func TestConvertDecomposedInput(t *testing.T) {
	precomposed := "mẹ" // mẹ as a single code point
	decomposed := "mẹ" // m + e + combining dot below
	if got, want := Convert(decomposed), Convert(precomposed); got != want {
		t.Errorf("Convert(NFD) = %q, Convert(NFC) = %q", got, want)
	}
}

func TestConvertDeterministic(t *testing.T) {
	inputs := []string{"xin chào", "việt-nam", "nghe không", ""}
	for _, in := range inputs {
		a, b := Convert(in), Convert(in)
		if a != b {
			t.Errorf("Convert(%q) not deterministic: %q vs %q", in, a, b)
		}
	}
}

// The output must mirror the input's word and syllable structure.
func TestConvertStructurePreservation(t *testing.T) {
	in := "tiếng việt-nam  rất   hay"
	out := Convert(in)

	inWords := strings.Fields(in)
	outWords := strings.Split(out, " ")
	if len(outWords) != len(inWords) {
		t.Fatalf("Convert(%q) has %d words, want %d: %q", in, len(outWords), len(inWords), out)
	}
	for i, w := range inWords {
		var n int
		for _, tok := range strings.Split(w, "-") {
			if tok != "" {
				n++
			}
		}
		if got := len(strings.Split(outWords[i], "-")); got != n {
			t.Errorf("word %d: %d syllables in output, want %d", i, got, n)
		}
	}
}

func TestConvertWord(t *testing.T) {
	c := New()
	if got, want := c.ConvertWord("việt-nam"), "viêt̚˨˩-nam"; got != want {
		t.Errorf("ConvertWord(%q) = %q, want %q", "việt-nam", got, want)
	}
}

func TestConvertWithRules(t *testing.T) {
	rs, err := LoadRules(strings.NewReader("ɛ\te\nŋ\tng\n"))
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}
	c := New(WithRules(rs))
	if got, want := c.Convert("nghe"), "nge"; got != want {
		t.Errorf("Convert(%q) with rules = %q, want %q", "nghe", got, want)
	}
	// the default converter must stay untouched
	if got, want := Convert("nghe"), "ŋɛ"; got != want {
		t.Errorf("Convert(%q) = %q, want %q", "nghe", got, want)
	}
}
