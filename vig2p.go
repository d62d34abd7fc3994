// Package vig2p converts written Vietnamese text into a phonetic
// (IPA-like) transcription, syllable by syllable.
//
// Each syllable is decomposed into an onset, a nucleus, a coda and a
// tone, and each component is mapped through fixed tables into a
// symbol sequence. Word and syllable boundaries of the input (spaces
// and hyphens) are preserved in the output.
package vig2p

import "strings"

// Converter transcribes Vietnamese text. The zero-option Converter
// uses only the built-in tables; all its state is immutable, so a
// single Converter may be shared across goroutines.
type Converter struct {
	rules *RuleSet
}

// Option configures a Converter.
type Option func(*Converter)

// WithRules applies rs to every rendered syllable, in rule order,
// after the built-in tables have produced their symbols.
func WithRules(rs *RuleSet) Option {
	return func(c *Converter) { c.rules = rs }
}

// New returns a Converter with the given options applied.
func New(opts ...Option) *Converter {
	c := &Converter{}
	for _, o := range opts {
		o(c)
	}
	return c
}

// defaultConverter backs the package-level Convert.
var defaultConverter = New()

// Convert transcribes text using the built-in tables only.
func Convert(text string) string {
	return defaultConverter.Convert(text)
}

// Convert transcribes text. Words are separated by whitespace and
// syllables within a word by hyphens; the output keeps the word and
// syllable structure, with runs of whitespace collapsed to a single
// space. Empty or whitespace-only input yields "".
func (c *Converter) Convert(text string) string {
	words := strings.Fields(Normalize(text))
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, c.convertWord(w))
	}
	return strings.Join(out, " ")
}

// ConvertWord transcribes a single word, which may contain
// hyphen-separated syllables.
func (c *Converter) ConvertWord(word string) string {
	return c.convertWord(Normalize(word))
}

func (c *Converter) convertWord(word string) string {
	var parts []string
	for _, tok := range strings.Split(word, "-") {
		if tok == "" {
			// stray hyphens produce empty tokens; skip them
			continue
		}
		ipa := ParseSyllable(tok).IPA()
		if c.rules != nil {
			ipa = c.rules.Apply(ipa)
		}
		parts = append(parts, ipa)
	}
	return strings.Join(parts, "-")
}
