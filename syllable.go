package vig2p

import "strings"

// Tone represents one of the six Vietnamese tones.
type Tone int

const (
	ToneNgang Tone = iota // level, no diacritic
	ToneSac               // high rising
	ToneHuyen             // low falling
	ToneHoi               // dipping
	ToneNga               // creaky rising
	ToneNang              // heavy
)

// Mark returns the Chao tone-letter suffix for t, or "" when t is out
// of range.
func (t Tone) Mark() string {
	if t < 0 || int(t) >= len(toneMarks) {
		return ""
	}
	return toneMarks[t]
}

// Syllable holds the decomposition of one written syllable. Onset and
// Coda hold orthographic consonant clusters and may be empty; Nucleus
// holds the vowel cluster with tone marks stripped.
type Syllable struct {
	Onset   string
	Nucleus string
	Coda    string
	Tone    Tone
}

// ParseSyllable decomposes a single syllable token into onset, nucleus,
// coda and tone. The input must not contain whitespace or hyphens and
// is expected in composed (NFC) form; case is ignored.
//
// The tone is taken from the first tone-marked character found. The
// onset is the longest matching cluster at the front, then the coda is
// the longest matching cluster at the back of what remains; whatever
// is left over is the nucleus. Every input decomposes to something —
// an unparseable token simply ends up entirely in the nucleus.
func ParseSyllable(s string) Syllable {
	s = strings.ToLower(s)

	var tone Tone
	for _, r := range s {
		if t, ok := tones[r]; ok {
			tone = t
			break
		}
	}
	s = markStripper.Replace(s)

	var onset string
	for _, c := range onsets {
		if strings.HasPrefix(s, c) {
			onset = c
			s = s[len(c):]
			break
		}
	}

	// The onset is committed before the coda is looked for, so on
	// degenerate inputs like "ng" the whole token goes to the onset.
	var coda string
	for _, c := range codas {
		if strings.HasSuffix(s, c) {
			coda = c
			s = s[:len(s)-len(c)]
			break
		}
	}

	return Syllable{Onset: onset, Nucleus: s, Coda: coda, Tone: tone}
}

// IsSyllable reports whether s decomposes into a structurally valid
// Vietnamese syllable: after normalization the parse must leave a
// non-empty nucleus made only of vowel letters.
func IsSyllable(s string) bool {
	if s == "" {
		return false
	}
	syl := ParseSyllable(Normalize(s))
	if syl.Nucleus == "" {
		return false
	}
	for _, r := range syl.Nucleus {
		if !strings.ContainsRune(baseVowels, r) {
			return false
		}
	}
	return true
}
