package vig2p

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// IPA renders the syllable as a phonetic string: onset symbol, nucleus
// symbol, coda symbol, tone mark, in that order. Unrecognized onsets
// and codas contribute nothing; an unrecognized nucleus (a diphthong
// or triphthong outside the bare-vowel table) is emitted verbatim.
func (s Syllable) IPA() string {
	var b strings.Builder
	b.WriteString(onsetIPA[s.Onset])
	if v, ok := nucleusIPA[s.Nucleus]; ok {
		b.WriteString(v)
	} else {
		b.WriteString(s.Nucleus)
	}
	b.WriteString(codaIPA[s.Coda])
	b.WriteString(s.Tone.Mark())
	return b.String()
}

// Spell reassembles the syllable's written form. The tone's combining
// mark is placed on the first vowel letter and the result is composed
// back to NFC.
func (s Syllable) Spell() string {
	body := s.Onset + s.Nucleus + s.Coda
	if s.Tone <= ToneNgang || int(s.Tone) >= len(combiningMarks) {
		return body
	}
	mark := combiningMarks[s.Tone]
	runes := []rune(body)
	for i, r := range runes {
		if strings.ContainsRune(baseVowels, r) {
			return norm.NFC.String(string(runes[:i+1]) + mark + string(runes[i+1:]))
		}
	}
	return body
}
