package vig2p

import "strings"

// onsets lists every initial consonant cluster of Vietnamese orthography.
// Longer clusters come before shorter ones sharing a prefix, so that
// prefix matching picks "ngh" over "ng" over "n".
var onsets = []string{
	"ngh",
	"th", "tr", "ch", "kh", "gh", "ng", "ph", "nh", "gi", "qu",
	"t", "đ", "k", "g", "p", "b", "n", "m", "l", "r", "s", "x", "h", "v",
}

// codas lists every final cluster, longest first. The single letters
// i, y and u are included so that off-glides are peeled off the
// nucleus the same way true finals are.
var codas = []string{
	"ch", "ng", "nh",
	"p", "t", "c", "m", "n", "i", "y", "u",
}

// baseVowels are the 12 unmarked vowel letters.
const baseVowels = "aăâeêioôơuưy"

// diacriticGroups associates each base vowel with its five tone-marked
// variants, listed in tone order (sắc, huyền, hỏi, ngã, nặng). The
// groups are disjoint: no marked character appears twice.
var diacriticGroups = []struct {
	marked string
	base   rune
}{
	{"áàảãạ", 'a'},
	{"ắằẳẵặ", 'ă'},
	{"ấầẩẫậ", 'â'},
	{"éèẻẽẹ", 'e'},
	{"ếềểễệ", 'ê'},
	{"íìỉĩị", 'i'},
	{"óòỏõọ", 'o'},
	{"ốồổỗộ", 'ô'},
	{"ớờởỡợ", 'ơ'},
	{"úùủũụ", 'u'},
	{"ứừửữự", 'ư'},
	{"ýỳỷỹỵ", 'y'},
}

var (
	// tones maps each tone-marked vowel character to its tone.
	tones = make(map[rune]Tone, 60)
	// markStripper rewrites every marked vowel to its base letter.
	markStripper *strings.Replacer
)

func init() {
	pairs := make([]string, 0, 120)
	for _, g := range diacriticGroups {
		for i, r := range []rune(g.marked) {
			tones[r] = Tone(i + 1)
			pairs = append(pairs, string(r), string(g.base))
		}
	}
	markStripper = strings.NewReplacer(pairs...)
}

// onsetIPA maps onset clusters to their phonetic symbols.
var onsetIPA = map[string]string{
	"t": "t", "th": "tʰ", "đ": "d", "tr": "ʈ", "ch": "c",
	"k": "k", "kh": "kʰ", "g": "ɣ", "gh": "ɣ",
	"ng": "ŋ", "ngh": "ŋ", "p": "p", "ph": "f",
	"b": "b", "n": "n", "nh": "ɲ", "m": "m",
	"l": "l", "r": "z", "s": "s", "x": "s",
	"h": "h", "v": "v", "gi": "z", "qu": "kw",
}

// nucleusIPA maps the 12 bare vowels to their phonetic symbols.
// Vowel clusters absent from this map are emitted verbatim.
var nucleusIPA = map[string]string{
	"a": "a", "ă": "æ", "â": "ə", "e": "ɛ",
	"ê": "e", "i": "i", "o": "ɔ", "ô": "o",
	"ơ": "ɤ", "u": "u", "ư": "ɯ", "y": "i",
}

// codaIPA maps final clusters to their phonetic symbols. Stops are
// rendered unreleased.
var codaIPA = map[string]string{
	"p": "p̚", "t": "t̚", "c": "k̚", "ch": "k̚",
	"m": "m", "n": "n", "ng": "ŋ", "nh": "ɲ",
}

// toneMarks holds the Chao tone-letter suffix for each tone, indexed
// by Tone value.
var toneMarks = [6]string{"", "˦", "˨", "˧˩", "˨˦", "˨˩"}

// combiningMarks holds the combining diacritic for each tone, indexed
// by Tone value, used when spelling a syllable back out.
var combiningMarks = [6]string{"", "́", "̀", "̉", "̃", "̣"}
