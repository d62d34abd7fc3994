package vig2p

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns s lowercased and composed to NFC, so that text
// carrying combining tone marks parses the same as precomposed text.
func Normalize(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// reForeign matches runs of characters that are neither basic Latin
// letters, Vietnamese letters, nor whitespace.
var reForeign = regexp.MustCompile(`[^a-zA-ZÀ-ỹ\s]+`)

// Sanitize replaces every run of non-Vietnamese characters (digits,
// punctuation, symbols) with a single space and trims the result.
// Useful as a pre-cleaning step for raw transcript text.
func Sanitize(s string) string {
	return strings.TrimSpace(reForeign.ReplaceAllString(s, " "))
}

// StripMarks rewrites every tone-marked vowel in s to its base letter.
// Stripping is idempotent: already-bare text comes back unchanged.
func StripMarks(s string) string {
	return markStripper.Replace(s)
}
