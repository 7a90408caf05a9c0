package similarity

import (
	"strings"
	"unicode"
)

// Normalize lowercases, trims, and collapses internal whitespace so that
// "  Refill   my PRESCRIPTION " and "refill my prescription" compare equal.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Tokenize splits a string into lowercase word tokens, dropping punctuation.
// "What's covered?" becomes ["what", "s", "covered"].
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// TokenSet returns the distinct tokens of a string.
func TokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range Tokenize(s) {
		set[tok] = struct{}{}
	}
	return set
}
