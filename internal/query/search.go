package query

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// MaxSearchWords bounds how many words of a search term become conditions.
const MaxSearchWords = 8

// EscapeRegex escapes every regular expression metacharacter in s so that
// the result matches s literally.
func EscapeRegex(s string) string {
	return regexp.QuoteMeta(s)
}

// FuzzyPattern returns a pattern matching any text that contains the runes of
// s in order, with anything in between. Whitespace in s is ignored.
func FuzzyPattern(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(".*")
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	return b.String()
}

// SearchWords splits term on whitespace, dropping duplicates (case-insensitively)
// and keeping at most MaxSearchWords words.
func SearchWords(term string) []string {
	var words []string
	seen := make([]string, 0, MaxSearchWords)
	for _, w := range strings.Fields(term) {
		key := strings.ToLower(w)
		if slices.Contains(seen, key) {
			continue
		}
		seen = append(seen, key)
		words = append(words, w)
		if len(words) == MaxSearchWords {
			break
		}
	}
	return words
}

// Search builds a filter requiring every word of term to match at least one of
// fields. With fuzzy set, each word matches as a subsequence instead of a
// literal substring. A blank term or an empty field list yields nil.
func Search(term string, fuzzy bool, fields ...string) *Filter {
	if len(fields) == 0 {
		return nil
	}

	words := SearchWords(term)
	perWord := make([]*Filter, 0, len(words))
	for _, w := range words {
		pattern := EscapeRegex(w)
		if fuzzy {
			pattern = FuzzyPattern(w)
		}

		alternatives := make([]*Filter, 0, len(fields))
		for _, field := range fields {
			alternatives = append(alternatives, Match(field, pattern))
		}
		perWord = append(perWord, Or(alternatives...))
	}

	return And(perWord...)
}
