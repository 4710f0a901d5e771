// Package lexicon matches keywords and phrases against text as whole words.
//
// Matching is case-insensitive and Unicode aware: a match must not be
// preceded or followed by a letter, digit, or underscore. Go's regexp \b is
// ASCII-only, which would treat "müssen" as ending after "m", so boundaries
// are checked on runes instead.
package lexicon

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Contains reports whether phrase occurs in text as a whole word or phrase.
func Contains(text, phrase string) bool {
	return containsLower(strings.ToLower(text), strings.ToLower(strings.TrimSpace(phrase)))
}

// Matches returns the distinct phrases from list that occur in text, in list
// order. Duplicate phrases (ignoring case) are reported once.
func Matches(text string, list []string) []string {
	if text == "" || len(list) == 0 {
		return nil
	}
	lower := strings.ToLower(text)
	seen := make(map[string]bool, len(list))
	var found []string
	for _, p := range list {
		lp := strings.ToLower(strings.TrimSpace(p))
		if lp == "" || seen[lp] {
			continue
		}
		seen[lp] = true
		if containsLower(lower, lp) {
			found = append(found, p)
		}
	}
	return found
}

// Any reports whether any phrase from list occurs in text.
func Any(text string, list []string) bool {
	lower := strings.ToLower(text)
	for _, p := range list {
		lp := strings.ToLower(strings.TrimSpace(p))
		if lp != "" && containsLower(lower, lp) {
			return true
		}
	}
	return false
}

// Words splits text into word tokens: maximal runs of letters and digits.
// Apostrophes and hyphens split words ("l'exigence" yields "l", "exigence").
func Words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !IsWordRune(r)
	})
}

// IsWordRune reports whether r can be part of a word.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Set builds a lowercase lookup set from list.
func Set(list []string) map[string]bool {
	set := make(map[string]bool, len(list))
	for _, s := range list {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = true
		}
	}
	return set
}

// containsLower searches an already lowercased phrase in already lowercased text.
func containsLower(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	from := 0
	for from <= len(text)-len(phrase) {
		i := strings.Index(text[from:], phrase)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(phrase)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		from = start + size
	}
	return false
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !IsWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !IsWordRune(r)
}
