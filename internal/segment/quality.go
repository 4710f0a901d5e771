package segment

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/req-extract/internal/lexicon"
)

// qualityThreshold is the minimum score, in tenths, of a valid sentence.
const qualityThreshold = 5

// listMarker matches a leading "1)", "a.", "b)" list marker.
var listMarker = regexp.MustCompile(`(?i)^\s*[0-9a-z][).]\s`)

// CheckQuality rates how much sentence reads like a requirement statement.
// A sentence with none of keywords (case-insensitive substring) scores 0.
// Otherwise the score adds 0.4 for the keyword, 0.2 for 10-50 words (0.1 for
// 5-100), 0.2 when it is neither shouted nor a lead-in ending in ':', 0.1
// when it does not open with a list marker, and 0.1 when it contains one of
// the language's modal verbs. Scores of 0.5 and above are valid.
func (e *Extractor) CheckQuality(sentence string, keywords []string, code string) (bool, float64) {
	lower := strings.ToLower(sentence)
	found := false
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(lower, kw) {
			found = true
			break
		}
	}
	if !found {
		return false, 0
	}

	points := 4
	switch n := WordCount(sentence); {
	case n >= 10 && n <= 50:
		points += 2
	case n >= 5 && n <= 100:
		points++
	}

	trimmed := strings.TrimSpace(sentence)
	if !isShouted(trimmed) && !strings.HasSuffix(trimmed, ":") {
		points += 2
	}
	if !listMarker.MatchString(sentence) {
		points++
	}
	if lexicon.Any(sentence, e.modalVerbs(code)) {
		points++
	}
	return points >= qualityThreshold, float64(points) / 10
}

// modalVerbs returns the modal verbs of code, or of the default language when
// code is unknown.
func (e *Extractor) modalVerbs(code string) []string {
	if p, err := e.registry.Get(code); err == nil {
		return p.ModalVerbs
	}
	if p, err := e.registry.Get(e.registry.Default()); err == nil {
		return p.ModalVerbs
	}
	return nil
}

// isShouted reports whether s has letters and all of them are uppercase.
func isShouted(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0 && cases.Upper(language.Und).String(s) == s
}
