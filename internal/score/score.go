// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score computes the confidence that a sentence is a requirement
// statement.
//
// Confidence starts at 1.0 and is multiplied by independent factors for
// sentence length, keyword density, requirement patterns, header shape,
// numeric density, and compliance or capability phrasing. The product is
// capped at 1.0.
package score

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/req-extract/internal/lexicon"
	"github.com/pdiddy/req-extract/internal/profile"
	"github.com/pdiddy/req-extract/pkg/types"
)

// Multipliers applied by the scorer.
const (
	lengthTooShort = 0.3 // fewer than 5 words
	lengthShort    = 0.7 // 5-7 words
	lengthLong     = 0.8 // 51-80 words
	lengthTooLong  = 0.5 // more than 80 words

	densityTwo   = 1.2 // two distinct keywords
	densityThree = 1.3 // three or more

	patternBoost = 1.15

	headerShouted = 0.4 // all caps, at most 6 words
	headerShort   = 0.5 // at most 3 words

	numericPenalty = 0.6
	numericRatio   = 0.3

	phraseBoost = 1.1
)

// Assessment is the breakdown of a confidence score. Every factor is 1.0 when
// it does not apply.
type Assessment struct {
	Confidence float64
	Length     float64
	Density    float64
	Pattern    float64
	Header     float64
	Numeric    float64
	Compliance float64
	Capability float64
}

// Scorer scores sentences against language profiles.
type Scorer struct {
	registry *profile.Registry
	keywords []string

	mu       sync.Mutex
	patterns map[string][]*regexp.Regexp
}

// New returns a Scorer. keywords is the configured requirement keyword set
// used for the density factor; when empty, each language's own requirement
// keywords are used.
func New(registry *profile.Registry, keywords []string) *Scorer {
	return &Scorer{
		registry: registry,
		keywords: keywords,
		patterns: make(map[string][]*regexp.Regexp),
	}
}

// Score returns the confidence in [0, 1] that text is a requirement.
// keyword is the configured keyword that selected the sentence; wordCount is
// the sentence's word count as computed by the extractor.
func (s *Scorer) Score(text, keyword string, wordCount int, code string) float64 {
	return s.Assess(text, keyword, wordCount, code).Confidence
}

// Assess scores text and reports every factor that contributed.
func (s *Scorer) Assess(text, keyword string, wordCount int, code string) Assessment {
	p := s.profile(code)
	a := Assessment{
		Length:     lengthFactor(wordCount),
		Density:    1,
		Pattern:    1,
		Header:     headerFactor(text, wordCount),
		Numeric:    1,
		Compliance: 1,
		Capability: 1,
	}

	keywords := s.keywords
	if len(keywords) == 0 {
		keywords = p.RequirementKeywords
	}
	found := lexicon.Matches(text, append(slices.Clone(keywords), keyword))
	switch {
	case len(found) >= 3:
		a.Density = densityThree
	case len(found) >= 2:
		a.Density = densityTwo
	}

	for _, re := range s.compiled(p) {
		if re.MatchString(text) {
			a.Pattern = patternBoost
			break
		}
	}

	if wordCount > 0 && float64(numericTokens(text)) > numericRatio*float64(wordCount) {
		a.Numeric = numericPenalty
	}
	if lexicon.Any(text, p.CompliancePhrases) {
		a.Compliance = phraseBoost
	}
	if lexicon.Any(text, p.CapabilityPhrases) {
		a.Capability = phraseBoost
	}

	c := a.Length * a.Density * a.Pattern * a.Header * a.Numeric * a.Compliance * a.Capability
	a.Confidence = min(max(c, 0), 1)
	return a
}

func lengthFactor(words int) float64 {
	switch {
	case words < 5:
		return lengthTooShort
	case words <= 7:
		return lengthShort
	case words <= 50:
		return 1
	case words <= 80:
		return lengthLong
	default:
		return lengthTooLong
	}
}

func headerFactor(text string, words int) float64 {
	switch {
	case words <= 6 && isShouted(text):
		return headerShouted
	case words <= 3:
		return headerShort
	}
	return 1
}

// isShouted reports whether text has letters and all of them are uppercase.
func isShouted(text string) bool {
	return strings.IndexFunc(text, unicode.IsLetter) >= 0 && cases.Upper(language.Und).String(text) == text
}

// numericTokens counts whitespace-separated tokens made of digits and
// punctuation only ("42", "3.5", "10%", "2024-01-01").
func numericTokens(text string) int {
	n := 0
	for _, tok := range strings.Fields(text) {
		if strings.IndexFunc(tok, unicode.IsDigit) >= 0 && strings.IndexFunc(tok, unicode.IsLetter) < 0 {
			n++
		}
	}
	return n
}

// profile returns the profile for code, or the default language's.
func (s *Scorer) profile(code string) types.LanguageProfile {
	if p, err := s.registry.Get(code); err == nil {
		return p
	}
	p, _ := s.registry.Get(s.registry.Default())
	return p
}

// compiled returns p's requirement patterns, compiling them on first use.
// Patterns that fail to compile are logged and skipped.
func (s *Scorer) compiled(p types.LanguageProfile) []*regexp.Regexp {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.patterns[p.Code]; ok {
		return res
	}
	res := make([]*regexp.Regexp, 0, len(p.RequirementPatterns))
	for _, expr := range p.RequirementPatterns {
		re, err := regexp.Compile(expr)
		if err != nil {
			slog.Warn("score: invalid requirement pattern", "language", p.Code, "pattern", expr, "err", err)
			continue
		}
		res = append(res, re)
	}
	s.patterns[p.Code] = res
	return res
}
