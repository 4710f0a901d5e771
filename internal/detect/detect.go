// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package detect identifies the language of document text.
//
// Every language known to the profile registry is scored with four weighted
// signals computed over a lowercased leading sample of the text:
//
//   - special-character density (weight 30)
//   - common-word overlap ratio (weight 40)
//   - requirement-keyword density per 1000 characters (weight 20)
//   - character-trigram overlap ratio (weight 10)
//
// Each signal is normalized to [0, 1] before weighting, so a language scores
// at most 100. The best-scoring language wins and its confidence is
// score/100. Text shorter than 50 characters is not scored.
//
// An Identifier is safe for concurrent use.
package detect

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/req-extract/internal/lexicon"
	"github.com/pdiddy/req-extract/internal/profile"
	"github.com/pdiddy/req-extract/pkg/types"
)

// Signal weights. They sum to 100.
const (
	weightSpecial = 30.0
	weightCommon  = 40.0
	weightKeyword = 20.0
	weightTrigram = 10.0
)

// Saturation points: the raw signal value at which a signal reaches 1.0.
const (
	// specialSaturation scales special-character density; 4% of letters saturates.
	specialSaturation = 25.0

	// commonSaturation scales the common-word ratio; one word in three saturates.
	commonSaturation = 3.0

	// keywordSaturation is the keyword density per 1000 characters that saturates.
	keywordSaturation = 10.0

	// trigramSaturation scales the trigram hit ratio; half of all trigrams saturates.
	trigramSaturation = 2.0
)

const (
	// DefaultSampleSize is the number of leading characters scored.
	DefaultSampleSize = 5000

	// DefaultMinConfidence is the fallback threshold used by DetectWithFallback.
	DefaultMinConfidence = 0.4

	// minTextLength is the trimmed length below which detection is skipped.
	minTextLength = 50

	// shortTextConfidence is reported for text too short to score.
	shortTextConfidence = 0.3
)

// Score is the detection score of one language.
type Score struct {
	Language   string  `json:"language"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`

	// Signals holds the normalized signal values before weighting.
	Signals Signals `json:"signals"`
}

// Signals are the four normalized detection signals in [0, 1].
type Signals struct {
	Special float64 `json:"special"`
	Common  float64 `json:"common"`
	Keyword float64 `json:"keyword"`
	Trigram float64 `json:"trigram"`
}

// Identifier scores text against the languages of a profile registry.
type Identifier struct {
	registry      *profile.Registry
	minConfidence float64
	sampleSize    int
}

// New returns an Identifier over registry. Zero-valued config fields take
// the package defaults.
func New(registry *profile.Registry, cfg types.DetectionConfig) *Identifier {
	id := &Identifier{
		registry:      registry,
		minConfidence: cfg.MinConfidence,
		sampleSize:    cfg.SampleSize,
	}
	if id.minConfidence <= 0 {
		id.minConfidence = DefaultMinConfidence
	}
	if id.sampleSize <= 0 {
		id.sampleSize = DefaultSampleSize
	}
	return id
}

// SampleSize returns the number of leading characters Detect examines.
func (id *Identifier) SampleSize() int {
	return id.sampleSize
}

// Detect identifies the language of the leading sample of text using the
// configured sample size.
func (id *Identifier) Detect(text string) types.DetectionResult {
	return id.DetectSample(text, id.sampleSize)
}

// DetectSample identifies the language of the first sampleSize characters of
// text. Trimmed text shorter than 50 characters yields the default language
// at confidence 0.3.
func (id *Identifier) DetectSample(text string, sampleSize int) types.DetectionResult {
	scores := id.DetectAll(text, sampleSize)
	if len(scores) == 0 {
		return types.DetectionResult{Language: id.registry.Default(), Confidence: shortTextConfidence}
	}
	return types.DetectionResult{Language: scores[0].Language, Confidence: scores[0].Confidence}
}

// DetectAll scores every known language and returns the scores ranked by
// descending score. Ties keep registry order. It returns nil for text too
// short to score.
func (id *Identifier) DetectAll(text string, sampleSize int) []Score {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minTextLength {
		return nil
	}
	if sampleSize <= 0 {
		sampleSize = id.sampleSize
	}

	f := newFeatures(leading(text, sampleSize))

	codes := id.registry.Codes()
	scores := make([]Score, 0, len(codes))
	for _, code := range codes {
		p, err := id.registry.Get(code)
		if err != nil {
			continue
		}
		sig := f.signals(p)
		total := weightSpecial*sig.Special + weightCommon*sig.Common +
			weightKeyword*sig.Keyword + weightTrigram*sig.Trigram
		scores = append(scores, Score{
			Language:   code,
			Score:      total,
			Confidence: min(1.0, total/100),
			Signals:    sig,
		})
	}

	slices.SortStableFunc(scores, func(a, b Score) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return scores
}

// DetectWithFallback returns (override, 1.0) when override names a known
// language. Otherwise it detects the language and, when the confidence is
// below the configured threshold, substitutes the default language while
// keeping the original confidence.
func (id *Identifier) DetectWithFallback(text, override string) types.DetectionResult {
	if override != "" && override != types.LanguageAuto && id.registry.Has(override) {
		return types.DetectionResult{Language: override, Confidence: 1.0}
	}

	res := id.Detect(text)
	if res.Confidence < id.minConfidence {
		return types.DetectionResult{Language: id.registry.Default(), Confidence: res.Confidence}
	}
	return res
}

// leading returns the first n runes of s.
func leading(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// features are the language-independent measurements of a text sample.
type features struct {
	runes    []rune
	letters  int
	words    []string
	trigrams []string
}

func newFeatures(sample string) features {
	lower := cases.Lower(language.Und).String(sample)
	f := features{runes: []rune(lower)}
	for _, r := range f.runes {
		if unicode.IsLetter(r) {
			f.letters++
		}
	}
	f.words = lexicon.Words(lower)
	f.trigrams = wordTrigrams(f.words)
	return f
}

func (f features) signals(p types.LanguageProfile) Signals {
	var sig Signals

	if f.letters > 0 && len(p.SpecialChars) > 0 {
		special := make(map[rune]bool, len(p.SpecialChars))
		for _, s := range p.SpecialChars {
			for _, r := range s {
				special[r] = true
			}
		}
		n := 0
		for _, r := range f.runes {
			if special[r] {
				n++
			}
		}
		sig.Special = min(1.0, float64(n)/float64(f.letters)*specialSaturation)
	}

	if len(f.words) > 0 {
		common := lexicon.Set(p.CommonWords)
		keywords := lexicon.Set(p.RequirementKeywords)
		var nCommon, nKeyword int
		for _, w := range f.words {
			if common[w] {
				nCommon++
			}
			if keywords[w] {
				nKeyword++
			}
		}
		sig.Common = min(1.0, float64(nCommon)/float64(len(f.words))*commonSaturation)
		if len(f.runes) > 0 {
			perThousand := float64(nKeyword) / float64(len(f.runes)) * 1000
			sig.Keyword = min(1.0, perThousand/keywordSaturation)
		}
	}

	if len(f.trigrams) > 0 && len(p.Trigrams) > 0 {
		profileTrigrams := make(map[string]bool, len(p.Trigrams))
		for _, t := range p.Trigrams {
			profileTrigrams[t] = true
		}
		hits := 0
		for _, t := range f.trigrams {
			if profileTrigrams[t] {
				hits++
			}
		}
		sig.Trigram = min(1.0, float64(hits)/float64(len(f.trigrams))*trigramSaturation)
	}

	return sig
}
