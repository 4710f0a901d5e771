// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"

	"github.com/pdiddy/req-extract/internal/classify"
	"github.com/pdiddy/req-extract/internal/detect"
	"github.com/pdiddy/req-extract/internal/lexicon"
	"github.com/pdiddy/req-extract/internal/normalize"
	"github.com/pdiddy/req-extract/internal/profile"
	"github.com/pdiddy/req-extract/internal/score"
	"github.com/pdiddy/req-extract/internal/segment"
	"github.com/pdiddy/req-extract/pkg/types"
)

const (
	defaultMinWords = 5
	defaultMaxWords = 100
)

var (
	// ErrInvalidThreshold is returned by Run for a confidence threshold
	// outside [0, 1].
	ErrInvalidThreshold = errors.New("confidence threshold must be within [0, 1]")

	// ErrInvalidWordBounds is returned by Run when MinWords or MaxWords is
	// negative or MaxWords is below MinWords.
	ErrInvalidWordBounds = errors.New("invalid sentence word bounds")
)

// Pipeline turns page texts into labeled requirement candidates. A Pipeline
// is safe for concurrent use; the segmentation model cache is its only
// shared mutable state.
type Pipeline struct {
	registry   *profile.Registry
	identifier *detect.Identifier
	extractor  *segment.Extractor
	priorities *classify.PriorityClassifier

	entropyMu sync.Mutex
	entropy   *ulid.MonotonicEntropy
}

// New returns a Pipeline over registry. A nil cache gets a fresh rule-based
// model cache.
func New(registry *profile.Registry, detection types.DetectionConfig, cache *segment.ModelCache) *Pipeline {
	return &Pipeline{
		registry:   registry,
		identifier: detect.New(registry, detection),
		extractor:  segment.NewExtractor(registry, cache),
		priorities: classify.NewPriorityClassifier(registry),
		entropy:    ulid.Monotonic(rand.Reader, 0),
	}
}

// Run extracts requirement candidates from the pages of one document.
//
// The document language is detected once from the leading pages unless
// cfg.LanguageMode forces one. Each page is normalized, segmented, matched
// against the requirement keywords, scored, and classified. Candidates below
// cfg.ConfidenceThreshold are dropped. Labels are "<document>-Req#<page>-<n>"
// with n counting from 0 on every page.
//
// Only invalid configuration is an error. When ctx is cancelled between pages
// Run returns the candidates found so far together with ctx.Err().
func (p *Pipeline) Run(ctx context.Context, document string, pages []string, cfg types.ExtractionConfig) (*types.ExtractionResult, error) {
	cfg, err := withDefaults(cfg)
	if err != nil {
		return nil, err
	}

	result := &types.ExtractionResult{
		RunID:      p.newRunID(),
		Document:   document,
		Pages:      len(pages),
		Candidates: []types.Candidate{},
	}

	cleaned := make([]string, len(pages))
	for i, page := range normalize.RemoveRunningHeaders(pages) {
		cleaned[i] = normalize.Normalize(page)
	}

	result.Detection = p.identifier.DetectWithFallback(leadingSample(cleaned, p.identifier.SampleSize()), cfg.LanguageMode)
	lang := result.Detection.Language
	slog.Debug("extract: document language", "document", document, "language", lang,
		"confidence", result.Detection.Confidence)

	prof, err := p.registry.Get(lang)
	if err != nil {
		prof, _ = p.registry.Get(p.registry.Default())
	}
	keywords := cfg.Keywords
	if len(keywords) == 0 {
		keywords = prof.RequirementKeywords
	}
	scorer := score.New(p.registry, cfg.Keywords)
	categorizer := classify.NewCategorizer(prof)

	for i, text := range cleaned {
		if err := ctx.Err(); err != nil {
			result.Error = err.Error()
			return result, err
		}
		page := i + 1
		counter := 0

		for _, s := range p.extractor.Extract(text, lang, cfg.MinWords, cfg.MaxWords) {
			if cfg.QualityFilter {
				if ok, q := p.extractor.CheckQuality(s.Text, keywords, lang); !ok {
					slog.Debug("extract: sentence rejected", "language", lang, "page", page,
						"quality", q, "reason", "quality check")
					continue
				}
			}

			matched := lexicon.Matches(s.Text, keywords)
			if len(matched) == 0 {
				continue
			}
			keyword := matched[0]

			confidence := scorer.Score(s.Text, keyword, s.WordCount, lang)
			if confidence < cfg.ConfidenceThreshold {
				slog.Debug("extract: candidate rejected", "language", lang, "page", page,
					"confidence", confidence, "reason", "below threshold")
				continue
			}

			priority := p.priorities.Classify(s.Text, lang)
			label := fmt.Sprintf("%s-Req#%d-%d", document, page, counter)
			counter++
			result.Candidates = append(result.Candidates, types.Candidate{
				ID:         stableID(document, page, s.Text),
				Index:      len(result.Candidates),
				Label:      label,
				Page:       page,
				Language:   lang,
				Keyword:    keyword,
				Confidence: confidence,
				Priority:   priority,
				Category:   categorizer.Categorize(s.Text, priority),
				Sentence:   s,
			})
		}
	}
	return result, nil
}

// withDefaults fills zero word bounds and validates cfg.
func withDefaults(cfg types.ExtractionConfig) (types.ExtractionConfig, error) {
	if math.IsNaN(cfg.ConfidenceThreshold) || cfg.ConfidenceThreshold < 0 || cfg.ConfidenceThreshold > 1 {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidThreshold, cfg.ConfidenceThreshold)
	}
	if cfg.MinWords == 0 {
		cfg.MinWords = defaultMinWords
	}
	if cfg.MaxWords == 0 {
		cfg.MaxWords = defaultMaxWords
	}
	if cfg.MinWords < 0 || cfg.MaxWords < cfg.MinWords {
		return cfg, fmt.Errorf("%w: [%d, %d]", ErrInvalidWordBounds, cfg.MinWords, cfg.MaxWords)
	}
	return cfg, nil
}

// leadingSample joins pages until the text holds at least n characters.
func leadingSample(pages []string, n int) string {
	var b strings.Builder
	count := 0
	for _, page := range pages {
		if count >= n {
			break
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(page)
		count += utf8.RuneCountInString(page)
	}
	return b.String()
}

func (p *Pipeline) newRunID() string {
	p.entropyMu.Lock()
	defer p.entropyMu.Unlock()
	return ulid.MustNew(ulid.Now(), p.entropy).String()
}

// stableID generates a deterministic ID from document, page, and sentence.
// The ID is the first 12 hex characters of SHA-256(document + page + text).
func stableID(document string, page int, text string) string {
	h := sha256.New()
	h.Write([]byte(document))
	fmt.Fprintf(h, "#%d#", page)
	h.Write([]byte(text))
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}
