// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"log/slog"
	"strings"

	"github.com/pdiddy/req-extract/internal/profile"
	"github.com/pdiddy/req-extract/pkg/types"
)

// State is a step in model resolution.
type State int

const (
	// Requested: looking up the model for the requested language.
	Requested State = iota
	// Loaded: a model is available.
	Loaded
	// FallbackToDefault: the requested model failed; trying the default language.
	FallbackToDefault
	// Unavailable: no model could be loaded; extraction yields nothing.
	Unavailable
)

func (s State) String() string {
	switch s {
	case Requested:
		return "requested"
	case Loaded:
		return "loaded"
	case FallbackToDefault:
		return "fallback-to-default"
	case Unavailable:
		return "unavailable"
	}
	return "unknown"
}

// Extractor splits page text into sentences within word-count bounds.
type Extractor struct {
	registry *profile.Registry
	cache    *ModelCache
}

// NewExtractor returns an Extractor that resolves profiles through registry
// and models through cache. A nil cache gets a fresh rule-based one.
func NewExtractor(registry *profile.Registry, cache *ModelCache) *Extractor {
	if cache == nil {
		cache = NewModelCache(nil)
	}
	return &Extractor{registry: registry, cache: cache}
}

// Cache returns the extractor's model cache.
func (e *Extractor) Cache() *ModelCache {
	return e.cache
}

// Extract segments text with the model for code and keeps sentences whose
// word count lies in [minWords, maxWords]. It never fails: when no model can
// be loaded it returns nil.
func (e *Extractor) Extract(text, code string, minWords, maxWords int) []types.Sentence {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	model, lang, state := e.resolve(code)
	if state != Loaded {
		slog.Warn("segment: no model available", "language", code)
		return nil
	}
	if lang != code {
		slog.Debug("segment: using fallback model", "requested", code, "language", lang)
	}

	var out []types.Sentence
	for _, s := range model.Split(text) {
		if s.WordCount < minWords || s.WordCount > maxWords {
			slog.Debug("segment: sentence outside word bounds",
				"language", lang, "words", s.WordCount, "min", minWords, "max", maxWords)
			continue
		}
		out = append(out, s)
	}
	return out
}

// resolve walks Requested → Loaded, or Requested → FallbackToDefault →
// Loaded | Unavailable. It returns the model and the language it belongs to.
func (e *Extractor) resolve(code string) (Model, string, State) {
	state := Requested
	lang := code
	for {
		switch state {
		case Requested:
			if m, ok := e.load(lang); ok {
				return m, lang, Loaded
			}
			if def := e.registry.Default(); def != lang {
				lang = def
				state = FallbackToDefault
				continue
			}
			return nil, lang, Unavailable
		case FallbackToDefault:
			if m, ok := e.load(lang); ok {
				return m, lang, Loaded
			}
			return nil, lang, Unavailable
		default:
			return nil, lang, state
		}
	}
}

func (e *Extractor) load(code string) (Model, bool) {
	p, err := e.registry.Get(code)
	if err != nil {
		slog.Debug("segment: profile lookup failed", "language", code, "err", err)
		return nil, false
	}
	m, err := e.cache.Get(p)
	if err != nil {
		return nil, false
	}
	return m, true
}
