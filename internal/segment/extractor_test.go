// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/req-extract/internal/profile"
	"github.com/pdiddy/req-extract/pkg/types"
)

// fakeLoader builds rule models but fails for the codes in fail.
type fakeLoader struct {
	mu    sync.Mutex
	fail  map[string]bool
	calls map[string]int
}

func newFakeLoader(fail ...string) *fakeLoader {
	f := &fakeLoader{fail: make(map[string]bool), calls: make(map[string]int)}
	for _, code := range fail {
		f.fail[code] = true
	}
	return f
}

func (f *fakeLoader) Load(p types.LanguageProfile) (Model, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[p.Code]++
	if f.fail[p.Code] {
		return nil, fmt.Errorf("loading %s: %w", p.Code, ErrModelUnavailable)
	}
	return NewRuleModel(p.Abbreviations), nil
}

func (f *fakeLoader) count(code string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[code]
}

func newExtractor(loader Loader) *Extractor {
	return NewExtractor(profile.NewRegistry(""), NewModelCache(loader))
}

const scenarioOne = "The system shall ensure that all requirements are properly validated and tracked."

func TestExtractWordBounds(t *testing.T) {
	e := newExtractor(nil)

	got := e.Extract("OK. "+scenarioOne, "en", 5, 100)
	require.Len(t, got, 1)
	assert.Equal(t, scenarioOne, got[0].Text)
	assert.Equal(t, 12, got[0].WordCount)

	assert.Empty(t, e.Extract("OK.", "en", 5, 100))
}

func TestExtractRejectsLongSentence(t *testing.T) {
	e := newExtractor(nil)
	long := "The system shall " + strings.TrimSpace(strings.Repeat("record ", 147)) + "."
	require.Equal(t, 150, WordCount(long))

	assert.Empty(t, e.Extract(long, "en", 5, 100))
	assert.Len(t, e.Extract(long, "en", 5, 150), 1)
}

func TestExtractEmptyText(t *testing.T) {
	e := newExtractor(nil)
	assert.Nil(t, e.Extract("", "en", 5, 100))
	assert.Nil(t, e.Extract(" \n\t", "fr", 5, 100))
}

func TestExtractFallback(t *testing.T) {
	text := "Le système doit garantir la sécurité des données. L'opérateur doit pouvoir vérifier l'état."

	t.Run("requested model loads", func(t *testing.T) {
		loader := newFakeLoader()
		got := newExtractor(loader).Extract(text, "fr", 5, 100)
		assert.Len(t, got, 2)
		assert.Equal(t, 1, loader.count("fr"))
		assert.Zero(t, loader.count("en"))
	})

	t.Run("falls back to default model", func(t *testing.T) {
		loader := newFakeLoader("fr")
		got := newExtractor(loader).Extract(text, "fr", 5, 100)
		assert.Len(t, got, 2)
		assert.Equal(t, 1, loader.count("en"))
	})

	t.Run("unknown language uses default model", func(t *testing.T) {
		loader := newFakeLoader()
		got := newExtractor(loader).Extract(text, "xx", 5, 100)
		assert.Len(t, got, 2)
		assert.Equal(t, 1, loader.count("en"))
	})

	t.Run("no model available", func(t *testing.T) {
		loader := newFakeLoader("fr", "en")
		e := newExtractor(loader)
		assert.Empty(t, e.Extract(text, "fr", 5, 100))
		assert.Empty(t, e.Extract(text, "fr", 5, 100))
		assert.Equal(t, 1, loader.count("fr"), "failures are memoized")
		assert.Equal(t, 1, loader.count("en"), "failures are memoized")
	})
}

func TestResolveStates(t *testing.T) {
	tests := []struct {
		name      string
		fail      []string
		code      string
		wantLang  string
		wantState State
	}{
		{"requested loads", nil, "de", "de", Loaded},
		{"fallback loads", []string{"de"}, "de", "en", Loaded},
		{"default requested and failing", []string{"en"}, "en", "en", Unavailable},
		{"fallback fails", []string{"de", "en"}, "de", "en", Unavailable},
		{"unknown code", nil, "zz", "en", Loaded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newExtractor(newFakeLoader(tt.fail...))
			m, lang, state := e.resolve(tt.code)
			assert.Equal(t, tt.wantLang, lang)
			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, state == Loaded, m != nil)
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "requested", Requested.String())
	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "fallback-to-default", FallbackToDefault.String())
	assert.Equal(t, "unavailable", Unavailable.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestModelCacheMemoizes(t *testing.T) {
	loader := newFakeLoader("fr")
	cache := NewModelCache(loader)
	reg := profile.NewRegistry("")
	en, err := reg.Get("en")
	require.NoError(t, err)
	fr, err := reg.Get("fr")
	require.NoError(t, err)

	m1, err := cache.Get(en)
	require.NoError(t, err)
	m2, err := cache.Get(en)
	require.NoError(t, err)
	assert.Same(t, m1, m2)
	assert.Equal(t, 1, loader.count("en"))

	_, err = cache.Get(fr)
	assert.ErrorIs(t, err, ErrModelUnavailable)
	_, err = cache.Get(fr)
	assert.ErrorIs(t, err, ErrModelUnavailable)
	assert.Equal(t, 1, loader.count("fr"))
	assert.Equal(t, 1, cache.Loaded())

	cache.Unload("fr")
	_, err = cache.Get(fr)
	assert.ErrorIs(t, err, ErrModelUnavailable)
	assert.Equal(t, 2, loader.count("fr"))

	cache.Reset()
	assert.Zero(t, cache.Loaded())
	_, err = cache.Get(en)
	require.NoError(t, err)
	assert.Equal(t, 2, loader.count("en"))
}

func TestModelCacheConcurrentGet(t *testing.T) {
	loader := newFakeLoader()
	cache := NewModelCache(loader)
	p, err := profile.NewRegistry("").Get("it")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.Get(p)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, loader.count("it"))
}

func TestRuleLoader(t *testing.T) {
	m, err := RuleLoader{}.Load(types.LanguageProfile{Code: "en", SegmentationModel: "rules/en"})
	require.NoError(t, err)
	assert.NotNil(t, m)

	for _, ref := range []string{"", "rules/", "spacy/en_core_web_sm"} {
		_, err := RuleLoader{}.Load(types.LanguageProfile{Code: "en", SegmentationModel: ref})
		assert.ErrorIs(t, err, ErrModelUnavailable, ref)
	}
}
