// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/req-extract/pkg/types"
)

func TestRegistryBuiltinOnly(t *testing.T) {
	r := NewRegistry("")

	assert.Equal(t, []string{"en", "fr", "de", "es", "it"}, r.Codes())
	assert.Equal(t, "en", r.Default())

	p, err := r.Get("fr")
	require.NoError(t, err)
	assert.Equal(t, "Français", p.Name)
	assert.Contains(t, p.Priorities.High, "doit")
	assert.Equal(t, "rules/fr", p.SegmentationModel)

	_, err = r.Get("xx")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, r.Has("xx"))
	assert.True(t, r.Has("de"))
}

func TestRegistryMissingStoreWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "languages.yaml")
	r := NewRegistry(path)

	assert.Len(t, r.Codes(), 5)
	require.FileExists(t, path)

	profiles, def, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "en", def)
	assert.Len(t, profiles, 5)
	assert.Equal(t, Defaults()["de"].RequirementKeywords, profiles["de"].RequirementKeywords)
}

func TestRegistryCorruptStore(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid yaml", content: "languages: [unclosed"},
		{name: "no languages", content: "default: en\n"},
		{name: "language without code", content: "languages:\n  - name: Nameless\n    requirement_keywords: [must]\n"},
		{name: "language without keywords", content: "languages:\n  - code: nl\n    name: Nederlands\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "languages.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			r := NewRegistry(path)
			assert.Equal(t, []string{"en", "fr", "de", "es", "it"}, r.Codes())

			// The corrupt store is replaced by the defaults.
			profiles, _, err := LoadFile(path)
			require.NoError(t, err)
			assert.Len(t, profiles, 5)
		})
	}
}

func TestRegistryStoreOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "languages.yaml")
	custom := profileFile{
		Default: "nl",
		Languages: []types.LanguageProfile{
			{
				Code:                "en",
				Name:                "English (custom)",
				RequirementKeywords: []string{"shall"},
			},
			{
				Code:                "nl",
				Name:                "Nederlands",
				RequirementKeywords: []string{"moet", "moeten"},
				SegmentationModel:   "rules/nl",
			},
		},
	}
	data, err := yaml.Marshal(&custom)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	r := NewRegistry(path)
	assert.Equal(t, []string{"en", "fr", "de", "es", "it", "nl"}, r.Codes())
	assert.Equal(t, "nl", r.Default())

	en, err := r.Get("en")
	require.NoError(t, err)
	assert.Equal(t, "English (custom)", en.Name)
	assert.Equal(t, []string{"shall"}, en.RequirementKeywords)

	fr, err := r.Get("fr")
	require.NoError(t, err)
	assert.Equal(t, "Français", fr.Name, "languages absent from the store keep their defaults")
}

func TestRegistryUnknownStoreDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "languages.yaml")
	content := "default: zz\nlanguages:\n  - code: en\n    requirement_keywords: [shall]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r := NewRegistry(path)
	assert.Equal(t, "en", r.Default())
}

func TestRegistryReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "languages.yaml")
	r := NewRegistry(path)
	assert.False(t, r.Has("nl"))

	content := "languages:\n  - code: nl\n    requirement_keywords: [moet]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r.Reload()
	assert.True(t, r.Has("nl"))
}

func TestRegistrySetDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "languages.yaml")
	r := NewRegistry(path)

	require.NoError(t, r.SetDefault("de"))
	assert.Equal(t, "de", r.Default())

	err := r.SetDefault("zz")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "de", r.Default())

	r.Reload()
	assert.Equal(t, "de", r.Default(), "preferred default survives reload")
}

func TestRegistryConcurrentGet(t *testing.T) {
	r := NewRegistry(filepath.Join(t.TempDir(), "languages.yaml"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, code := range []string{"en", "fr", "de", "es", "it"} {
				_, err := r.Get(code)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}

func TestSharedIsSingleton(t *testing.T) {
	assert.Same(t, Shared(), Shared())
}

func TestDefaultsCommonWordsDisjoint(t *testing.T) {
	owner := make(map[string]string)
	for _, code := range builtinOrder {
		for _, w := range Defaults()[code].CommonWords {
			if prev, ok := owner[w]; ok {
				t.Errorf("common word %q appears in both %s and %s", w, prev, code)
			}
			owner[w] = code
		}
	}
}

func TestDefaultsCategoryPatternsCompile(t *testing.T) {
	for code, p := range Defaults() {
		assert.Len(t, p.CategoryPatterns, len(types.Categories), code)
		for cat, sources := range p.CategoryPatterns {
			for _, src := range sources {
				_, err := regexp.Compile(src)
				assert.NoError(t, err, "%s %s: %s", code, cat, src)
			}
		}
	}
}
