// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile holds the per-language configuration consulted by every
// pipeline stage: keyword sets, priority tiers, category keywords, patterns,
// and the segmentation model reference.
//
// A Registry loads its profiles once, lazily, on first use. Profiles come from
// the built-in defaults, optionally overridden by a YAML store. A missing or
// corrupt store never surfaces as an error: the registry falls back to the
// defaults and rewrites the store with them.
package profile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"

	"github.com/pdiddy/req-extract/pkg/types"
)

// DefaultPath is the well-known location of the profile store.
const DefaultPath = "config/languages.yaml"

// ErrNotFound is returned by Get for an unknown language code.
var ErrNotFound = errors.New("language profile not found")

// Registry is a lazily loaded, read-only set of language profiles.
// It is safe for concurrent use.
type Registry struct {
	path string

	once        sync.Once
	mu          sync.RWMutex
	profiles    map[string]types.LanguageProfile
	order       []string
	defaultCode string

	// preferred is the default set through SetDefault; it survives Reload.
	preferred string
}

// NewRegistry returns a registry backed by the YAML store at path. An empty
// path uses the built-in defaults only and never touches the filesystem.
func NewRegistry(path string) *Registry {
	return &Registry{path: path}
}

var (
	sharedOnce sync.Once
	shared     *Registry
)

// Shared returns the process-wide registry backed by DefaultPath.
func Shared() *Registry {
	sharedOnce.Do(func() {
		shared = NewRegistry(DefaultPath)
	})
	return shared
}

// Get returns the profile for code. The returned profile shares its slices
// with the registry and must not be modified.
func (r *Registry) Get(code string) (types.LanguageProfile, error) {
	r.ensureLoaded()
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[code]
	if !ok {
		return types.LanguageProfile{}, fmt.Errorf("%w: %q", ErrNotFound, code)
	}
	return p, nil
}

// Has reports whether code names a known language.
func (r *Registry) Has(code string) bool {
	_, err := r.Get(code)
	return err == nil
}

// Codes returns the known language codes: built-in languages first in their
// fixed order, then any additional store languages sorted by code.
func (r *Registry) Codes() []string {
	r.ensureLoaded()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Default returns the fallback language code.
func (r *Registry) Default() string {
	r.ensureLoaded()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultCode
}

// SetDefault makes code the fallback language, overriding the store's
// default. Unknown codes return ErrNotFound and leave the default unchanged.
func (r *Registry) SetDefault(code string) error {
	r.ensureLoaded()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[code]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, code)
	}
	r.defaultCode = code
	r.preferred = code
	return nil
}

// Reload re-reads the store, replacing the loaded profiles.
func (r *Registry) Reload() {
	r.ensureLoaded()
	profiles, order, def := r.load()
	r.mu.Lock()
	if _, ok := profiles[r.preferred]; ok {
		def = r.preferred
	}
	r.profiles, r.order, r.defaultCode = profiles, order, def
	r.mu.Unlock()
}

func (r *Registry) ensureLoaded() {
	r.once.Do(func() {
		profiles, order, def := r.load()
		r.mu.Lock()
		r.profiles, r.order, r.defaultCode = profiles, order, def
		r.mu.Unlock()
	})
}

// load merges the store over the built-in defaults. Store failures are
// logged and recovered by persisting the defaults.
func (r *Registry) load() (map[string]types.LanguageProfile, []string, string) {
	profiles := Defaults()
	order := slices.Clone(builtinOrder)
	def := DefaultLanguage

	if r.path == "" {
		return profiles, order, def
	}

	stored, storedDef, err := LoadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Info("profile: store missing, writing defaults", "path", r.path)
		} else {
			slog.Warn("profile: store unusable, falling back to defaults", "path", r.path, "err", err)
		}
		if werr := WriteDefaults(r.path); werr != nil {
			slog.Warn("profile: could not persist defaults", "path", r.path, "err", werr)
		}
		return profiles, order, def
	}

	var extra []string
	for code, p := range stored {
		if _, builtin := profiles[code]; !builtin {
			extra = append(extra, code)
		}
		profiles[code] = p
	}
	slices.Sort(extra)
	order = append(order, extra...)

	if _, ok := profiles[storedDef]; ok {
		def = storedDef
	} else {
		slog.Warn("profile: unknown default language in store, using built-in default",
			"path", r.path, "default", storedDef)
	}
	return profiles, order, def
}
