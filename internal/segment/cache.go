package segment

import (
	"log/slog"
	"sync"

	"github.com/pdiddy/req-extract/pkg/types"
)

// ModelCache loads each language's model at most once and keeps it until
// Unload or Reset. Failed loads are remembered too, so a model that cannot
// be built is not rebuilt on every page.
type ModelCache struct {
	loader Loader

	mu       sync.RWMutex
	models   map[string]Model
	failures map[string]error
}

// NewModelCache returns an empty cache backed by loader. A nil loader means
// RuleLoader.
func NewModelCache(loader Loader) *ModelCache {
	if loader == nil {
		loader = RuleLoader{}
	}
	return &ModelCache{
		loader:   loader,
		models:   make(map[string]Model),
		failures: make(map[string]error),
	}
}

// Get returns the model for p, loading it on first use. Models are keyed by
// profile code.
func (c *ModelCache) Get(p types.LanguageProfile) (Model, error) {
	c.mu.RLock()
	m, ok := c.models[p.Code]
	err := c.failures[p.Code]
	c.mu.RUnlock()
	if ok {
		return m, nil
	}
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.models[p.Code]; ok {
		return m, nil
	}
	if err := c.failures[p.Code]; err != nil {
		return nil, err
	}

	m, err = c.loader.Load(p)
	if err != nil {
		slog.Warn("segment: model load failed", "language", p.Code, "model", p.SegmentationModel, "err", err)
		c.failures[p.Code] = err
		return nil, err
	}
	slog.Debug("segment: model loaded", "language", p.Code, "model", p.SegmentationModel)
	c.models[p.Code] = m
	return m, nil
}

// Unload drops the cached model or remembered failure for code.
func (c *ModelCache) Unload(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.models, code)
	delete(c.failures, code)
}

// Reset drops every cached model and remembered failure.
func (c *ModelCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.models)
	clear(c.failures)
}

// Loaded returns the number of models currently cached.
func (c *ModelCache) Loaded() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.models)
}
