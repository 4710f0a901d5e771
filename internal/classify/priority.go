// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify assigns a priority tier and a functional category to
// requirement sentences.
package classify

import (
	"github.com/pdiddy/req-extract/internal/lexicon"
	"github.com/pdiddy/req-extract/internal/profile"
	"github.com/pdiddy/req-extract/pkg/types"
)

// PriorityClassifier maps sentences to priority tiers using each language's
// keyword sets.
type PriorityClassifier struct {
	registry *profile.Registry
}

// NewPriorityClassifier returns a classifier backed by registry.
func NewPriorityClassifier(registry *profile.Registry) *PriorityClassifier {
	return &PriorityClassifier{registry: registry}
}

// Classify returns the priority of text in language code. Security keywords
// are checked first and win over every other tier; then high, then medium.
// Text matching none of them is low. Unknown codes use the default language.
func (c *PriorityClassifier) Classify(text, code string) types.Priority {
	p, err := c.registry.Get(code)
	if err != nil {
		p, _ = c.registry.Get(c.registry.Default())
	}
	switch {
	case lexicon.Any(text, p.SecurityKeywords):
		return types.PrioritySecurity
	case lexicon.Any(text, p.Priorities.High):
		return types.PriorityHigh
	case lexicon.Any(text, p.Priorities.Medium):
		return types.PriorityMedium
	}
	return types.PriorityLow
}
