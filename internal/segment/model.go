// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits normalized page text into sentences using a
// per-language segmentation model, filters them by word count, and scores
// sentence quality.
//
// Models are loaded through a Loader and cached in a ModelCache owned by the
// Extractor. When the requested language's model cannot be loaded the
// Extractor falls back to the default language's model, and when that fails
// too it returns no sentences.
package segment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/req-extract/pkg/types"
)

// ErrModelUnavailable is returned by a Loader that cannot construct the
// segmentation model a profile refers to.
var ErrModelUnavailable = errors.New("segmentation model unavailable")

// rulesPrefix is the SegmentationModel prefix served by RuleLoader.
const rulesPrefix = "rules/"

// Model splits text into sentences. Offsets in the returned sentences are
// byte offsets into text.
type Model interface {
	Split(text string) []types.Sentence
}

// Loader constructs the segmentation model referenced by a language profile.
// Loading may be expensive; callers cache the result.
type Loader interface {
	Load(p types.LanguageProfile) (Model, error)
}

// RuleLoader builds rule-based models for profiles whose SegmentationModel
// is "rules/<code>". Any other reference is unavailable.
type RuleLoader struct{}

// Load implements Loader.
func (RuleLoader) Load(p types.LanguageProfile) (Model, error) {
	ref := strings.TrimSpace(p.SegmentationModel)
	if !strings.HasPrefix(ref, rulesPrefix) || strings.TrimPrefix(ref, rulesPrefix) == "" {
		return nil, fmt.Errorf("loading %q for %s: %w", ref, p.Code, ErrModelUnavailable)
	}
	return NewRuleModel(p.Abbreviations), nil
}
