package classify

import (
	"log/slog"
	"regexp"

	"github.com/pdiddy/req-extract/internal/lexicon"
	"github.com/pdiddy/req-extract/pkg/types"
)

const (
	// patternWeight is the score of one category pattern hit. A keyword hit
	// scores 1.
	patternWeight = 3

	// securityPriorityBonus is added to the Security score of sentences
	// classified with security priority.
	securityPriorityBonus = 10
)

// Categorizer scores sentences against one language's category keywords
// and patterns.
type Categorizer struct {
	keywords map[types.Category][]string
	patterns map[types.Category][]*regexp.Regexp
}

// NewCategorizer returns a categorizer for p. Invalid category patterns are
// logged and skipped.
func NewCategorizer(p types.LanguageProfile) *Categorizer {
	c := &Categorizer{
		keywords: p.Categories,
		patterns: make(map[types.Category][]*regexp.Regexp, len(p.CategoryPatterns)),
	}
	for cat, sources := range p.CategoryPatterns {
		for _, src := range sources {
			re, err := regexp.Compile(src)
			if err != nil {
				slog.Warn("classify: invalid category pattern", "language", p.Code,
					"category", cat, "pattern", src, "err", err)
				continue
			}
			c.patterns[cat] = append(c.patterns[cat], re)
		}
	}
	return c
}

// Categorize returns the best-scoring category of text. Each distinct
// category keyword present scores 1 and each category pattern matched scores
// 3; security priority adds 10 to Security. Ties go to the category listed
// first in types.Categories. Text scoring nothing is Functional.
func (c *Categorizer) Categorize(text string, priority types.Priority) types.Category {
	scores := c.Scores(text, priority)
	best, bestScore := types.CategoryFunctional, 0
	for _, cat := range types.Categories {
		if scores[cat] > bestScore {
			best, bestScore = cat, scores[cat]
		}
	}
	return best
}

// Scores returns the score of every category for text.
func (c *Categorizer) Scores(text string, priority types.Priority) map[types.Category]int {
	scores := make(map[types.Category]int, len(types.Categories))
	for _, cat := range types.Categories {
		n := len(lexicon.Matches(text, c.keywords[cat]))
		for _, re := range c.patterns[cat] {
			if re.MatchString(text) {
				n += patternWeight
			}
		}
		scores[cat] = n
	}
	if priority == types.PrioritySecurity {
		scores[types.CategorySecurity] += securityPriorityBonus
	}
	return scores
}
