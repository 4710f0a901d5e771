// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/req-extract/internal/profile"
	"github.com/pdiddy/req-extract/pkg/types"
)

func TestPriorityClassify(t *testing.T) {
	c := NewPriorityClassifier(profile.NewRegistry(""))
	tests := []struct {
		name string
		text string
		code string
		want types.Priority
	}{
		{"shall is high", "The system shall ensure that all requirements are properly validated and tracked.", "en", types.PriorityHigh},
		{"security wins over shall", "The system shall enforce security for all users and maintain strict access control.", "en", types.PrioritySecurity},
		{"should is medium", "The report should be reviewed every week.", "en", types.PriorityMedium},
		{"may is low", "The user may export data.", "en", types.PriorityLow},
		{"no keyword is low", "Nothing special happens here.", "en", types.PriorityLow},
		{"whole words only", "The legacy insecure mode must be removed.", "en", types.PriorityHigh},
		{"french high tier", "Le système doit garantir que toutes les exigences sont remplies correctement.", "fr", types.PriorityHigh},
		{"german security", "Die Sicherheit muss jederzeit gewährleistet werden.", "de", types.PrioritySecurity},
		{"spanish medium", "El informe debería revisarse cada semana.", "es", types.PriorityMedium},
		{"italian security phrase", "Il sistema deve garantire il controllo degli accessi.", "it", types.PrioritySecurity},
		{"unknown language uses default", "The system shall work.", "xx", types.PriorityHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text, tt.code))
		})
	}
}

func TestPriorityDeterministic(t *testing.T) {
	c := NewPriorityClassifier(profile.NewRegistry(""))
	text := "The operator must change the password and should log out."
	first := c.Classify(text, "en")
	assert.Equal(t, types.PrioritySecurity, first)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, c.Classify(text, "en"))
	}
}

func englishCategorizer(t *testing.T) *Categorizer {
	t.Helper()
	p, err := profile.NewRegistry("").Get("en")
	require.NoError(t, err)
	return NewCategorizer(p)
}

func TestCategorize(t *testing.T) {
	c := englishCategorizer(t)
	tests := []struct {
		name     string
		text     string
		priority types.Priority
		want     types.Category
	}{
		{"security priority", "The system shall enforce security for all users and maintain strict access control.", types.PrioritySecurity, types.CategorySecurity},
		{"nothing scores", "The system shall ensure that all requirements are properly validated and tracked.", types.PriorityHigh, types.CategoryFunctional},
		{"performance pattern", "The server shall respond within 200 ms under peak load.", types.PriorityHigh, types.CategoryPerformance},
		{"testing patterns", "Each module shall be tested with automated test cases.", types.PriorityHigh, types.CategoryTesting},
		{"compliance patterns", "The device shall comply with IEC 62304.", types.PriorityHigh, types.CategoryCompliance},
		{"tie goes to earlier category", "The hazard log data must be kept.", types.PriorityHigh, types.CategorySafety},
		{"security bonus alone", "The operator must sign in daily.", types.PrioritySecurity, types.CategorySecurity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Categorize(tt.text, tt.priority))
		})
	}
}

func TestCategoryScores(t *testing.T) {
	c := englishCategorizer(t)
	scores := c.Scores("The system shall enforce security for all users and maintain strict access control.", types.PrioritySecurity)
	assert.Equal(t, 2+patternWeight+securityPriorityBonus, scores[types.CategorySecurity])
	assert.Len(t, scores, len(types.Categories))

	scores = c.Scores("The hazard log data must be kept.", types.PriorityLow)
	assert.Equal(t, 1, scores[types.CategorySafety])
	assert.Equal(t, 1, scores[types.CategoryData])
}

func TestCategorizeFrench(t *testing.T) {
	p, err := profile.NewRegistry("").Get("fr")
	require.NoError(t, err)
	c := NewCategorizer(p)
	assert.Equal(t, types.CategoryData, c.Categorize("Le système doit conserver les données pendant un an.", types.PriorityHigh))
}

func TestCategorizeLocalizedPatterns(t *testing.T) {
	reg := profile.NewRegistry("")
	tests := []struct {
		code string
		text string
		want types.Category
	}{
		{"fr", "Le serveur doit répondre en moins de 200 ms sous charge.", types.CategoryPerformance},
		{"de", "Das System muss innerhalb von 200 ms antworten.", types.CategoryPerformance},
		{"es", "Cada módulo debe ser probado con casos de prueba automatizados.", types.CategoryTesting},
		{"it", "Il dispositivo deve operare in conformità con la norma ISO 13485.", types.CategoryCompliance},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			p, err := reg.Get(tt.code)
			require.NoError(t, err)
			c := NewCategorizer(p)
			assert.Equal(t, tt.want, c.Categorize(tt.text, types.PriorityHigh))
			assert.GreaterOrEqual(t, c.Scores(tt.text, types.PriorityHigh)[tt.want], patternWeight)
		})
	}
}

func TestCategorizerSkipsInvalidPattern(t *testing.T) {
	c := NewCategorizer(types.LanguageProfile{
		Code: "xx",
		CategoryPatterns: map[types.Category][]string{
			types.CategoryTesting: {`(unclosed`, `(?i)\bqa\s+review\b`},
		},
	})
	assert.Equal(t, patternWeight, c.Scores("Every release needs a QA review.", types.PriorityLow)[types.CategoryTesting])
	assert.Equal(t, types.CategoryTesting, c.Categorize("Every release needs a QA review.", types.PriorityLow))
}
