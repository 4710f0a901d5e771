package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckQuality(t *testing.T) {
	e := newExtractor(nil)
	tests := []struct {
		name      string
		sentence  string
		keywords  []string
		code      string
		wantValid bool
		wantScore float64
	}{
		{
			name:      "full marks",
			sentence:  scenarioOne,
			keywords:  []string{"shall", "must"},
			code:      "en",
			wantValid: true,
			wantScore: 1.0,
		},
		{
			name:      "no keyword",
			sentence:  "No keywords appear in this sentence at all.",
			keywords:  []string{"shall", "must"},
			code:      "en",
			wantValid: false,
			wantScore: 0,
		},
		{
			name:      "shouted list item with modal sits on threshold",
			sentence:  "1) MUST:",
			keywords:  []string{"must"},
			code:      "en",
			wantValid: true,
			wantScore: 0.5,
		},
		{
			name:      "shouted list item without modal",
			sentence:  "1) REQUIRED:",
			keywords:  []string{"required"},
			code:      "en",
			wantValid: false,
			wantScore: 0.4,
		},
		{
			name:      "keyword matches as substring",
			sentence:  "Marshall the fleet before leaving port today.",
			keywords:  []string{"shall"},
			code:      "en",
			wantValid: true,
			wantScore: 0.8,
		},
		{
			name:      "french modal verb",
			sentence:  "Le système doit garantir que toutes les exigences sont remplies correctement.",
			keywords:  []string{"doit"},
			code:      "fr",
			wantValid: true,
			wantScore: 1.0,
		},
		{
			name:      "unknown language uses default modals",
			sentence:  "The operator must confirm the alarm.",
			keywords:  []string{"must"},
			code:      "xx",
			wantValid: true,
			wantScore: 0.9,
		},
		{
			name:      "lead-in ending with colon",
			sentence:  "The following items shall be provided by the supplier:",
			keywords:  []string{"shall"},
			code:      "en",
			wantValid: true,
			wantScore: 0.7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, score := e.CheckQuality(tt.sentence, tt.keywords, tt.code)
			assert.Equal(t, tt.wantValid, valid)
			assert.InDelta(t, tt.wantScore, score, 1e-9)
		})
	}
}

func TestIsShouted(t *testing.T) {
	assert.True(t, isShouted("SYSTEM REQUIREMENTS"))
	assert.True(t, isShouted("SÉCURITÉ 2.1"))
	assert.False(t, isShouted("System requirements"))
	assert.False(t, isShouted("12.4"))
}
