// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "rejoins hyphenated words",
			in:   "The system shall vali-\ndate every request.",
			want: "The system shall validate every request.",
		},
		{
			name: "rejoins hyphenation with trailing spaces",
			in:   "Le système doit garan-  \n  tir la sécurité.",
			want: "Le système doit garantir la sécurité.",
		},
		{
			name: "keeps hyphen before capitalized continuation",
			in:   "North-\nAmerica",
			want: "North-\nAmerica",
		},
		{
			name: "drops page numbers",
			in:   "First line.\n12\nSecond line.\n- 13 -\nPage 4 of 20\nSeite 5 von 9",
			want: "First line.\nSecond line.",
		},
		{
			name: "drops boilerplate and copyright lines",
			in:   "CONFIDENTIAL\nThe operator must log in.\nCopyright © 2024 Acme Corp.\nDraft",
			want: "The operator must log in.",
		},
		{
			name: "keeps sentences mentioning boilerplate words",
			in:   "The draft report must be confidential.",
			want: "The draft report must be confidential.",
		},
		{
			name: "collapses whitespace and blank lines",
			in:   "  One   two\tthree  \n\n\n\n  four  ",
			want: "One two three\n\nfour",
		},
		{
			name: "normalizes line endings and form feeds",
			in:   "one\r\ntwo\rthree\ffour",
			want: "one\ntwo\nthree\nfour",
		},
		{
			name: "removes invisible characters",
			in:   "\ufeffsecu\u00adrity\u00a0must\u200b hold",
			want: "security must hold",
		},
		{
			name: "composes to NFC",
			in:   "syste\u0300me",
			want: "système",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	fragments := []string{
		"word", "Wort", "système", "exam-", "-", "\n", "\n\n\n", " ", "\t", "12", "Page 3",
		"CONFIDENTIAL", "Confiden-", "tial", "\r\n", "\f", "\u00ad", "\u00a0", "é",
		"shall", ".", "Copyright", "© 2024", "- 7 -",
	}
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		var b strings.Builder
		n := 1 + rng.IntN(40)
		for j := 0; j < n; j++ {
			b.WriteString(fragments[rng.IntN(len(fragments))])
			if rng.IntN(3) == 0 {
				b.WriteString(" ")
			}
		}
		in := b.String()
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestIsArtifactLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"42", true},
		{"  [7]  ", true},
		{"Page 3", true},
		{"página 3 de 10", true},
		{"3/10", true},
		{"Internal use only", true},
		{"(c) 2023 Example GmbH", true},
		{"", false},
		{"Section 3 describes the interfaces.", false},
		{"Copyright law applies to all documents.", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, IsArtifactLine(tt.line))
		})
	}
}

func TestRemoveRunningHeaders(t *testing.T) {
	page := func(body string, n int) string {
		return fmt.Sprintf("ACME Controller Spec Rev 2\n%s\nDetails follow.\nSee the annex.\nFooter page %d", body, n)
	}
	pages := []string{
		page("The controller shall boot in 5 seconds.", 1),
		page("The display must show the status.", 2),
		page("Logs should be kept for a year.", 3),
		page("The user may export reports.", 4),
	}

	got := RemoveRunningHeaders(pages)
	assert.Equal(t, []string{
		"The controller shall boot in 5 seconds.\nDetails follow.\nSee the annex.",
		"The display must show the status.\nDetails follow.\nSee the annex.",
		"Logs should be kept for a year.\nDetails follow.\nSee the annex.",
		"The user may export reports.\nDetails follow.\nSee the annex.",
	}, got)
}

func TestRemoveRunningHeadersKeepsRepeatedSentences(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
	}{
		{
			name: "short pages",
			pages: []string{
				"Section A\nThe operator shall wear protective equipment at all times.",
				"Section B\nThe operator shall wear protective equipment at all times.",
				"Section C\nThe operator shall wear protective equipment at all times.",
			},
		},
		{
			name: "sentence at the page edge",
			pages: []string{
				"The operator shall wear protective equipment.\nOne.\nTwo.\nThree.\nEnd one",
				"The operator shall wear protective equipment.\nFour.\nFive.\nSix.\nEnd two",
				"The operator shall wear protective equipment.\nSeven.\nEight.\nNine.\nEnd three",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.pages, RemoveRunningHeaders(tt.pages))
		})
	}
}

func TestRemoveRunningHeadersOnlyAtEdges(t *testing.T) {
	page := "ACME Spec\nIntro.\nACME Spec\nBody.\nMore body.\nPage %d"
	pages := []string{fmt.Sprintf(page, 1), fmt.Sprintf(page, 2), fmt.Sprintf(page, 3)}

	got := RemoveRunningHeaders(pages)
	for _, p := range got {
		assert.Equal(t, "Intro.\nACME Spec\nBody.\nMore body.", p)
	}
}

func TestRemoveRunningHeadersShortDocument(t *testing.T) {
	pages := []string{"Header\nBody one.", "Header\nBody two."}
	assert.Equal(t, pages, RemoveRunningHeaders(pages))
}

func TestRemoveRunningHeadersNoRecurrence(t *testing.T) {
	pages := []string{"Alpha\nOne.", "Beta\nTwo.", "Gamma\nThree."}
	assert.Equal(t, pages, RemoveRunningHeaders(pages))
}

func FuzzNormalizeIdempotent(f *testing.F) {
	f.Add("The system shall vali-\ndate requests.\n12\n\n\n")
	f.Add("CONFIDEN-\ntial\nPage 1 of 2")
	f.Add("")
	f.Fuzz(func(t *testing.T, s string) {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("not idempotent: %q -> %q -> %q", s, once, twice)
		}
	})
}
