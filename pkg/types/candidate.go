// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Sentence is one segment of normalized page text.
type Sentence struct {
	// Text is the sentence with its whitespace collapsed to single spaces.
	Text string `json:"text" yaml:"text"`

	// Start and End are byte offsets into the normalized page text.
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`

	// Tokens is the untouched token sequence (words and punctuation, no
	// whitespace) used during extraction. Annotation tools re-match it
	// against page word positions.
	Tokens []string `json:"tokens" yaml:"tokens"`

	// WordCount counts tokens that are neither punctuation nor whitespace.
	WordCount int `json:"word_count" yaml:"word_count"`
}

// Candidate is a scored, labeled requirement statement.
type Candidate struct {
	// ID is a stable identifier derived from document, page, and text.
	ID string `json:"id" yaml:"id"`

	// Index is the zero-based position of the candidate within the document.
	Index int `json:"index" yaml:"index"`

	// Label is the document-scoped label "<document>-Req#<page>-<n>".
	Label string `json:"label" yaml:"label"`

	// Page is the one-based page number the sentence was found on.
	Page int `json:"page" yaml:"page"`

	// Language is the language code used for extraction.
	Language string `json:"language" yaml:"language"`

	// Keyword is the requirement keyword that selected the sentence.
	Keyword string `json:"keyword" yaml:"keyword"`

	// Confidence is the scorer output in [0, 1].
	Confidence float64 `json:"confidence" yaml:"confidence"`

	Priority Priority `json:"priority" yaml:"priority"`
	Category Category `json:"category" yaml:"category"`

	Sentence Sentence `json:"sentence" yaml:"sentence"`
}

// Description returns the sentence text, the field downstream writers use as
// the requirement description.
func (c Candidate) Description() string {
	return c.Sentence.Text
}

// ExtractionResult holds the candidates extracted from a single document.
type ExtractionResult struct {
	// RunID identifies the extraction run (ULID).
	RunID string `json:"run_id" yaml:"run_id"`

	// Document is the document name used in labels.
	Document string `json:"document" yaml:"document"`

	// Pages is the number of pages processed.
	Pages int `json:"pages" yaml:"pages"`

	// Detection records the document language and its confidence.
	Detection DetectionResult `json:"detection" yaml:"detection"`

	// Candidates are ordered by page, then by position within the page.
	Candidates []Candidate `json:"candidates" yaml:"candidates"`

	// Error records a partial-run message (e.g. cancellation). Empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}
