// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Priority is the tier assigned to a requirement candidate.
type Priority string

const (
	PrioritySecurity Priority = "security"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Category is the functional classification of a requirement candidate.
type Category string

const (
	CategorySafety        Category = "Safety"
	CategorySecurity      Category = "Security"
	CategoryPerformance   Category = "Performance"
	CategoryFunctional    Category = "Functional"
	CategoryInterface     Category = "Interface"
	CategoryData          Category = "Data"
	CategoryCompliance    Category = "Compliance"
	CategoryDocumentation Category = "Documentation"
	CategoryTesting       Category = "Testing"
)

// Categories lists every category in tie-break order. When two categories
// score equally, the one listed first wins.
var Categories = []Category{
	CategorySafety,
	CategorySecurity,
	CategoryPerformance,
	CategoryFunctional,
	CategoryInterface,
	CategoryData,
	CategoryCompliance,
	CategoryDocumentation,
	CategoryTesting,
}

// PriorityTiers holds the keyword sets for the non-security priority tiers.
type PriorityTiers struct {
	High   []string `json:"high" yaml:"high"`
	Medium []string `json:"medium" yaml:"medium"`
	Low    []string `json:"low" yaml:"low"`
}

// LanguageProfile bundles every per-language table the pipeline consults.
// Profiles are immutable once the registry has loaded them.
type LanguageProfile struct {
	// Code is the ISO 639-1 code (e.g. "en").
	Code string `json:"code" yaml:"code"`

	// Name is the display name (e.g. "English").
	Name string `json:"name" yaml:"name"`

	// SpecialChars are letters characteristic of the language (e.g. "é", "ß").
	SpecialChars []string `json:"special_chars" yaml:"special_chars"`

	// CommonWords are high-frequency function words used for identification.
	CommonWords []string `json:"common_words" yaml:"common_words"`

	// Trigrams are frequent character trigrams used for identification.
	Trigrams []string `json:"trigrams" yaml:"trigrams"`

	// RequirementKeywords mark a sentence as a requirement candidate.
	RequirementKeywords []string `json:"requirement_keywords" yaml:"requirement_keywords"`

	// ModalVerbs are the obligation/permission verbs of the language.
	ModalVerbs []string `json:"modal_verbs" yaml:"modal_verbs"`

	// Priorities holds the high/medium/low tier keyword sets.
	Priorities PriorityTiers `json:"priorities" yaml:"priorities"`

	// SecurityKeywords take precedence over every other priority tier.
	SecurityKeywords []string `json:"security_keywords" yaml:"security_keywords"`

	// Categories maps a category name to its keyword list.
	Categories map[Category][]string `json:"categories" yaml:"categories"`

	// CategoryPatterns are regular expressions for phrases that signal a
	// category more strongly than a single keyword.
	CategoryPatterns map[Category][]string `json:"category_patterns" yaml:"category_patterns"`

	// RequirementPatterns are regular expressions that recognize requirement
	// phrasing (modal + verb, subject + modal, capability, compliance, necessity).
	RequirementPatterns []string `json:"requirement_patterns" yaml:"requirement_patterns"`

	// CompliancePhrases earn a bonus when present (e.g. "comply with").
	CompliancePhrases []string `json:"compliance_phrases" yaml:"compliance_phrases"`

	// CapabilityPhrases earn a bonus when present (e.g. "capable of").
	CapabilityPhrases []string `json:"capability_phrases" yaml:"capability_phrases"`

	// Abbreviations suppress sentence breaks after the listed tokens
	// (lowercase, trailing dot included).
	Abbreviations []string `json:"abbreviations" yaml:"abbreviations"`

	// SegmentationModel names the segmentation model for this language
	// (e.g. "rules/en").
	SegmentationModel string `json:"segmentation_model" yaml:"segmentation_model"`
}

// DetectionResult is the outcome of language identification.
type DetectionResult struct {
	// Language is the detected (or fallback) language code.
	Language string `json:"language" yaml:"language"`

	// Confidence lies in [0, 1]. On a low-confidence fallback it carries the
	// original detection confidence, not a replacement value.
	Confidence float64 `json:"confidence" yaml:"confidence"`
}
