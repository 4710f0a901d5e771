package types

// LanguageAuto is the language mode that enables automatic identification.
const LanguageAuto = "auto"

// ProfilesConfig locates the language profile store.
type ProfilesConfig struct {
	// Path is the YAML profile file. Built-in defaults are written there when
	// the file is missing or corrupt.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// DetectionConfig holds settings for language identification.
type DetectionConfig struct {
	// Default is the fallback language code (default "en").
	Default string `json:"default" yaml:"default" mapstructure:"default"`

	// MinConfidence is the confidence below which detection falls back to
	// Default (default 0.4).
	MinConfidence float64 `json:"min_confidence" yaml:"min_confidence" mapstructure:"min_confidence"`

	// SampleSize is the number of leading characters scored (default 5000).
	SampleSize int `json:"sample_size" yaml:"sample_size" mapstructure:"sample_size"`
}

// ExtractionConfig holds settings for the extraction stage.
type ExtractionConfig struct {
	// MinWords and MaxWords bound the sentence word count (default 5 and 100).
	MinWords int `json:"min_words" yaml:"min_words" mapstructure:"min_words"`
	MaxWords int `json:"max_words" yaml:"max_words" mapstructure:"max_words"`

	// ConfidenceThreshold is the minimum candidate confidence (default 0.5).
	ConfidenceThreshold float64 `json:"confidence_threshold" yaml:"confidence_threshold" mapstructure:"confidence_threshold"`

	// QualityFilter drops sentences that fail the sentence-quality check.
	QualityFilter bool `json:"quality_filter" yaml:"quality_filter" mapstructure:"quality_filter"`

	// Keywords overrides the language profile's requirement keywords when set.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty" mapstructure:"keywords"`

	// LanguageMode is "auto" or a forced language code.
	LanguageMode string `json:"language_mode" yaml:"language_mode" mapstructure:"language_mode"`

	// InputDir holds the documents for batch extraction.
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// OutputDir receives one "<doc>-requirements.yaml" per document.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Profiles   ProfilesConfig   `json:"profiles" yaml:"profiles" mapstructure:"profiles"`
	Language   DetectionConfig  `json:"language" yaml:"language" mapstructure:"language"`
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction" mapstructure:"extraction"`
}

// DefaultPipelineConfig returns the configuration used when no file or flag
// overrides a value.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Profiles: ProfilesConfig{
			Path: "config/languages.yaml",
		},
		Language: DetectionConfig{
			Default:       "en",
			MinConfidence: 0.4,
			SampleSize:    5000,
		},
		Extraction: ExtractionConfig{
			MinWords:            5,
			MaxWords:            100,
			ConfidenceThreshold: 0.5,
			LanguageMode:        LanguageAuto,
			InputDir:            "documents",
			OutputDir:           "requirements",
		},
	}
}
