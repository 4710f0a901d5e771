// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/req-extract/pkg/types"
)

// errCorrupt marks a profile file that parsed but holds unusable content.
var errCorrupt = errors.New("corrupt profile file")

// profileFile is the on-disk layout of the profile store.
type profileFile struct {
	// Default is the fallback language code.
	Default string `yaml:"default"`

	// Languages lists the profiles. A profile replaces the built-in profile
	// with the same code; unknown codes add a language.
	Languages []types.LanguageProfile `yaml:"languages"`
}

// LoadFile reads the profile store at path. It returns os.ErrNotExist
// (wrapped) when the file is missing and an error wrapping errCorrupt when
// the file cannot be used.
func LoadFile(path string) (map[string]types.LanguageProfile, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading profiles %s: %w", path, err)
	}

	var pf profileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, "", fmt.Errorf("parsing profiles %s: %w: %v", path, errCorrupt, err)
	}
	if len(pf.Languages) == 0 {
		return nil, "", fmt.Errorf("profiles %s: %w: no languages", path, errCorrupt)
	}

	profiles := make(map[string]types.LanguageProfile, len(pf.Languages))
	for i, p := range pf.Languages {
		if p.Code == "" {
			return nil, "", fmt.Errorf("profiles %s: %w: language %d has no code", path, errCorrupt, i)
		}
		if len(p.RequirementKeywords) == 0 {
			return nil, "", fmt.Errorf("profiles %s: %w: language %q has no requirement keywords", path, errCorrupt, p.Code)
		}
		profiles[p.Code] = p
	}

	def := pf.Default
	if def == "" {
		def = DefaultLanguage
	}
	return profiles, def, nil
}

// WriteFile persists profiles to path in the given code order, creating
// parent directories as needed.
func WriteFile(path string, profiles map[string]types.LanguageProfile, order []string, def string) error {
	pf := profileFile{Default: def}
	for _, code := range order {
		if p, ok := profiles[code]; ok {
			pf.Languages = append(pf.Languages, p)
		}
	}

	data, err := yaml.Marshal(&pf)
	if err != nil {
		return fmt.Errorf("marshaling profiles: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating profile directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteDefaults writes the built-in profiles to path.
func WriteDefaults(path string) error {
	return WriteFile(path, Defaults(), builtinOrder, DefaultLanguage)
}
