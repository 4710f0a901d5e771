//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Extract builds the CLI and runs batch extraction over documents/, writing
// one <doc>-requirements.yaml per changed document into requirements/.
func Extract() error {
	mg.Deps(Build, Init)
	return sh.RunV(binPath(), "extract", "--batch",
		"--input-dir", "documents", "--output-dir", "requirements")
}

// Profiles writes the built-in language profiles to config/languages.yaml.
func Profiles() error {
	mg.Deps(Build)
	return sh.RunV(binPath(), "profiles", "init", "--force")
}
