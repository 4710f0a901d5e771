// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize cleans raw page text before sentence segmentation.
//
// Normalize composes Unicode to NFC, rejoins words hyphenated across line
// breaks, drops page-number and boilerplate lines, and collapses runs of
// whitespace and blank lines. The rules are applied until the text stops
// changing, so Normalize is idempotent: Normalize(Normalize(x)) == Normalize(x).
//
// All functions are safe for concurrent use by multiple goroutines.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// hyphenBreak matches a word split by a hyphen at the end of a line whose
	// continuation starts with a lowercase letter.
	hyphenBreak = regexp.MustCompile(`(\p{L})-[ \t]*\n[ \t]*(\p{Ll})`)

	// horizontalSpace matches runs of spaces and tabs.
	horizontalSpace = regexp.MustCompile(`[ \t]+`)

	// blankLines matches two or more blank lines.
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// artifactLines are whole-line patterns for page furniture.
var artifactLines = []*regexp.Regexp{
	// "12", "- 12 -", "[12]"
	regexp.MustCompile(`^[\-–—\[\(\s]*\d{1,4}[\-–—\]\)\s]*$`),
	// "Page 3", "Page 3 of 10", "Seite 3 von 10", "Página 3 de 10", "Pagina 3 di 10", "Page 3 sur 10", "3/10"
	regexp.MustCompile(`(?i)^(page|p\.|seite|página|pagina|pág\.|pag\.)?\s*\d{1,4}\s*((of|von|de|di|sur|/)\s*\d{1,4})?$`),
	// Boilerplate markings standing on their own line.
	regexp.MustCompile(`(?i)^(confidential|proprietary|draft|internal use only|company confidential|vertraulich|confidentiel|confidencial|riservato)$`),
	// Copyright footers.
	regexp.MustCompile(`(?i)^(©|\(c\)|copyright)\s*(©\s*)?\d{4}\b.*$`),
}

// invisible maps characters that extraction tools emit but that carry no text.
var invisible = strings.NewReplacer(
	"\u00ad", "", // soft hyphen
	"\u200b", "", // zero-width space
	"\ufeff", "", // byte-order mark
	"\u00a0", " ", // no-break space
	"\u2009", " ", // thin space
	"\f", "\n",
	"\r\n", "\n",
	"\r", "\n",
)

// Normalize cleans one page of extracted text.
func Normalize(s string) string {
	for {
		next := pass(s)
		if next == s {
			return next
		}
		s = next
	}
}

// pass applies every rule once. After the first pass a rule can only remove
// text, so repeated passes terminate.
func pass(s string) string {
	s = norm.NFC.String(s)
	s = invisible.Replace(s)
	s = dropArtifactLines(s)
	s = hyphenBreak.ReplaceAllString(s, "$1$2")
	return collapseWhitespace(s)
}

// dropArtifactLines removes lines that match an artifact pattern.
func dropArtifactLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if IsArtifactLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// IsArtifactLine reports whether line is page furniture: a page number, a
// boilerplate marking, or a copyright footer.
func IsArtifactLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	for _, re := range artifactLines {
		if re.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// collapseWhitespace squeezes horizontal whitespace, trims every line, and
// keeps at most one blank line between paragraphs.
func collapseWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(horizontalSpace.ReplaceAllString(line, " "))
	}
	s = strings.Join(lines, "\n")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
