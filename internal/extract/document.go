package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadDocument reads a text document and splits it into pages.
func LoadDocument(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}
	return SplitPages(string(content)), nil
}

// DocumentName returns the file name of path without its extension.
func DocumentName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SplitPages splits document text into pages. Form feeds (as written by
// pdftotext) separate pages; otherwise "<!-- page N -->" marker lines start
// page N, with skipped page numbers kept as empty pages. Text without either
// is a single page. Blank documents have no pages.
func SplitPages(content string) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	if strings.Contains(content, "\f") {
		pages := strings.Split(content, "\f")
		// pdftotext ends the last page with a form feed too.
		if strings.TrimSpace(pages[len(pages)-1]) == "" {
			pages = pages[:len(pages)-1]
		}
		return pages
	}

	var pages []string
	var current []string
	marked := false

	flush := func() {
		body := strings.Join(current, "\n")
		if marked || strings.TrimSpace(body) != "" {
			pages = append(pages, body)
		}
		current = nil
	}

	for _, line := range strings.Split(content, "\n") {
		page, ok := parsePageMarker(strings.TrimSpace(line))
		if !ok {
			current = append(current, line)
			continue
		}
		// Text before the first marker belongs to the first marked page.
		if marked {
			flush()
		}
		for len(pages) < page-1 {
			pages = append(pages, "")
		}
		marked = true
	}
	flush()
	return pages
}

// parsePageMarker extracts the page number from an HTML comment like <!-- page 3 -->.
func parsePageMarker(line string) (int, bool) {
	if !strings.HasPrefix(line, "<!-- page ") || !strings.HasSuffix(line, " -->") {
		return 0, false
	}
	inner := strings.TrimPrefix(line, "<!-- page ")
	inner = strings.TrimSuffix(inner, " -->")
	var page int
	if _, err := fmt.Sscanf(inner, "%d", &page); err != nil {
		return 0, false
	}
	return page, true
}
