package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// edgeLines is how many non-blank lines at the top and bottom of a page
	// are considered header or footer candidates.
	edgeLines = 2

	// minRecurringPages is the minimum number of pages a line must recur on.
	minRecurringPages = 3

	// maxHeaderWords is the longest line, in words, treated as a header.
	maxHeaderWords = 12
)

// RemoveRunningHeaders drops header and footer lines that recur across
// pages. A line is a candidate when it is among the first or last two
// non-blank lines of a page with more than four non-blank lines and reads
// like a header: short, without sentence-ending punctuation. A candidate
// recurs when, with digits masked, it appears on at least three pages and on
// at least half of all pages. Recurring lines are removed only from those
// edge positions. Documents with fewer than three pages are returned
// unchanged.
func RemoveRunningHeaders(pages []string) []string {
	if len(pages) < minRecurringPages {
		return pages
	}

	counts := make(map[string]int)
	for _, page := range pages {
		seen := make(map[string]bool)
		lines := strings.Split(page, "\n")
		for _, i := range headerIndexes(lines) {
			key := lineKey(lines[i])
			if key != "" && !seen[key] {
				seen[key] = true
				counts[key]++
			}
		}
	}

	recurring := make(map[string]bool)
	for key, n := range counts {
		if n >= minRecurringPages && n*2 >= len(pages) {
			recurring[key] = true
		}
	}
	if len(recurring) == 0 {
		return pages
	}

	out := make([]string, len(pages))
	for i, page := range pages {
		out[i] = stripEdges(page, recurring)
	}
	return out
}

// headerIndexes returns the indexes of the header-like lines among the first
// and last edgeLines non-blank lines. Pages with at most 2*edgeLines
// non-blank lines have no edges.
func headerIndexes(lines []string) []int {
	var nonBlank []int
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			nonBlank = append(nonBlank, i)
		}
	}
	if len(nonBlank) <= 2*edgeLines {
		return nil
	}

	edges := append([]int{}, nonBlank[:edgeLines]...)
	edges = append(edges, nonBlank[len(nonBlank)-edgeLines:]...)

	var out []int
	for _, i := range edges {
		if looksLikeHeader(lines[i]) {
			out = append(out, i)
		}
	}
	return out
}

// looksLikeHeader reports whether line is short and does not end a sentence.
func looksLikeHeader(line string) bool {
	line = strings.TrimSpace(line)
	if len(strings.Fields(line)) > maxHeaderWords {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(line)
	switch last {
	case '.', '!', '?', ';', ':', '…':
		return false
	}
	return true
}

// stripEdges removes the recurring lines found at the edges of page.
func stripEdges(page string, recurring map[string]bool) string {
	lines := strings.Split(page, "\n")
	drop := make(map[int]bool)
	for _, i := range headerIndexes(lines) {
		if recurring[lineKey(lines[i])] {
			drop[i] = true
		}
	}
	if len(drop) == 0 {
		return page
	}

	kept := make([]string, 0, len(lines)-len(drop))
	for i, line := range lines {
		if !drop[i] {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// lineKey masks digits and squeezes whitespace so "Page 3" and "Page 4" share
// a key.
func lineKey(line string) string {
	var b strings.Builder
	space := false
	for _, r := range strings.TrimSpace(line) {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune('#')
			space = false
		case unicode.IsSpace(r):
			if !space {
				b.WriteRune(' ')
			}
			space = true
		default:
			b.WriteRune(unicode.ToLower(r))
			space = false
		}
	}
	return b.String()
}
