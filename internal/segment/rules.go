package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/req-extract/internal/lexicon"
	"github.com/pdiddy/req-extract/pkg/types"
)

// RuleModel is a punctuation-driven segmentation model. A sentence ends at a
// cluster of terminal punctuation followed by whitespace and a sentence
// opener (uppercase letter, digit, or opening quote), or at a blank line.
// Periods that close a known abbreviation never end a sentence.
type RuleModel struct {
	abbreviations map[string]bool
}

// NewRuleModel returns a model that treats the given lowercase tokens
// ("e.g.", "z.b.") as abbreviations.
func NewRuleModel(abbreviations []string) *RuleModel {
	return &RuleModel{abbreviations: lexicon.Set(abbreviations)}
}

// Split implements Model.
func (m *RuleModel) Split(text string) []types.Sentence {
	var out []types.Sentence
	start := 0
	emit := func(end int) {
		if s, ok := newSentence(text, start, end); ok {
			out = append(out, s)
		}
		start = end
	}

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		// A blank line always ends the sentence.
		if r == '\n' && i+1 < len(text) && text[i+1] == '\n' {
			j := i
			for j < len(text) && text[j] == '\n' {
				j++
			}
			emit(j)
			i = j
			continue
		}

		if !isTerminal(r) {
			i += size
			continue
		}
		if r == '.' && m.isAbbreviation(text, i) {
			i += size
			continue
		}

		// Consume the whole cluster ("?!", "...") and any closing quotes.
		j := i + size
		for j < len(text) {
			nr, ns := utf8.DecodeRuneInString(text[j:])
			if !isTerminal(nr) && !isCloser(nr) {
				break
			}
			j += ns
		}
		if opensSentence(text, j) {
			emit(j)
		}
		i = j
	}

	if start < len(text) {
		emit(len(text))
	}
	return out
}

// isAbbreviation reports whether the period at byte offset dot closes one of
// the model's abbreviations.
func (m *RuleModel) isAbbreviation(text string, dot int) bool {
	begin := dot
	for begin > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:begin])
		if unicode.IsSpace(r) || isOpener(r) {
			break
		}
		begin -= size
	}
	return m.abbreviations[strings.ToLower(text[begin:dot+1])]
}

// opensSentence reports whether pos is followed by whitespace and then a
// rune that can start a sentence.
func opensSentence(text string, pos int) bool {
	space := false
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if unicode.IsSpace(r) {
			space = true
			pos += size
			continue
		}
		return space && (unicode.IsUpper(r) || unicode.IsDigit(r) || isOpener(r))
	}
	return false
}

func isTerminal(r rune) bool {
	return r == '.' || r == '?' || r == '!' || r == '…'
}

func isCloser(r rune) bool {
	return strings.ContainsRune(`"')]»”’`, r)
}

func isOpener(r rune) bool {
	return strings.ContainsRune(`"'([«“‘¿¡`, r)
}

// newSentence builds the sentence covering text[start:end] without its
// surrounding whitespace. Text joins the tokens with single spaces; the
// offsets still address the original span. It reports false when nothing
// but whitespace remains.
func newSentence(text string, start, end int) (types.Sentence, bool) {
	seg := text[start:end]
	trimmedLeft := strings.TrimLeftFunc(seg, unicode.IsSpace)
	start += len(seg) - len(trimmedLeft)
	body := strings.TrimRightFunc(trimmedLeft, unicode.IsSpace)
	if body == "" {
		return types.Sentence{}, false
	}
	tokens := strings.Fields(body)
	return types.Sentence{
		Text:      strings.Join(tokens, " "),
		Start:     start,
		End:       start + len(body),
		Tokens:    tokens,
		WordCount: countWords(tokens),
	}, true
}

// WordCount returns the number of whitespace-separated tokens in text that
// contain at least one letter or digit.
func WordCount(text string) int {
	return countWords(strings.Fields(text))
}

func countWords(tokens []string) int {
	n := 0
	for _, tok := range tokens {
		if strings.IndexFunc(tok, lexicon.IsWordRune) >= 0 {
			n++
		}
	}
	return n
}
