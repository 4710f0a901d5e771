package detect

// trigramSize is the number of consecutive runes in a single trigram.
const trigramSize = 3

// wordTrigrams returns the character trigrams of every word, each word padded
// with one space on both sides so that word starts and ends form their own
// trigrams (" th", "he ").
func wordTrigrams(words []string) []string {
	var out []string
	for _, w := range words {
		padded := make([]rune, 0, len(w)+2)
		padded = append(padded, ' ')
		padded = append(padded, []rune(w)...)
		padded = append(padded, ' ')
		for i := 0; i+trigramSize <= len(padded); i++ {
			out = append(out, string(padded[i:i+trigramSize]))
		}
	}
	return out
}
