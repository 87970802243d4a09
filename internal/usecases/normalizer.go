package usecases

import "strings"

// punctuation mirrors the ASCII punctuation set stripped before any table
// lookup, so "What's an IAC?" and "whats an iac" share one key.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalize canonicalizes text for matching: lowercase, trimmed, punctuation
// stripped, internal whitespace collapsed to single spaces. Total over any
// input; empty input normalizes to "".
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 128 && strings.ContainsRune(punctuation, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
