package usecases

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"project_cloudi/internal/entities"
)

// Matching cutoffs. FAQ matching is deliberately stricter than casual
// matching: FAQ answers are longer and a false positive is costlier than a
// missed pleasantry.
const (
	CasualCutoff = 0.70
	FAQCutoff    = 0.85
)

// Similarity returns the difflib sequence-matcher ratio between two strings,
// computed over runes.
func Similarity(a, b string) float64 {
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}

// bestMatch scans the table for the key most similar to input. Ties between
// equal ratios fall to map iteration order, which callers must not rely on.
func bestMatch(input string, table entities.PhraseTable, cutoff float64) (string, bool) {
	bestRatio := cutoff
	bestKey := ""
	found := false
	for key := range table {
		if r := Similarity(input, key); r >= bestRatio {
			bestRatio = r
			bestKey = key
			found = true
		}
	}
	return bestKey, found
}

// CasualMatcher resolves conversational pleasantries ("hi", "thanks") against
// a small fixed table, short-circuiting FAQ and generative lookup.
type CasualMatcher struct {
	table entities.PhraseTable
}

func NewCasualMatcher(table entities.PhraseTable) *CasualMatcher {
	return &CasualMatcher{table: table}
}

// Match tries an exact lookup on the lowercased raw input first, then a fuzzy
// pass over the normalized input. Returns the canned reply on a hit.
func (m *CasualMatcher) Match(raw, normalized string) (string, bool) {
	if reply, ok := m.table[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return reply, true
	}
	if key, ok := bestMatch(normalized, m.table, CasualCutoff); ok {
		return m.table[key], true
	}
	return "", false
}

// FAQMatcher resolves questions against the knowledge-base table. Fuzzy only;
// an exact normalized hit is just a ratio of 1.0.
type FAQMatcher struct {
	table entities.PhraseTable
}

func NewFAQMatcher(table entities.PhraseTable) *FAQMatcher {
	return &FAQMatcher{table: table}
}

func (m *FAQMatcher) Match(normalized string) (string, bool) {
	if key, ok := bestMatch(normalized, m.table, FAQCutoff); ok {
		return m.table[key], true
	}
	return "", false
}
