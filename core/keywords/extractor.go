// ABOUTME: Keyword extraction reduces raw article text to a short search query
// ABOUTME: Frequency-ranked tokens after stop-word and short-token filtering

// Package keywords turns free text into the query string used for evidence
// search. Extraction is deterministic: identical input always yields the
// identical query.
package keywords

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultMaxKeywords is the query length used by the verification engine.
const DefaultMaxKeywords = 5

// stopWords are common English function words, pronouns, and auxiliaries that
// carry no search value. Configuration data; extend freely.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "in": {}, "on": {}, "at": {}, "for": {},
	"to": {}, "of": {}, "and": {}, "or": {}, "is": {}, "are": {}, "was": {},
	"were": {}, "it": {}, "this": {}, "that": {}, "with": {}, "by": {},
	"from": {}, "be": {}, "not": {}, "have": {}, "has": {}, "had": {},
	"say": {}, "said": {}, "will": {}, "but": {}, "they": {}, "their": {},
	"there": {}, "been": {}, "about": {}, "after": {}, "into": {},
	"would": {}, "could": {}, "than": {}, "when": {}, "which": {},
	"what": {}, "who": {},
}

// Extract returns up to maxKeywords space-joined tokens ranked by descending
// frequency. Tokens are lowercased, stripped of punctuation, and filtered:
// anything of length <= 3 or in the stop-word set is dropped. Ties in
// frequency keep first-occurrence order. An empty string means no usable
// query could be built and the caller must not issue a search.
func Extract(text string, maxKeywords int) string {
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}

	var normalized strings.Builder
	normalized.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			normalized.WriteRune(r)
		} else {
			normalized.WriteRune(' ')
		}
	}

	type wordCount struct {
		word  string
		count int
	}

	counts := make(map[string]*wordCount)
	order := make([]*wordCount, 0)

	for _, token := range strings.Fields(normalized.String()) {
		if len(token) <= 3 {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		if wc, seen := counts[token]; seen {
			wc.count++
			continue
		}
		wc := &wordCount{word: token, count: 1}
		counts[token] = wc
		order = append(order, wc)
	}

	if len(order) == 0 {
		return ""
	}

	// Stable sort keeps first-occurrence order among equal frequencies.
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}

	selected := make([]string, len(order))
	for i, wc := range order {
		selected[i] = wc.word
	}
	return strings.Join(selected, " ")
}
