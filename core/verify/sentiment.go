// ABOUTME: Heuristic sentiment scoring of search result titles and snippets
// ABOUTME: Detects fact-check framing and debunk language with keyword membership

package verify

import (
	"strings"

	htmlutil "newsverify-api/pkg/utils/html"
)

// Sentiment constants. The output space of AnalyzeSnippet is exactly these
// three values; nothing interpolates between them.
const (
	// sentimentStrongDebunk marks a result that explicitly calls the claim out.
	sentimentStrongDebunk = 0.1

	// sentimentWeakDebunk marks fact-check framing without an explicit negative.
	sentimentWeakDebunk = 0.5

	// sentimentConfirm marks neutral or confirming coverage.
	sentimentConfirm = 1.2
)

// factCheckKeywords signal that a result is framed as a fact check rather
// than as plain reporting. Configuration data.
var factCheckKeywords = []string{
	"fact check",
	"fact-check",
	"debunk",
	"hoax",
	"false",
	"fake",
	"misleading",
	"unverified",
	"incorrect",
	"no evidence",
}

// negativeIndicators is the stricter subset whose presence means the result
// actively refutes the claim.
var negativeIndicators = []string{
	"false",
	"hoax",
	"debunk",
	"incorrect",
	"misleading",
	"fake",
}

// AnalyzeSnippet scores one search result's title and snippet. A result with
// no fact-check framing reads as confirmation (1.2); framing without an
// explicit negative reads as a weak debunk (0.5); an explicit negative reads
// as a strong debunk (0.1). Markup and entities in either input are stripped
// before matching, and matching is case-insensitive.
func AnalyzeSnippet(title, snippet string) float64 {
	combined := strings.ToLower(htmlutil.Strip(title) + " " + htmlutil.Strip(snippet))

	if !containsAny(combined, factCheckKeywords) {
		return sentimentConfirm
	}
	if containsAny(combined, negativeIndicators) {
		return sentimentStrongDebunk
	}
	return sentimentWeakDebunk
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
