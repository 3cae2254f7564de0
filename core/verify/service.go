// ABOUTME: Verification engine aggregating search evidence into a single score
// ABOUTME: Classifies result domains, scores snippet sentiment, and dedups matches

// Package verify implements evidence-based verification of news text against
// live web search. It is a rule-based heuristic aggregator over fixed domain
// and keyword registries, not a fact checker.
package verify

import (
	"context"
	"time"

	"newsverify-api/core/domain"
	"newsverify-api/core/interfaces"
	"newsverify-api/core/keywords"
)

const (
	// maxSearchResults is the result-count hint passed to the provider.
	maxSearchResults = 10

	// searchTimeout bounds the single external call of the engine.
	searchTimeout = 10 * time.Second

	// trustedWeight and factCheckerWeight scale a result's sentiment into its
	// verdict contribution.
	trustedWeight     = 1.0
	factCheckerWeight = 1.5

	// trustedScore and factCheckerScore are the trustScore values reported on
	// matches.
	trustedScore     = 1.0
	factCheckerScore = 1.2

	// debunkThreshold flags any individual contribution as a debunk signal.
	debunkThreshold = 0.6

	// debunkCap is the score ceiling once a single credible debunk appears;
	// one credible debunk dominates collective sentiment.
	debunkCap = 0.3

	// noEvidenceScore is returned when search ran but no classified source
	// appeared. Absence of any trusted corroboration is itself a negative
	// signal, distinct from "unable to verify".
	noEvidenceScore = 0.2
)

// Engine verifies news text against live search evidence.
type Engine struct {
	deps   interfaces.Dependencies
	search interfaces.SearchProvider
}

// NewEngine creates a verification engine. A nil search provider means no
// search credentials are configured; the engine then always returns the
// neutral default instead of failing.
func NewEngine(deps interfaces.Dependencies, search interfaces.SearchProvider) *Engine {
	return &Engine{
		deps:   deps,
		search: search,
	}
}

// Verify builds a query from the text, searches the web, and aggregates the
// classified results into a VerificationResult. It never returns an error:
// every internal failure degrades to the neutral default so that a failed
// verification can never fail the overall request.
func (e *Engine) Verify(ctx context.Context, text string) domain.VerificationResult {
	if e.search == nil {
		e.logDebug("verification skipped: no search credentials configured", nil)
		return domain.NeutralVerification()
	}

	query := keywords.Extract(text, keywords.DefaultMaxKeywords)
	if query == "" {
		e.logDebug("verification skipped: no extractable keywords", nil)
		return domain.NeutralVerification()
	}

	searchCtx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	results, err := e.search.Search(searchCtx, query, maxSearchResults)
	if err != nil {
		// Fail open: timeouts, transport errors, and malformed responses all
		// read as "unable to verify", never as "verified false".
		if e.deps.Logger != nil {
			e.deps.Logger.Warn("search failed, returning neutral verification", map[string]interface{}{
				"query": query,
				"error": err.Error(),
			})
		}
		return domain.NeutralVerification()
	}

	contributions := make([]float64, 0, len(results))
	matches := make([]domain.Match, 0, len(results))

	for _, result := range results {
		class, entry := classify(hostOf(result.Link))
		if class == domain.SourceUnclassified {
			continue
		}

		sentiment := AnalyzeSnippet(result.Title, result.Snippet)

		weight, trust := trustedWeight, trustedScore
		if class == domain.SourceFactChecker {
			weight, trust = factCheckerWeight, factCheckerScore
		}

		contributions = append(contributions, sentiment*weight)
		matches = append(matches, domain.Match{
			Name:       entry,
			URL:        result.Link,
			TrustScore: trust,
		})
	}

	if len(contributions) == 0 {
		e.logDebug("no classified sources in search results", map[string]interface{}{
			"query":   query,
			"results": len(results),
		})
		return domain.VerificationResult{Score: noEvidenceScore, Matches: []domain.Match{}}
	}

	score := aggregateScore(contributions)

	return domain.VerificationResult{
		Score:   score,
		Matches: dedupeMatches(matches),
	}
}

// aggregateScore maps the weighted contributions onto [0,1]. The mean is
// shifted down by 0.5 and clamped; a single contribution below the debunk
// threshold caps the result regardless of the mean.
func aggregateScore(contributions []float64) float64 {
	var sum float64
	for _, c := range contributions {
		sum += c
	}
	mean := sum / float64(len(contributions))

	score := clamp(mean-0.5, 0.0, 1.0)

	for _, c := range contributions {
		if c < debunkThreshold {
			if score > debunkCap {
				score = debunkCap
			}
			break
		}
	}
	return score
}

// dedupeMatches drops repeat domains, keeping first-seen order.
func dedupeMatches(matches []domain.Match) []domain.Match {
	seen := make(map[string]struct{}, len(matches))
	unique := make([]domain.Match, 0, len(matches))
	for _, m := range matches {
		if _, dup := seen[m.Name]; dup {
			continue
		}
		seen[m.Name] = struct{}{}
		unique = append(unique, m)
	}
	return unique
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (e *Engine) logDebug(msg string, fields map[string]interface{}) {
	if e.deps.Logger != nil {
		e.deps.Logger.Debug(msg, fields)
	}
}
