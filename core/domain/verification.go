// ABOUTME: Domain model for evidence-based verification outcomes
// ABOUTME: Defines source classifications, matches, and the aggregate result

package domain

// SourceClass categorizes a search result's domain against the static
// registries. It is derived per result and never stored.
type SourceClass int

const (
	// SourceUnclassified means the domain matched neither registry and is
	// excluded from aggregation entirely.
	SourceUnclassified SourceClass = iota

	// SourceTrusted means the domain matched the trusted-outlet registry.
	SourceTrusted

	// SourceFactChecker means the domain matched the fact-checker registry.
	// Fact-checkers are weighted higher than generic trusted outlets.
	SourceFactChecker
)

// String returns a human-readable name for the classification.
func (c SourceClass) String() string {
	switch c {
	case SourceTrusted:
		return "trusted"
	case SourceFactChecker:
		return "fact_checker"
	default:
		return "unclassified"
	}
}

// Match records one corroborating source found during verification.
type Match struct {
	// Name is the registry entry that matched the result's domain
	Name string

	// URL is the link of the matching search result
	URL string

	// TrustScore is 1.0 for trusted outlets and 1.2 for fact-checkers
	TrustScore float64
}

// VerificationResult is the aggregate outcome of verifying one text against
// live search evidence. It is a pure function of the input text and the
// search response, computed fresh on every call.
type VerificationResult struct {
	// Score is the aggregate confidence in [0,1] that independent evidence
	// corroborates the text. 0.5 means "unable to verify".
	Score float64

	// Matches lists the corroborating sources, deduplicated by name in
	// first-seen order.
	Matches []Match
}

// NeutralVerification is the fail-open default returned when verification
// cannot run at all: missing credentials, no extractable keywords, or a
// failed search. It deliberately reads as "unknown", not "false".
func NeutralVerification() VerificationResult {
	return VerificationResult{Score: 0.5, Matches: []Match{}}
}
