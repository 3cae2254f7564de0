// ABOUTME: Domain model for the final credibility verdict
// ABOUTME: Combines model and verification scores into a labeled outcome

package domain

// Verdict labels produced for API consumers.
const (
	// VerdictLikelyReal is emitted when the combined score crosses 0.5.
	VerdictLikelyReal = "Likely Real News"

	// VerdictLikelyFake is emitted when the combined score stays below 0.5.
	VerdictLikelyFake = "Likely Fake News"

	// VerdictInconclusive is part of the response vocabulary for a planned
	// mixed-evidence band. The calculator currently emits only the two
	// labels above; the 0.5 boundary counts as real.
	VerdictInconclusive = "Inconclusive / Mixed Evidence"
)

// Verdict is the final human-readable classification of a news text.
type Verdict struct {
	// FinalScore is the weighted blend of model and verification scores,
	// always in [0,1].
	FinalScore float64

	// Label is one of the verdict label constants.
	Label string

	// IsReal is true when FinalScore >= 0.5.
	IsReal bool
}
