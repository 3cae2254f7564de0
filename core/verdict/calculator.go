// ABOUTME: Verdict calculation combines model and verification scores
// ABOUTME: Pure arithmetic with no I/O, weighted toward live evidence

// Package verdict maps a model plausibility score and a verification score
// onto the final labeled outcome.
package verdict

import "newsverify-api/core/domain"

// Verification evidence outweighs the model because the model's output is
// unreliable near 0.5.
const (
	modelWeight        = 0.4
	verificationWeight = 0.6
)

// Calculate blends the two scores and labels the result. The 0.5 boundary is
// inclusive of real.
func Calculate(modelScore, verificationScore float64) domain.Verdict {
	finalScore := modelWeight*modelScore + verificationWeight*verificationScore

	isReal := finalScore >= 0.5
	label := domain.VerdictLikelyFake
	if isReal {
		label = domain.VerdictLikelyReal
	}

	return domain.Verdict{
		FinalScore: finalScore,
		Label:      label,
		IsReal:     isReal,
	}
}
