// ABOUTME: Mapping from domain types to prediction response DTOs
// ABOUTME: Keeps wire format concerns out of the core packages

package mappers

import (
	"newsverify-api/api/dto/responses"
	"newsverify-api/core/domain"
)

// ToPredictionResponse assembles the wire response from the model score, the
// verification result, and the computed verdict.
func ToPredictionResponse(modelScore float64, verification domain.VerificationResult, verdict domain.Verdict) responses.PredictionResponse {
	sources := make([]responses.SourceResponse, 0, len(verification.Matches))
	for _, match := range verification.Matches {
		sources = append(sources, responses.SourceResponse{
			Name:       match.Name,
			URL:        match.URL,
			TrustScore: match.TrustScore,
		})
	}

	return responses.PredictionResponse{
		LSTMScore:         modelScore,
		VerificationScore: verification.Score,
		FinalScore:        verdict.FinalScore,
		Verdict:           verdict.Label,
		MatchedSources:    sources,
		IsReal:            verdict.IsReal,
	}
}
