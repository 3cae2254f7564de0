// ABOUTME: Response DTOs for the prediction endpoints
// ABOUTME: Wire format consumed by the frontend result view

package responses

// SourceResponse is one corroborating source in a prediction response.
type SourceResponse struct {
	Name       string  `json:"name" doc:"Registry entry the source matched"`
	URL        string  `json:"url" doc:"Link to the matching result"`
	TrustScore float64 `json:"trustScore" doc:"1.0 for trusted outlets, 1.2 for fact-checkers"`
}

// PredictionResponse is the full verdict for one checked text or URL.
type PredictionResponse struct {
	LSTMScore         float64          `json:"lstm_score" doc:"Model plausibility score in [0,1]"`
	VerificationScore float64          `json:"verification_score" doc:"Evidence-based verification score in [0,1]"`
	FinalScore        float64          `json:"final_score" doc:"Weighted combination of model and verification scores"`
	Verdict           string           `json:"verdict" doc:"Human-readable verdict label"`
	MatchedSources    []SourceResponse `json:"matched_sources" doc:"Deduplicated corroborating sources in first-seen order"`
	IsReal            bool             `json:"is_real" doc:"True when the final score crosses 0.5"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status" doc:"Service status"`
}
