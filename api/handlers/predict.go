// ABOUTME: Prediction handlers for the Huma API
// ABOUTME: Orchestrates model scoring, verification, and verdict calculation

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"newsverify-api/api/dto/mappers"
	"newsverify-api/api/dto/requests"
	"newsverify-api/api/dto/responses"
	"newsverify-api/core/domain"
	"newsverify-api/core/verdict"
)

// VerificationService defines the methods needed from the verification engine
type VerificationService interface {
	Verify(ctx context.Context, text string) domain.VerificationResult
}

// ModelScorer defines the methods needed from the model collaborator
type ModelScorer interface {
	Predict(ctx context.Context, text string) (float64, error)
}

// ArticleExtractor defines the methods needed from the reader service
type ArticleExtractor interface {
	Extract(ctx context.Context, url string) (domain.Article, error)
}

// PredictHandler handles prediction HTTP requests
type PredictHandler struct {
	model     ModelScorer
	verifier  VerificationService
	extractor ArticleExtractor
}

// NewPredictHandler creates a new prediction handler
func NewPredictHandler(model ModelScorer, verifier VerificationService, extractor ArticleExtractor) *PredictHandler {
	return &PredictHandler{
		model:     model,
		verifier:  verifier,
		extractor: extractor,
	}
}

// RegisterRoutes registers all prediction routes
func (h *PredictHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "predictText",
		Method:      http.MethodPost,
		Path:        "/predict-text",
		Summary:     "Check raw news text",
		Description: "Scores the text with the model, verifies it against live search evidence, and returns the combined verdict",
		Tags:        []string{"Prediction"},
	}, h.PredictText)

	huma.Register(api, huma.Operation{
		OperationID: "predictURL",
		Method:      http.MethodPost,
		Path:        "/predict-url",
		Summary:     "Check a news article by URL",
		Description: "Extracts the article text from the URL, then scores and verifies it like raw text",
		Tags:        []string{"Prediction"},
	}, h.PredictURL)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Service health",
		Tags:        []string{"Monitoring"},
	}, h.Health)
}

// PredictTextInput defines the input for the PredictText operation
type PredictTextInput struct {
	Body requests.PredictTextRequest
}

// PredictURLInput defines the input for the PredictURL operation
type PredictURLInput struct {
	Body requests.PredictURLRequest
}

// PredictionOutput defines the output for both prediction operations
type PredictionOutput struct {
	Body responses.PredictionResponse
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// PredictText handles POST /predict-text
func (h *PredictHandler) PredictText(ctx context.Context, input *PredictTextInput) (*PredictionOutput, error) {
	if err := input.Body.Validate(); err != nil {
		return nil, toHumaError(err)
	}
	return h.predict(ctx, input.Body.Text)
}

// PredictURL handles POST /predict-url
func (h *PredictHandler) PredictURL(ctx context.Context, input *PredictURLInput) (*PredictionOutput, error) {
	if err := input.Body.Validate(); err != nil {
		return nil, toHumaError(err)
	}

	article, err := h.extractor.Extract(ctx, input.Body.URL)
	if err != nil || article.IsEmpty() {
		return nil, huma.Error400BadRequest("Could not extract text from URL")
	}

	return h.predict(ctx, article.ScoringText())
}

// predict runs the shared scoring pipeline. Model failure is a request-level
// error; verification never fails, it degrades to a neutral score instead.
func (h *PredictHandler) predict(ctx context.Context, text string) (*PredictionOutput, error) {
	modelScore, err := h.model.Predict(ctx, text)
	if err != nil {
		return nil, toHumaError(err)
	}

	verification := h.verifier.Verify(ctx, text)
	result := verdict.Calculate(modelScore, verification.Score)

	return &PredictionOutput{
		Body: mappers.ToPredictionResponse(modelScore, verification, result),
	}, nil
}

// Health handles GET /health
func (h *PredictHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: responses.HealthResponse{Status: "ok"}}, nil
}
