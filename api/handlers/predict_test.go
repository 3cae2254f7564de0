package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"

	"newsverify-api/core/domain"
	coreerrors "newsverify-api/core/errors"
)

// mockModelScorer is a mock implementation of the model collaborator
type mockModelScorer struct {
	predictFunc func(ctx context.Context, text string) (float64, error)
}

func (m *mockModelScorer) Predict(ctx context.Context, text string) (float64, error) {
	if m.predictFunc != nil {
		return m.predictFunc(ctx, text)
	}
	return 0.5, nil
}

// mockVerifier is a mock implementation of the verification engine
type mockVerifier struct {
	verifyFunc func(ctx context.Context, text string) domain.VerificationResult
}

func (m *mockVerifier) Verify(ctx context.Context, text string) domain.VerificationResult {
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx, text)
	}
	return domain.NeutralVerification()
}

// mockExtractor is a mock implementation of the article extractor
type mockExtractor struct {
	extractFunc func(ctx context.Context, url string) (domain.Article, error)
}

func (m *mockExtractor) Extract(ctx context.Context, url string) (domain.Article, error) {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, url)
	}
	return domain.Article{}, errors.New("not implemented")
}

func newTestAPI(t *testing.T, handler *PredictHandler) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)
	return api
}

func TestNewPredictHandler(t *testing.T) {
	handler := NewPredictHandler(&mockModelScorer{}, &mockVerifier{}, &mockExtractor{})

	if handler == nil {
		t.Error("NewPredictHandler returned nil")
	}
}

func TestPredictText_EmptyTextRejected(t *testing.T) {
	api := newTestAPI(t, NewPredictHandler(&mockModelScorer{}, &mockVerifier{}, &mockExtractor{}))

	resp := api.Post("/predict-text", map[string]interface{}{"text": "   "})

	if resp.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.Code)
	}
}

func TestPredictText_Success(t *testing.T) {
	model := &mockModelScorer{
		predictFunc: func(ctx context.Context, text string) (float64, error) {
			return 0.48, nil
		},
	}
	verifier := &mockVerifier{
		verifyFunc: func(ctx context.Context, text string) domain.VerificationResult {
			return domain.VerificationResult{
				Score: 0.9,
				Matches: []domain.Match{
					{Name: "bbc.com", URL: "https://www.bbc.com/news/1", TrustScore: 1.0},
				},
			}
		},
	}
	api := newTestAPI(t, NewPredictHandler(model, verifier, &mockExtractor{}))

	resp := api.Post("/predict-text", map[string]interface{}{"text": "A credible news report."})

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		LSTMScore         float64 `json:"lstm_score"`
		VerificationScore float64 `json:"verification_score"`
		FinalScore        float64 `json:"final_score"`
		Verdict           string  `json:"verdict"`
		MatchedSources    []struct {
			Name       string  `json:"name"`
			URL        string  `json:"url"`
			TrustScore float64 `json:"trustScore"`
		} `json:"matched_sources"`
		IsReal bool `json:"is_real"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not valid JSON: %v", err)
	}

	if body.LSTMScore != 0.48 || body.VerificationScore != 0.9 {
		t.Errorf("scores = %v / %v", body.LSTMScore, body.VerificationScore)
	}
	if !body.IsReal || body.Verdict != domain.VerdictLikelyReal {
		t.Errorf("verdict = %q, is_real = %v", body.Verdict, body.IsReal)
	}
	if len(body.MatchedSources) != 1 || body.MatchedSources[0].Name != "bbc.com" {
		t.Errorf("matched_sources = %+v", body.MatchedSources)
	}
}

func TestPredictText_ModelFailureIsRequestError(t *testing.T) {
	model := &mockModelScorer{
		predictFunc: func(ctx context.Context, text string) (float64, error) {
			return 0, &coreerrors.ExternalAPIError{API: "model", StatusCode: 500, Message: "down"}
		},
	}
	api := newTestAPI(t, NewPredictHandler(model, &mockVerifier{}, &mockExtractor{}))

	resp := api.Post("/predict-text", map[string]interface{}{"text": "Some text."})

	if resp.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.Code)
	}
}

func TestPredictText_NeutralVerificationStillSucceeds(t *testing.T) {
	api := newTestAPI(t, NewPredictHandler(&mockModelScorer{}, &mockVerifier{}, &mockExtractor{}))

	resp := api.Post("/predict-text", map[string]interface{}{"text": "Some text."})

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}

	var generic map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &generic); err != nil {
		t.Fatalf("response not valid JSON: %v", err)
	}
	if generic["verification_score"] != 0.5 {
		t.Errorf("verification_score = %v, want 0.5", generic["verification_score"])
	}
	if sources, ok := generic["matched_sources"].([]interface{}); !ok || len(sources) != 0 {
		t.Errorf("matched_sources = %v, want empty array", generic["matched_sources"])
	}
}

func TestPredictURL_EmptyURLRejected(t *testing.T) {
	api := newTestAPI(t, NewPredictHandler(&mockModelScorer{}, &mockVerifier{}, &mockExtractor{}))

	resp := api.Post("/predict-url", map[string]interface{}{"url": ""})

	if resp.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.Code)
	}
}

func TestPredictURL_ExtractionFailureRejected(t *testing.T) {
	extractor := &mockExtractor{
		extractFunc: func(ctx context.Context, url string) (domain.Article, error) {
			return domain.Article{}, errors.New("fetch failed")
		},
	}
	api := newTestAPI(t, NewPredictHandler(&mockModelScorer{}, &mockVerifier{}, extractor))

	resp := api.Post("/predict-url", map[string]interface{}{"url": "http://example.com/gone"})

	if resp.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.Code)
	}
}

func TestPredictURL_Success(t *testing.T) {
	extractor := &mockExtractor{
		extractFunc: func(ctx context.Context, url string) (domain.Article, error) {
			return domain.Article{
				URL:         url,
				Title:       "Extracted Title",
				TextContent: "Extracted content from URL",
			}, nil
		},
	}
	var scoredText string
	model := &mockModelScorer{
		predictFunc: func(ctx context.Context, text string) (float64, error) {
			scoredText = text
			return 0.6, nil
		},
	}
	api := newTestAPI(t, NewPredictHandler(model, &mockVerifier{}, extractor))

	resp := api.Post("/predict-url", map[string]interface{}{"url": "http://example.com/news"})

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.Code, resp.Body.String())
	}
	if scoredText != "Extracted Title\n\nExtracted content from URL" {
		t.Errorf("model received %q", scoredText)
	}
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t, NewPredictHandler(&mockModelScorer{}, &mockVerifier{}, &mockExtractor{}))

	resp := api.Get("/health")

	if resp.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.Code)
	}
}
