package httpscorer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	coreerrors "newsverify-api/core/errors"
	"newsverify-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	postFunc func(ctx context.Context, url string, contentType string, body io.Reader) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, contentType string, body io.Reader) (interfaces.Response, error) {
	if m.postFunc != nil {
		return m.postFunc(ctx, url, contentType, body)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int    { return m.statusCode }
func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}
func (m *mockResponse) Header(key string) string { return "" }

func TestPredict_ReturnsScore(t *testing.T) {
	client := NewClient("http://model.local/predict", &mockHTTPClient{
		postFunc: func(ctx context.Context, url string, contentType string, body io.Reader) (interfaces.Response, error) {
			var req struct {
				Text string `json:"text"`
			}
			if err := json.NewDecoder(body).Decode(&req); err != nil {
				t.Fatalf("request body not valid JSON: %v", err)
			}
			if req.Text != "some news text" {
				t.Errorf("request text = %q", req.Text)
			}
			if contentType != "application/json" {
				t.Errorf("content type = %q", contentType)
			}
			return &mockResponse{statusCode: 200, body: `{"score": 0.87}`}, nil
		},
	})

	score, err := client.Predict(context.Background(), "some news text")

	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	if score != 0.87 {
		t.Errorf("score = %v, want 0.87", score)
	}
}

func TestPredict_TransportError(t *testing.T) {
	client := NewClient("http://model.local/predict", &mockHTTPClient{
		postFunc: func(ctx context.Context, url string, contentType string, body io.Reader) (interfaces.Response, error) {
			return nil, errors.New("connection refused")
		},
	})

	_, err := client.Predict(context.Background(), "text")

	if err == nil {
		t.Fatal("Predict should fail on transport errors")
	}
	if !coreerrors.IsExternalAPI(err) {
		t.Errorf("error should be an ExternalAPIError, got %v", err)
	}
}

func TestPredict_NonOKStatus(t *testing.T) {
	client := NewClient("http://model.local/predict", &mockHTTPClient{
		postFunc: func(ctx context.Context, url string, contentType string, body io.Reader) (interfaces.Response, error) {
			return &mockResponse{statusCode: 500, body: `error`}, nil
		},
	})

	if _, err := client.Predict(context.Background(), "text"); err == nil {
		t.Error("Predict should fail on a non-200 status")
	}
}

func TestPredict_ScoreOutOfRange(t *testing.T) {
	client := NewClient("http://model.local/predict", &mockHTTPClient{
		postFunc: func(ctx context.Context, url string, contentType string, body io.Reader) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: `{"score": 3.5}`}, nil
		},
	})

	if _, err := client.Predict(context.Background(), "text"); err == nil {
		t.Error("Predict should reject scores outside [0,1]")
	}
}

func TestPredict_MalformedResponse(t *testing.T) {
	client := NewClient("http://model.local/predict", &mockHTTPClient{
		postFunc: func(ctx context.Context, url string, contentType string, body io.Reader) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: `not json`}, nil
		},
	})

	if _, err := client.Predict(context.Background(), "text"); err == nil {
		t.Error("Predict should fail on malformed responses")
	}
}
