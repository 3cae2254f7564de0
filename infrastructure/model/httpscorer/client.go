// ABOUTME: HTTP client for the external text-classification model service
// ABOUTME: The model is opaque; this adapter only moves text in and a score out

package httpscorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	coreerrors "newsverify-api/core/errors"
	"newsverify-api/core/interfaces"
)

// Client calls a model inference endpoint over HTTP.
type Client struct {
	endpoint   string
	httpClient interfaces.HTTPClient
}

// NewClient creates a model scorer client for the given inference endpoint.
func NewClient(endpoint string, httpClient interfaces.HTTPClient) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

var _ interfaces.ModelScorer = (*Client)(nil)

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	Score float64 `json:"score"`
}

// Predict sends the text to the inference service and returns its
// plausibility score. Any failure is surfaced as an error; model failures
// must never be silently mapped to a neutral score.
func (c *Client) Predict(ctx context.Context, text string) (float64, error) {
	payload, err := json.Marshal(predictRequest{Text: text})
	if err != nil {
		return 0, coreerrors.WrapError(err, "failed to encode predict request")
	}

	resp, err := c.httpClient.Post(ctx, c.endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return 0, &coreerrors.ExternalAPIError{
			API:        "model",
			StatusCode: 0,
			Message:    err.Error(),
		}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return 0, &coreerrors.ExternalAPIError{
			API:        "model",
			StatusCode: resp.StatusCode(),
			Message:    "inference request failed",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return 0, coreerrors.WrapError(err, "failed to read model response")
	}

	var parsed predictResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, coreerrors.WrapError(err, "failed to parse model response")
	}

	if parsed.Score < 0 || parsed.Score > 1 {
		return 0, &coreerrors.ExternalAPIError{
			API:        "model",
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("score %v outside [0,1]", parsed.Score),
		}
	}
	return parsed.Score, nil
}
