// ABOUTME: Request DTOs for the prediction endpoints
// ABOUTME: Validation of raw text and URL inputs before the core runs

package requests

import (
	"strings"

	"newsverify-api/core/errors"
)

// PredictTextRequest is the request body for scoring raw article text.
type PredictTextRequest struct {
	// Text is the news text to check
	Text string `json:"text" required:"true" doc:"News text to check for credibility"`
}

// Validate rejects empty or whitespace-only text.
func (r *PredictTextRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return &errors.ValidationError{Field: "text", Message: "cannot be empty"}
	}
	return nil
}

// PredictURLRequest is the request body for scoring an article by URL.
type PredictURLRequest struct {
	// URL is the article page to fetch and check
	URL string `json:"url" required:"true" format:"uri" doc:"Article URL to fetch and check"`
}

// Validate rejects empty or whitespace-only URLs.
func (r *PredictURLRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return &errors.ValidationError{Field: "url", Message: "cannot be empty"}
	}
	return nil
}
