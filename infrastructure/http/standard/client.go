// ABOUTME: Standard HTTP client implementation with timeout support
// ABOUTME: Adapts net/http to the core HTTPClient interface

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"newsverify-api/core/interfaces"
)

const userAgent = "NewsVerifyAPI/1.0"

// StandardHTTPClient implements the HTTPClient interface using the standard
// library. No retries: a failed call to a collaborator is treated as unknown,
// not transient.
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	return &standardResponse{resp: resp}, nil
}

// Post performs an HTTP POST request with the given body and content type
func (c *StandardHTTPClient) Post(ctx context.Context, url string, contentType string, body io.Reader) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	return &standardResponse{resp: resp}, nil
}

// standardResponse wraps http.Response to implement the Response interface
type standardResponse struct {
	resp *http.Response
}

func (r *standardResponse) StatusCode() int {
	return r.resp.StatusCode
}

func (r *standardResponse) Body() io.ReadCloser {
	return r.resp.Body
}

func (r *standardResponse) Header(key string) string {
	return r.resp.Header.Get(key)
}
