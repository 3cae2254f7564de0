// ABOUTME: Google Custom Search JSON API client implementing SearchProvider
// ABOUTME: Translates raw API items into domain search results

package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"newsverify-api/core/domain"
	coreerrors "newsverify-api/core/errors"
	"newsverify-api/core/interfaces"
)

const endpoint = "https://www.googleapis.com/customsearch/v1"

// Client queries the Google Custom Search JSON API.
type Client struct {
	apiKey     string
	cseID      string
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
}

// NewClient creates a search client for the given credentials.
func NewClient(apiKey, cseID string, httpClient interfaces.HTTPClient, logger interfaces.Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		cseID:      cseID,
		httpClient: httpClient,
		logger:     logger,
	}
}

var _ interfaces.SearchProvider = (*Client)(nil)

// apiResponse mirrors the fields of the Custom Search response we consume.
type apiResponse struct {
	Items []struct {
		Link    string `json:"link"`
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
	} `json:"items"`
}

// Search executes the query and returns up to num results. A response
// without an items field is a valid empty result, not an error.
func (c *Client) Search(ctx context.Context, query string, num int) ([]domain.SearchResult, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.cseID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(num))

	resp, err := c.httpClient.Get(ctx, endpoint+"?"+params.Encode())
	if err != nil {
		return nil, coreerrors.WrapError(err, "custom search request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			API:        "custom search",
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("unexpected status for query %q", query),
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to read search response")
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse search response")
	}

	results := make([]domain.SearchResult, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		results = append(results, domain.SearchResult{
			Link:    item.Link,
			Title:   item.Title,
			Snippet: item.Snippet,
		})
	}

	if c.logger != nil {
		c.logger.Debug("search completed", map[string]interface{}{
			"query":   query,
			"results": len(results),
		})
	}
	return results, nil
}
