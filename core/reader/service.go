// ABOUTME: Article extraction service turning URLs into readable text
// ABOUTME: Fetches with colly, parses with go-readability, falls back to goquery

package reader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"

	"newsverify-api/core/domain"
	"newsverify-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"
	readability "github.com/go-shiori/go-readability"
)

const (
	// fetchUserAgent mirrors a regular browser; many news sites serve
	// stripped-down or blocked pages to unknown agents.
	fetchUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	fetchTimeout = 10 * time.Second

	cacheTTL = 1 * time.Hour
)

// Service extracts readable article text from web pages.
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new article extraction service.
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// Extract fetches the page at the given URL and returns its readable content.
// Successful extractions are cached for an hour so repeated checks of the
// same article don't refetch the page.
func (s *Service) Extract(ctx context.Context, pageURL string) (domain.Article, error) {
	if s.deps.Cache != nil {
		cacheKey := "article:" + pageURL
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached domain.Article
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	body, err := s.fetch(pageURL)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Error("failed to fetch article", map[string]interface{}{
				"url":   pageURL,
				"error": err.Error(),
			})
		}
		return domain.Article{}, err
	}

	article, err := parseArticle(body, pageURL)
	if err != nil {
		return domain.Article{}, err
	}

	if s.deps.Cache != nil {
		cacheKey := "article:" + pageURL
		if data, err := json.Marshal(article); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, cacheTTL)
		}
	}

	return article, nil
}

// fetch downloads the raw page body.
func (s *Service) fetch(pageURL string) ([]byte, error) {
	c := colly.NewCollector(
		colly.UserAgent(fetchUserAgent),
	)
	c.SetRequestTimeout(fetchTimeout)

	var body []byte
	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(pageURL); err != nil {
		return nil, err
	}
	if fetchErr != nil {
		return nil, fetchErr
	}
	if len(body) == 0 {
		return nil, errors.New("empty response body")
	}
	return body, nil
}

// parseArticle extracts title and body text from raw HTML. Readability is
// tried first; pages it cannot handle fall back to a goquery pass that drops
// chrome elements and keeps visible text.
func parseArticle(body []byte, pageURL string) (domain.Article, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return domain.Article{}, err
	}

	if article, err := readability.FromReader(bytes.NewReader(body), parsedURL); err == nil {
		result := domain.Article{
			URL:         pageURL,
			Title:       article.Title,
			TextContent: truncate(collapseWhitespace(article.TextContent)),
		}
		if !result.IsEmpty() {
			return result, nil
		}
	}

	return fallbackParse(body, pageURL)
}

// fallbackParse strips script, style, and page chrome before collecting text,
// the same shape of cleanup a browser-view extraction does.
func fallbackParse(body []byte, pageURL string) (domain.Article, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return domain.Article{}, err
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("script, style, nav, footer, header, noscript").Remove()
	text := collapseWhitespace(doc.Find("body").Text())

	article := domain.Article{
		URL:         pageURL,
		Title:       title,
		TextContent: truncate(text),
	}
	if article.IsEmpty() {
		return domain.Article{}, errors.New("no readable content found")
	}
	return article, nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string) string {
	if len(s) > domain.MaxArticleChars {
		return s[:domain.MaxArticleChars]
	}
	return s
}
