// ABOUTME: Service-level interfaces for the external collaborators of the core
// ABOUTME: Search provider and model scorer are consumed as black boxes

package interfaces

import (
	"context"

	"newsverify-api/core/domain"
)

// SearchProvider executes a web search for the given query and returns up to
// num raw results. It is the single blocking external call of the
// verification engine; implementations must honor the context deadline.
type SearchProvider interface {
	Search(ctx context.Context, query string, num int) ([]domain.SearchResult, error)
}

// ModelScorer produces a plausibility score in [0,1] for a news text.
// The model is opaque to this service; scoring failures are request-level
// errors and must not be silently absorbed.
type ModelScorer interface {
	Predict(ctx context.Context, text string) (float64, error)
}

// ArticleExtractor turns a URL into readable article text.
type ArticleExtractor interface {
	Extract(ctx context.Context, url string) (domain.Article, error)
}
