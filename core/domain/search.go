// ABOUTME: Domain model for raw web search results
// ABOUTME: Produced by the search provider, read-only to the core

package domain

// SearchResult is a single raw result returned by the search provider.
// The core never mutates results; it only classifies and scores them.
type SearchResult struct {
	// Link is the result URL
	Link string

	// Title is the result headline
	Title string

	// Snippet is the short excerpt shown for the result
	Snippet string
}
