// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Replaces hidden global state with an explicitly wired bundle

package interfaces

// Dependencies holds all external dependencies required by the core business
// logic. It is constructed once at startup and passed into services, so that
// there is no process-wide mutable state to coordinate.
type Dependencies struct {
	// Cache provides caching functionality
	Cache Cache

	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
