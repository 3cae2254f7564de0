// Package core contains the business logic for the News Verify API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (SearchResult, Match, VerificationResult, Verdict)
// - keywords: Keyword extraction from raw article text
// - verify: Source registries, snippet sentiment, and the verification engine
// - verdict: Final score blending and labeling
// - reader: Article text extraction from URLs
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, search, model)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies in the decision logic
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Verification is a pure function of its inputs; nothing persists across calls
//
// # Usage Example
//
//	import (
//	    "newsverify-api/core/interfaces"
//	    "newsverify-api/core/verify"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create the engine; a nil provider means fail-open neutral scoring
//	engine := verify.NewEngine(deps, mySearchProvider)
//
//	result := engine.Verify(ctx, "NASA released new telescope images today")
package core
