// Package infrastructure provides concrete implementations of the
// interfaces defined by the core package.
//
// Sub-packages:
//
// - cache/memory: In-memory cache backed by go-cache
// - cache/redis: Redis cache client
// - cache/sqlite: SQLite-backed persistent cache
// - http/standard: Standard HTTP client with timeouts and no retries
// - logger/logrus: Structured logging via logrus
// - search/google: Google Custom Search provider
// - model/httpscorer: HTTP client for the external model scoring service
//
// Each implementation satisfies the corresponding interface from
// core/interfaces, so they can be swapped without touching business logic.
package infrastructure
