package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrEmbeddingFailure is returned when the embedding provider errors or returns no vector
	ErrEmbeddingFailure = errors.New("embedding provider failed")

	// ErrVectorSearchFailure is returned when the vector index query fails
	ErrVectorSearchFailure = errors.New("vector index query failed")

	// ErrSearchAPIFailure is returned when the web search provider request fails
	ErrSearchAPIFailure = errors.New("web search provider request failed")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
