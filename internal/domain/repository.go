package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// EmbeddingProvider converts free text into a fixed-length numeric vector
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// VectorIndex returns the nearest catalog entries for an embedding,
// ordered by descending similarity
type VectorIndex interface {
	Search(ctx context.Context, embedding []float32, limit int) ([]CatalogMatch, error)
}

// SearchProvider defines the interface for the web search provider used
// to resolve live market prices
type SearchProvider interface {
	Search(ctx context.Context, query string) (*SearchResponse, error)
}
