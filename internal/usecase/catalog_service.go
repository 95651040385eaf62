package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/chronolens/backend/internal/domain"
)

const defaultTopK = 3

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	TopK int
}

// CatalogService retrieves the closest-matching catalog entry for a question
type CatalogService struct {
	embedder domain.EmbeddingProvider
	index    domain.VectorIndex
	topK     int
}

// NewCatalogService creates a new catalog service with dependencies
func NewCatalogService(
	embedder domain.EmbeddingProvider,
	index domain.VectorIndex,
	config CatalogServiceConfig,
) *CatalogService {
	topK := config.TopK
	if topK <= 0 {
		topK = defaultTopK
	}
	return &CatalogService{
		embedder: embedder,
		index:    index,
		topK:     topK,
	}
}

// Retrieve embeds the question, queries the vector index and normalizes the
// top match. Embedding or index failures are surfaced, not retried; zero
// hits return (nil, nil). Single-shot best-effort: no re-ranking, no
// deduplication.
func (s *CatalogService) Retrieve(ctx context.Context, question string) (*domain.CatalogMatch, error) {
	vector, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEmbeddingFailure, err)
	}
	if len(vector) == 0 {
		return nil, domain.ErrEmbeddingFailure
	}

	matches, err := s.index.Search(ctx, vector, s.topK)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrVectorSearchFailure, err)
	}
	if len(matches) == 0 {
		log.Printf("[Catalog] no match for question: %q", question)
		return nil, nil
	}

	// The index is trusted to sort by descending similarity
	best := matches[0]
	normalizeMatch(&best)
	return &best, nil
}

// normalizeMatch trims metadata so answer templates never interpolate
// stray whitespace; absent fields are already empty strings.
func normalizeMatch(m *domain.CatalogMatch) {
	m.Brand = strings.TrimSpace(m.Brand)
	m.ModelName = strings.TrimSpace(m.ModelName)
	m.ReferenceNumber = strings.TrimSpace(m.ReferenceNumber)
	m.Description = strings.TrimSpace(m.Description)
	m.Category = strings.TrimSpace(m.Category)
	m.Movement = strings.TrimSpace(m.Movement)
	m.Caliber = strings.TrimSpace(m.Caliber)
}
