package usecase

import (
	"context"
	"time"

	"github.com/chronolens/backend/internal/domain"
)

// MockEmbeddingProvider is a mock implementation of domain.EmbeddingProvider
type MockEmbeddingProvider struct {
	vector    []float32
	err       error
	callCount int
	lastInput string
}

func (m *MockEmbeddingProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	m.callCount++
	m.lastInput = text
	if m.err != nil {
		return nil, m.err
	}
	return m.vector, nil
}

// MockVectorIndex is a mock implementation of domain.VectorIndex
type MockVectorIndex struct {
	matches   []domain.CatalogMatch
	err       error
	callCount int
	lastLimit int
}

func (m *MockVectorIndex) Search(ctx context.Context, embedding []float32, limit int) ([]domain.CatalogMatch, error) {
	m.callCount++
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.matches, nil
}

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	data      map[string]interface{}
	getError  error
	setError  error
	getCalled bool
	setCalled bool
	lastKey   string
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{
		data: make(map[string]interface{}),
	}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (interface{}, error) {
	m.getCalled = true
	m.lastKey = key
	if m.getError != nil {
		return nil, m.getError
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.setCalled = true
	m.lastKey = key
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

// MockSearchProvider is a mock implementation of domain.SearchProvider
type MockSearchProvider struct {
	response  *domain.SearchResponse
	err       error
	callCount int
	lastQuery string
}

func (m *MockSearchProvider) Search(ctx context.Context, query string) (*domain.SearchResponse, error) {
	m.callCount++
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func floatPtr(v float64) *float64 {
	return &v
}
