package embedding

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/chronolens/backend/internal/domain"
)

const defaultModel = "text-embedding-3-small"

// Client converts free text into embedding vectors via the OpenAI API
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a new embedding client
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		api:   openai.NewClient(apiKey),
		model: model,
	}
}

// Embed returns the embedding vector for the given text
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(c.model),
		Input: text,
	})
	if err != nil {
		return nil, fmt.Errorf("create embeddings: %w", err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, domain.ErrEmbeddingFailure
	}
	return resp.Data[0].Embedding, nil
}
