// Package vectorsearch finds catalog entities semantically close to a question.
// Queries are embedded through an OpenAI-compatible endpoint and matched in Milvus.
package vectorsearch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// EmbedderConfig configures the query embedder
type EmbedderConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Embedder turns text into a query vector
type Embedder struct {
	client *openai.Client
	model  string
}

// NewEmbedder creates an embedder against any OpenAI-compatible embedding API
func NewEmbedder(cfg EmbedderConfig) (*Embedder, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("embedding model is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	config.HTTPClient = &http.Client{Timeout: timeout}

	return &Embedder{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
	}, nil
}

// Embed returns the embedding of a single text
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		return nil, fmt.Errorf("embedding API call failed: %w", err)
	}

	if len(resp.Data) != 1 {
		return nil, fmt.Errorf("API returned %d embeddings for 1 text", len(resp.Data))
	}
	if len(resp.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("API returned an empty embedding")
	}

	return resp.Data[0].Embedding, nil
}
