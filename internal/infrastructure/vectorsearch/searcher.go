package vectorsearch

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
)

type embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type index interface {
	Nearest(ctx context.Context, vector []float32, k int) ([]domain.Neighbor, error)
}

// Searcher implements domain.VectorSearcher by embedding the question and
// querying the vector index with the result.
type Searcher struct {
	embedder embedder
	index    index
	logger   zerolog.Logger
}

// NewSearcher combines an embedder and an index
func NewSearcher(e embedder, idx index, logger zerolog.Logger) *Searcher {
	return &Searcher{
		embedder: e,
		index:    idx,
		logger:   logger.With().Str("component", "vector_search").Logger(),
	}
}

// Search returns the k nearest catalog entities of query
func (s *Searcher) Search(ctx context.Context, query string, k int) ([]domain.Neighbor, error) {
	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	neighbors, err := s.index.Nearest(ctx, vector, k)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int("dims", len(vector)).Int("k", k).Int("neighbors", len(neighbors)).Msg("vector search")
	return neighbors, nil
}
