package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
	"github.com/Ozerg97/nestle-chat-bot/internal/metrics"
)

// Retrieval defaults
const (
	DefaultNeighborCount  = 5
	DefaultScoreThreshold = 0.6
)

// RetrievalConfig holds configuration for semantic retrieval
type RetrievalConfig struct {
	NeighborCount  int
	ScoreThreshold float64
}

// RetrievalService turns a free-form question into enriched graph records
type RetrievalService struct {
	searcher       domain.VectorSearcher
	graph          domain.GraphStore
	neighborCount  int
	scoreThreshold float64
	metrics        *metrics.Metrics
	logger         zerolog.Logger
}

// NewRetrievalService creates a retrieval service with dependencies
func NewRetrievalService(
	searcher domain.VectorSearcher,
	graph domain.GraphStore,
	config RetrievalConfig,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *RetrievalService {
	k := config.NeighborCount
	if k <= 0 {
		k = DefaultNeighborCount
	}

	threshold := config.ScoreThreshold
	if threshold <= 0 {
		threshold = DefaultScoreThreshold
	}

	return &RetrievalService{
		searcher:       searcher,
		graph:          graph,
		neighborCount:  k,
		scoreThreshold: threshold,
		metrics:        m,
		logger:         logger.With().Str("component", "retrieval").Logger(),
	}
}

// Retrieve runs vector search on the raw question, keeps neighbors scoring
// strictly above the threshold and fetches their records in graph order.
func (s *RetrievalService) Retrieve(ctx context.Context, question string) ([]domain.GraphRecord, error) {
	start := time.Now()
	neighbors, err := s.searcher.Search(ctx, question, s.neighborCount)
	s.metrics.ObserveStage("vector_search", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrVectorSearch, err)
	}

	ids := s.filterNeighbors(neighbors)
	s.logger.Debug().
		Int("neighbors", len(neighbors)).
		Int("kept", len(ids)).
		Float64("threshold", s.scoreThreshold).
		Msg("vector search done")

	if len(ids) == 0 {
		s.metrics.ObserveRetrieved(0)
		return nil, nil
	}

	start = time.Now()
	records, err := s.graph.FetchRecords(ctx, ids)
	s.metrics.ObserveStage("graph_fetch", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGraphQuery, err)
	}

	s.metrics.ObserveRetrieved(len(records))
	return records, nil
}

func (s *RetrievalService) filterNeighbors(neighbors []domain.Neighbor) []string {
	ids := make([]string, 0, len(neighbors))
	for _, n := range neighbors {
		if n.Score > s.scoreThreshold {
			ids = append(ids, n.ID)
		}
	}
	return ids
}
