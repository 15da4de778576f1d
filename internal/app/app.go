// Package app wires the long-lived service handles into the question pipeline.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/Ozerg97/nestle-chat-bot/config"
	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
	"github.com/Ozerg97/nestle-chat-bot/internal/infrastructure/generation"
	"github.com/Ozerg97/nestle-chat-bot/internal/infrastructure/graph"
	"github.com/Ozerg97/nestle-chat-bot/internal/infrastructure/session"
	"github.com/Ozerg97/nestle-chat-bot/internal/infrastructure/vectorsearch"
	"github.com/Ozerg97/nestle-chat-bot/internal/metrics"
	"github.com/Ozerg97/nestle-chat-bot/internal/usecase"
)

// App holds the pipeline and every handle that must be released on shutdown
type App struct {
	Questions *usecase.QuestionService
	Sessions  domain.SessionRepository
	Metrics   *metrics.Metrics

	closers []func(context.Context) error
	logger  zerolog.Logger
}

// Build connects to the graph store, vector index and session store and
// assembles the question pipeline. On error every handle opened so far is closed.
func Build(ctx context.Context, cfg *config.Config, reg prometheus.Registerer, logger zerolog.Logger) (*App, error) {
	a := &App{logger: logger}

	if reg != nil {
		a.Metrics = metrics.NewMetrics(reg)
	}

	lexicon := usecase.DefaultLexicon()
	if cfg.Lexicon.File != "" {
		loaded, err := config.LoadLexicon(cfg.Lexicon.File)
		if err != nil {
			return nil, err
		}
		lexicon = loaded
		logger.Info().Str("file", cfg.Lexicon.File).Msg("lexicon loaded")
	}

	graphStore, err := graph.NewStore(ctx, graph.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
		Database: cfg.Neo4j.Database,
	}, logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, graphStore.Close)

	index, err := vectorsearch.NewMilvusIndex(ctx, vectorsearch.IndexConfig{
		Address:     cfg.Vector.Address,
		APIKey:      cfg.Vector.APIKey,
		Collection:  cfg.Vector.Collection,
		VectorField: cfg.Vector.VectorField,
		IDField:     cfg.Vector.IDField,
		Metric:      cfg.Vector.Metric,
	})
	if err != nil {
		a.Close(ctx)
		return nil, err
	}
	a.closers = append(a.closers, func(context.Context) error { return index.Close() })

	embedder, err := vectorsearch.NewEmbedder(vectorsearch.EmbedderConfig{
		BaseURL: cfg.Embedding.BaseURL,
		APIKey:  cfg.Embedding.APIKey,
		Model:   cfg.Embedding.Model,
	})
	if err != nil {
		a.Close(ctx)
		return nil, err
	}

	sessions, err := session.Open(ctx, cfg.Session.Type, cfg.Session.RedisURL)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}
	a.Sessions = sessions
	a.closers = append(a.closers, func(context.Context) error { return sessions.Close() })

	generator := generation.NewClient(generation.Config{
		BaseURL:           cfg.Generation.BaseURL,
		APIKey:            cfg.Generation.APIKey,
		Model:             cfg.Generation.Model,
		AssistantName:     cfg.Generation.AssistantName,
		Timeout:           cfg.Generation.Timeout,
		RequestsPerMinute: cfg.RateLimit.Generation,
		MaxAttempts:       cfg.Generation.MaxAttempts,
	}, a.Metrics, logger)

	a.Questions = usecase.NewQuestionService(
		graphStore,
		vectorsearch.NewSearcher(embedder, index, logger),
		graphStore,
		generator,
		usecase.QuestionServiceConfig{
			Lexicon:   lexicon,
			MaxStores: cfg.Geo.MaxStores,
			Retrieval: usecase.RetrievalConfig{
				NeighborCount:  cfg.Vector.TopK,
				ScoreThreshold: cfg.Vector.ScoreThreshold,
			},
		},
		a.Metrics,
		logger,
	)

	return a, nil
}

// Close releases the handles in reverse order of creation
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil

	if err := errors.Join(errs...); err != nil {
		a.logger.Error().Err(err).Msg("failed to release resources")
		return fmt.Errorf("close: %w", err)
	}
	return nil
}
