package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
	"github.com/Ozerg97/nestle-chat-bot/internal/metrics"
)

// QuestionServiceConfig holds configuration for the question pipeline
type QuestionServiceConfig struct {
	Lexicon   domain.Lexicon
	MaxStores int
	Retrieval RetrievalConfig
}

// QuestionService routes a question to a direct count answer or to the
// retrieval + generation path.
type QuestionService struct {
	classifier *IntentClassifier
	extractor  *EntityExtractor
	executor   *StructuredQueryExecutor
	retrieval  *RetrievalService
	ranker     *GeoRanker
	generator  domain.Generator
	metrics    *metrics.Metrics
	logger     zerolog.Logger
}

// NewQuestionService wires the pipeline. The collaborators are long-lived
// handles owned by the caller.
func NewQuestionService(
	counter domain.ProductCounter,
	searcher domain.VectorSearcher,
	graph domain.GraphStore,
	generator domain.Generator,
	config QuestionServiceConfig,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *QuestionService {
	lexicon := config.Lexicon
	if len(lexicon.Categories)+len(lexicon.Brands)+len(lexicon.Ingredients) == 0 {
		lexicon = DefaultLexicon()
	}

	return &QuestionService{
		classifier: NewIntentClassifier(),
		extractor:  NewEntityExtractor(lexicon),
		executor:   NewStructuredQueryExecutor(counter, logger),
		retrieval:  NewRetrievalService(searcher, graph, config.Retrieval, m, logger),
		ranker:     NewGeoRanker(config.MaxStores, logger),
		generator:  generator,
		metrics:    m,
		logger:     logger.With().Str("component", "question_service").Logger(),
	}
}

// Answer runs one question through the pipeline.
// Flow: normalize -> classify -> (count answer) or (retrieve -> assemble + rank -> generate)
func (s *QuestionService) Answer(ctx context.Context, request *domain.AskRequest) (*domain.Answer, error) {
	if request == nil || strings.TrimSpace(request.Question) == "" {
		return nil, domain.ErrInvalidRequest
	}

	start := time.Now()
	normalized := NormalizeQuestion(request.Question)

	if s.classifier.IsCountQuery(normalized) {
		answer, err := s.answerCount(ctx, normalized)
		s.metrics.ObserveQuestion(string(domain.RouteStructured), err, time.Since(start))
		return answer, err
	}

	answer, err := s.answerSemantic(ctx, request)
	s.metrics.ObserveQuestion(string(domain.RouteSemantic), err, time.Since(start))
	return answer, err
}

func (s *QuestionService) answerCount(ctx context.Context, normalized string) (*domain.Answer, error) {
	residual := s.classifier.StripTriggers(normalized)
	intent := s.extractor.Extract(residual).Intent()

	s.logger.Info().
		Str("normalized", normalized).
		Str("dimension", intent.Kind.String()).
		Str("name", intent.Name).
		Msg("count question detected")

	start := time.Now()
	text, err := s.executor.Execute(ctx, intent)
	s.metrics.ObserveStage("aggregate_query", time.Since(start))
	if err != nil {
		return nil, err
	}

	return &domain.Answer{Text: text, Route: domain.RouteStructured}, nil
}

func (s *QuestionService) answerSemantic(ctx context.Context, request *domain.AskRequest) (*domain.Answer, error) {
	records, err := s.retrieval.Retrieve(ctx, request.Question)
	if err != nil {
		s.logger.Error().Err(err).Msg("semantic retrieval failed")
		return nil, err
	}

	graphContext := AssembleContext(records)
	storesContext := s.ranker.Rank(records, request.Location)

	s.logger.Info().
		Int("records", len(records)).
		Bool("has_location", request.Location != nil).
		Msg("semantic context assembled")

	start := time.Now()
	text := s.generator.Generate(ctx, domain.GenerationRequest{
		Question:      request.Question,
		GraphContext:  graphContext,
		StoresContext: storesContext,
	})
	s.metrics.ObserveStage("generation", time.Since(start))

	return &domain.Answer{Text: text, Route: domain.RouteSemantic}, nil
}
