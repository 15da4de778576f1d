package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
)

// StructuredQueryExecutor answers count questions directly from the graph store
type StructuredQueryExecutor struct {
	counter domain.ProductCounter
	logger  zerolog.Logger
}

// NewStructuredQueryExecutor creates an executor backed by the given counter
func NewStructuredQueryExecutor(counter domain.ProductCounter, logger zerolog.Logger) *StructuredQueryExecutor {
	return &StructuredQueryExecutor{
		counter: counter,
		logger:  logger.With().Str("component", "structured_query").Logger(),
	}
}

// Execute counts the products matching the intent and renders the answer sentence.
// Any counter failure is returned wrapped in domain.ErrAggregateQuery.
func (e *StructuredQueryExecutor) Execute(ctx context.Context, intent domain.StructuredIntent) (string, error) {
	count, err := e.counter.CountProducts(ctx, intent)
	if err != nil {
		e.logger.Error().Err(err).Str("dimension", intent.Kind.String()).Str("name", intent.Name).Msg("count query failed")
		return "", fmt.Errorf("%w: %s %q: %v", domain.ErrAggregateQuery, intent.Kind, intent.Name, err)
	}

	e.logger.Debug().
		Str("dimension", intent.Kind.String()).
		Str("name", intent.Name).
		Int64("count", count).
		Msg("count query answered")

	return renderCount(intent, count)
}

func renderCount(intent domain.StructuredIntent, count int64) (string, error) {
	switch intent.Kind {
	case domain.IntentCategory:
		return fmt.Sprintf("There are %d products in the category '%s'.", count, intent.Name), nil
	case domain.IntentBrand:
		return fmt.Sprintf("There are %d products for the brand '%s'.", count, intent.Name), nil
	case domain.IntentIngredient:
		return fmt.Sprintf("There are %d products containing the ingredient '%s'.", count, intent.Name), nil
	case domain.IntentNone:
		return fmt.Sprintf("There are %d products listed.", count), nil
	default:
		return "", fmt.Errorf("%w: unknown dimension %d", domain.ErrAggregateQuery, int(intent.Kind))
	}
}
