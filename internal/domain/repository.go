package domain

import (
	"context"
	"time"
)

// VectorSearcher finds candidate entity ids for a question
type VectorSearcher interface {
	Search(ctx context.Context, query string, k int) ([]Neighbor, error)
}

// GraphStore fetches cleaned, enriched records for a set of vector ids.
// Implementations strip null, empty-string and empty-list values before returning.
type GraphStore interface {
	FetchRecords(ctx context.Context, ids []string) ([]GraphRecord, error)
}

// ProductCounter runs the aggregate count queries against Product nodes
type ProductCounter interface {
	CountProducts(ctx context.Context, intent StructuredIntent) (int64, error)
}

// Generator produces the final answer text. It never fails: internal errors
// are rendered as a user-visible message.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) string
}

// SessionRepository stores per-session user state
type SessionRepository interface {
	GetLocation(ctx context.Context, sessionID string) (*GeoPoint, error)
	SaveLocation(ctx context.Context, sessionID string, location GeoPoint, ttl time.Duration) error
	Close() error
}
