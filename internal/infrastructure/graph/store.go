// Package graph implements the knowledge-graph collaborators on top of Neo4j.
package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
)

// runFunc executes a read query and returns the rows as column maps
type runFunc func(ctx context.Context, query string, params map[string]any) ([]map[string]any, error)

// Config holds Neo4j connection settings
type Config struct {
	URI      string
	Username string
	Password string
	Database string
}

// Store serves enriched records and product counts from Neo4j.
// It owns the driver; Close must be called on shutdown.
type Store struct {
	driver neo4j.DriverWithContext
	run    runFunc
	logger zerolog.Logger
}

// NewStore opens the driver and verifies connectivity
func NewStore(ctx context.Context, cfg Config, logger zerolog.Logger) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("neo4j connectivity: %w", err)
	}

	s := &Store{
		driver: driver,
		logger: logger.With().Str("component", "neo4j").Logger(),
	}
	s.run = s.executeRead(cfg.Database)
	return s, nil
}

func (s *Store) executeRead(database string) runFunc {
	return func(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
		opts := []neo4j.ExecuteQueryConfigurationOption{neo4j.ExecuteQueryWithReadersRouting()}
		if database != "" {
			opts = append(opts, neo4j.ExecuteQueryWithDatabase(database))
		}

		result, err := neo4j.ExecuteQuery(ctx, s.driver, query, params, neo4j.EagerResultTransformer, opts...)
		if err != nil {
			return nil, err
		}

		rows := make([]map[string]any, 0, len(result.Records))
		for _, record := range result.Records {
			rows = append(rows, record.AsMap())
		}
		return rows, nil
	}
}

// Close releases the driver
func (s *Store) Close(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}
	return s.driver.Close(ctx)
}

// FetchRecords returns the cleaned records for the given vector ids, in the
// order the graph returned them. Rows with an unknown type are skipped.
func (s *Store) FetchRecords(ctx context.Context, ids []string) ([]domain.GraphRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := s.run(ctx, fetchRecordsQuery, map[string]any{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}

	records := make([]domain.GraphRecord, 0, len(rows))
	for _, row := range rows {
		record, err := MapRecord(cleanRow(row))
		if err != nil {
			s.logger.Warn().Err(err).Msg("skipping graph row")
			continue
		}
		records = append(records, record)
	}

	s.logger.Debug().Int("ids", len(ids)).Int("records", len(records)).Msg("graph records fetched")
	return records, nil
}

// CountProducts runs the count query matching the intent dimension
func (s *Store) CountProducts(ctx context.Context, intent domain.StructuredIntent) (int64, error) {
	query, params := countQuery(intent)

	rows, err := s.run(ctx, query, params)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	if len(rows) != 1 {
		return 0, fmt.Errorf("count products: expected one row, got %d", len(rows))
	}

	total, ok := rows[0]["total"]
	if !ok {
		return 0, fmt.Errorf("count products: missing total column")
	}
	return int64Value(total)
}

func countQuery(intent domain.StructuredIntent) (string, map[string]any) {
	switch intent.Kind {
	case domain.IntentCategory:
		return countByCategoryQuery, map[string]any{"name": intent.Name}
	case domain.IntentBrand:
		return countByBrandQuery, map[string]any{"name": intent.Name}
	case domain.IntentIngredient:
		return countByIngredientQuery, map[string]any{"name": intent.Name}
	default:
		return countAllProductsQuery, nil
	}
}
