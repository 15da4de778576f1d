package vectorsearch

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/milvus-io/milvus-sdk-go/v2/client"
	"github.com/milvus-io/milvus-sdk-go/v2/entity"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
)

// IndexConfig configures the Milvus collection lookup
type IndexConfig struct {
	Address     string
	APIKey      string
	Collection  string
	VectorField string
	IDField     string
	Metric      string
}

// MilvusIndex runs nearest-neighbor queries against one Milvus collection
type MilvusIndex struct {
	client      client.Client
	collection  string
	vectorField string
	idField     string
	metric      entity.MetricType
}

// NewMilvusIndex connects to Milvus. Only similarity metrics (higher is
// closer) are accepted so that scores compare against a single threshold.
func NewMilvusIndex(ctx context.Context, cfg IndexConfig) (*MilvusIndex, error) {
	metric, err := parseMetric(cfg.Metric)
	if err != nil {
		return nil, err
	}

	c, err := client.NewClient(ctx, client.Config{
		Address: cfg.Address,
		APIKey:  cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("connect milvus: %w", err)
	}

	return &MilvusIndex{
		client:      c,
		collection:  cfg.Collection,
		vectorField: cfg.VectorField,
		idField:     cfg.IDField,
		metric:      metric,
	}, nil
}

func parseMetric(name string) (entity.MetricType, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "COSINE":
		return entity.COSINE, nil
	case "IP":
		return entity.IP, nil
	default:
		return "", fmt.Errorf("unsupported vector metric %q (use COSINE or IP)", name)
	}
}

// Nearest returns up to k neighbors of vector, best first
func (m *MilvusIndex) Nearest(ctx context.Context, vector []float32, k int) ([]domain.Neighbor, error) {
	sp, err := entity.NewIndexFlatSearchParam()
	if err != nil {
		return nil, fmt.Errorf("search params: %w", err)
	}

	results, err := m.client.Search(
		ctx,
		m.collection,
		nil,
		"",
		[]string{m.idField},
		[]entity.Vector{entity.FloatVector(vector)},
		m.vectorField,
		m.metric,
		k,
		sp,
	)
	if err != nil {
		return nil, fmt.Errorf("milvus search: %w", err)
	}

	return neighborsFromResults(results, m.idField)
}

// Close releases the Milvus connection
func (m *MilvusIndex) Close() error {
	return m.client.Close()
}

// neighborsFromResults reads the id column (output field, falling back to the
// primary key) and pairs it with the scores of the single query vector.
func neighborsFromResults(results []client.SearchResult, idField string) ([]domain.Neighbor, error) {
	if len(results) == 0 {
		return nil, nil
	}

	result := results[0]
	if result.Err != nil {
		return nil, fmt.Errorf("milvus search: %w", result.Err)
	}

	idColumn := result.IDs
	for _, col := range result.Fields {
		if col != nil && col.Name() == idField {
			idColumn = col
			break
		}
	}

	ids, err := columnStrings(idColumn)
	if err != nil {
		return nil, err
	}

	n := min(len(ids), len(result.Scores))
	neighbors := make([]domain.Neighbor, 0, n)
	for i := 0; i < n; i++ {
		neighbors = append(neighbors, domain.Neighbor{
			ID:    ids[i],
			Score: float64(result.Scores[i]),
		})
	}
	return neighbors, nil
}

func columnStrings(col entity.Column) ([]string, error) {
	switch c := col.(type) {
	case *entity.ColumnVarChar:
		return c.Data(), nil
	case *entity.ColumnInt64:
		data := c.Data()
		ids := make([]string, len(data))
		for i, v := range data {
			ids[i] = strconv.FormatInt(v, 10)
		}
		return ids, nil
	case nil:
		return nil, fmt.Errorf("milvus result has no id column")
	default:
		return nil, fmt.Errorf("unsupported id column type %T", col)
	}
}
