package graph

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
)

// cleanRow drops columns whose value is null, an empty string or an empty list
func cleanRow(row map[string]any) map[string]any {
	cleaned := make(map[string]any, len(row))
	for k, v := range row {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			if val == "" {
				continue
			}
		case []any:
			if len(val) == 0 {
				continue
			}
		}
		cleaned[k] = v
	}
	return cleaned
}

// MapRecord converts a cleaned result row to a GraphRecord
func MapRecord(row map[string]any) (domain.GraphRecord, error) {
	rawKind, _ := row["type"].(string)
	kind, ok := domain.ParseRecordKind(rawKind)
	if !ok {
		return domain.GraphRecord{}, fmt.Errorf("unknown record type %q", rawKind)
	}

	record := domain.GraphRecord{
		Kind:           kind,
		ID:             stringValue(row["id"]),
		Title:          stringValue(row["title"]),
		Description:    stringValue(row["description"]),
		URL:            stringValue(row["url"]),
		NutritionValue: stringList(row["nutrition_value"]),
		AmazonLink:     stringValue(row["amazon_link"]),
		Ingredients:    stringList(row["ingredients"]),
		Products:       stringList(row["products"]),
		Brands:         stringList(row["brands"]),
		Features:       stringList(row["features"]),
		Stores:         storeList(row["stores"]),
	}

	return record, nil
}

func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	default:
		return fmt.Sprint(val)
	}
}

// stringList accepts a list or a single scalar (nutrition is sometimes stored as one string)
func stringList(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := stringValue(item); s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case []string:
		return val
	default:
		if s := stringValue(val); s != "" {
			return []string{s}
		}
		return nil
	}
}

func storeList(v any) []domain.Store {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	var stores []domain.Store
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		s := domain.Store{
			Name:      stringValue(m["name"]),
			Address:   stringValue(m["address"]),
			Latitude:  floatValue(m["latitude"]),
			Longitude: floatValue(m["longitude"]),
		}
		// collect() over an unmatched OPTIONAL MATCH yields one all-null map
		if s.Name == "" && s.Address == "" && s.Latitude == nil && s.Longitude == nil {
			continue
		}
		stores = append(stores, s)
	}
	return stores
}

// floatValue returns nil when v is missing or not numeric
func floatValue(v any) *float64 {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int64:
		f = float64(val)
	case int:
		f = float64(val)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// int64Value converts the count column returned by the driver
func int64Value(v any) (int64, error) {
	switch val := v.(type) {
	case int64:
		return val, nil
	case int:
		return int64(val), nil
	case float64:
		return int64(val), nil
	default:
		return 0, fmt.Errorf("unexpected count value %T", v)
	}
}
