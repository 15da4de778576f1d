package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
)

func TestCleanRow(t *testing.T) {
	row := map[string]any{
		"type":        "Article",
		"title":       "Breakfast ideas",
		"description": nil,
		"url":         "",
		"ingredients": []any{},
		"brands":      []any{"Nesquik"},
	}

	cleaned := cleanRow(row)

	assert.Equal(t, map[string]any{
		"type":   "Article",
		"title":  "Breakfast ideas",
		"brands": []any{"Nesquik"},
	}, cleaned)
}

func TestMapRecord_Product(t *testing.T) {
	row := cleanRow(map[string]any{
		"type":            "Product",
		"id":              "vec-1",
		"title":           "KitKat 4 Finger",
		"description":     "Crispy wafer",
		"url":             "https://example.com/kitkat",
		"nutrition_value": []any{"Calories 210", "Fat 11 g"},
		"amazon_link":     "https://amazon.example/kitkat",
		"ingredients":     []any{"sugar", "milk"},
		"products":        []any{},
		"brands":          []any{"kit kat"},
		"features":        []any{"Sustainably sourced cocoa"},
		"stores": []any{
			map[string]any{"name": "Metro", "address": "1 Main St", "latitude": 43.7, "longitude": int64(-79)},
			map[string]any{"name": "Loblaws", "address": "2 Bay St", "latitude": "43.65", "longitude": "n/a"},
		},
	})

	record, err := MapRecord(row)
	require.NoError(t, err)

	assert.Equal(t, domain.KindProduct, record.Kind)
	assert.Equal(t, "vec-1", record.ID)
	assert.Equal(t, []string{"Calories 210", "Fat 11 g"}, record.NutritionValue)
	assert.Equal(t, "https://amazon.example/kitkat", record.AmazonLink)
	assert.Nil(t, record.Products)
	require.Len(t, record.Stores, 2)

	metro := record.Stores[0]
	require.NotNil(t, metro.Latitude)
	require.NotNil(t, metro.Longitude)
	assert.InDelta(t, 43.7, *metro.Latitude, 1e-9)
	assert.InDelta(t, -79.0, *metro.Longitude, 1e-9)

	loblaws := record.Stores[1]
	require.NotNil(t, loblaws.Latitude)
	assert.InDelta(t, 43.65, *loblaws.Latitude, 1e-9)
	assert.Nil(t, loblaws.Longitude, "non-numeric longitude must map to nil")
}

func TestMapRecord_SingleNutritionString(t *testing.T) {
	record, err := MapRecord(map[string]any{
		"type":            "Product",
		"title":           "Milo",
		"nutrition_value": "Calories 120",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Calories 120"}, record.NutritionValue)
}

func TestMapRecord_DropsUnmatchedStorePlaceholder(t *testing.T) {
	record, err := MapRecord(map[string]any{
		"type":  "Product",
		"title": "Aero",
		"stores": []any{
			map[string]any{"name": nil, "address": nil, "latitude": nil, "longitude": nil},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, record.Stores)
}

func TestMapRecord_UnknownType(t *testing.T) {
	_, err := MapRecord(map[string]any{"type": "Video", "title": "x"})
	assert.Error(t, err)

	_, err = MapRecord(map[string]any{"title": "no type"})
	assert.Error(t, err)
}

func TestFloatValue(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		want  float64
		isNil bool
	}{
		{name: "float64", in: 43.78, want: 43.78},
		{name: "int64", in: int64(12), want: 12},
		{name: "numeric string", in: " -79.4 ", want: -79.4},
		{name: "text", in: "north", isNil: true},
		{name: "nil", in: nil, isNil: true},
		{name: "bool", in: true, isNil: true},
		{name: "NaN string", in: "NaN", isNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := floatValue(tt.in)
			if tt.isNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, tt.want, *got, 1e-9)
		})
	}
}
