package usecase

import (
	"fmt"
	"strings"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
)

// AssembleContext renders records as a numbered block, one line per record,
// in input order. Absent fields are left out of the line entirely.
func AssembleContext(records []domain.GraphRecord) string {
	lines := make([]string, 0, len(records))

	for i, r := range records {
		parts := []string{fmt.Sprintf("%d. Category: %s | Title: %s", i+1, r.Kind, r.Title)}

		if r.Description != "" {
			parts = append(parts, "Description: "+r.Description)
		}
		if len(r.NutritionValue) > 0 {
			parts = append(parts, "Nutrition value: "+strings.Join(r.NutritionValue, "; "))
		}
		if len(r.Ingredients) > 0 {
			parts = append(parts, "Ingredients: "+strings.Join(r.Ingredients, ", "))
		}
		if r.URL != "" {
			parts = append(parts, "URL: "+r.URL)
		}

		lines = append(lines, strings.Join(parts, " | "))
	}

	return strings.Join(lines, "\n")
}
