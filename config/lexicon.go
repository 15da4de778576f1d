package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
)

// LoadLexicon reads a YAML vocabulary file with categories, brands and ingredients lists.
func LoadLexicon(path string) (domain.Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Lexicon{}, fmt.Errorf("read lexicon file: %w", err)
	}

	var lexicon domain.Lexicon
	if err := yaml.Unmarshal(data, &lexicon); err != nil {
		return domain.Lexicon{}, fmt.Errorf("parse lexicon file: %w", err)
	}

	if len(lexicon.Categories)+len(lexicon.Brands)+len(lexicon.Ingredients) == 0 {
		return domain.Lexicon{}, fmt.Errorf("lexicon file %s defines no terms", path)
	}

	return lexicon, nil
}
