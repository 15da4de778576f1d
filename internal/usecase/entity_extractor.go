package usecase

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Ozerg97/nestle-chat-bot/internal/domain"
)

// termMatcher is a compiled whole-term pattern for one lexicon entry
type termMatcher struct {
	term    string
	pattern *regexp.Regexp
}

// EntityExtractor finds the category, brand and ingredient named in a question.
type EntityExtractor struct {
	categories  []termMatcher
	brands      []termMatcher
	ingredients []termMatcher
}

// NewEntityExtractor compiles the lexicon. Within each vocabulary, terms are
// tried longest first and then in lexical order, so the result never depends
// on the order the lexicon was written in.
func NewEntityExtractor(lexicon domain.Lexicon) *EntityExtractor {
	return &EntityExtractor{
		categories:  compileTerms(lexicon.Categories),
		brands:      compileTerms(lexicon.Brands),
		ingredients: compileTerms(lexicon.Ingredients),
	}
}

// Extract returns the best match of each vocabulary in the residual text.
// A term whose every occurrence lies inside a longer term from another
// vocabulary is ignored, so "coffee mate" is a brand and not the category
// "coffee".
func (e *EntityExtractor) Extract(residual string) domain.Extraction {
	vocabularies := [][]termMatcher{e.categories, e.brands, e.ingredients}

	hits := make([][]termHit, len(vocabularies))
	for v, matchers := range vocabularies {
		hits[v] = findHits(residual, matchers)
	}

	best := make([]string, len(vocabularies))
	for v := range vocabularies {
		for _, h := range hits[v] {
			if !shadowed(h, v, hits) {
				best[v] = h.term
				break
			}
		}
	}

	return domain.Extraction{
		Category:   best[0],
		Brand:      best[1],
		Ingredient: best[2],
	}
}

// termHit is a matched term with the byte spans of all its occurrences.
type termHit struct {
	term  string
	spans [][]int
}

// findHits returns every matching term in matcher order.
func findHits(text string, matchers []termMatcher) []termHit {
	var hits []termHit
	for _, m := range matchers {
		if spans := m.pattern.FindAllStringIndex(text, -1); len(spans) > 0 {
			hits = append(hits, termHit{term: m.term, spans: spans})
		}
	}
	return hits
}

// shadowed reports whether every occurrence of h sits inside a longer
// occurrence of a term from a different vocabulary.
func shadowed(h termHit, vocabulary int, hits [][]termHit) bool {
	for _, span := range h.spans {
		if !insideLonger(span, vocabulary, hits) {
			return false
		}
	}
	return true
}

func insideLonger(span []int, vocabulary int, hits [][]termHit) bool {
	for v, others := range hits {
		if v == vocabulary {
			continue
		}
		for _, other := range others {
			for _, o := range other.spans {
				if o[0] <= span[0] && span[1] <= o[1] && o[1]-o[0] > span[1]-span[0] {
					return true
				}
			}
		}
	}
	return false
}

func compileTerms(terms []string) []termMatcher {
	seen := make(map[string]bool, len(terms))
	unique := make([]string, 0, len(terms))
	for _, raw := range terms {
		term := NormalizeQuestion(raw)
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		unique = append(unique, term)
	}

	sort.Slice(unique, func(i, j int) bool {
		if len(unique[i]) != len(unique[j]) {
			return len(unique[i]) > len(unique[j])
		}
		return unique[i] < unique[j]
	})

	matchers := make([]termMatcher, 0, len(unique))
	for _, term := range unique {
		matchers = append(matchers, termMatcher{
			term:    term,
			pattern: termPattern(term),
		})
	}
	return matchers
}

// termPattern builds `\bword1[\s-]+word2\b` so internal spaces in a term also
// match hyphens or whitespace runs in the input.
func termPattern(term string) *regexp.Regexp {
	words := strings.Fields(term)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b` + strings.Join(words, `[\s\-]+`) + `\b`)
}
