package usecase

import (
	"regexp"
	"strings"
)

// countTriggers are the phrases that make a question an aggregate question
var countTriggers = []string{
	`how\s+many`,
	`number\s+of`,
	`count\s+of`,
	`combien\s+de`,
	`nombre\s+de`,
	`quantite\s+de`,
}

// productNouns are the phrases that make the aggregate about products
var productNouns = []string{
	`products?`,
	`produits?`,
	`items?`,
}

// IntentClassifier decides whether a normalized question asks for a product count.
// Both a count trigger and a product noun are required.
type IntentClassifier struct {
	countPattern   *regexp.Regexp
	productPattern *regexp.Regexp
}

// NewIntentClassifier compiles the trigger and noun alternations
func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{
		countPattern:   compileAlternation(countTriggers),
		productPattern: compileAlternation(productNouns),
	}
}

func compileAlternation(phrases []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(phrases, "|") + `)\b`)
}

// IsCountQuery reports whether the text contains a count trigger and a product noun.
func (c *IntentClassifier) IsCountQuery(normalized string) bool {
	return c.countPattern.MatchString(normalized) && c.productPattern.MatchString(normalized)
}

// StripTriggers removes every count trigger and product noun so that the
// residual text only carries the subject of the question.
func (c *IntentClassifier) StripTriggers(normalized string) string {
	residual := c.countPattern.ReplaceAllString(normalized, " ")
	residual = c.productPattern.ReplaceAllString(residual, " ")
	residual = multiSpacePattern.ReplaceAllString(residual, " ")
	return strings.TrimSpace(residual)
}
