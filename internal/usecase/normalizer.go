package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Compiled patterns for question normalization
var (
	// Anything that is not a letter, digit or whitespace becomes a separator
	nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

	// Multiple spaces cleanup
	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// asciiFold decomposes runes and drops combining marks along with any rune
// that has no ASCII representation ("crème brûlée" -> "creme brulee").
var asciiFold = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.Predicate(func(r rune) bool {
		return unicode.Is(unicode.Mn, r) || r > unicode.MaxASCII
	})),
)

// NormalizeQuestion canonicalizes raw question text: ASCII-folded, lowercase,
// punctuation replaced by spaces, whitespace collapsed and trimmed.
func NormalizeQuestion(text string) string {
	folded, _, err := transform.String(asciiFold, text)
	if err != nil {
		folded = text
	}

	cleaned := strings.ToLower(folded)
	cleaned = nonWordPattern.ReplaceAllString(cleaned, " ")
	cleaned = multiSpacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
