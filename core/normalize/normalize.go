// Package normalize canonicalizes item names and codes before comparison.
package normalize

import (
	"strings"
)

// quoteVariants maps visually-similar quote, apostrophe and backtick
// characters to one canonical form.
var quoteVariants = map[rune]rune{
	// single quotes, primes, backticks and accents
	'‘': '\'',
	'’': '\'',
	'‚': '\'',
	'‛': '\'',
	'′': '\'',
	'`': '\'',
	'´': '\'',
	// double quotes
	'“': '"',
	'”': '"',
	'„': '"',
	'″': '"',
}

// Normalize canonicalizes text for matching: trims surrounding whitespace,
// unifies quote variants, collapses internal whitespace runs to a single
// space, and lower-cases. Pure and idempotent; empty input stays empty.
func Normalize(text string) string {
	s := strings.TrimSpace(text)
	if s == "" {
		return ""
	}

	s = strings.Map(func(r rune) rune {
		if c, ok := quoteVariants[r]; ok {
			return c
		}
		return r
	}, s)

	// Fields splits on any whitespace run, including tabs and newlines
	s = strings.Join(strings.Fields(s), " ")

	return strings.ToLower(s)
}
