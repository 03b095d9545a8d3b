package suggest

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases and strips diacritics so "São Paulo" and "sao paulo"
// compare equal. Decompose, drop the combining marks, recompose.
func Normalize(s string) string {
	lowered := strings.ToLower(s)

	normalizer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(normalizer, lowered)
	if err != nil {
		return lowered
	}

	return normalized
}
