package directory

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips diacritics, so that user-typed filter text
// matches free-text clinic data regardless of accents ("Kraków" ~ "krakow").
// Polish ł does not decompose under NFD and is mapped explicitly.
func Fold(s string) string {
	lowered := strings.ToLower(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, lowered)
	if err != nil {
		out = lowered
	}
	return strings.Map(func(r rune) rune {
		if r == 'ł' {
			return 'l'
		}
		return r
	}, out)
}

// containsFold reports whether haystack contains needle, diacritic- and
// case-insensitively.
func containsFold(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
