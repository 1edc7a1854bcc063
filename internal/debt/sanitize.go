package debt

import (
	"strings"
	"unicode"
)

// MaxDescriptionLength is the longest description kept, in runes.
const MaxDescriptionLength = 49

// TruncateDescription trims surrounding whitespace, replaces control
// characters with spaces and cuts the result to MaxDescriptionLength runes.
// Example: "  Car loan\t" -> "Car loan"
func TruncateDescription(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)

	runes := []rune(s)
	if len(runes) <= MaxDescriptionLength {
		return s
	}
	return strings.TrimRightFunc(string(runes[:MaxDescriptionLength]), unicode.IsSpace)
}
