package fields

import (
	"regexp"
	"strings"
	"unicode"
)

var fieldNameSeparators = regexp.MustCompile(`[_\-\s]+`)

// HumanizeFieldName converts a storage key into a human-friendly label. It
// splits on underscores, dashes and camelCase boundaries, upcases the first
// letter of each token, and joins with single spaces. Acronym runs survive
// intact: "SEOTitle" becomes "SEO Title", "apiURL" becomes "Api URL".
func HumanizeFieldName(name string) string {
	if name == "" {
		return ""
	}

	var segments []string
	for _, word := range fieldNameSeparators.Split(name, -1) {
		if word == "" {
			continue
		}
		for _, token := range splitCamel(word) {
			segments = append(segments, upperFirst(token))
		}
	}
	return strings.Join(segments, " ")
}

func splitCamel(input string) []string {
	runes := []rune(input)
	var tokens []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if camelBoundary(runes, i) {
			tokens = append(tokens, string(runes[start:i]))
			start = i
		}
	}
	return append(tokens, string(runes[start:]))
}

// camelBoundary reports whether a new word starts at index i: either a
// lowercase-to-uppercase transition, or the last capital of an acronym run
// followed by a lowercase letter.
func camelBoundary(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	if unicode.IsLower(prev) && unicode.IsUpper(cur) {
		return true
	}
	return unicode.IsUpper(prev) && unicode.IsUpper(cur) &&
		i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

func upperFirst(token string) string {
	if token == "" {
		return ""
	}
	runes := []rune(token)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
