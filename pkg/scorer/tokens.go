package scorer

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var numberRegex = regexp.MustCompile(`[-+]?\d[\d,]*(?:\.\d+)?`)
var parentheticalRegex = regexp.MustCompile(`\([^)]*\)`)

// defaultStopwords is the content-word filter for salient-token
// extraction. Deliberately small: only function words that appear in
// reference answers without carrying meaning.
var defaultStopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "been": {}, "by": {}, "for": {}, "from": {}, "had": {},
	"has": {}, "have": {}, "in": {}, "into": {}, "is": {}, "it": {},
	"its": {}, "of": {}, "on": {}, "or": {}, "per": {}, "than": {},
	"that": {}, "the": {}, "this": {}, "to": {}, "was": {}, "were": {},
	"will": {}, "with": {},
}

func normalizeText(input string, caseSensitive bool, normalizeWhitespace bool) string {
	text := input
	if normalizeWhitespace {
		text = strings.Join(strings.Fields(text), " ")
	} else {
		text = strings.TrimSpace(text)
	}
	if !caseSensitive {
		text = strings.ToLower(text)
	}
	return text
}

// salientTokens extracts the credit-bearing tokens of a text: numeric
// literals with digit grouping removed ("33,653,000" and "33653000" are
// the same token) and lowercased content words outside the stopword set.
func salientTokens(text string, stopwords map[string]struct{}) map[string]struct{} {
	tokens := make(map[string]struct{})

	for _, raw := range numberRegex.FindAllString(text, -1) {
		clean := strings.ReplaceAll(raw, ",", "")
		value, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			continue
		}
		tokens[strconv.FormatFloat(value, 'f', -1, 64)] = struct{}{}
	}

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, word := range words {
		if len(word) < 2 {
			continue
		}
		if _, ok := stopwords[word]; ok {
			continue
		}
		tokens[word] = struct{}{}
	}

	return tokens
}

// stripParenthetical drops bracketed working from a reference answer, so
// "33,653,000 (33,653 in table × 1,000)" keeps only the computed figure.
func stripParenthetical(text string) string {
	return strings.TrimSpace(parentheticalRegex.ReplaceAllString(text, " "))
}
