package scorer

import (
	"context"

	"ragcheck/pkg/core"
)

// SalientOverlap scores a response by how many of the expected answer's
// salient tokens it contains. Reference answers are paraphrastic prose,
// so exact string comparison is too strict; token recall against the
// expected set is a heuristic lower bound that prefers false negatives
// over false positives. A numeric match counts in full however much the
// surrounding prose differs.
type SalientOverlap struct {
	// Stopwords overrides the default content-word filter.
	Stopwords map[string]struct{}
	// KeepParenthetical retains bracketed working in the expected
	// answer. By default it is stripped, making the computed headline
	// figure the credit-bearing token rather than the arithmetic.
	KeepParenthetical bool
}

func (s SalientOverlap) Name() string {
	return "salient"
}

func (s SalientOverlap) Score(_ context.Context, c core.Case, resp core.Response) (float64, error) {
	expected := c.ExpectedAnswer
	if !s.KeepParenthetical {
		if stripped := stripParenthetical(expected); stripped != "" {
			expected = stripped
		}
	}

	stopwords := s.Stopwords
	if stopwords == nil {
		stopwords = defaultStopwords
	}

	want := salientTokens(expected, stopwords)
	if len(want) == 0 {
		// Nothing salient to anchor on; fall back to normalized equality.
		if normalizeText(expected, false, true) == normalizeText(resp.Answer, false, true) {
			return 1, nil
		}
		return 0, nil
	}

	got := salientTokens(resp.Answer, stopwords)
	matched := 0
	for token := range want {
		if _, ok := got[token]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(want)), nil
}
