package scorer

import (
	"context"

	"ragcheck/pkg/core"
)

// ExactMatch scores answers by exact string match after normalization.
type ExactMatch struct {
	CaseSensitive       bool
	NormalizeWhitespace bool
}

func (e ExactMatch) Name() string {
	return "exact"
}

func (e ExactMatch) Score(_ context.Context, c core.Case, resp core.Response) (float64, error) {
	expected := normalizeText(c.ExpectedAnswer, e.CaseSensitive, e.NormalizeWhitespace)
	actual := normalizeText(resp.Answer, e.CaseSensitive, e.NormalizeWhitespace)

	if expected == actual {
		return 1, nil
	}
	return 0, nil
}
