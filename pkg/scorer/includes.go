package scorer

import (
	"context"
	"strings"

	"ragcheck/pkg/core"
)

// Includes scores answers by substring containment of the expected text.
type Includes struct {
	CaseSensitive       bool
	NormalizeWhitespace bool
}

func (i Includes) Name() string {
	return "includes"
}

func (i Includes) Score(_ context.Context, c core.Case, resp core.Response) (float64, error) {
	expected := normalizeText(c.ExpectedAnswer, i.CaseSensitive, i.NormalizeWhitespace)
	actual := normalizeText(resp.Answer, i.CaseSensitive, i.NormalizeWhitespace)

	if strings.Contains(actual, expected) {
		return 1, nil
	}
	return 0, nil
}
