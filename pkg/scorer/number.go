package scorer

import (
	"context"
	"math"
	"strconv"
	"strings"

	"ragcheck/pkg/core"
)

// FinalNumber scores by comparing the last number in the response to the
// last number in the expected answer. Useful for answers that are a
// single figure (a price, a share count) wrapped in variable prose.
type FinalNumber struct {
	Tolerance float64
}

func (n FinalNumber) Name() string {
	return "number"
}

func (n FinalNumber) Score(_ context.Context, c core.Case, resp core.Response) (float64, error) {
	expected := c.ExpectedAnswer
	if stripped := stripParenthetical(expected); stripped != "" {
		expected = stripped
	}

	expectedNum, expectedRaw := lastNumber(expected)
	actualNum, actualRaw := lastNumber(resp.Answer)

	if expectedRaw != "" && actualRaw != "" {
		tol := n.Tolerance
		if tol <= 0 {
			tol = 1e-6
		}
		if math.Abs(expectedNum-actualNum) <= tol {
			return 1, nil
		}
		return 0, nil
	}

	if normalizeText(expected, false, true) == normalizeText(resp.Answer, false, true) {
		return 1, nil
	}
	return 0, nil
}

func lastNumber(text string) (float64, string) {
	matches := numberRegex.FindAllString(text, -1)
	if len(matches) == 0 {
		return 0, ""
	}
	raw := matches[len(matches)-1]
	clean := strings.ReplaceAll(raw, ",", "")
	value, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, ""
	}
	return value, raw
}
