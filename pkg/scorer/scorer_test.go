package scorer

import (
	"context"
	"testing"

	"ragcheck/pkg/core"

	"github.com/stretchr/testify/require"
)

var repurchaseCase = core.Case{
	ID:             0,
	Question:       "How many shares were repurchased in September 2024 alone?",
	ExpectedAnswer: "33,653,000 (33,653 in table × 1,000)",
	ExpectedPage:   22,
}

func TestSalientOverlapNumericCredit(t *testing.T) {
	sc := SalientOverlap{}
	resp := core.Response{
		Answer: "The company repurchased 33,653,000 shares in September 2024.",
		Page:   22,
	}

	score, err := sc.Score(context.Background(), repurchaseCase, resp)
	require.NoError(t, err)
	require.GreaterOrEqual(t, score, 0.9)
}

func TestSalientOverlapUnrelated(t *testing.T) {
	sc := SalientOverlap{}
	resp := core.Response{Answer: "I don't know"}

	score, err := sc.Score(context.Background(), repurchaseCase, resp)
	require.NoError(t, err)
	require.Less(t, score, 0.2)
}

func TestSalientOverlapEcho(t *testing.T) {
	sc := SalientOverlap{}
	c := core.Case{ExpectedAnswer: "Diluted earnings per share of $6.08", ExpectedPage: 29}
	resp := core.Response{Answer: c.ExpectedAnswer, Page: 29}

	score, err := sc.Score(context.Background(), c, resp)
	require.NoError(t, err)
	require.Equal(t, 1.0, score)
}

func TestSalientOverlapDigitGrouping(t *testing.T) {
	sc := SalientOverlap{}
	c := core.Case{ExpectedAnswer: "$391,035 million in total net sales", ExpectedPage: 24}
	resp := core.Response{Answer: "Total net sales were 391035 million dollars."}

	score, err := sc.Score(context.Background(), c, resp)
	require.NoError(t, err)
	require.GreaterOrEqual(t, score, 0.8)
}

func TestSalientOverlapDeterministic(t *testing.T) {
	sc := SalientOverlap{}
	resp := core.Response{Answer: "33,653,000 shares were repurchased."}

	first, err := sc.Score(context.Background(), repurchaseCase, resp)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := sc.Score(context.Background(), repurchaseCase, resp)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestSalientOverlapKeepParenthetical(t *testing.T) {
	sc := SalientOverlap{KeepParenthetical: true}
	resp := core.Response{Answer: "The company repurchased 33,653,000 shares in September 2024."}

	score, err := sc.Score(context.Background(), repurchaseCase, resp)
	require.NoError(t, err)
	// The arithmetic tokens are now required, so partial credit only.
	require.Greater(t, score, 0.0)
	require.Less(t, score, 0.9)
}

func TestExactMatch(t *testing.T) {
	sc := ExactMatch{CaseSensitive: false, NormalizeWhitespace: true}
	c := core.Case{ExpectedAnswer: "Hello World"}
	resp := core.Response{Answer: "  hello   world  "}

	score, err := sc.Score(context.Background(), c, resp)
	require.NoError(t, err)
	require.Equal(t, 1.0, score)
}

func TestIncludes(t *testing.T) {
	sc := Includes{CaseSensitive: false, NormalizeWhitespace: true}
	c := core.Case{ExpectedAnswer: "world"}
	resp := core.Response{Answer: "Hello World"}

	score, err := sc.Score(context.Background(), c, resp)
	require.NoError(t, err)
	require.Equal(t, 1.0, score)
}

func TestFinalNumber(t *testing.T) {
	sc := FinalNumber{}
	c := core.Case{ExpectedAnswer: "33,653,000 (33,653 in table × 1,000)"}

	score, err := sc.Score(context.Background(), c, core.Response{Answer: "It repurchased 33653000 shares."})
	require.NoError(t, err)
	require.Equal(t, 1.0, score)

	score, err = sc.Score(context.Background(), c, core.Response{Answer: "It repurchased 33,653 shares."})
	require.NoError(t, err)
	require.Equal(t, 0.0, score)
}

func TestSalientTokens(t *testing.T) {
	tokens := salientTokens("33,653,000 shares in September 2024", defaultStopwords)
	require.Contains(t, tokens, "33653000")
	require.Contains(t, tokens, "2024")
	require.Contains(t, tokens, "shares")
	require.Contains(t, tokens, "september")
	require.NotContains(t, tokens, "in")
}

func TestStripParenthetical(t *testing.T) {
	require.Equal(t, "33,653,000", stripParenthetical("33,653,000 (33,653 in table × 1,000)"))
	require.Equal(t, "plain", stripParenthetical("plain"))
}
