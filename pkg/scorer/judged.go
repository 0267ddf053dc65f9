package scorer

import (
	"context"
	"fmt"
	"strings"

	"ragcheck/pkg/core"
)

const judgePrompt = `You are grading a question-answering system against a reference answer.

Question: %s

Reference answer: %s

Candidate answer: %s

Does the candidate answer convey the same fact as the reference answer? Ignore differences in wording, units spelled out versus abbreviated, and extra context. Reply with exactly one word: CORRECT or INCORRECT.`

// Judged delegates answer comparison to a judge answerer, for reference
// answers too paraphrastic for token overlap. The judge's page citation,
// if any, is ignored.
type Judged struct {
	Judge core.Answerer
}

func (j Judged) Name() string {
	return "judged"
}

func (j Judged) Score(ctx context.Context, c core.Case, resp core.Response) (float64, error) {
	if j.Judge == nil {
		return 0, fmt.Errorf("scorer: judge answerer is required")
	}

	prompt := fmt.Sprintf(judgePrompt, c.Question, c.ExpectedAnswer, resp.Answer)
	verdict, err := j.Judge.Answer(ctx, prompt)
	if err != nil {
		return 0, fmt.Errorf("scorer: judge error: %w", err)
	}

	text := strings.ToUpper(strings.TrimSpace(verdict.Answer))
	if strings.Contains(text, "INCORRECT") {
		return 0, nil
	}
	if strings.Contains(text, "CORRECT") {
		return 1, nil
	}
	return 0, nil
}
