package fixture

import (
	"errors"
	"fmt"

	"ragcheck/pkg/core"
)

var (
	// ErrShapeMismatch reports parallel input sequences of unequal length.
	// Positional alignment is the only link between a question and its
	// label, so a mismatched set cannot be scored at all.
	ErrShapeMismatch = errors.New("fixture: question, answer, and page sequences differ in length")
	// ErrInvalidPage reports a page number below 1.
	ErrInvalidPage = errors.New("fixture: expected page must be a positive integer")
)

// FromTriples zips three parallel sequences into cases, index-aligned
// with the inputs. It fails whole: no cases are returned on any shape or
// page error.
func FromTriples(questions, answers []string, pages []int) ([]core.Case, error) {
	if len(questions) != len(answers) || len(answers) != len(pages) {
		return nil, fmt.Errorf("%w: %d questions, %d answers, %d pages",
			ErrShapeMismatch, len(questions), len(answers), len(pages))
	}

	cases := make([]core.Case, len(questions))
	for i := range questions {
		if pages[i] < 1 {
			return nil, fmt.Errorf("%w: case %d has page %d", ErrInvalidPage, i, pages[i])
		}
		cases[i] = core.Case{
			ID:             i,
			Question:       questions[i],
			ExpectedAnswer: answers[i],
			ExpectedPage:   pages[i],
		}
	}
	return cases, nil
}
