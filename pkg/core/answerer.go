package core

import "context"

// Answerer is the boundary to the system under test. It takes a question
// and returns an answer with an optional page citation. How the answer is
// produced (retrieval, model call, lookup table) is opaque to the harness.
type Answerer interface {
	Name() string
	Answer(ctx context.Context, question string) (Response, error)
}
