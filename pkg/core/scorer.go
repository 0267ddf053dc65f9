package core

import "context"

// Scorer rates how well a response answer matches the reference answer,
// returning a value in [0,1]. Page grounding is not part of the policy;
// the harness checks it by exact comparison.
type Scorer interface {
	Name() string
	Score(ctx context.Context, c Case, resp Response) (float64, error)
}
