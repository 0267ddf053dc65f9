package core

import "context"

// FixtureSet provides labeled cases for evaluation. Cases returns the
// complete, validated set: positional identity is the contract between
// fixtures and reports, so a set either loads whole or fails.
type FixtureSet interface {
	Name() string
	Cases(ctx context.Context) ([]Case, error)
}
