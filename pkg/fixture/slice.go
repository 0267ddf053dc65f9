package fixture

import (
	"context"

	"ragcheck/pkg/core"
)

// Slice is an in-memory fixture set.
type Slice struct {
	NameHint string
	Items    []core.Case
}

func NewSlice(cases []core.Case, name string) *Slice {
	if name == "" {
		name = "inline"
	}
	return &Slice{NameHint: name, Items: cases}
}

func (s *Slice) Name() string {
	return s.NameHint
}

// Cases returns a copy so callers cannot mutate the loaded set.
func (s *Slice) Cases(_ context.Context) ([]core.Case, error) {
	out := make([]core.Case, len(s.Items))
	copy(out, s.Items)
	return out, nil
}
