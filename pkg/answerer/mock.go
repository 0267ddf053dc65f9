package answerer

import (
	"context"
	"time"

	"ragcheck/pkg/core"
)

// Static returns a fixed answer and page, or echoes the question when no
// answer text is set.
type Static struct {
	NameValue string
	Text      string
	Page      int
}

func (s Static) Name() string {
	if s.NameValue == "" {
		return "static"
	}
	return s.NameValue
}

func (s Static) Answer(_ context.Context, question string) (core.Response, error) {
	start := time.Now()
	answer := question
	if s.Text != "" {
		answer = s.Text
	}
	return core.Response{
		Answer:  answer,
		Page:    s.Page,
		Latency: time.Since(start),
	}, nil
}

// Scripted replays canned responses keyed by question text.
type Scripted struct {
	NameValue string
	Responses map[string]core.Response
	Fallback  core.Response
}

func (s Scripted) Name() string {
	if s.NameValue == "" {
		return "scripted"
	}
	return s.NameValue
}

func (s Scripted) Answer(_ context.Context, question string) (core.Response, error) {
	if resp, ok := s.Responses[question]; ok {
		return resp, nil
	}
	return s.Fallback, nil
}

// FromFixtures builds a Scripted answerer that echoes each case's
// expected answer and page verbatim. Running it against the same set
// must produce a perfect report; anything less is a harness bug.
func FromFixtures(ctx context.Context, fs core.FixtureSet) (Scripted, error) {
	cases, err := fs.Cases(ctx)
	if err != nil {
		return Scripted{}, err
	}
	responses := make(map[string]core.Response, len(cases))
	for _, c := range cases {
		responses[c.Question] = core.Response{
			Answer: c.ExpectedAnswer,
			Page:   c.ExpectedPage,
		}
	}
	return Scripted{NameValue: "echo", Responses: responses}, nil
}
