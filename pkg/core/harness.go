package core

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Harness runs a fixture set through an answerer and scorer and produces
// a report. Cases are independent, so they fan out across Workers; each
// result is written back to its case's slot, which keeps the report in
// fixture order no matter in which order calls complete.
type Harness struct {
	Fixtures    FixtureSet
	Answerer    Answerer
	Scorer      Scorer
	Workers     int
	CaseTimeout time.Duration
	RateLimiter RateLimiter
	Progress    func(completed, total int)
}

// Run executes one evaluation pass. A cancelled context yields an error
// and no report: partial results are discarded rather than returned.
// Answerer failures on individual cases are absorbed as zero-scored
// entries and do not fail the run.
func (h *Harness) Run(ctx context.Context) (Report, error) {
	if h.Fixtures == nil || h.Answerer == nil || h.Scorer == nil {
		return Report{}, errors.New("harness: fixtures, answerer, and scorer are required")
	}

	workers := h.Workers
	if workers <= 0 {
		workers = 1
	}

	started := time.Now()
	cases, err := h.Fixtures.Cases(ctx)
	if err != nil {
		return Report{}, err
	}

	scored := make([]ScoredCase, len(cases))
	indexCh := make(chan int)
	var completed atomic.Int64
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for idx := range indexCh {
			if ctx.Err() != nil {
				return
			}
			scored[idx] = h.runCase(ctx, cases[idx])
			if h.Progress != nil {
				h.Progress(int(completed.Add(1)), len(cases))
			}
		}
	}

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go worker()
	}

	go func() {
		defer close(indexCh)
		for i := range cases {
			select {
			case <-ctx.Done():
				return
			case indexCh <- i:
			}
		}
	}()

	wg.Wait()
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	return Report{
		FixtureName:  h.Fixtures.Name(),
		AnswererName: h.Answerer.Name(),
		ScorerName:   h.Scorer.Name(),
		Metrics:      CalculateMetrics(scored),
		Cases:        scored,
		StartedAt:    started,
		FinishedAt:   time.Now(),
	}, nil
}

func (h *Harness) runCase(ctx context.Context, c Case) ScoredCase {
	start := time.Now()
	out := ScoredCase{Case: c}

	if h.RateLimiter != nil {
		if err := h.RateLimiter.Wait(ctx); err != nil {
			out.Error = err.Error()
			out.Duration = time.Since(start)
			return out
		}
	}

	callCtx := ctx
	if h.CaseTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, h.CaseTimeout)
		defer cancel()
	}

	resp, err := h.Answerer.Answer(callCtx, c.Question)
	if err != nil {
		out.Error = err.Error()
		out.Duration = time.Since(start)
		return out
	}

	out.Response = resp
	out.PageMatch = resp.Page > 0 && resp.Page == c.ExpectedPage

	value, err := h.Scorer.Score(ctx, c, resp)
	if err != nil {
		out.Error = err.Error()
	} else {
		out.AnswerScore = clampUnit(value)
	}
	out.Duration = time.Since(start)
	return out
}

// CalculateMetrics reduces scored cases to run-level metrics. An empty
// input yields the zero value; it never divides by zero.
func CalculateMetrics(cases []ScoredCase) Metrics {
	if len(cases) == 0 {
		return Metrics{}
	}

	scores := make([]float64, 0, len(cases))
	latencies := make([]time.Duration, 0, len(cases))
	var pageMatches int
	var totalTokens TokenUsage

	for _, sc := range cases {
		scores = append(scores, sc.AnswerScore)
		latencies = append(latencies, sc.Response.Latency)
		if sc.PageMatch {
			pageMatches++
		}
		totalTokens.PromptTokens += sc.Response.TokenUsage.PromptTokens
		totalTokens.CompletionTokens += sc.Response.TokenUsage.CompletionTokens
		totalTokens.TotalTokens += sc.Response.TokenUsage.TotalTokens
	}

	return Metrics{
		TotalCases:      len(cases),
		MeanAnswerScore: average(scores),
		PageAccuracy:    float64(pageMatches) / float64(len(cases)),
		MedianScore:     percentile(scores, 0.50),
		P95Score:        percentile(scores, 0.95),
		TokenUsage:      totalTokens,
		AvgLatency:      averageDuration(latencies),
		P95Latency:      percentileDuration(latencies, 0.95),
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	copied := make([]float64, len(values))
	copy(copied, values)
	sort.Float64s(copied)

	if p <= 0 {
		return copied[0]
	}
	if p >= 1 {
		return copied[len(copied)-1]
	}

	index := p * float64(len(copied)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return copied[lower]
	}
	weight := index - float64(lower)
	return copied[lower]*(1-weight) + copied[upper]*weight
}

func averageDuration(values []time.Duration) time.Duration {
	if len(values) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range values {
		sum += v
	}
	return time.Duration(int64(sum) / int64(len(values)))
}

func percentileDuration(values []time.Duration, p float64) time.Duration {
	if len(values) == 0 {
		return 0
	}
	copied := make([]time.Duration, len(values))
	copy(copied, values)
	sort.Slice(copied, func(i, j int) bool { return copied[i] < copied[j] })

	if p <= 0 {
		return copied[0]
	}
	if p >= 1 {
		return copied[len(copied)-1]
	}

	index := p * float64(len(copied)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return copied[lower]
	}
	weight := index - float64(lower)
	lowerVal := float64(copied[lower])
	upperVal := float64(copied[upper])
	return time.Duration(lowerVal*(1-weight) + upperVal*weight)
}
