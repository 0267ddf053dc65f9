package tests

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ragcheck/pkg/answerer"
	"ragcheck/pkg/core"
	"ragcheck/pkg/fixture"
	"ragcheck/pkg/reporter"
	"ragcheck/pkg/runlog"
	"ragcheck/pkg/scorer"

	"github.com/stretchr/testify/require"
)

func TestEchoOverApple10K(t *testing.T) {
	fixtures := fixture.Apple10K()
	echo, err := answerer.FromFixtures(context.Background(), fixtures)
	require.NoError(t, err)

	harness := core.Harness{
		Fixtures: fixtures,
		Answerer: echo,
		Scorer:   scorer.SalientOverlap{},
		Workers:  4,
	}

	report, err := harness.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 10, report.Metrics.TotalCases)
	require.Equal(t, 1.0, report.Metrics.MeanAnswerScore)
	require.Equal(t, 1.0, report.Metrics.PageAccuracy)

	for i, sc := range report.Cases {
		require.Equal(t, i, sc.Case.ID)
		require.Empty(t, sc.Error)
		require.Equal(t, 1.0, sc.AnswerScore)
		require.True(t, sc.PageMatch)
	}
}

func TestFileFixturesEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.jsonl")
	lines := `{"question":"What were net sales in fiscal 2024?","expected_answer":"$391,035 million","expected_page":24}
{"question":"How many full-time equivalent employees?","expected_answer":"approximately 164,000","expected_page":4}`
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o600))

	fixtures := fixture.NewFile(path)
	ans := answerer.Scripted{
		Responses: map[string]core.Response{
			"What were net sales in fiscal 2024?":      {Answer: "Net sales were $391035 million.", Page: 24},
			"How many full-time equivalent employees?": {Answer: "Approximately 164,000 full-time equivalent employees.", Page: 7},
		},
	}

	harness := core.Harness{
		Fixtures: fixtures,
		Answerer: ans,
		Scorer:   scorer.SalientOverlap{},
		Workers:  2,
	}

	report, err := harness.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Cases, 2)

	// Digit grouping must not matter: 391035 matches 391,035.
	require.Equal(t, 1.0, report.Cases[0].AnswerScore)
	require.True(t, report.Cases[0].PageMatch)

	require.GreaterOrEqual(t, report.Cases[1].AnswerScore, 0.9)
	require.False(t, report.Cases[1].PageMatch)
	require.InDelta(t, 0.5, report.Metrics.PageAccuracy, 1e-9)
}

func TestReportAndRunLogRoundTrip(t *testing.T) {
	fixtures := fixture.Apple10K()
	echo, err := answerer.FromFixtures(context.Background(), fixtures)
	require.NoError(t, err)

	harness := core.Harness{
		Fixtures: fixtures,
		Answerer: echo,
		Scorer:   scorer.SalientOverlap{},
		Workers:  2,
	}

	report, err := harness.Run(context.Background())
	require.NoError(t, err)

	dir := t.TempDir()
	outPath := filepath.Join(dir, "report.json")
	file, err := os.Create(outPath)
	require.NoError(t, err)
	require.NoError(t, reporter.JSONReporter{Writer: file, Pretty: true}.Report(report))
	require.NoError(t, file.Close())

	logPath, err := runlog.WriteJSON(dir, runlog.FromReport(report))
	require.NoError(t, err)

	loaded, err := runlog.ReadJSON(logPath)
	require.NoError(t, err)
	require.Equal(t, "apple-10k", loaded.Fixture)
	require.Equal(t, 10, loaded.Metrics.TotalCases)
	require.Equal(t, 1.0, loaded.Metrics.MeanAnswerScore)
	require.Len(t, loaded.Cases, 10)
}
