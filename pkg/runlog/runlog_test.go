package runlog

import (
	"archive/zip"
	"testing"
	"time"

	"ragcheck/pkg/core"

	"github.com/stretchr/testify/require"
)

func sampleReport() core.Report {
	cases := []core.ScoredCase{
		{
			Case: core.Case{
				ID:             0,
				Question:       "How many shares were repurchased in September 2024 alone?",
				ExpectedAnswer: "33,653,000 (33,653 in table × 1,000)",
				ExpectedPage:   22,
			},
			Response:    core.Response{Answer: "33,653,000 shares", Page: 22},
			AnswerScore: 1,
			PageMatch:   true,
			Duration:    25 * time.Millisecond,
		},
		{
			Case:     core.Case{ID: 1, Question: "q2", ExpectedAnswer: "a2", ExpectedPage: 5},
			Response: core.Response{Answer: "wrong"},
			Error:    "answerer: timeout",
		},
	}
	return core.Report{
		FixtureName:  "apple-10k",
		AnswererName: "echo",
		ScorerName:   "salient",
		Metrics:      core.CalculateMetrics(cases),
		Cases:        cases,
		StartedAt:    time.Now().Add(-time.Second),
		FinishedAt:   time.Now(),
	}
}

func TestWriteAndReadJSON(t *testing.T) {
	dir := t.TempDir()
	log := FromReport(sampleReport())

	path, err := WriteJSON(dir, log)
	require.NoError(t, err)

	loaded, err := ReadJSON(path)
	require.NoError(t, err)
	require.Equal(t, "apple-10k", loaded.Fixture)
	require.Equal(t, "echo", loaded.Answerer)
	require.Len(t, loaded.Cases, 2)
	require.True(t, loaded.Cases[0].PageMatch)
	require.Equal(t, "answerer: timeout", loaded.Cases[1].Error)
	require.Equal(t, loaded.Metrics.TotalCases, 2)
}

func TestWriteArchive(t *testing.T) {
	dir := t.TempDir()
	log := FromReport(sampleReport())

	path, err := WriteArchive(dir, log)
	require.NoError(t, err)

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer reader.Close()

	names := make(map[string]bool)
	for _, f := range reader.File {
		names[f.Name] = true
	}
	require.True(t, names["header.json"])
	require.True(t, names["cases/0.json"])
	require.True(t, names["cases/1.json"])
}
