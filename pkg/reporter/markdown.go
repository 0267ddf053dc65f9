package reporter

import (
	"fmt"
	"io"

	"ragcheck/pkg/core"
)

type MarkdownReporter struct {
	Writer io.Writer
}

func (r MarkdownReporter) Report(report core.Report) error {
	if _, err := fmt.Fprintf(r.Writer, "# Ragcheck Report\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "- Fixtures: %s\n- Answerer: %s\n- Scorer: %s\n\n",
		report.FixtureName, report.AnswererName, report.ScorerName); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(r.Writer, "## Summary\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "| Metric | Value |\n|---|---|\n"); err != nil {
		return err
	}
	lines := []struct {
		Name  string
		Value string
	}{
		{"Total cases", fmt.Sprintf("%d", report.Metrics.TotalCases)},
		{"Mean answer score", fmt.Sprintf("%.2f", report.Metrics.MeanAnswerScore)},
		{"Page accuracy", fmt.Sprintf("%.2f", report.Metrics.PageAccuracy)},
		{"Median score", fmt.Sprintf("%.2f", report.Metrics.MedianScore)},
		{"P95 score", fmt.Sprintf("%.2f", report.Metrics.P95Score)},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(r.Writer, "| %s | %s |\n", line.Name, line.Value); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(r.Writer, "\n## Cases\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "| ID | Question | Expected | Answer | Score | Page | Cited | Match | Error |\n|---|---|---|---|---|---|---|---|---|\n"); err != nil {
		return err
	}
	for _, sc := range report.Cases {
		cited := ""
		if sc.Response.Page > 0 {
			cited = fmt.Sprintf("%d", sc.Response.Page)
		}
		if _, err := fmt.Fprintf(
			r.Writer,
			"| %d | %s | %s | %s | %.2f | %d | %s | %t | %s |\n",
			sc.Case.ID,
			escapePipe(sc.Case.Question),
			escapePipe(sc.Case.ExpectedAnswer),
			escapePipe(sc.Response.Answer),
			sc.AnswerScore,
			sc.Case.ExpectedPage,
			cited,
			sc.PageMatch,
			escapePipe(sc.Error),
		); err != nil {
			return err
		}
	}
	return nil
}

func escapePipe(input string) string {
	if input == "" {
		return ""
	}
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if r == '|' {
			out = append(out, '\\', r)
		} else if r == '\n' || r == '\r' {
			out = append(out, ' ')
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
