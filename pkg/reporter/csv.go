package reporter

import (
	"encoding/csv"
	"io"
	"strconv"

	"ragcheck/pkg/core"
)

type CSVReporter struct {
	Writer io.Writer
}

func (r CSVReporter) Report(report core.Report) error {
	writer := csv.NewWriter(r.Writer)
	header := []string{
		"id", "question", "expected_answer", "expected_page",
		"answer", "cited_page", "answer_score", "page_match",
		"error", "duration_seconds",
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, sc := range report.Cases {
		citedPage := ""
		if sc.Response.Page > 0 {
			citedPage = strconv.Itoa(sc.Response.Page)
		}
		record := []string{
			strconv.Itoa(sc.Case.ID),
			sc.Case.Question,
			sc.Case.ExpectedAnswer,
			strconv.Itoa(sc.Case.ExpectedPage),
			sc.Response.Answer,
			citedPage,
			strconv.FormatFloat(sc.AnswerScore, 'f', 4, 64),
			strconv.FormatBool(sc.PageMatch),
			sc.Error,
			strconv.FormatFloat(sc.Duration.Seconds(), 'f', 6, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
