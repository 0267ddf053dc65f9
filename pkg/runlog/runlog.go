package runlog

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ragcheck/pkg/core"
)

const timeLayout = "2006-01-02T15:04:05-07:00"

// RunLog is the persistent record of one evaluation run.
type RunLog struct {
	Version     int          `json:"version"`
	Status      string       `json:"status"`
	Fixture     string       `json:"fixture"`
	Answerer    string       `json:"answerer"`
	Scorer      string       `json:"scorer"`
	StartedAt   string       `json:"started_at"`
	CompletedAt string       `json:"completed_at"`
	Metrics     core.Metrics `json:"metrics"`
	Cases       []CaseLog    `json:"cases,omitempty"`
}

// CaseLog flattens one scored case for the log.
type CaseLog struct {
	ID             int     `json:"id"`
	Question       string  `json:"question"`
	ExpectedAnswer string  `json:"expected_answer"`
	ExpectedPage   int     `json:"expected_page"`
	Answer         string  `json:"answer"`
	CitedPage      int     `json:"cited_page,omitempty"`
	AnswerScore    float64 `json:"answer_score"`
	PageMatch      bool    `json:"page_match"`
	Error          string  `json:"error,omitempty"`
	Seconds        float64 `json:"seconds"`
}

// FromReport converts a report into its log form.
func FromReport(report core.Report) RunLog {
	startedAt := report.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now().UTC()
	}
	completedAt := report.FinishedAt
	if completedAt.IsZero() {
		completedAt = time.Now().UTC()
	}

	cases := make([]CaseLog, 0, len(report.Cases))
	for _, sc := range report.Cases {
		cases = append(cases, CaseLog{
			ID:             sc.Case.ID,
			Question:       sc.Case.Question,
			ExpectedAnswer: sc.Case.ExpectedAnswer,
			ExpectedPage:   sc.Case.ExpectedPage,
			Answer:         sc.Response.Answer,
			CitedPage:      sc.Response.Page,
			AnswerScore:    sc.AnswerScore,
			PageMatch:      sc.PageMatch,
			Error:          sc.Error,
			Seconds:        sc.Duration.Seconds(),
		})
	}

	return RunLog{
		Version:     1,
		Status:      "success",
		Fixture:     report.FixtureName,
		Answerer:    report.AnswererName,
		Scorer:      report.ScorerName,
		StartedAt:   startedAt.UTC().Format(timeLayout),
		CompletedAt: completedAt.UTC().Format(timeLayout),
		Metrics:     report.Metrics,
		Cases:       cases,
	}
}

// WriteJSON writes the run log as one pretty-printed JSON file and
// returns its path.
func WriteJSON(logDir string, log RunLog) (string, error) {
	if logDir == "" {
		return "", fmt.Errorf("runlog: logDir is required")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(logDir, buildLogFileName(log, "json"))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return "", err
	}
	return path, nil
}

// WriteArchive writes the run log as a zip archive with a header entry
// and one entry per case, and returns its path.
func WriteArchive(logDir string, log RunLog) (string, error) {
	if logDir == "" {
		return "", fmt.Errorf("runlog: logDir is required")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(logDir, buildLogFileName(log, "zip"))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	zipWriter := zip.NewWriter(file)

	header := log
	header.Cases = nil
	if err := writeZipJSON(zipWriter, "header.json", header); err != nil {
		zipWriter.Close()
		return "", err
	}
	for _, c := range log.Cases {
		name := fmt.Sprintf("cases/%d.json", c.ID)
		if err := writeZipJSON(zipWriter, name, c); err != nil {
			zipWriter.Close()
			return "", err
		}
	}

	if err := zipWriter.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// ReadJSON loads a run log written by WriteJSON.
func ReadJSON(path string) (RunLog, error) {
	var log RunLog
	f, err := os.Open(path)
	if err != nil {
		return RunLog{}, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&log); err != nil {
		return RunLog{}, err
	}
	return log, nil
}

func writeZipJSON(writer *zip.Writer, name string, data any) error {
	entry, err := writer.Create(name)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(entry)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func buildLogFileName(log RunLog, ext string) string {
	timestamp := time.Now().Format("2006-01-02T15-04-05")
	fixture := sanitizeName(log.Fixture)
	answerer := sanitizeName(log.Answerer)
	if fixture == "" {
		fixture = "fixtures"
	}
	if answerer == "" {
		answerer = "answerer"
	}
	return fmt.Sprintf("%s_%s_%s.%s", timestamp, fixture, answerer, ext)
}

func sanitizeName(input string) string {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			out = append(out, r)
		}
	}
	return string(out)
}
