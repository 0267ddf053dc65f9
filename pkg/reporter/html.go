package reporter

import (
	"html/template"
	"io"

	"ragcheck/pkg/core"
)

type HTMLReporter struct {
	Writer io.Writer
	Title  string
}

func (r HTMLReporter) Report(report core.Report) error {
	title := r.Title
	if title == "" {
		title = "Ragcheck Report"
	}

	data := struct {
		Title  string
		Report core.Report
	}{
		Title:  title,
		Report: report,
	}

	tpl := template.Must(template.New("report").Parse(htmlTemplate))
	return tpl.Execute(r.Writer, data)
}

const htmlTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{ .Title }}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 24px; }
    table { border-collapse: collapse; width: 100%; margin-top: 16px; }
    th, td { border: 1px solid #ddd; padding: 8px; }
    th { background: #f5f5f5; text-align: left; }
    .meta { margin-bottom: 12px; }
    .miss { color: #b00020; }
  </style>
</head>
<body>
  <h1>{{ .Title }}</h1>
  <div class="meta">
    <div><strong>Fixtures:</strong> {{ .Report.FixtureName }}</div>
    <div><strong>Answerer:</strong> {{ .Report.AnswererName }}</div>
    <div><strong>Scorer:</strong> {{ .Report.ScorerName }}</div>
  </div>
  <h2>Summary</h2>
  <table>
    <tr><th>Metric</th><th>Value</th></tr>
    <tr><td>Total cases</td><td>{{ .Report.Metrics.TotalCases }}</td></tr>
    <tr><td>Mean answer score</td><td>{{ printf "%.2f" .Report.Metrics.MeanAnswerScore }}</td></tr>
    <tr><td>Page accuracy</td><td>{{ printf "%.2f" .Report.Metrics.PageAccuracy }}</td></tr>
    <tr><td>Median score</td><td>{{ printf "%.2f" .Report.Metrics.MedianScore }}</td></tr>
    <tr><td>P95 score</td><td>{{ printf "%.2f" .Report.Metrics.P95Score }}</td></tr>
  </table>
  <h2>Cases</h2>
  <table>
    <tr><th>ID</th><th>Question</th><th>Expected</th><th>Answer</th><th>Score</th><th>Page</th><th>Cited</th><th>Match</th><th>Error</th></tr>
    {{ range .Report.Cases }}
    <tr>
      <td>{{ .Case.ID }}</td>
      <td>{{ .Case.Question }}</td>
      <td>{{ .Case.ExpectedAnswer }}</td>
      <td>{{ .Response.Answer }}</td>
      <td>{{ printf "%.2f" .AnswerScore }}</td>
      <td>{{ .Case.ExpectedPage }}</td>
      <td>{{ if gt .Response.Page 0 }}{{ .Response.Page }}{{ end }}</td>
      <td>{{ if .PageMatch }}yes{{ else }}<span class="miss">no</span>{{ end }}</td>
      <td>{{ .Error }}</td>
    </tr>
    {{ end }}
  </table>
</body>
</html>
`
