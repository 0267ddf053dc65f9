package reporter

import "ragcheck/pkg/core"

// Reporter writes an evaluation report.
type Reporter interface {
	Report(report core.Report) error
}

const (
	FormatJSON     = "json"
	FormatTable    = "table"
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)
