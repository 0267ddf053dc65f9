package reporter

import (
	"fmt"
	"io"

	"ragcheck/pkg/core"

	"github.com/olekukonko/tablewriter"
)

type TableReporter struct {
	Writer io.Writer
}

func (r TableReporter) Report(report core.Report) error {
	table := tablewriter.NewWriter(r.Writer)
	table.Header([]string{"Metric", "Value"})
	table.Append([]string{"Total cases", fmt.Sprintf("%d", report.Metrics.TotalCases)})
	table.Append([]string{"Mean answer score", fmt.Sprintf("%.2f", report.Metrics.MeanAnswerScore)})
	table.Append([]string{"Page accuracy", fmt.Sprintf("%.2f", report.Metrics.PageAccuracy)})
	table.Append([]string{"Median score", fmt.Sprintf("%.2f", report.Metrics.MedianScore)})
	table.Append([]string{"P95 score", fmt.Sprintf("%.2f", report.Metrics.P95Score)})
	table.Append([]string{"Avg latency", report.Metrics.AvgLatency.String()})
	table.Append([]string{"P95 latency", report.Metrics.P95Latency.String()})
	table.Render()
	return nil
}
