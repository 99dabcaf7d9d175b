package report

import (
	"context"
	"fmt"
	"os"

	"twobar/internal/runner"
)

// BuildReportHTML renders the session report for results.
func BuildReportHTML(results runner.Results) (string, error) {
	return RenderReportHTML(context.Background(), results)
}

// WriteReport renders the report and writes it to path.
func WriteReport(path string, results runner.Results) error {
	html, err := BuildReportHTML(results)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
