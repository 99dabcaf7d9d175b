package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"twobar/internal/runner"
)

// ReportPage builds the session report component. Components are composed
// directly with templ.ComponentFunc; the page is self-contained HTML with a
// small embedded stylesheet.
func ReportPage(results runner.Results) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>Session "+templ.EscapeString(results.SessionID)+"</title><style>"+pageCSS+"</style></head><body>"); err != nil {
			return err
		}
		if err := header(results).Render(ctx, w); err != nil {
			return err
		}
		if err := summaryTable(results.Summary).Render(ctx, w); err != nil {
			return err
		}
		if err := trialTable(results.Trials).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

// RenderReportHTML renders the report component into a string.
func RenderReportHTML(ctx context.Context, results runner.Results) (string, error) {
	var builder strings.Builder
	if err := ReportPage(results).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

func header(results runner.Results) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<h1>Session %s</h1><p class=\"meta\">Source: %s | Started: %s | Finished: %s</p>",
			templ.EscapeString(results.SessionID),
			templ.EscapeString(results.Source),
			templ.EscapeString(results.StartedAt.Format("2006-01-02 15:04:05 MST")),
			templ.EscapeString(results.FinishedAt.Format("2006-01-02 15:04:05 MST")),
		)
		return err
	})
}

func summaryTable(summary runner.Summary) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<table class=\"summary\"><tr><th>Trials</th><th>Responded</th><th>Scored</th><th>Correct</th><th>Accuracy</th><th>Mean RT</th></tr>"+
			"<tr><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%s</td><td>%s</td></tr></table>",
			summary.TrialsTotal, summary.TrialsResponded, summary.TrialsScored, summary.TrialsCorrect,
			templ.EscapeString(formatAccuracy(summary.Accuracy)),
			templ.EscapeString(formatRT(summary.MeanReactionTimeMs)),
		)
		return err
	})
}

func trialTable(records []runner.TrialRecord) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<table class=\"trials\"><tr><th>#</th><th>Trial</th><th>Prompt</th><th>Response</th><th>RT</th><th>Chosen</th><th>Correct</th><th>Score</th><th>Left</th><th>Right</th></tr>"); err != nil {
			return err
		}
		for _, record := range records {
			if err := trialRow(record).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</table>")
		return err
	})
}

func trialRow(record runner.TrialRecord) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		result := record.Result
		_, err := fmt.Fprintf(w, "<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%d</td></tr>",
			record.Index+1,
			templ.EscapeString(record.TrialID),
			templ.EscapeString(result.Prompt),
			templ.EscapeString(formatToken(result.Token)),
			templ.EscapeString(formatRT(result.ReactionTimeMs)),
			templ.EscapeString(formatSide(result.ChosenSide)),
			templ.EscapeString(formatSide(result.CorrectSide)),
			templ.EscapeString(formatScore(result.Accuracy)),
			result.LeftMagnitude,
			result.RightMagnitude,
		)
		return err
	})
}

const pageCSS = `body{font-family:sans-serif;margin:2rem}h1{margin-bottom:0.2rem}.meta{color:#666}table{border-collapse:collapse;margin-top:1rem}th,td{border:1px solid #ccc;padding:0.3rem 0.6rem;text-align:left}.summary th{background:#f0f0f0}.trials th{background:#f0f0f0}`
