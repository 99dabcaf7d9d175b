package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"twobar/internal/report"
	"twobar/internal/runner"
)

var buildReportHTML = report.BuildReportHTML

func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		resultsPath := fs.String("results", "", "Path to results.json")
		outputPath := fs.String("output", "", "Report output path (default: report.html next to results.json, \"-\" for stdout)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *resultsPath == "" {
			fmt.Fprintln(stderr, "Missing --results")
			return ExitUsage
		}

		results, err := runner.LoadResults(*resultsPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load results: %v\n", err)
			return ExitError
		}

		if *outputPath == "-" {
			html, err := buildReportHTML(results)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to render report: %v\n", err)
				return ExitError
			}
			fmt.Fprint(stdout, html)
			return ExitOK
		}

		reportPath := *outputPath
		if reportPath == "" {
			reportPath = filepath.Join(filepath.Dir(*resultsPath), "report.html")
		}
		if err := report.WriteReport(reportPath, results); err != nil {
			fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Report written to %s\n", reportPath)
		return ExitOK
	}
}
