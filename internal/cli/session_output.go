package cli

import (
	"context"
	"fmt"
	"io"

	"twobar/internal/duckdb"
	"twobar/internal/report"
	"twobar/internal/runner"
)

// openResultsDB is a test seam for the DuckDB connection.
var openResultsDB = duckdb.Open

// finishSession writes the HTML report next to results.json and, when a
// database path is set, ingests the session into DuckDB.
func finishSession(results runner.Results, paths runner.OutputPaths, dbPath string, stdout, stderr io.Writer) int {
	if err := report.WriteReport(paths.ReportPath(), results); err != nil {
		fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
		return ExitError
	}

	if dbPath != "" {
		if err := ingestSession(dbPath, results); err != nil {
			fmt.Fprintf(stderr, "Failed to store session in database: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Database: %s\n", dbPath)
	}

	fmt.Fprintf(stdout, "Session %s completed\n", results.SessionID)
	printSummary(stdout, results.Summary)
	fmt.Fprintf(stdout, "Results: %s\n", paths.ResultsPath())
	fmt.Fprintf(stdout, "Report: %s\n", paths.ReportPath())
	return ExitOK
}

// ingestSession opens the database, ensures the schema, and stores the run.
func ingestSession(dbPath string, results runner.Results) error {
	db, err := openResultsDB(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := duckdb.EnsureSchema(db); err != nil {
		return err
	}
	return duckdb.IngestResults(context.Background(), db, results)
}

// printSummary prints the aggregate session counts.
func printSummary(stdout io.Writer, summary runner.Summary) {
	line := fmt.Sprintf("Trials: %d  Responded: %d  Scored: %d  Correct: %d",
		summary.TrialsTotal, summary.TrialsResponded, summary.TrialsScored, summary.TrialsCorrect)
	if summary.Accuracy != nil {
		line += fmt.Sprintf("  Accuracy: %.1f%%", *summary.Accuracy*100)
	}
	if summary.MeanReactionTimeMs != nil {
		line += fmt.Sprintf("  Mean RT: %.0fms", *summary.MeanReactionTimeMs)
	}
	fmt.Fprintln(stdout, line)
}
