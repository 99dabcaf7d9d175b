package reportserver

import (
	"errors"
	"net/http"

	"twobar/internal/report"
	"twobar/internal/runner"
)

// NewHandler builds the HTTP handler for the session report. The report is
// re-rendered from results.json on every request so a session directory can
// be inspected while later sessions are still being recorded.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.ResultsPath == "" {
		return nil, errors.New("reportserver: results path is required")
	}

	mux := http.NewServeMux()
	mux.Handle("/", serveReport(cfg.ResultsPath))
	if cfg.DBPath != "" {
		mux.Handle("/data/db.duckdb", serveDatabase(cfg.DBPath))
	}
	return mux, nil
}

// serveReport renders the HTML report from the results file on disk.
func serveReport(resultsPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		results, err := runner.LoadResults(resultsPath)
		if err != nil {
			http.Error(w, "load results: "+err.Error(), http.StatusInternalServerError)
			return
		}
		html, err := report.BuildReportHTML(results)
		if err != nil {
			http.Error(w, "render report: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	})
}

// serveDatabase serves the DuckDB file from disk for external analysis.
func serveDatabase(dbPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		http.ServeFile(w, r, dbPath)
	})
}
