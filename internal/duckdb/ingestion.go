package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"twobar/internal/runner"
	"twobar/internal/trial"
)

// IngestResults inserts a session and all its trial rows in one transaction.
// Trial rows carry a fingerprint of the full result record so exported data
// can be traced back to exactly what the engine reported.
func IngestResults(ctx context.Context, db *sql.DB, results runner.Results) error {
	if ctx == nil {
		return errors.New("duckdb: context is nil")
	}
	if db == nil {
		return errors.New("duckdb: db is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ingest: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	summary := results.Summary
	_, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (
			session_id, source, started_at, finished_at,
			trials_total, trials_responded, trials_scored, trials_correct,
			accuracy, mean_rt_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		results.SessionID, results.Source, results.StartedAt, results.FinishedAt,
		summary.TrialsTotal, summary.TrialsResponded, summary.TrialsScored, summary.TrialsCorrect,
		nullFloat(summary.Accuracy), nullFloat(summary.MeanReactionTimeMs),
	)
	if err != nil {
		return fmt.Errorf("insert session %s: %w", results.SessionID, err)
	}

	for _, record := range results.Trials {
		if err := insertTrial(ctx, tx, results.SessionID, record); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ingest: %w", err)
	}
	return nil
}

func insertTrial(ctx context.Context, tx *sql.Tx, sessionID string, record runner.TrialRecord) error {
	result := record.Result
	fingerprint, err := FingerprintJSON(result)
	if err != nil {
		return fmt.Errorf("fingerprint trial %s: %w", record.TrialID, err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO trials (
			trial_key, session_id, trial_id, trial_index,
			prompt, stimulus_kind, response, rt_ms,
			chosen_side, correct_side, accuracy,
			left_magnitude, right_magnitude, left_jitter, right_jitter,
			left_color, right_color, left_image, right_image,
			result_fingerprint
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), sessionID, record.TrialID, record.Index,
		result.Prompt, string(result.Kind), nullString(result.Token), nullFloat(result.ReactionTimeMs),
		nullSide(result.ChosenSide), nullSide(result.CorrectSide), nullInt(result.Accuracy),
		result.LeftMagnitude, result.RightMagnitude, result.LeftJitter, result.RightJitter,
		emptyNull(result.LeftStyle.Color), emptyNull(result.RightStyle.Color),
		emptyNull(result.LeftStyle.Image), emptyNull(result.RightStyle.Image),
		fingerprint,
	)
	if err != nil {
		return fmt.Errorf("insert trial %s: %w", record.TrialID, err)
	}
	return nil
}

func nullString(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func nullFloat(value *float64) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func nullInt(value *int) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func nullSide(value *trial.Side) interface{} {
	if value == nil {
		return nil
	}
	return string(*value)
}

func emptyNull(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
