package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Run is the run-level data written by ExportRun.
type Run struct {
	RunKey     string
	InputDir   string
	OutputDir  string
	Elapsed    time.Duration
	WordCounts map[string]int
	Documents  []Document
}

// Document is the per-file outcome written by ExportRun.
type Document struct {
	Path         string
	Status       string
	ErrorType    string
	ErrorMessage string
	TokenCount   int
	UniqueTokens int
}

// RunRecord is a row of the runs table.
type RunRecord struct {
	RunID          int64
	RunKey         string
	CreatedAt      time.Time
	InputDir       string
	DocumentCount  int
	FailedCount    int
	TotalTokens    int
	UniqueTokens   int
	ElapsedSeconds float64
}

// ExportRun stores a run, its documents and its consolidated word counts
// in a single transaction, returning the run_id.
// Exporting a run_key that already exists replaces the earlier export.
func (db *DB) ExportRun(run Run) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM runs WHERE run_key = ?", run.RunKey); err != nil {
		return 0, fmt.Errorf("failed to replace run: %w", err)
	}

	failed := 0
	for _, d := range run.Documents {
		if d.Status != "success" {
			failed++
		}
	}

	totalTokens := 0
	for _, count := range run.WordCounts {
		totalTokens += count
	}

	result, err := tx.Exec(`
		INSERT INTO runs (run_key, input_dir, output_dir, document_count, failed_count, total_tokens, unique_tokens, elapsed_seconds)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.RunKey, run.InputDir, run.OutputDir, len(run.Documents), failed, totalTokens, len(run.WordCounts), run.Elapsed.Seconds())
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	for _, d := range run.Documents {
		_, err = tx.Exec(`
			INSERT INTO run_documents (run_id, path, status, error_type, error_message, token_count, unique_tokens)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, runID, d.Path, d.Status, d.ErrorType, d.ErrorMessage, d.TokenCount, d.UniqueTokens)
		if err != nil {
			return 0, fmt.Errorf("failed to insert document %s: %w", d.Path, err)
		}
	}

	stmt, err := tx.Prepare("INSERT INTO word_counts (run_id, word, count) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare word count insert: %w", err)
	}
	defer stmt.Close()

	for word, count := range run.WordCounts {
		if _, err := stmt.Exec(runID, word, count); err != nil {
			return 0, fmt.Errorf("failed to insert word count: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	return runID, nil
}

// GetRun returns the run with the given run_key.
func (db *DB) GetRun(runKey string) (*RunRecord, error) {
	var r RunRecord
	err := db.QueryRow(`
		SELECT run_id, run_key, created_at, input_dir, document_count, failed_count, total_tokens, unique_tokens, elapsed_seconds
		FROM runs WHERE run_key = ?
	`, runKey).Scan(&r.RunID, &r.RunKey, &r.CreatedAt, &r.InputDir, &r.DocumentCount, &r.FailedCount, &r.TotalTokens, &r.UniqueTokens, &r.ElapsedSeconds)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run not found: %s", runKey)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}

// GetWordCounts returns the consolidated word counts stored for a run.
func (db *DB) GetWordCounts(runID int64) (map[string]int, error) {
	rows, err := db.Query("SELECT word, count FROM word_counts WHERE run_id = ?", runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query word counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var word string
		var count int
		if err := rows.Scan(&word, &count); err != nil {
			return nil, fmt.Errorf("failed to scan word count: %w", err)
		}
		counts[word] = count
	}
	return counts, rows.Err()
}

// GetRunDocuments returns the document outcomes of a run ordered by path.
func (db *DB) GetRunDocuments(runID int64) ([]Document, error) {
	rows, err := db.Query(`
		SELECT path, status, COALESCE(error_type, ''), COALESCE(error_message, ''), token_count, unique_tokens
		FROM run_documents WHERE run_id = ? ORDER BY path
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.Path, &d.Status, &d.ErrorType, &d.ErrorMessage, &d.TokenCount, &d.UniqueTokens); err != nil {
			return nil, fmt.Errorf("failed to scan run document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
