package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs: one row per exported invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_key TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    input_dir TEXT NOT NULL,
    output_dir TEXT NOT NULL,
    document_count INTEGER NOT NULL,
    failed_count INTEGER DEFAULT 0,
    total_tokens INTEGER DEFAULT 0,
    unique_tokens INTEGER DEFAULT 0,
    elapsed_seconds REAL
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

-- Run documents: per-file outcome within a run
CREATE TABLE IF NOT EXISTS run_documents (
    document_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    path TEXT NOT NULL,
    status TEXT NOT NULL,
    error_type TEXT,
    error_message TEXT,
    token_count INTEGER DEFAULT 0,
    unique_tokens INTEGER DEFAULT 0,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, path)
);

CREATE INDEX IF NOT EXISTS idx_run_documents_run ON run_documents(run_id);

-- Word counts: the consolidated map of a run
CREATE TABLE IF NOT EXISTS word_counts (
    run_id INTEGER NOT NULL,
    word TEXT NOT NULL,
    count INTEGER NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    PRIMARY KEY (run_id, word)
);

CREATE INDEX IF NOT EXISTS idx_word_counts_count ON word_counts(run_id, count DESC);
`
