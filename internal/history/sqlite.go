package history

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	builderrors "github.com/openinstructions/catalogbuild/internal/errors"
)

// Run is one recorded catalog build.
type Run struct {
	ID             string
	Timestamp      time.Time
	Status         string
	DurationMS     int64
	FilesFound     int
	FilesValid     int
	FilesFailed    int
	EntriesIndexed int
}

// Store keeps a local record of past catalog builds.
type Store interface {
	Record(ctx context.Context, run Run) error
	Recent(ctx context.Context, limit int) ([]Run, error)
	Close() error
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore opens a SQLite-backed store.
// Use ":memory:" for an in-memory database, or a file path for persistent storage.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, builderrors.HistoryError("open history database", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, builderrors.HistoryError("initialize history schema", err)
	}

	return store, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		timestamp INTEGER NOT NULL,
		status TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		files_found INTEGER NOT NULL,
		files_valid INTEGER NOT NULL,
		files_failed INTEGER NOT NULL,
		entries_indexed INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record inserts one build run.
func (s *SQLiteStore) Record(ctx context.Context, run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (id, timestamp, status, duration_ms, files_found, files_valid, files_failed, entries_indexed) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		run.ID, run.Timestamp.Unix(), run.Status, run.DurationMS,
		run.FilesFound, run.FilesValid, run.FilesFailed, run.EntriesIndexed,
	)
	if err != nil {
		return builderrors.HistoryError("insert run", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, timestamp, status, duration_ms, files_found, files_valid, files_failed, entries_indexed FROM runs ORDER BY timestamp DESC, id LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, builderrors.HistoryError("query runs", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ts int64
		if err := rows.Scan(&r.ID, &ts, &r.Status, &r.DurationMS,
			&r.FilesFound, &r.FilesValid, &r.FilesFailed, &r.EntriesIndexed); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Timestamp = time.Unix(ts, 0).UTC()
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, builderrors.HistoryError("iterate runs", err)
	}
	return runs, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
