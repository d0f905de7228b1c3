package gateway

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"payfirm/internal/domain"
)

const storeSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id      TEXT PRIMARY KEY,
	run_at  TEXT NOT NULL,
	payload TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_run_at ON runs(run_at DESC);
CREATE TABLE IF NOT EXISTS roster_cache (
	slot    INTEGER PRIMARY KEY CHECK (slot = 1),
	payload TEXT NOT NULL
);
`

// SQLiteStore persists run history and the roster cache across process
// restarts. Entries are stored as JSON payloads keyed by run timestamp;
// the history cap is enforced on every save.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if needed) the store database at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store database %s: %w", path, err)
	}
	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize store schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRun inserts a run and evicts everything beyond the newest
// domain.MaxStoredRuns entries.
func (s *SQLiteStore) SaveRun(ctx context.Context, entry domain.RunEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode run %s: %w", entry.ID, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin save: %w", err)
	}
	defer tx.Rollback()

	runAt := entry.RunAt.UTC().Format("2006-01-02T15:04:05.000000000Z")
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, run_at, payload) VALUES (?, ?, ?)`,
		entry.ID, runAt, string(payload)); err != nil {
		return fmt.Errorf("failed to insert run %s: %w", entry.ID, err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY run_at DESC, rowid DESC LIMIT ?
		)`, domain.MaxStoredRuns); err != nil {
		return fmt.Errorf("failed to trim run history: %w", err)
	}
	return tx.Commit()
}

// LoadRuns returns all stored runs, newest first.
func (s *SQLiteStore) LoadRuns(ctx context.Context) ([]domain.RunEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM runs ORDER BY run_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query run history: %w", err)
	}
	defer rows.Close()

	var entries []domain.RunEntry
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		var entry domain.RunEntry
		if err := json.Unmarshal([]byte(payload), &entry); err != nil {
			return nil, fmt.Errorf("failed to decode stored run: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// ClearRuns removes the whole run history.
func (s *SQLiteStore) ClearRuns(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM runs`); err != nil {
		return fmt.Errorf("failed to clear run history: %w", err)
	}
	return nil
}

// SaveRoster replaces the cached roster snapshot.
func (s *SQLiteStore) SaveRoster(ctx context.Context, snapshot domain.RosterSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode roster snapshot: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO roster_cache (slot, payload) VALUES (1, ?)
		 ON CONFLICT (slot) DO UPDATE SET payload = excluded.payload`,
		string(payload)); err != nil {
		return fmt.Errorf("failed to save roster snapshot: %w", err)
	}
	return nil
}

// LoadRoster returns the cached roster snapshot, or nil when none is stored.
func (s *SQLiteStore) LoadRoster(ctx context.Context) (*domain.RosterSnapshot, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM roster_cache WHERE slot = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load roster snapshot: %w", err)
	}
	var snapshot domain.RosterSnapshot
	if err := json.Unmarshal([]byte(payload), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode roster snapshot: %w", err)
	}
	return &snapshot, nil
}

// ClearRoster removes the cached roster snapshot.
func (s *SQLiteStore) ClearRoster(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM roster_cache`); err != nil {
		return fmt.Errorf("failed to clear roster snapshot: %w", err)
	}
	return nil
}
