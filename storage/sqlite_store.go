package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"togglzoho/zoho"
)

// SQLiteStore keeps a local history of conversion runs and their converted
// entries. The core pipeline never touches it; persistence only happens when
// the caller asks for it.
type SQLiteStore struct {
	db *sql.DB
}

// Run is one recorded conversion.
type Run struct {
	ID             string
	SourceFile     string
	RowsRead       int
	RowsConverted  int
	EntriesWritten int
	CreatedAt      string
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	source_file TEXT NOT NULL,
	rows_read INTEGER NOT NULL CHECK(rows_read >= 0),
	rows_converted INTEGER NOT NULL CHECK(rows_converted >= 0),
	entries_written INTEGER NOT NULL CHECK(entries_written >= 0),
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL REFERENCES runs(id),
	project_name TEXT NOT NULL,
	notes TEXT NOT NULL,
	email TEXT NOT NULL,
	task_name TEXT NOT NULL,
	time_spent TEXT NOT NULL,
	begin_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	date TEXT NOT NULL,
	billable_status TEXT NOT NULL,
	UNIQUE(project_name, notes, email, task_name, time_spent, begin_time, end_time, date, billable_status)
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}

// RecordRun stores one conversion run together with its entries. Entries
// already present from earlier runs are ignored by the UNIQUE constraint;
// the returned count covers only newly inserted rows.
func (s *SQLiteStore) RecordRun(sourceFile string, rowsRead, rowsConverted int, entries []zoho.Entry) (Run, error) {
	run := Run{
		ID:            uuid.NewString(),
		SourceFile:    sourceFile,
		RowsRead:      rowsRead,
		RowsConverted: rowsConverted,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Run{}, fmt.Errorf("begin transaction: %w", err)
	}

	const insertEntryStmt = `
INSERT OR IGNORE INTO entries (
	run_id,
	project_name,
	notes,
	email,
	task_name,
	time_spent,
	begin_time,
	end_time,
	date,
	billable_status
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	stmt, err := tx.Prepare(insertEntryStmt)
	if err != nil {
		_ = tx.Rollback()
		return Run{}, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		res, err := stmt.Exec(
			run.ID,
			entry.ProjectName,
			entry.Notes,
			entry.Email,
			entry.TaskName,
			entry.TimeSpent,
			entry.BeginTime,
			entry.EndTime,
			entry.Date,
			entry.BillableStatus,
		)
		if err != nil {
			_ = tx.Rollback()
			return Run{}, fmt.Errorf("insert entry: %w", err)
		}

		rows, err := res.RowsAffected()
		if err == nil && rows > 0 {
			run.EntriesWritten++
		}
	}

	const insertRunStmt = `
INSERT INTO runs (id, source_file, rows_read, rows_converted, entries_written, created_at)
VALUES (?, ?, ?, ?, ?, ?);`

	if _, err := tx.Exec(
		insertRunStmt,
		run.ID,
		run.SourceFile,
		run.RowsRead,
		run.RowsConverted,
		run.EntriesWritten,
		run.CreatedAt,
	); err != nil {
		_ = tx.Rollback()
		return Run{}, fmt.Errorf("insert run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("commit transaction: %w", err)
	}

	return run, nil
}

func (s *SQLiteStore) ListRuns() ([]Run, error) {
	const query = `
SELECT id, source_file, rows_read, rows_converted, entries_written, created_at
FROM runs
ORDER BY created_at, id;
`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := make([]Run, 0, 32)
	for rows.Next() {
		var run Run
		if err := rows.Scan(
			&run.ID,
			&run.SourceFile,
			&run.RowsRead,
			&run.RowsConverted,
			&run.EntriesWritten,
			&run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

func (s *SQLiteStore) ListEntries() ([]zoho.Entry, error) {
	const query = `
SELECT
	project_name,
	notes,
	email,
	task_name,
	time_spent,
	begin_time,
	end_time,
	date,
	billable_status
FROM entries
ORDER BY date, begin_time, id;
`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := make([]zoho.Entry, 0, 256)
	for rows.Next() {
		var entry zoho.Entry
		if err := rows.Scan(
			&entry.ProjectName,
			&entry.Notes,
			&entry.Email,
			&entry.TaskName,
			&entry.TimeSpent,
			&entry.BeginTime,
			&entry.EndTime,
			&entry.Date,
			&entry.BillableStatus,
		); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return entries, nil
}
