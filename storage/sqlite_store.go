package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"gowfm/workflowmax"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps a local archive of time entries fetched from WorkflowMax.
type SQLiteStore struct {
	db *sql.DB
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
CREATE TABLE IF NOT EXISTS time_entries (
	id TEXT PRIMARY KEY,
	job_id TEXT NOT NULL,
	job_name TEXT NOT NULL,
	task_id TEXT NOT NULL,
	task_name TEXT NOT NULL,
	staff_id TEXT NOT NULL,
	staff_name TEXT NOT NULL,
	entry_date TEXT NOT NULL,
	minutes INTEGER NOT NULL CHECK(minutes >= 0),
	billable INTEGER NOT NULL,
	notes TEXT NOT NULL,
	archived_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_time_entries_staff_date ON time_entries(staff_id, entry_date);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// UpsertTimeEntries stores entries keyed by their WorkflowMax ID. Existing
// rows are replaced with the latest remote values.
func (s *SQLiteStore) UpsertTimeEntries(entries []workflowmax.TimeEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}

	const upsertStmt = `
INSERT INTO time_entries (
	id,
	job_id,
	job_name,
	task_id,
	task_name,
	staff_id,
	staff_name,
	entry_date,
	minutes,
	billable,
	notes
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	job_id = excluded.job_id,
	job_name = excluded.job_name,
	task_id = excluded.task_id,
	task_name = excluded.task_name,
	staff_id = excluded.staff_id,
	staff_name = excluded.staff_name,
	entry_date = excluded.entry_date,
	minutes = excluded.minutes,
	billable = excluded.billable,
	notes = excluded.notes,
	archived_at = CURRENT_TIMESTAMP;`

	stmt, err := tx.Prepare(upsertStmt)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("prepare upsert statement: %w", err)
	}
	defer stmt.Close()

	stored := 0
	for _, entry := range entries {
		if strings.TrimSpace(entry.ID) == "" {
			_ = tx.Rollback()
			return 0, fmt.Errorf("time entry without id cannot be archived (date=%s, job=%s)", entry.Date, entry.JobID)
		}
		if _, err := stmt.Exec(
			entry.ID,
			entry.JobID,
			entry.JobName,
			entry.TaskID,
			entry.TaskName,
			entry.StaffID,
			entry.StaffName,
			entry.Date,
			entry.Minutes,
			entry.Billable,
			entry.Notes,
		); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("upsert time entry %s: %w", entry.ID, err)
		}
		stored++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return stored, nil
}

// ListTimeEntries returns archived entries ordered by date. An empty staffID
// returns entries of all staff members.
func (s *SQLiteStore) ListTimeEntries(staffID string) ([]workflowmax.TimeEntry, error) {
	query := `
SELECT
	id,
	job_id,
	job_name,
	task_id,
	task_name,
	staff_id,
	staff_name,
	entry_date,
	minutes,
	billable,
	notes
FROM time_entries`
	args := []any{}
	if strings.TrimSpace(staffID) != "" {
		query += "\nWHERE staff_id = ?"
		args = append(args, strings.TrimSpace(staffID))
	}
	query += "\nORDER BY entry_date, id;"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query time entries: %w", err)
	}
	defer rows.Close()

	entries := make([]workflowmax.TimeEntry, 0, 64)
	for rows.Next() {
		var entry workflowmax.TimeEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.JobID,
			&entry.JobName,
			&entry.TaskID,
			&entry.TaskName,
			&entry.StaffID,
			&entry.StaffName,
			&entry.Date,
			&entry.Minutes,
			&entry.Billable,
			&entry.Notes,
		); err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate time entries: %w", err)
	}

	return entries, nil
}

// DeleteTimeEntry removes the archived row with the given WorkflowMax ID.
func (s *SQLiteStore) DeleteTimeEntry(id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, fmt.Errorf("time entry id is required")
	}

	res, err := s.db.Exec(`DELETE FROM time_entries WHERE id = ?;`, id)
	if err != nil {
		return false, fmt.Errorf("delete time entry %s: %w", id, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read deleted row count: %w", err)
	}
	return rowsAffected > 0, nil
}
