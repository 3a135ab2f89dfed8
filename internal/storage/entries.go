// ABOUTME: DailyEntry and HealthIssue CRUD operations for SQLite storage.
// ABOUTME: Enforces one-entry-per-date and cascades issues with their entry.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/healthify/internal/models"
)

const entryColumns = "id, date, stress_level, worked_out, workout_notes, notes, device_metrics, created_at, updated_at"

// CreateEntry stores a new daily entry and its issues in one transaction.
// Returns ErrConflict when the date already has an entry: the unique
// index on date is the backstop, not the application-level check.
func (d *DB) CreateEntry(c *models.EntryCreate) (*models.DailyEntry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	e := &models.DailyEntry{
		ID:            uuid.New(),
		Date:          c.Date,
		StressLevel:   c.StressLevel,
		WorkedOut:     c.WorkedOut,
		WorkoutNotes:  c.WorkoutNotes,
		Notes:         c.Notes,
		DeviceMetrics: c.DeviceMetrics,
		CreatedAt:     time.Now(),
	}

	metricsJSON, err := marshalMetrics(c.DeviceMetrics)
	if err != nil {
		return nil, err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO daily_entries (id, date, stress_level, worked_out, workout_notes, notes, device_metrics, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID.String(),
		e.Date.String(),
		e.StressLevel,
		boolToInt(e.WorkedOut),
		e.WorkoutNotes,
		e.Notes,
		metricsJSON,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("entry for %s: %w", e.Date, ErrConflict)
		}
		return nil, fmt.Errorf("create entry: %w", err)
	}

	for i := range c.HealthIssues {
		issue, err := insertIssue(tx, e.ID, &c.HealthIssues[i])
		if err != nil {
			return nil, err
		}
		e.HealthIssues = append(e.HealthIssues, *issue)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	return e, nil
}

// GetEntryByDate retrieves an entry and its issues by exact date.
// Returns ErrNotFound when no entry exists for that date.
func (d *DB) GetEntryByDate(date models.Date) (*models.DailyEntry, error) {
	query := "SELECT " + entryColumns + " FROM daily_entries WHERE date = ?"
	e, err := scanEntry(d.db.QueryRow(query, date.String()))
	if err != nil {
		return nil, err
	}
	if err := d.loadIssues(e); err != nil {
		return nil, err
	}
	return e, nil
}

// GetEntryByID retrieves an entry and its issues by ID.
func (d *DB) GetEntryByID(id uuid.UUID) (*models.DailyEntry, error) {
	query := "SELECT " + entryColumns + " FROM daily_entries WHERE id = ?"
	e, err := scanEntry(d.db.QueryRow(query, id.String()))
	if err != nil {
		return nil, err
	}
	if err := d.loadIssues(e); err != nil {
		return nil, err
	}
	return e, nil
}

// ListEntries retrieves entries newest-date-first with inclusive date
// bounds. Offset and limit apply after ordering.
func (d *DB) ListEntries(opts ListEntriesOptions) ([]*models.DailyEntry, error) {
	query := "SELECT " + entryColumns + " FROM daily_entries"
	var args []interface{}
	var where []string

	if opts.StartDate != nil {
		where = append(where, "date >= ?")
		args = append(args, opts.StartDate.String())
	}
	if opts.EndDate != nil {
		where = append(where, "date <= ?")
		args = append(args, opts.EndDate.String())
	}
	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 30
	}
	query += " ORDER BY date DESC LIMIT ? OFFSET ?"
	args = append(args, limit, opts.Skip)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := d.loadIssues(e); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// UpdateEntry applies a partial update to the entry for a date. Only
// non-nil payload fields change. A non-nil issue list (even empty)
// deletes and replaces all existing issues; nil leaves them untouched.
// Field updates and the issue replacement commit atomically.
func (d *DB) UpdateEntry(date models.Date, u *models.EntryUpdate) (*models.DailyEntry, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var idStr string
	err = tx.QueryRow("SELECT id FROM daily_entries WHERE date = ?", date.String()).Scan(&idStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("entry for %s: %w", date, ErrNotFound)
		}
		return nil, fmt.Errorf("update entry: %w", err)
	}
	entryID, _ := uuid.Parse(idStr)

	set := "updated_at = ?"
	args := []interface{}{time.Now().Format(time.RFC3339)}
	if u.StressLevel != nil {
		set += ", stress_level = ?"
		args = append(args, *u.StressLevel)
	}
	if u.WorkedOut != nil {
		set += ", worked_out = ?"
		args = append(args, boolToInt(*u.WorkedOut))
	}
	if u.WorkoutNotes != nil {
		set += ", workout_notes = ?"
		args = append(args, *u.WorkoutNotes)
	}
	if u.Notes != nil {
		set += ", notes = ?"
		args = append(args, *u.Notes)
	}
	if u.DeviceMetrics != nil {
		metricsJSON, err := marshalMetrics(u.DeviceMetrics)
		if err != nil {
			return nil, err
		}
		set += ", device_metrics = ?"
		args = append(args, metricsJSON)
	}
	args = append(args, idStr)

	if _, err := tx.Exec("UPDATE daily_entries SET "+set+" WHERE id = ?", args...); err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}

	if u.HealthIssues != nil {
		// Replace, not merge: clear existing issues and insert the new list.
		if _, err := tx.Exec("DELETE FROM health_issues WHERE daily_entry_id = ?", idStr); err != nil {
			return nil, fmt.Errorf("replace issues: %w", err)
		}
		for i := range *u.HealthIssues {
			if _, err := insertIssue(tx, entryID, &(*u.HealthIssues)[i]); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}

	return d.GetEntryByID(entryID)
}

// DeleteEntry removes the entry for a date and all its issues (cascade).
// Returns false when no entry exists for that date.
func (d *DB) DeleteEntry(date models.Date) (bool, error) {
	result, err := d.db.Exec("DELETE FROM daily_entries WHERE date = ?", date.String())
	if err != nil {
		return false, fmt.Errorf("delete entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete entry: %w", err)
	}
	return affected > 0, nil
}

// insertIssue writes one health issue row inside the caller's transaction.
func insertIssue(tx *sql.Tx, entryID uuid.UUID, in *models.HealthIssueInput) (*models.HealthIssue, error) {
	issue := &models.HealthIssue{
		ID:           uuid.New(),
		DailyEntryID: entryID,
		IssueType:    in.IssueType,
		Severity:     in.Severity,
		Notes:        in.Notes,
		TimeOfDay:    in.TimeOfDay,
		CreatedAt:    time.Now(),
	}
	_, err := tx.Exec(`
		INSERT INTO health_issues (id, daily_entry_id, issue_type, severity, notes, time_of_day, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		issue.ID.String(),
		issue.DailyEntryID.String(),
		issue.IssueType,
		issue.Severity,
		issue.Notes,
		issue.TimeOfDay,
		issue.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("create health issue: %w", err)
	}
	return issue, nil
}

// loadIssues populates an entry's issue list, oldest first.
func (d *DB) loadIssues(e *models.DailyEntry) error {
	rows, err := d.db.Query(`
		SELECT id, daily_entry_id, issue_type, severity, notes, time_of_day, created_at
		FROM health_issues
		WHERE daily_entry_id = ?
		ORDER BY created_at ASC, id ASC`,
		e.ID.String())
	if err != nil {
		return fmt.Errorf("load issues: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var issue models.HealthIssue
		var idStr, entryIDStr, createdAt string
		var severity sql.NullInt64
		var notes, timeOfDay sql.NullString

		if err := rows.Scan(&idStr, &entryIDStr, &issue.IssueType, &severity, &notes, &timeOfDay, &createdAt); err != nil {
			return fmt.Errorf("scan issue: %w", err)
		}

		issue.ID, _ = uuid.Parse(idStr)
		issue.DailyEntryID, _ = uuid.Parse(entryIDStr)
		issue.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if severity.Valid {
			s := int(severity.Int64)
			issue.Severity = &s
		}
		if notes.Valid {
			issue.Notes = &notes.String
		}
		if timeOfDay.Valid {
			issue.TimeOfDay = &timeOfDay.String
		}
		e.HealthIssues = append(e.HealthIssues, issue)
	}

	return rows.Err()
}

// scanEntry scans a single row into a DailyEntry struct.
func scanEntry(row *sql.Row) (*models.DailyEntry, error) {
	var e models.DailyEntry
	var idStr, dateStr, createdAt string
	var stress sql.NullInt64
	var workedOut int
	var workoutNotes, notes, deviceMetrics, updatedAt sql.NullString

	err := row.Scan(&idStr, &dateStr, &stress, &workedOut, &workoutNotes, &notes, &deviceMetrics, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan entry: %w", err)
	}

	fillEntry(&e, idStr, dateStr, stress, workedOut, workoutNotes, notes, deviceMetrics, createdAt, updatedAt)
	return &e, nil
}

// scanEntries scans multiple rows into a slice of DailyEntries.
func scanEntries(rows *sql.Rows) ([]*models.DailyEntry, error) {
	var entries []*models.DailyEntry

	for rows.Next() {
		var e models.DailyEntry
		var idStr, dateStr, createdAt string
		var stress sql.NullInt64
		var workedOut int
		var workoutNotes, notes, deviceMetrics, updatedAt sql.NullString

		err := rows.Scan(&idStr, &dateStr, &stress, &workedOut, &workoutNotes, &notes, &deviceMetrics, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}

		fillEntry(&e, idStr, dateStr, stress, workedOut, workoutNotes, notes, deviceMetrics, createdAt, updatedAt)
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

func fillEntry(e *models.DailyEntry, idStr, dateStr string, stress sql.NullInt64, workedOut int,
	workoutNotes, notes, deviceMetrics sql.NullString, createdAt string, updatedAt sql.NullString) {
	e.ID, _ = uuid.Parse(idStr)
	e.Date, _ = models.ParseDate(dateStr)
	e.WorkedOut = workedOut != 0
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if stress.Valid {
		s := int(stress.Int64)
		e.StressLevel = &s
	}
	if workoutNotes.Valid {
		e.WorkoutNotes = &workoutNotes.String
	}
	if notes.Valid {
		e.Notes = &notes.String
	}
	if deviceMetrics.Valid && deviceMetrics.String != "" {
		_ = json.Unmarshal([]byte(deviceMetrics.String), &e.DeviceMetrics)
	}
	if updatedAt.Valid {
		t, _ := time.Parse(time.RFC3339, updatedAt.String)
		e.UpdatedAt = &t
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// marshalMetrics serializes the free-form device metrics map, keeping
// NULL for an absent map.
func marshalMetrics(m map[string]interface{}) (*string, error) {
	if m == nil {
		return nil, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode device metrics: %w", err)
	}
	s := string(raw)
	return &s, nil
}
