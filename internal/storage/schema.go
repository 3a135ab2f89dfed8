// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for entries, issues, issue types, and routines.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS daily_entries (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL UNIQUE,
		stress_level INTEGER,
		worked_out INTEGER NOT NULL DEFAULT 0,
		workout_notes TEXT,
		notes TEXT,
		device_metrics TEXT,
		created_at DATETIME NOT NULL,
		updated_at DATETIME
	);

	CREATE TABLE IF NOT EXISTS health_issues (
		id TEXT PRIMARY KEY,
		daily_entry_id TEXT NOT NULL,
		issue_type TEXT NOT NULL,
		severity INTEGER,
		notes TEXT,
		time_of_day TEXT,
		created_at DATETIME NOT NULL,
		FOREIGN KEY (daily_entry_id) REFERENCES daily_entries(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS issue_types (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		display_name TEXT NOT NULL,
		icon TEXT,
		is_active INTEGER NOT NULL DEFAULT 1,
		sort_order INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS workout_routines (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL,
		updated_at DATETIME
	);

	CREATE TABLE IF NOT EXISTS workout_days (
		id TEXT PRIMARY KEY,
		routine_id TEXT NOT NULL,
		name TEXT NOT NULL,
		day_of_week INTEGER,
		sort_order INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (routine_id) REFERENCES workout_routines(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS exercises (
		id TEXT PRIMARY KEY,
		day_id TEXT NOT NULL,
		name TEXT NOT NULL,
		target_sets INTEGER,
		target_reps TEXT,
		target_weight TEXT,
		rest_seconds INTEGER,
		notes TEXT,
		sort_order INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (day_id) REFERENCES workout_days(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_entries_date ON daily_entries(date DESC);
	CREATE INDEX IF NOT EXISTS idx_issues_entry ON health_issues(daily_entry_id);
	CREATE INDEX IF NOT EXISTS idx_issues_type ON health_issues(issue_type);
	CREATE INDEX IF NOT EXISTS idx_issue_types_order ON issue_types(sort_order);
	CREATE INDEX IF NOT EXISTS idx_days_routine ON workout_days(routine_id);
	CREATE INDEX IF NOT EXISTS idx_exercises_day ON exercises(day_id);
	`

	_, err := d.db.Exec(schema)
	return err
}
