// ABOUTME: WorkoutRoutine, WorkoutDay, and Exercise CRUD for SQLite storage.
// ABOUTME: Nested creates are transactional; deletes cascade down the tree.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/healthify/internal/models"
)

// CreateRoutine stores a routine with its nested days and exercises in
// one transaction.
func (d *DB) CreateRoutine(c *models.RoutineCreate) (*models.WorkoutRoutine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	r := &models.WorkoutRoutine{
		ID:          uuid.New(),
		Name:        c.Name,
		Description: c.Description,
		IsActive:    true,
		CreatedAt:   time.Now(),
		Days:        []models.WorkoutDay{},
	}
	if c.IsActive != nil {
		r.IsActive = *c.IsActive
	}

	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create routine: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO workout_routines (id, name, description, is_active, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		r.ID.String(), r.Name, r.Description, boolToInt(r.IsActive), r.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("create routine: %w", err)
	}

	for i := range c.Days {
		day, err := insertDay(tx, r.ID, &c.Days[i])
		if err != nil {
			return nil, err
		}
		r.Days = append(r.Days, *day)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create routine: %w", err)
	}

	return r, nil
}

// GetRoutine retrieves a routine with its full day and exercise tree.
func (d *DB) GetRoutine(id uuid.UUID) (*models.WorkoutRoutine, error) {
	r, err := scanRoutine(d.db.QueryRow(`
		SELECT id, name, description, is_active, created_at, updated_at
		FROM workout_routines WHERE id = ?`, id.String()))
	if err != nil {
		return nil, err
	}
	if err := d.loadDays(r); err != nil {
		return nil, err
	}
	return r, nil
}

// ListRoutines retrieves all routines (without children), oldest first.
func (d *DB) ListRoutines() ([]*models.WorkoutRoutine, error) {
	rows, err := d.db.Query(`
		SELECT id, name, description, is_active, created_at, updated_at
		FROM workout_routines
		ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}
	defer rows.Close()

	var routines []*models.WorkoutRoutine
	for rows.Next() {
		r, err := scanRoutineRows(rows)
		if err != nil {
			return nil, err
		}
		routines = append(routines, r)
	}
	return routines, rows.Err()
}

// UpdateRoutine applies partial field changes. Children are managed
// through their own operations.
func (d *DB) UpdateRoutine(id uuid.UUID, u *models.RoutineUpdate) (*models.WorkoutRoutine, error) {
	set := "updated_at = ?"
	args := []interface{}{time.Now().Format(time.RFC3339)}
	if u.Name != nil {
		set += ", name = ?"
		args = append(args, *u.Name)
	}
	if u.Description != nil {
		set += ", description = ?"
		args = append(args, *u.Description)
	}
	if u.IsActive != nil {
		set += ", is_active = ?"
		args = append(args, boolToInt(*u.IsActive))
	}
	args = append(args, id.String())

	result, err := d.db.Exec("UPDATE workout_routines SET "+set+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update routine: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("routine %s: %w", id, ErrNotFound)
	}

	return d.GetRoutine(id)
}

// DeleteRoutine removes a routine, its days, and their exercises.
func (d *DB) DeleteRoutine(id uuid.UUID) error {
	result, err := d.db.Exec("DELETE FROM workout_routines WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("delete routine: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("routine %s: %w", id, ErrNotFound)
	}
	return nil
}

// CreateDay adds a day (with optional nested exercises) to a routine.
// The parent routine must exist.
func (d *DB) CreateDay(routineID uuid.UUID, c *models.DayCreate) (*models.WorkoutDay, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := d.exists("workout_routines", routineID); err != nil {
		return nil, fmt.Errorf("routine %s: %w", routineID, err)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create day: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	day, err := insertDay(tx, routineID, c)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create day: %w", err)
	}
	return day, nil
}

// UpdateDay applies partial field changes to a workout day.
func (d *DB) UpdateDay(id uuid.UUID, u *models.DayUpdate) (*models.WorkoutDay, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	set := ""
	var args []interface{}
	appendSet := func(col string, v interface{}) {
		if set != "" {
			set += ", "
		}
		set += col + " = ?"
		args = append(args, v)
	}
	if u.Name != nil {
		appendSet("name", *u.Name)
	}
	if u.DayOfWeek != nil {
		appendSet("day_of_week", *u.DayOfWeek)
	}
	if u.SortOrder != nil {
		appendSet("sort_order", *u.SortOrder)
	}
	if set == "" {
		return d.getDay(id)
	}
	args = append(args, id.String())

	result, err := d.db.Exec("UPDATE workout_days SET "+set+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update day: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("day %s: %w", id, ErrNotFound)
	}

	return d.getDay(id)
}

// DeleteDay removes a day and its exercises.
func (d *DB) DeleteDay(id uuid.UUID) error {
	result, err := d.db.Exec("DELETE FROM workout_days WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("delete day: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("day %s: %w", id, ErrNotFound)
	}
	return nil
}

// CreateExercise adds an exercise to a day. The parent day must exist.
func (d *DB) CreateExercise(dayID uuid.UUID, c *models.ExerciseCreate) (*models.Exercise, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := d.exists("workout_days", dayID); err != nil {
		return nil, fmt.Errorf("day %s: %w", dayID, err)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ex, err := insertExercise(tx, dayID, c)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	return ex, nil
}

// UpdateExercise applies partial field changes to an exercise.
func (d *DB) UpdateExercise(id uuid.UUID, u *models.ExerciseUpdate) (*models.Exercise, error) {
	set := ""
	var args []interface{}
	appendSet := func(col string, v interface{}) {
		if set != "" {
			set += ", "
		}
		set += col + " = ?"
		args = append(args, v)
	}
	if u.Name != nil {
		appendSet("name", *u.Name)
	}
	if u.TargetSets != nil {
		appendSet("target_sets", *u.TargetSets)
	}
	if u.TargetReps != nil {
		appendSet("target_reps", *u.TargetReps)
	}
	if u.TargetWeight != nil {
		appendSet("target_weight", *u.TargetWeight)
	}
	if u.RestSeconds != nil {
		appendSet("rest_seconds", *u.RestSeconds)
	}
	if u.Notes != nil {
		appendSet("notes", *u.Notes)
	}
	if u.SortOrder != nil {
		appendSet("sort_order", *u.SortOrder)
	}
	if set == "" {
		return d.getExercise(id)
	}
	args = append(args, id.String())

	result, err := d.db.Exec("UPDATE exercises SET "+set+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("update exercise: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("exercise %s: %w", id, ErrNotFound)
	}

	return d.getExercise(id)
}

// DeleteExercise removes a single exercise.
func (d *DB) DeleteExercise(id uuid.UUID) error {
	result, err := d.db.Exec("DELETE FROM exercises WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("exercise %s: %w", id, ErrNotFound)
	}
	return nil
}

// TodaysWorkout finds the first active routine and, within it, the day
// scheduled for today's weekday. Returns ErrNotFound when no active
// routine exists or no day matches.
func (d *DB) TodaysWorkout() (*models.TodaysWorkout, error) {
	var routineIDStr, routineName string
	err := d.db.QueryRow(`
		SELECT id, name FROM workout_routines
		WHERE is_active = 1
		ORDER BY created_at ASC, id ASC
		LIMIT 1`).Scan(&routineIDStr, &routineName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("active routine: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("todays workout: %w", err)
	}

	weekday := models.Today().DayOfWeek()
	day, err := scanDay(d.db.QueryRow(`
		SELECT id, routine_id, name, day_of_week, sort_order
		FROM workout_days
		WHERE routine_id = ? AND day_of_week = ?
		ORDER BY sort_order ASC
		LIMIT 1`, routineIDStr, weekday))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("workout for weekday %d: %w", weekday, ErrNotFound)
		}
		return nil, err
	}
	if err := d.loadExercises(day); err != nil {
		return nil, err
	}

	routineID, _ := uuid.Parse(routineIDStr)
	return &models.TodaysWorkout{
		RoutineID:   routineID,
		RoutineName: routineName,
		Day:         *day,
	}, nil
}

// exists checks a parent row before inserting a child.
func (d *DB) exists(table string, id uuid.UUID) error {
	var n int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE id = ?", id.String()).Scan(&n); err != nil {
		return fmt.Errorf("check %s: %w", table, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// insertDay writes a day and any nested exercises inside the caller's
// transaction.
func insertDay(tx *sql.Tx, routineID uuid.UUID, c *models.DayCreate) (*models.WorkoutDay, error) {
	day := &models.WorkoutDay{
		ID:        uuid.New(),
		RoutineID: routineID,
		Name:      c.Name,
		DayOfWeek: c.DayOfWeek,
		SortOrder: c.SortOrder,
		Exercises: []models.Exercise{},
	}
	_, err := tx.Exec(`
		INSERT INTO workout_days (id, routine_id, name, day_of_week, sort_order)
		VALUES (?, ?, ?, ?, ?)`,
		day.ID.String(), routineID.String(), day.Name, day.DayOfWeek, day.SortOrder)
	if err != nil {
		return nil, fmt.Errorf("create day: %w", err)
	}

	for i := range c.Exercises {
		ex, err := insertExercise(tx, day.ID, &c.Exercises[i])
		if err != nil {
			return nil, err
		}
		day.Exercises = append(day.Exercises, *ex)
	}
	return day, nil
}

// insertExercise writes one exercise row inside the caller's transaction.
func insertExercise(tx *sql.Tx, dayID uuid.UUID, c *models.ExerciseCreate) (*models.Exercise, error) {
	ex := &models.Exercise{
		ID:           uuid.New(),
		DayID:        dayID,
		Name:         c.Name,
		TargetSets:   c.TargetSets,
		TargetReps:   c.TargetReps,
		TargetWeight: c.TargetWeight,
		RestSeconds:  c.RestSeconds,
		Notes:        c.Notes,
		SortOrder:    c.SortOrder,
	}
	_, err := tx.Exec(`
		INSERT INTO exercises (id, day_id, name, target_sets, target_reps, target_weight, rest_seconds, notes, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ex.ID.String(), dayID.String(), ex.Name, ex.TargetSets, ex.TargetReps,
		ex.TargetWeight, ex.RestSeconds, ex.Notes, ex.SortOrder)
	if err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	return ex, nil
}

// getDay retrieves a day with its exercises.
func (d *DB) getDay(id uuid.UUID) (*models.WorkoutDay, error) {
	day, err := scanDay(d.db.QueryRow(`
		SELECT id, routine_id, name, day_of_week, sort_order
		FROM workout_days WHERE id = ?`, id.String()))
	if err != nil {
		return nil, err
	}
	if err := d.loadExercises(day); err != nil {
		return nil, err
	}
	return day, nil
}

// getExercise retrieves a single exercise.
func (d *DB) getExercise(id uuid.UUID) (*models.Exercise, error) {
	row := d.db.QueryRow(`
		SELECT id, day_id, name, target_sets, target_reps, target_weight, rest_seconds, notes, sort_order
		FROM exercises WHERE id = ?`, id.String())

	ex, err := scanExercise(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("exercise %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return ex, nil
}

// loadDays populates a routine's days (sorted) and their exercises.
func (d *DB) loadDays(r *models.WorkoutRoutine) error {
	rows, err := d.db.Query(`
		SELECT id, routine_id, name, day_of_week, sort_order
		FROM workout_days
		WHERE routine_id = ?
		ORDER BY sort_order ASC, name ASC`, r.ID.String())
	if err != nil {
		return fmt.Errorf("load days: %w", err)
	}
	defer rows.Close()

	r.Days = []models.WorkoutDay{}
	for rows.Next() {
		var day models.WorkoutDay
		var idStr, routineIDStr string
		var dayOfWeek sql.NullInt64

		if err := rows.Scan(&idStr, &routineIDStr, &day.Name, &dayOfWeek, &day.SortOrder); err != nil {
			return fmt.Errorf("scan day: %w", err)
		}
		day.ID, _ = uuid.Parse(idStr)
		day.RoutineID, _ = uuid.Parse(routineIDStr)
		if dayOfWeek.Valid {
			dow := int(dayOfWeek.Int64)
			day.DayOfWeek = &dow
		}
		r.Days = append(r.Days, day)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range r.Days {
		if err := d.loadExercises(&r.Days[i]); err != nil {
			return err
		}
	}
	return nil
}

// loadExercises populates a day's exercises in sort order.
func (d *DB) loadExercises(day *models.WorkoutDay) error {
	rows, err := d.db.Query(`
		SELECT id, day_id, name, target_sets, target_reps, target_weight, rest_seconds, notes, sort_order
		FROM exercises
		WHERE day_id = ?
		ORDER BY sort_order ASC, name ASC`, day.ID.String())
	if err != nil {
		return fmt.Errorf("load exercises: %w", err)
	}
	defer rows.Close()

	day.Exercises = []models.Exercise{}
	for rows.Next() {
		ex, err := scanExercise(rows.Scan)
		if err != nil {
			return err
		}
		day.Exercises = append(day.Exercises, *ex)
	}
	return rows.Err()
}

// scanRoutine scans a single routine row.
func scanRoutine(row *sql.Row) (*models.WorkoutRoutine, error) {
	var r models.WorkoutRoutine
	var idStr, createdAt string
	var description, updatedAt sql.NullString
	var isActive int

	err := row.Scan(&idStr, &r.Name, &description, &isActive, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan routine: %w", err)
	}

	fillRoutine(&r, idStr, description, isActive, createdAt, updatedAt)
	return &r, nil
}

// scanRoutineRows scans the current row of a multi-row routine query.
func scanRoutineRows(rows *sql.Rows) (*models.WorkoutRoutine, error) {
	var r models.WorkoutRoutine
	var idStr, createdAt string
	var description, updatedAt sql.NullString
	var isActive int

	if err := rows.Scan(&idStr, &r.Name, &description, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scan routine: %w", err)
	}

	fillRoutine(&r, idStr, description, isActive, createdAt, updatedAt)
	return &r, nil
}

func fillRoutine(r *models.WorkoutRoutine, idStr string, description sql.NullString, isActive int, createdAt string, updatedAt sql.NullString) {
	r.ID, _ = uuid.Parse(idStr)
	r.IsActive = isActive != 0
	r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if description.Valid {
		r.Description = &description.String
	}
	if updatedAt.Valid {
		t, _ := time.Parse(time.RFC3339, updatedAt.String)
		r.UpdatedAt = &t
	}
}

// scanDay scans a single day row (exercises loaded separately).
func scanDay(row *sql.Row) (*models.WorkoutDay, error) {
	var day models.WorkoutDay
	var idStr, routineIDStr string
	var dayOfWeek sql.NullInt64

	err := row.Scan(&idStr, &routineIDStr, &day.Name, &dayOfWeek, &day.SortOrder)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan day: %w", err)
	}

	day.ID, _ = uuid.Parse(idStr)
	day.RoutineID, _ = uuid.Parse(routineIDStr)
	if dayOfWeek.Valid {
		dow := int(dayOfWeek.Int64)
		day.DayOfWeek = &dow
	}
	return &day, nil
}

// scanExercise scans one exercise via the given scan function, so it
// works for both sql.Row and sql.Rows.
func scanExercise(scan func(dest ...interface{}) error) (*models.Exercise, error) {
	var ex models.Exercise
	var idStr, dayIDStr string
	var targetSets, restSeconds sql.NullInt64
	var targetReps, targetWeight, notes sql.NullString

	err := scan(&idStr, &dayIDStr, &ex.Name, &targetSets, &targetReps, &targetWeight, &restSeconds, &notes, &ex.SortOrder)
	if err != nil {
		return nil, err
	}

	ex.ID, _ = uuid.Parse(idStr)
	ex.DayID, _ = uuid.Parse(dayIDStr)
	if targetSets.Valid {
		v := int(targetSets.Int64)
		ex.TargetSets = &v
	}
	if targetReps.Valid {
		ex.TargetReps = &targetReps.String
	}
	if targetWeight.Valid {
		ex.TargetWeight = &targetWeight.String
	}
	if restSeconds.Valid {
		v := int(restSeconds.Int64)
		ex.RestSeconds = &v
	}
	if notes.Valid {
		ex.Notes = &notes.String
	}
	return &ex, nil
}
