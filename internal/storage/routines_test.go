// ABOUTME: Tests for workout routine, day, and exercise operations.
// ABOUTME: Covers nested creates, cascade deletes, and today's workout lookup.
package storage

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/harperreed/healthify/internal/models"
)

func createRoutineTree(t *testing.T, db *DB, name string) *models.WorkoutRoutine {
	t.Helper()
	r, err := db.CreateRoutine(&models.RoutineCreate{
		Name: name,
		Days: []models.DayCreate{
			{
				Name:      "Push",
				DayOfWeek: intPtr(0),
				SortOrder: 0,
				Exercises: []models.ExerciseCreate{
					{Name: "Bench Press", TargetSets: intPtr(3), TargetReps: strPtr("8-12")},
					{Name: "Overhead Press", TargetSets: intPtr(3), TargetReps: strPtr("10"), SortOrder: 1},
					{Name: "Dips", SortOrder: 2},
				},
			},
			{
				Name:      "Pull",
				DayOfWeek: intPtr(2),
				SortOrder: 1,
				Exercises: []models.ExerciseCreate{
					{Name: "Deadlift", TargetSets: intPtr(3), TargetReps: strPtr("5")},
					{Name: "Row", SortOrder: 1},
					{Name: "Curl", SortOrder: 2},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateRoutine failed: %v", err)
	}
	return r
}

func TestCreateRoutineNested(t *testing.T) {
	db := setupTestDB(t)

	r := createRoutineTree(t, db, "Push/Pull")
	if !r.IsActive {
		t.Error("routines should default to active")
	}
	if len(r.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(r.Days))
	}
	if len(r.Days[0].Exercises) != 3 {
		t.Errorf("expected 3 exercises on day 0, got %d", len(r.Days[0].Exercises))
	}

	got, err := db.GetRoutine(r.ID)
	if err != nil {
		t.Fatalf("GetRoutine failed: %v", err)
	}
	if len(got.Days) != 2 || len(got.Days[1].Exercises) != 3 {
		t.Errorf("tree not fully loaded: %d days", len(got.Days))
	}
	if got.Days[0].Name != "Push" {
		t.Errorf("expected days in sort order, got %s first", got.Days[0].Name)
	}
}

func TestGetRoutineNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetRoutine(uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateRoutinePartial(t *testing.T) {
	db := setupTestDB(t)

	r := createRoutineTree(t, db, "Push/Pull")

	got, err := db.UpdateRoutine(r.ID, &models.RoutineUpdate{IsActive: boolPtr(false)})
	if err != nil {
		t.Fatalf("UpdateRoutine failed: %v", err)
	}
	if got.IsActive {
		t.Error("expected routine to be inactive")
	}
	if got.Name != "Push/Pull" {
		t.Errorf("name should be untouched, got %s", got.Name)
	}

	_, err = db.UpdateRoutine(uuid.New(), &models.RoutineUpdate{Name: strPtr("x")})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing routine, got %v", err)
	}
}

func TestDeleteRoutineCascades(t *testing.T) {
	db := setupTestDB(t)

	r := createRoutineTree(t, db, "Push/Pull")
	if err := db.DeleteRoutine(r.ID); err != nil {
		t.Fatalf("DeleteRoutine failed: %v", err)
	}

	if n := countRows(t, db, "workout_days", "", ""); n != 0 {
		t.Errorf("expected 0 day rows after cascade, got %d", n)
	}
	if n := countRows(t, db, "exercises", "", ""); n != 0 {
		t.Errorf("expected 0 exercise rows after cascade, got %d", n)
	}

	if err := db.DeleteRoutine(r.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestDeleteDayCascadesExercises(t *testing.T) {
	db := setupTestDB(t)

	r := createRoutineTree(t, db, "Push/Pull")
	day := r.Days[0]

	if err := db.DeleteDay(day.ID); err != nil {
		t.Fatalf("DeleteDay failed: %v", err)
	}
	if n := countRows(t, db, "exercises", "day_id", day.ID.String()); n != 0 {
		t.Errorf("expected 0 exercises for deleted day, got %d", n)
	}
	// Sibling day untouched
	if n := countRows(t, db, "exercises", "day_id", r.Days[1].ID.String()); n != 3 {
		t.Errorf("sibling day lost exercises: got %d", n)
	}
}

func TestCreateDayParentMustExist(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.CreateDay(uuid.New(), &models.DayCreate{Name: "Legs"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing routine, got %v", err)
	}
}

func TestCreateExerciseParentMustExist(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.CreateExercise(uuid.New(), &models.ExerciseCreate{Name: "Squat"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing day, got %v", err)
	}
}

func TestUpdateExercise(t *testing.T) {
	db := setupTestDB(t)

	r := createRoutineTree(t, db, "Push/Pull")
	ex := r.Days[0].Exercises[0]

	got, err := db.UpdateExercise(ex.ID, &models.ExerciseUpdate{
		TargetSets: intPtr(5),
		Notes:      strPtr("pause reps"),
	})
	if err != nil {
		t.Fatalf("UpdateExercise failed: %v", err)
	}
	if got.TargetSets == nil || *got.TargetSets != 5 {
		t.Errorf("TargetSets mismatch: got %v", got.TargetSets)
	}
	if got.Name != "Bench Press" {
		t.Errorf("name should be untouched, got %s", got.Name)
	}
}

func TestDayOfWeekValidation(t *testing.T) {
	db := setupTestDB(t)

	r := createRoutineTree(t, db, "Push/Pull")
	_, err := db.CreateDay(r.ID, &models.DayCreate{Name: "Bad", DayOfWeek: intPtr(7)})

	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for day_of_week=7, got %v", err)
	}
}

func TestTodaysWorkout(t *testing.T) {
	db := setupTestDB(t)

	weekday := models.Today().DayOfWeek()
	r, err := db.CreateRoutine(&models.RoutineCreate{
		Name: "Daily",
		Days: []models.DayCreate{
			{
				Name:      "Today's Session",
				DayOfWeek: &weekday,
				Exercises: []models.ExerciseCreate{{Name: "Squat"}},
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateRoutine failed: %v", err)
	}

	workout, err := db.TodaysWorkout()
	if err != nil {
		t.Fatalf("TodaysWorkout failed: %v", err)
	}
	if workout.RoutineID != r.ID {
		t.Errorf("routine mismatch: got %s", workout.RoutineID)
	}
	if workout.Day.Name != "Today's Session" {
		t.Errorf("day mismatch: got %s", workout.Day.Name)
	}
	if len(workout.Day.Exercises) != 1 {
		t.Errorf("expected exercises loaded, got %d", len(workout.Day.Exercises))
	}
}

func TestTodaysWorkoutNoActiveRoutine(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.TodaysWorkout()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound with no routines, got %v", err)
	}

	// An inactive routine with a matching day still doesn't count.
	weekday := models.Today().DayOfWeek()
	inactive := false
	_, err = db.CreateRoutine(&models.RoutineCreate{
		Name:     "Paused",
		IsActive: &inactive,
		Days:     []models.DayCreate{{Name: "Session", DayOfWeek: &weekday}},
	})
	if err != nil {
		t.Fatalf("CreateRoutine failed: %v", err)
	}

	_, err = db.TodaysWorkout()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound with only inactive routines, got %v", err)
	}
}

func TestTodaysWorkoutNoDayScheduled(t *testing.T) {
	db := setupTestDB(t)

	// Active routine whose only day is pinned to a different weekday.
	other := (models.Today().DayOfWeek() + 1) % 7
	_, err := db.CreateRoutine(&models.RoutineCreate{
		Name: "Off Day",
		Days: []models.DayCreate{{Name: "Session", DayOfWeek: &other}},
	})
	if err != nil {
		t.Fatalf("CreateRoutine failed: %v", err)
	}

	_, err = db.TodaysWorkout()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound when no day matches, got %v", err)
	}
}

func TestTodaysWorkoutFirstActiveRoutineWins(t *testing.T) {
	db := setupTestDB(t)

	weekday := models.Today().DayOfWeek()
	first, err := db.CreateRoutine(&models.RoutineCreate{
		Name: "First",
		Days: []models.DayCreate{{Name: "A", DayOfWeek: &weekday}},
	})
	if err != nil {
		t.Fatalf("CreateRoutine failed: %v", err)
	}
	_, err = db.CreateRoutine(&models.RoutineCreate{
		Name: "Second",
		Days: []models.DayCreate{{Name: "B", DayOfWeek: &weekday}},
	})
	if err != nil {
		t.Fatalf("CreateRoutine failed: %v", err)
	}

	workout, err := db.TodaysWorkout()
	if err != nil {
		t.Fatalf("TodaysWorkout failed: %v", err)
	}
	if workout.RoutineID != first.ID {
		t.Errorf("expected oldest active routine to win, got %s", workout.RoutineName)
	}
}
