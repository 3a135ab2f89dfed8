// ABOUTME: Repository interface for daily health data storage.
// ABOUTME: Defines the contract for entries, the issue catalog, stats, and routines.
package storage

import (
	"github.com/google/uuid"
	"github.com/harperreed/healthify/internal/models"
)

// ListEntriesOptions controls pagination and date filtering for entry
// listings. Zero Limit falls back to 30; date bounds are inclusive.
type ListEntriesOptions struct {
	Skip      int
	Limit     int
	StartDate *models.Date
	EndDate   *models.Date
}

// Repository defines the storage interface for health data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Daily entry operations
	CreateEntry(c *models.EntryCreate) (*models.DailyEntry, error)
	GetEntryByDate(date models.Date) (*models.DailyEntry, error)
	GetEntryByID(id uuid.UUID) (*models.DailyEntry, error)
	ListEntries(opts ListEntriesOptions) ([]*models.DailyEntry, error)
	UpdateEntry(date models.Date, u *models.EntryUpdate) (*models.DailyEntry, error)
	DeleteEntry(date models.Date) (bool, error)

	// Issue catalog operations
	ListIssueTypes(activeOnly bool) ([]*models.IssueType, error)
	CreateIssueType(c *models.IssueTypeCreate) (*models.IssueType, error)
	SeedIssueTypes() error

	// Statistics
	Stats(windowDays int) (*models.StatsSummary, error)

	// Workout routine operations
	CreateRoutine(c *models.RoutineCreate) (*models.WorkoutRoutine, error)
	GetRoutine(id uuid.UUID) (*models.WorkoutRoutine, error)
	ListRoutines() ([]*models.WorkoutRoutine, error)
	UpdateRoutine(id uuid.UUID, u *models.RoutineUpdate) (*models.WorkoutRoutine, error)
	DeleteRoutine(id uuid.UUID) error
	CreateDay(routineID uuid.UUID, c *models.DayCreate) (*models.WorkoutDay, error)
	UpdateDay(id uuid.UUID, u *models.DayUpdate) (*models.WorkoutDay, error)
	DeleteDay(id uuid.UUID) error
	CreateExercise(dayID uuid.UUID, c *models.ExerciseCreate) (*models.Exercise, error)
	UpdateExercise(id uuid.UUID, u *models.ExerciseUpdate) (*models.Exercise, error)
	DeleteExercise(id uuid.UUID) error
	TodaysWorkout() (*models.TodaysWorkout, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
