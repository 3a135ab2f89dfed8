// ABOUTME: WorkoutRoutine, WorkoutDay, and Exercise models for workout plans.
// ABOUTME: Three-level owned tree; children never outlive their parent.
package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutRoutine is a named workout plan owning an ordered set of days.
type WorkoutRoutine struct {
	ID          uuid.UUID    `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description *string      `json:"description" yaml:"description,omitempty"`
	IsActive    bool         `json:"is_active" yaml:"is_active"`
	CreatedAt   time.Time    `json:"created_at" yaml:"created_at"`
	UpdatedAt   *time.Time   `json:"updated_at" yaml:"updated_at,omitempty"`
	Days        []WorkoutDay `json:"days" yaml:"days"`
}

// WorkoutDay is one day within a routine. A nil DayOfWeek means the day
// is flexible and not pinned to a weekday.
type WorkoutDay struct {
	ID        uuid.UUID  `json:"id" yaml:"id"`
	RoutineID uuid.UUID  `json:"routine_id" yaml:"routine_id"`
	Name      string     `json:"name" yaml:"name"`
	DayOfWeek *int       `json:"day_of_week" yaml:"day_of_week,omitempty"`
	SortOrder int        `json:"sort_order" yaml:"sort_order"`
	Exercises []Exercise `json:"exercises" yaml:"exercises"`
}

// Exercise is a single movement within a workout day. Target reps and
// weight are free text so ranges like "8-12" survive round-trips.
type Exercise struct {
	ID           uuid.UUID `json:"id" yaml:"id"`
	DayID        uuid.UUID `json:"day_id" yaml:"day_id"`
	Name         string    `json:"name" yaml:"name"`
	TargetSets   *int      `json:"target_sets" yaml:"target_sets,omitempty"`
	TargetReps   *string   `json:"target_reps" yaml:"target_reps,omitempty"`
	TargetWeight *string   `json:"target_weight" yaml:"target_weight,omitempty"`
	RestSeconds  *int      `json:"rest_seconds" yaml:"rest_seconds,omitempty"`
	Notes        *string   `json:"notes" yaml:"notes,omitempty"`
	SortOrder    int       `json:"sort_order" yaml:"sort_order"`
}

// TodaysWorkout pairs the active routine with the day scheduled for
// today's weekday.
type TodaysWorkout struct {
	RoutineID   uuid.UUID  `json:"routine_id" yaml:"routine_id"`
	RoutineName string     `json:"routine_name" yaml:"routine_name"`
	Day         WorkoutDay `json:"day" yaml:"day"`
}

// ExerciseCreate is the payload for adding an exercise to a day.
type ExerciseCreate struct {
	Name         string  `json:"name" binding:"required"`
	TargetSets   *int    `json:"target_sets"`
	TargetReps   *string `json:"target_reps"`
	TargetWeight *string `json:"target_weight"`
	RestSeconds  *int    `json:"rest_seconds"`
	Notes        *string `json:"notes"`
	SortOrder    int     `json:"sort_order"`
}

// Validate rejects blank names before any storage write.
func (c *ExerciseCreate) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	return nil
}

// DayCreate is the payload for adding a day to a routine.
type DayCreate struct {
	Name      string           `json:"name" binding:"required"`
	DayOfWeek *int             `json:"day_of_week"`
	SortOrder int              `json:"sort_order"`
	Exercises []ExerciseCreate `json:"exercises"`
}

// Validate checks the weekday range and nested exercises.
func (c *DayCreate) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if err := checkDayOfWeek("day_of_week", c.DayOfWeek); err != nil {
		return err
	}
	for i := range c.Exercises {
		if err := c.Exercises[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// RoutineCreate is the payload for creating a routine with nested days
// and exercises in one transaction.
type RoutineCreate struct {
	Name        string      `json:"name" binding:"required"`
	Description *string     `json:"description"`
	IsActive    *bool       `json:"is_active"`
	Days        []DayCreate `json:"days"`
}

// Validate checks the routine and every nested child.
func (c *RoutineCreate) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	for i := range c.Days {
		if err := c.Days[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// RoutineUpdate applies partial field changes to a routine. Children are
// managed through their own operations, never replaced here.
type RoutineUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// DayUpdate applies partial field changes to a workout day.
type DayUpdate struct {
	Name      *string `json:"name"`
	DayOfWeek *int    `json:"day_of_week"`
	SortOrder *int    `json:"sort_order"`
}

// Validate checks the weekday range.
func (u *DayUpdate) Validate() error {
	return checkDayOfWeek("day_of_week", u.DayOfWeek)
}

// ExerciseUpdate applies partial field changes to an exercise.
type ExerciseUpdate struct {
	Name         *string `json:"name"`
	TargetSets   *int    `json:"target_sets"`
	TargetReps   *string `json:"target_reps"`
	TargetWeight *string `json:"target_weight"`
	RestSeconds  *int    `json:"rest_seconds"`
	Notes        *string `json:"notes"`
	SortOrder    *int    `json:"sort_order"`
}
