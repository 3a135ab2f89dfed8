// ABOUTME: CLI commands for managing workout routines.
// ABOUTME: Supports add, list, show, day/exercise management, and today lookup.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harperreed/healthify/internal/models"
	"github.com/harperreed/healthify/internal/storage"
	"github.com/spf13/cobra"
)

var (
	routineDescription string
	routineInactive    bool
	dayWeekday         int
	daySortOrder       int
	exerciseSets       int
	exerciseReps       string
	exerciseWeight     string
	exerciseRest       int
	exerciseSortOrder  int
)

var routineCmd = &cobra.Command{
	Use:     "routine",
	Aliases: []string{"r"},
	Short:   "Manage workout routines",
	Long: `Manage workout routines, their days, and their exercises.

A routine owns days; a day owns exercises. Deleting a routine removes
the whole tree. Days pinned to a weekday (Monday=0) show up in
'healthify routine today' when the routine is active.

WORKFLOW:

  1. Create a routine:   healthify routine add "Push/Pull/Legs"
  2. Add a day:          healthify routine add-day <routine-id> "Push" --weekday 0
  3. Add exercises:      healthify routine add-exercise <day-id> "Bench Press" --sets 3 --reps 8-12
  4. Check the schedule: healthify routine today`,
}

var routineAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a routine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := &models.RoutineCreate{Name: args[0]}
		if routineDescription != "" {
			payload.Description = &routineDescription
		}
		if routineInactive {
			active := false
			payload.IsActive = &active
		}

		routine, err := repo.CreateRoutine(payload)
		if err != nil {
			return fmt.Errorf("failed to create routine: %w", err)
		}

		color.Green("✓ Added routine %s", routine.Name)
		fmt.Printf("  ID: %s\n", routine.ID)
		return nil
	},
}

var routineListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List routines",
	RunE: func(cmd *cobra.Command, args []string) error {
		routines, err := repo.ListRoutines()
		if err != nil {
			return fmt.Errorf("failed to list routines: %w", err)
		}
		if len(routines) == 0 {
			fmt.Println("No routines found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range routines {
			status := "active"
			if !r.IsActive {
				status = "inactive"
			}
			fmt.Printf("%s %-24s %s\n", faint.Sprint(r.ID.String()[:8]), r.Name, faint.Sprint(status))
		}
		return nil
	},
}

var routineShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a routine with its days and exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid routine id: %s", args[0])
		}

		routine, err := repo.GetRoutine(id)
		if err != nil {
			return fmt.Errorf("failed to load routine: %w", err)
		}

		printRoutine(routine)
		return nil
	},
}

var routineDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a routine and its whole tree",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid routine id: %s", args[0])
		}
		if err := repo.DeleteRoutine(id); err != nil {
			return fmt.Errorf("failed to delete routine: %w", err)
		}
		color.Yellow("✗ Deleted routine %s", args[0])
		return nil
	},
}

var routineAddDayCmd = &cobra.Command{
	Use:   "add-day <routine-id> <name>",
	Short: "Add a day to a routine",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid routine id: %s", args[0])
		}

		payload := &models.DayCreate{Name: args[1], SortOrder: daySortOrder}
		if cmd.Flags().Changed("weekday") {
			payload.DayOfWeek = &dayWeekday
		}

		day, err := repo.CreateDay(id, payload)
		if err != nil {
			return fmt.Errorf("failed to create day: %w", err)
		}

		color.Green("✓ Added day %s", day.Name)
		fmt.Printf("  ID: %s\n", day.ID)
		return nil
	},
}

var routineAddExerciseCmd = &cobra.Command{
	Use:   "add-exercise <day-id> <name>",
	Short: "Add an exercise to a day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid day id: %s", args[0])
		}

		payload := &models.ExerciseCreate{Name: args[1], SortOrder: exerciseSortOrder}
		if exerciseSets > 0 {
			payload.TargetSets = &exerciseSets
		}
		if exerciseReps != "" {
			payload.TargetReps = &exerciseReps
		}
		if exerciseWeight != "" {
			payload.TargetWeight = &exerciseWeight
		}
		if exerciseRest > 0 {
			payload.RestSeconds = &exerciseRest
		}

		ex, err := repo.CreateExercise(id, payload)
		if err != nil {
			return fmt.Errorf("failed to create exercise: %w", err)
		}

		color.Green("✓ Added exercise %s", ex.Name)
		return nil
	},
}

var routineTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's scheduled workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		workout, err := repo.TodaysWorkout()
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Println("No workout scheduled for today.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up today's workout: %w", err)
		}

		bold := color.New(color.Bold)
		bold.Printf("%s: %s\n", workout.RoutineName, workout.Day.Name)
		printExercises(workout.Day.Exercises)
		return nil
	},
}

var weekdayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func printRoutine(r *models.WorkoutRoutine) {
	faint := color.New(color.Faint)
	status := "active"
	if !r.IsActive {
		status = "inactive"
	}
	fmt.Printf("%s (%s)\n", r.Name, status)
	if r.Description != nil {
		fmt.Printf("%s\n", faint.Sprint(*r.Description))
	}
	for i := range r.Days {
		day := &r.Days[i]
		weekday := "flexible"
		if day.DayOfWeek != nil {
			weekday = weekdayNames[*day.DayOfWeek]
		}
		fmt.Printf("  %s (%s)\n", day.Name, weekday)
		printExercises(day.Exercises)
	}
}

func printExercises(exercises []models.Exercise) {
	for i := range exercises {
		ex := &exercises[i]
		line := "    " + ex.Name
		if ex.TargetSets != nil && ex.TargetReps != nil {
			line += fmt.Sprintf("  %dx%s", *ex.TargetSets, *ex.TargetReps)
		}
		if ex.TargetWeight != nil {
			line += " @ " + *ex.TargetWeight
		}
		if ex.RestSeconds != nil {
			line += fmt.Sprintf(" (rest %ds)", *ex.RestSeconds)
		}
		fmt.Println(line)
	}
}

func init() {
	routineAddCmd.Flags().StringVar(&routineDescription, "description", "", "routine description")
	routineAddCmd.Flags().BoolVar(&routineInactive, "inactive", false, "create the routine as inactive")
	routineAddDayCmd.Flags().IntVar(&dayWeekday, "weekday", 0, "weekday (0=Monday .. 6=Sunday); omit for a flexible day")
	routineAddDayCmd.Flags().IntVar(&daySortOrder, "order", 0, "sort order within the routine")
	routineAddExerciseCmd.Flags().IntVar(&exerciseSets, "sets", 0, "target sets")
	routineAddExerciseCmd.Flags().StringVar(&exerciseReps, "reps", "", "target reps (free text, e.g. 8-12)")
	routineAddExerciseCmd.Flags().StringVar(&exerciseWeight, "weight", "", "target weight (free text)")
	routineAddExerciseCmd.Flags().IntVar(&exerciseRest, "rest", 0, "rest seconds between sets")
	routineAddExerciseCmd.Flags().IntVar(&exerciseSortOrder, "order", 0, "sort order within the day")

	routineCmd.AddCommand(routineAddCmd)
	routineCmd.AddCommand(routineListCmd)
	routineCmd.AddCommand(routineShowCmd)
	routineCmd.AddCommand(routineDeleteCmd)
	routineCmd.AddCommand(routineAddDayCmd)
	routineCmd.AddCommand(routineAddExerciseCmd)
	routineCmd.AddCommand(routineTodayCmd)
	rootCmd.AddCommand(routineCmd)
}
