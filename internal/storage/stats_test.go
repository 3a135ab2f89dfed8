// ABOUTME: Tests for rolling statistics and the backward streak walk.
package storage

import (
	"errors"
	"testing"

	"github.com/harperreed/healthify/internal/models"
)

func TestStatsWindowValidation(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.Stats(0)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for days=0, got %v", err)
	}
}

func TestStatsEmptyWindow(t *testing.T) {
	db := setupTestDB(t)

	summary, err := db.Stats(30)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if summary.TotalEntries != 0 {
		t.Errorf("expected 0 entries, got %d", summary.TotalEntries)
	}
	if summary.WorkoutDays != 0 {
		t.Errorf("expected 0 workout days, got %d", summary.WorkoutDays)
	}
	if summary.AvgStress != nil {
		t.Errorf("expected nil AvgStress, got %v", *summary.AvgStress)
	}
	if len(summary.CommonIssues) != 0 {
		t.Errorf("expected no common issues, got %d", len(summary.CommonIssues))
	}
	if summary.StreakDays != 0 {
		t.Errorf("expected streak 0, got %d", summary.StreakDays)
	}
}

func TestStatsAverageStressRounding(t *testing.T) {
	db := setupTestDB(t)

	today := models.Today()
	levels := []int{2, 4, 6, 8}
	for i, level := range levels {
		mustCreateEntry(t, db, &models.EntryCreate{
			Date:        today.AddDays(-i),
			StressLevel: intPtr(level),
		})
	}
	// An entry without a stress level must not drag the average down.
	mustCreateEntry(t, db, &models.EntryCreate{Date: today.AddDays(-len(levels))})

	summary, err := db.Stats(30)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if summary.TotalEntries != 5 {
		t.Errorf("expected 5 entries, got %d", summary.TotalEntries)
	}
	if summary.AvgStress == nil || *summary.AvgStress != 5.0 {
		t.Errorf("expected avg stress 5.0, got %v", summary.AvgStress)
	}
}

func TestStatsWorkoutDays(t *testing.T) {
	db := setupTestDB(t)

	today := models.Today()
	mustCreateEntry(t, db, &models.EntryCreate{Date: today, WorkedOut: true})
	mustCreateEntry(t, db, &models.EntryCreate{Date: today.AddDays(-1), WorkedOut: true})
	mustCreateEntry(t, db, &models.EntryCreate{Date: today.AddDays(-2)})

	summary, err := db.Stats(7)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if summary.WorkoutDays != 2 {
		t.Errorf("expected 2 workout days, got %d", summary.WorkoutDays)
	}
}

func TestStatsStreak(t *testing.T) {
	db := setupTestDB(t)

	today := models.Today()
	// Three consecutive days ending today, then a gap, then an older entry.
	for i := 0; i < 3; i++ {
		mustCreateEntry(t, db, &models.EntryCreate{Date: today.AddDays(-i)})
	}
	mustCreateEntry(t, db, &models.EntryCreate{Date: today.AddDays(-5)})

	summary, err := db.Stats(30)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if summary.StreakDays != 3 {
		t.Errorf("expected streak 3, got %d", summary.StreakDays)
	}
}

func TestStatsStreakBrokenByMissingToday(t *testing.T) {
	db := setupTestDB(t)

	today := models.Today()
	mustCreateEntry(t, db, &models.EntryCreate{Date: today.AddDays(-1)})
	mustCreateEntry(t, db, &models.EntryCreate{Date: today.AddDays(-2)})

	summary, err := db.Stats(30)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if summary.StreakDays != 0 {
		t.Errorf("expected streak 0 without a today entry, got %d", summary.StreakDays)
	}
}

func TestStatsCommonIssuesRanking(t *testing.T) {
	db := setupTestDB(t)

	today := models.Today()
	issuesByDay := [][]string{
		{"headache", "fatigue"},
		{"headache", "anxiety"},
		{"headache", "fatigue"},
		{"dizziness", "digestive"},
		{"sleep_issues", "muscle_pain"},
	}
	for i, names := range issuesByDay {
		var inputs []models.HealthIssueInput
		for _, n := range names {
			inputs = append(inputs, models.HealthIssueInput{IssueType: n})
		}
		mustCreateEntry(t, db, &models.EntryCreate{
			Date:         today.AddDays(-i),
			HealthIssues: inputs,
		})
	}

	summary, err := db.Stats(30)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if len(summary.CommonIssues) != 5 {
		t.Fatalf("expected 5 common issues (capped), got %d", len(summary.CommonIssues))
	}
	if summary.CommonIssues[0].Type != "headache" || summary.CommonIssues[0].Count != 3 {
		t.Errorf("expected headache x3 first, got %+v", summary.CommonIssues[0])
	}
	if summary.CommonIssues[1].Type != "fatigue" || summary.CommonIssues[1].Count != 2 {
		t.Errorf("expected fatigue x2 second, got %+v", summary.CommonIssues[1])
	}
	// Ties rank alphabetically.
	if summary.CommonIssues[2].Type != "anxiety" {
		t.Errorf("expected anxiety third on tie-break, got %+v", summary.CommonIssues[2])
	}
}

func TestStatsWindowExcludesOldEntries(t *testing.T) {
	db := setupTestDB(t)

	today := models.Today()
	mustCreateEntry(t, db, &models.EntryCreate{Date: today, StressLevel: intPtr(2)})
	mustCreateEntry(t, db, &models.EntryCreate{Date: today.AddDays(-40), StressLevel: intPtr(10)})

	summary, err := db.Stats(7)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if summary.TotalEntries != 1 {
		t.Errorf("expected 1 entry in window, got %d", summary.TotalEntries)
	}
	if summary.AvgStress == nil || *summary.AvgStress != 2.0 {
		t.Errorf("old entry leaked into average: got %v", summary.AvgStress)
	}
}
