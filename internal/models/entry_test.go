// ABOUTME: Tests for entry payload validation and builders.
package models

import (
	"errors"
	"testing"
)

func TestEntryCreateValidate(t *testing.T) {
	date, _ := ParseDate("2026-08-30")

	good := EntryCreate{Date: date}
	if err := good.Validate(); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}

	noDate := EntryCreate{}
	if err := noDate.Validate(); err == nil {
		t.Error("expected error for missing date")
	}

	for _, bad := range []int{0, -1, 11} {
		level := bad
		c := EntryCreate{Date: date, StressLevel: &level}
		var verr *ValidationError
		if err := c.Validate(); !errors.As(err, &verr) {
			t.Errorf("stress %d: expected ValidationError, got %v", bad, err)
		}
	}

	sev := 11
	withBadIssue := EntryCreate{
		Date:         date,
		HealthIssues: []HealthIssueInput{{IssueType: "headache", Severity: &sev}},
	}
	if err := withBadIssue.Validate(); err == nil {
		t.Error("expected error for issue severity 11")
	}

	emptyType := EntryCreate{
		Date:         date,
		HealthIssues: []HealthIssueInput{{IssueType: ""}},
	}
	if err := emptyType.Validate(); err == nil {
		t.Error("expected error for empty issue type")
	}
}

func TestEntryUpdateValidate(t *testing.T) {
	empty := EntryUpdate{}
	if err := empty.Validate(); err != nil {
		t.Errorf("empty update should validate: %v", err)
	}

	level := 10
	ok := EntryUpdate{StressLevel: &level}
	if err := ok.Validate(); err != nil {
		t.Errorf("stress 10 should validate: %v", err)
	}

	sev := 0
	issues := []HealthIssueInput{{IssueType: "headache", Severity: &sev}}
	bad := EntryUpdate{HealthIssues: &issues}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for issue severity 0")
	}
}

func TestDailyEntryBuilders(t *testing.T) {
	date, _ := ParseDate("2026-08-30")
	e := NewDailyEntry(date).WithStressLevel(4).WithWorkout("5k run").WithNotes("ok day")

	if e.StressLevel == nil || *e.StressLevel != 4 {
		t.Errorf("StressLevel mismatch: %v", e.StressLevel)
	}
	if !e.WorkedOut || e.WorkoutNotes == nil || *e.WorkoutNotes != "5k run" {
		t.Error("workout builder mismatch")
	}
	if e.Notes == nil || *e.Notes != "ok day" {
		t.Error("notes builder mismatch")
	}
	if e.ID.String() == "" || e.CreatedAt.IsZero() {
		t.Error("expected generated ID and timestamp")
	}
}

func TestDayCreateValidate(t *testing.T) {
	ok := DayCreate{Name: "Push"}
	if err := ok.Validate(); err != nil {
		t.Errorf("valid day rejected: %v", err)
	}

	dow := 7
	bad := DayCreate{Name: "Push", DayOfWeek: &dow}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for day_of_week 7")
	}

	noName := DayCreate{}
	if err := noName.Validate(); err == nil {
		t.Error("expected error for empty day name")
	}
}
