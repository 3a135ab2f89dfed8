// ABOUTME: Tests for export and import roundtrips.
package storage

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/harperreed/healthify/internal/models"
)

func seedExportData(t *testing.T, db *DB) {
	t.Helper()

	date, _ := models.ParseDate("2026-08-30")
	mustCreateEntry(t, db, &models.EntryCreate{
		Date:        date,
		StressLevel: intPtr(4),
		WorkedOut:   true,
		HealthIssues: []models.HealthIssueInput{
			{IssueType: "headache", Severity: intPtr(6)},
		},
	})

	if _, err := db.CreateIssueType(&models.IssueTypeCreate{Name: "tinnitus", DisplayName: "Tinnitus"}); err != nil {
		t.Fatalf("CreateIssueType failed: %v", err)
	}

	createRoutineTree(t, db, "Push/Pull")
}

func TestExportJSONRoundtrip(t *testing.T) {
	src := setupTestDB(t)
	seedExportData(t, src)

	export, err := src.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}
	if export.Tool != "healthify" {
		t.Errorf("tool mismatch: got %s", export.Tool)
	}
	if len(export.Entries) != 1 || len(export.IssueTypes) != 1 || len(export.Routines) != 1 {
		t.Fatalf("unexpected export counts: %d entries, %d types, %d routines",
			len(export.Entries), len(export.IssueTypes), len(export.Routines))
	}
	if len(export.Routines[0].Days) != 2 {
		t.Errorf("expected routine tree in export, got %d days", len(export.Routines[0].Days))
	}

	raw, err := export.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var parsed ExportData
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("export JSON does not parse: %v", err)
	}

	// Import into a fresh database and verify the data survives.
	dst := setupTestDB(t)
	if err := dst.ImportData(&parsed); err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}

	date, _ := models.ParseDate("2026-08-30")
	entry, err := dst.GetEntryByDate(date)
	if err != nil {
		t.Fatalf("imported entry missing: %v", err)
	}
	if entry.StressLevel == nil || *entry.StressLevel != 4 {
		t.Errorf("imported stress mismatch: %v", entry.StressLevel)
	}
	if len(entry.HealthIssues) != 1 {
		t.Errorf("imported issues missing: %d", len(entry.HealthIssues))
	}

	routines, err := dst.ListRoutines()
	if err != nil {
		t.Fatalf("ListRoutines failed: %v", err)
	}
	if len(routines) != 1 {
		t.Fatalf("imported routine missing")
	}
	tree, err := dst.GetRoutine(routines[0].ID)
	if err != nil {
		t.Fatalf("GetRoutine failed: %v", err)
	}
	if len(tree.Days) != 2 || len(tree.Days[0].Exercises) != 3 {
		t.Errorf("imported routine tree incomplete: %d days", len(tree.Days))
	}
}

func TestImportIntoSeededDatabase(t *testing.T) {
	src := setupTestDB(t)
	if err := src.SeedIssueTypes(); err != nil {
		t.Fatalf("SeedIssueTypes failed: %v", err)
	}
	seedExportData(t, src)

	export, err := src.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}

	// Restoring a backup must survive the startup seeding of the target.
	dst := setupTestDB(t)
	if err := dst.SeedIssueTypes(); err != nil {
		t.Fatalf("SeedIssueTypes failed: %v", err)
	}
	if err := dst.ImportData(export); err != nil {
		t.Fatalf("ImportData into seeded db failed: %v", err)
	}

	types, err := dst.ListIssueTypes(false)
	if err != nil {
		t.Fatalf("ListIssueTypes failed: %v", err)
	}
	want := len(models.DefaultIssueTypes) + 1 // defaults + tinnitus
	if len(types) != want {
		t.Errorf("expected %d issue types after import, got %d", want, len(types))
	}

	date, _ := models.ParseDate("2026-08-30")
	if _, err := dst.GetEntryByDate(date); err != nil {
		t.Errorf("imported entry missing: %v", err)
	}
}

func TestExportMarkdown(t *testing.T) {
	db := setupTestDB(t)
	seedExportData(t, db)

	export, err := db.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}

	md := string(export.ToMarkdown())
	for _, want := range []string{"# Healthify Export", "2026-08-30", "headache", "Push/Pull", "Bench Press"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestExportYAML(t *testing.T) {
	db := setupTestDB(t)
	seedExportData(t, db)

	export, err := db.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}

	raw, err := export.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML failed: %v", err)
	}
	if !strings.Contains(string(raw), "2026-08-30") {
		t.Error("yaml missing entry date")
	}
}
