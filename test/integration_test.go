// ABOUTME: Integration tests for healthify CLI.
// ABOUTME: Tests full workflow from CLI commands.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "healthify")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/healthify")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	// Isolate data and config under a temp dir
	tmpDir := t.TempDir()

	run := func(args ...string) (string, error) {
		cmd := exec.Command(binary, args...)
		cmd.Env = append(os.Environ(),
			"HEALTHIFY_DATA_DIR="+tmpDir,
			"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Log today's entry
	output, err := run("log", "--stress", "4", "--workout", "--issue", "headache:6:morning")
	if err != nil {
		t.Fatalf("Failed to log entry: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged") {
		t.Errorf("Expected 'Logged' in output, got: %s", output)
	}

	// Patch the same day; the issue must survive
	output, err = run("log", "--notes", "long day")
	if err != nil {
		t.Fatalf("Failed to patch entry: %v\n%s", err, output)
	}
	if !strings.Contains(output, "headache") {
		t.Errorf("Expected issue to survive patch, got: %s", output)
	}

	// Today shows the entry
	output, err = run("today")
	if err != nil {
		t.Fatalf("Failed to show today: %v\n%s", err, output)
	}
	if !strings.Contains(output, "4/10") {
		t.Errorf("Expected stress in today output, got: %s", output)
	}

	// List shows it
	output, err = run("list")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "stress 4") {
		t.Errorf("Expected 'stress 4' in list output, got: %s", output)
	}

	// Stats count the streak
	output, err = run("stats")
	if err != nil {
		t.Fatalf("Failed to show stats: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Streak:       1") {
		t.Errorf("Expected streak 1 in stats, got: %s", output)
	}

	// Issue catalog was seeded on first run
	output, err = run("issue-types")
	if err != nil {
		t.Fatalf("Failed to list issue types: %v\n%s", err, output)
	}
	if !strings.Contains(output, "heart_palpitations") {
		t.Errorf("Expected seeded catalog, got: %s", output)
	}

	// Routine workflow
	output, err = run("routine", "add", "Push/Pull")
	if err != nil {
		t.Fatalf("Failed to add routine: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added routine Push/Pull") {
		t.Errorf("Expected 'Added routine' in output, got: %s", output)
	}

	output, err = run("routine", "list")
	if err != nil {
		t.Fatalf("Failed to list routines: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Push/Pull") {
		t.Errorf("Expected 'Push/Pull' in routine list, got: %s", output)
	}

	// Export includes everything
	output, err = run("export", "markdown")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, "headache") || !strings.Contains(output, "Push/Pull") {
		t.Errorf("Expected entry and routine in export, got: %s", output)
	}
}
