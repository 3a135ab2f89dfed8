// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides setupTestDB for creating isolated test database instances.
package storage

import (
	"path/filepath"
	"testing"

	"github.com/harperreed/healthify/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func mustCreateEntry(t *testing.T, db *DB, c *models.EntryCreate) *models.DailyEntry {
	t.Helper()
	e, err := db.CreateEntry(c)
	if err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}
	return e
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

// countRows counts rows in a table, optionally filtered by one column.
func countRows(t *testing.T, db *DB, table, col, val string) int {
	t.Helper()
	query := "SELECT COUNT(*) FROM " + table
	var args []interface{}
	if col != "" {
		query += " WHERE " + col + " = ?"
		args = append(args, val)
	}
	var n int
	if err := db.db.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
