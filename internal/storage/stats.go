// ABOUTME: Rolling statistics over a trailing window of daily entries.
// ABOUTME: Streaks walk backward from today and ignore the window size.
package storage

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/harperreed/healthify/internal/models"
)

// Stats computes aggregates over entries dated within the trailing
// window. AvgStress averages only entries that recorded a stress level
// and is nil when none did.
func (d *DB) Stats(windowDays int) (*models.StatsSummary, error) {
	if windowDays < 1 {
		return nil, &models.ValidationError{Field: "days", Message: "must be at least 1"}
	}

	start := models.Today().AddDays(-windowDays)
	summary := &models.StatsSummary{CommonIssues: []models.IssueCount{}}

	var avgStress sql.NullFloat64
	err := d.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(worked_out), 0), AVG(stress_level)
		FROM daily_entries
		WHERE date >= ?`,
		start.String()).Scan(&summary.TotalEntries, &summary.WorkoutDays, &avgStress)
	if err != nil {
		return nil, fmt.Errorf("stats totals: %w", err)
	}
	if avgStress.Valid {
		rounded := math.Round(avgStress.Float64*10) / 10
		summary.AvgStress = &rounded
	}

	// Top 5 issue types among issues of entries in the window, stable
	// tie-break on name.
	rows, err := d.db.Query(`
		SELECT hi.issue_type, COUNT(*) AS n
		FROM health_issues hi
		JOIN daily_entries de ON de.id = hi.daily_entry_id
		WHERE de.date >= ?
		GROUP BY hi.issue_type
		ORDER BY n DESC, hi.issue_type ASC
		LIMIT 5`,
		start.String())
	if err != nil {
		return nil, fmt.Errorf("stats common issues: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ic models.IssueCount
		if err := rows.Scan(&ic.Type, &ic.Count); err != nil {
			return nil, fmt.Errorf("scan issue count: %w", err)
		}
		summary.CommonIssues = append(summary.CommonIssues, ic)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	streak, err := d.streak()
	if err != nil {
		return nil, err
	}
	summary.StreakDays = streak

	return summary, nil
}

// streak counts consecutive days with an entry, walking backward from
// today. A missing entry for today yields 0.
func (d *DB) streak() (int, error) {
	streak := 0
	check := models.Today()
	for {
		var exists int
		err := d.db.QueryRow("SELECT COUNT(*) FROM daily_entries WHERE date = ?", check.String()).Scan(&exists)
		if err != nil {
			return 0, fmt.Errorf("streak: %w", err)
		}
		if exists == 0 {
			return streak, nil
		}
		streak++
		check = check.AddDays(-1)
	}
}
