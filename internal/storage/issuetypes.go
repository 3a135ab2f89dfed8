// ABOUTME: IssueType catalog operations and idempotent default seeding.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/healthify/internal/models"
)

// ListIssueTypes retrieves catalog rows sorted by sort_order ascending.
// When activeOnly is set, inactive rows are filtered out.
func (d *DB) ListIssueTypes(activeOnly bool) ([]*models.IssueType, error) {
	query := "SELECT id, name, display_name, icon, is_active, sort_order FROM issue_types"
	if activeOnly {
		query += " WHERE is_active = 1"
	}
	query += " ORDER BY sort_order ASC, name ASC"

	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list issue types: %w", err)
	}
	defer rows.Close()

	var types []*models.IssueType
	for rows.Next() {
		var it models.IssueType
		var idStr string
		var icon sql.NullString
		var isActive int

		if err := rows.Scan(&idStr, &it.Name, &it.DisplayName, &icon, &isActive, &it.SortOrder); err != nil {
			return nil, fmt.Errorf("scan issue type: %w", err)
		}

		it.ID, _ = uuid.Parse(idStr)
		it.IsActive = isActive != 0
		if icon.Valid {
			it.Icon = &icon.String
		}
		types = append(types, &it)
	}

	return types, rows.Err()
}

// CreateIssueType inserts a catalog row. A duplicate name violates the
// unique index and surfaces as ErrConflict.
func (d *DB) CreateIssueType(c *models.IssueTypeCreate) (*models.IssueType, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	it := &models.IssueType{
		ID:          uuid.New(),
		Name:        c.Name,
		DisplayName: c.DisplayName,
		Icon:        c.Icon,
		IsActive:    true,
		SortOrder:   0,
	}

	_, err := d.db.Exec(`
		INSERT INTO issue_types (id, name, display_name, icon, is_active, sort_order)
		VALUES (?, ?, ?, ?, 1, 0)`,
		it.ID.String(), it.Name, it.DisplayName, it.Icon)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("issue type %q: %w", c.Name, ErrConflict)
		}
		return nil, fmt.Errorf("create issue type: %w", err)
	}

	return it, nil
}

// SeedIssueTypes inserts the default catalog once. Idempotent: a
// non-empty catalog makes this a no-op, so repeated startups never
// duplicate the defaults.
func (d *DB) SeedIssueTypes() error {
	var count int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM issue_types").Scan(&count); err != nil {
		return fmt.Errorf("seed issue types: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("seed issue types: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, def := range models.DefaultIssueTypes {
		_, err := tx.Exec(`
			INSERT INTO issue_types (id, name, display_name, icon, is_active, sort_order)
			VALUES (?, ?, ?, ?, 1, ?)`,
			uuid.New().String(), def.Name, def.DisplayName, def.Icon, def.SortOrder)
		if err != nil {
			return fmt.Errorf("seed issue type %s: %w", def.Name, err)
		}
	}

	return tx.Commit()
}
