// ABOUTME: Sentinel errors and SQLite constraint translation.
// ABOUTME: The unique index is the race backstop; violations surface as ErrConflict.
package storage

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound indicates the target row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness violation, such as a second
	// entry for an already-used date or a duplicate issue type name.
	ErrConflict = errors.New("already exists")
)

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure. Two concurrent creates can both pass an existence check; the
// index rejects the second commit and we translate it here.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
