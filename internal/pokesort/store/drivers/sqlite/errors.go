package sqlite

import (
	"errors"
	"strings"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/store"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// mapConflict turns a UNIQUE violation into a *store.ConflictError naming
// the column. SQLite reports it as "UNIQUE constraint failed: users.email".
func mapConflict(err error) error {
	var sqlErr *sqlite.Error
	if !errors.As(err, &sqlErr) {
		return err
	}
	msg := sqlErr.Error()
	if sqlErr.Code() != sqlite3.SQLITE_CONSTRAINT_UNIQUE && !strings.Contains(msg, "UNIQUE constraint failed") {
		return err
	}

	for _, field := range []string{"email", "username", "number"} {
		if strings.Contains(msg, "."+field) {
			return &store.ConflictError{Field: field}
		}
	}
	return &store.ConflictError{}
}
