// Package storage translates entity operations into SQLite operations and
// maps store-level failures onto domain error kinds.
package storage

import (
	"strings"

	"github.com/kevradan/homestead-be/internal/apperror"
)

// isUniqueViolation reports whether err is a SQLite unique-constraint
// failure on the given column (table.column form).
func isUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") && strings.Contains(msg, column)
}

// isForeignKeyViolation reports whether err is a SQLite referential failure.
func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// conflictOr returns a Conflict error when err is a unique violation on
// column, otherwise err unchanged.
func conflictOr(err error, column, message string) error {
	if isUniqueViolation(err, column) {
		return apperror.Conflict(message)
	}
	return err
}
