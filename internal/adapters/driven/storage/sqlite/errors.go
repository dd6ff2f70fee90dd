package sqlite

import (
	"errors"

	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/custodia-labs/barangay-cli/internal/core/domain"
)

// mapError converts a driver error into a domain error for op.
// Uniqueness violations become domain.ErrDuplicate; everything else is a store failure.
// Errors that already carry a domain kind pass through unchanged.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var dErr *domain.Error
	if errors.As(err, &dErr) {
		return err
	}
	if isUniqueViolation(err) {
		return &domain.Error{Kind: domain.ErrDuplicate, Op: op, Err: err}
	}
	return domain.StoreError(op, err)
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlitedriver.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	default:
		return false
	}
}
