package repository

import (
	"errors"
	"jamat/shared/constant"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// IsForeignKeyViolation reports whether err was raised by a missing referenced row.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeFkViolation
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}

	return false
}

// IsCheckViolation reports whether err was raised by a CHECK constraint.
func IsCheckViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeCheckViolation
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintCheck
	}

	return false
}
