// Package apperrors defines the error kinds shared by the repositories and the
// HTTP boundary. Repositories wrap one of the sentinels; the boundary maps them
// to status codes with errors.Is.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("data constraint violation")
	ErrValidation          = errors.New("validation failed")
	ErrStoreUnavailable    = errors.New("store unavailable")
)

// NotFound reports that the named resource does not exist.
func NotFound(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// Validation wraps a field-level input problem.
func Validation(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// Constraint wraps a store integrity failure, keeping the driver error in the chain.
func Constraint(err error) error {
	return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
}

// MySQL error numbers for integrity failures.
const (
	mysqlColumnCannotBeNull = 1048
	mysqlDuplicateEntry     = 1062
	mysqlRowIsReferenced    = 1451
	mysqlNoReferencedRow    = 1452
)

// FromDB classifies an error returned by gorm. Errors that are already
// classified, and errors no rule matches, are returned unchanged.
func FromDB(err error, resource string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConstraintViolation), errors.Is(err, ErrValidation):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(resource)
	case IsConstraintError(err):
		return Constraint(err)
	}
	return err
}

// IsConstraintError reports whether err is an integrity violation from any of
// the supported drivers.
func IsConstraintError(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// class 23: integrity constraint violation
		return pqErr.Code.Class() == "23"
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlColumnCannotBeNull, mysqlDuplicateEntry, mysqlRowIsReferenced, mysqlNoReferencedRow:
			return true
		}
	}
	return false
}
