package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/employee-portal/internal/httperr"
)

const (
	pgUniqueViolation           = "23505"
	pgForeignKeyViolation       = "23503"
	// Malformed uuid in a lookup; no such row can exist.
	pgInvalidTextRepresentation = "22P02"
)

// translate maps driver errors onto business errors at the store boundary.
func translate(err error, notFound string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(notFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return httperr.ErrConflict(conflictMessage(pgErr.ConstraintName))
		case pgForeignKeyViolation:
			return httperr.ErrValidation("Manager not found")
		case pgInvalidTextRepresentation:
			return httperr.ErrNotFound(notFound)
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrConflict("Record already exists")
	}
	return err
}

func conflictMessage(constraint string) string {
	switch {
	case strings.Contains(constraint, "employee_code"):
		return "Employee ID already exists"
	case strings.Contains(constraint, "email"):
		return "Email already exists"
	default:
		return "Record already exists"
	}
}
